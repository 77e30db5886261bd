package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "taskdesk.com/taskdesk/internal/errors"
	model "taskdesk.com/taskdesk/internal/models"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create persists the company and links the creator as a member in the
// same transaction, so company-scope checks treat the creating admin
// like any other member.
func (r *CompanyRepository) Create(ctx context.Context, name, phone, address, creatorID string) (*model.Company, error) {
	company := &model.Company{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     phone,
		Address:   address,
		CreatorID: creatorID,
		CreatedAt: time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).
			Where("id = ?", creatorID).
			Update("company_id", company.ID).Error
	})
	if err != nil {
		// The service runs Exists first, but a concurrent insert can
		// still trip one of the unique indexes; same conflict either way.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrCompanyExists
		}
		return nil, err
	}

	return company, nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*model.Company, error) {
	var company model.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) FindByCreator(ctx context.Context, creatorID string) (*model.Company, error) {
	var company model.Company
	err := r.db.WithContext(ctx).First(&company, "creator_id = ?", creatorID).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// Exists reports whether any company collides with the candidate on one
// of the unique columns.
func (r *CompanyRepository) Exists(ctx context.Context, name, phone, address string) (bool, error) {
	var company model.Company
	err := r.db.WithContext(ctx).
		Where("name = ? OR phone = ? OR address = ?", name, phone, address).
		First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
