package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskdesk.com/taskdesk/internal/constants"
	apperrors "taskdesk.com/taskdesk/internal/errors"
	model "taskdesk.com/taskdesk/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type CreateUserParams struct {
	Name      string
	Surname   string
	Email     string
	Username  string
	Password  string
	Role      constants.Role
	Status    constants.UserStatus
	CompanyID *string
}

func (r *UserRepository) Create(ctx context.Context, params CreateUserParams) (*model.User, error) {
	user := &model.User{
		ID:        uuid.NewString(),
		Name:      params.Name,
		Surname:   params.Surname,
		Email:     params.Email,
		Username:  params.Username,
		Password:  params.Password,
		Role:      params.Role,
		Status:    params.Status,
		CompanyID: params.CompanyID,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		// The service checks first, but a concurrent insert can still
		// hit the unique email index; surface it as the same conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// FindEmployeesInCompany resolves candidate assignee ids to active,
// non-admin users belonging to the given company. Candidates outside
// the company scope are silently dropped.
func (r *UserRepository) FindEmployeesInCompany(ctx context.Context, ids []string, companyID string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("role <> ?", constants.RoleAdmin).
		Where("status = ?", constants.UserActive).
		Where("company_id = ?", companyID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) SetCompany(ctx context.Context, userID, companyID string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("company_id", companyID).Error
}
