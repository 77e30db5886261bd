package services

import (
	"context"
	"errors"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"taskdesk.com/taskdesk/internal/constants"
	apperrors "taskdesk.com/taskdesk/internal/errors"
	model "taskdesk.com/taskdesk/internal/models"
	repository "taskdesk.com/taskdesk/internal/repositories"
)

type CompanyService struct {
	logger    zerolog.Logger
	companies *repository.CompanyRepository
	users     *repository.UserRepository
}

func NewCompanyService(
	logger zerolog.Logger,
	companies *repository.CompanyRepository,
	users *repository.UserRepository,
) *CompanyService {
	return &CompanyService{
		logger:    logger,
		companies: companies,
		users:     users,
	}
}

// Create registers the acting admin's company. A user may create at
// most one company and becomes a member of it on creation.
func (s *CompanyService) Create(ctx context.Context, actor *model.User, name, phone, address string) (*model.Company, error) {
	_, err := s.companies.FindByCreator(ctx, actor.ID)
	if err == nil {
		return nil, apperrors.ErrCompanyAlreadyCreated
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error().Err(err).Msg("failed to check creator company")
		return nil, err
	}

	exists, err := s.companies.Exists(ctx, name, phone, address)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to check company uniqueness")
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCompanyExists
	}

	company, err := s.companies.Create(ctx, name, phone, address, actor.ID)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create company")
		return nil, err
	}

	s.logger.Info().
		Str("company_id", company.ID).
		Str("creator_id", actor.ID).
		Msg("created company")
	return company, nil
}

type AddEmployeeParams struct {
	Name     string
	Surname  string
	Email    string
	Username string
	Password string
	Status   constants.UserStatus
}

// AddEmployee creates an EMPLOYEE account under the acting admin's
// company. The admin must have created a company first.
func (s *CompanyService) AddEmployee(ctx context.Context, actor *model.User, params AddEmployeeParams) (*model.User, error) {
	company, err := s.companies.FindByCreator(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		s.logger.Error().Err(err).Msg("failed to select creator company")
		return nil, err
	}

	taken, err := s.users.EmailExists(ctx, params.Email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to check email")
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := argon2id.CreateHash(params.Password, argon2id.DefaultParams)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, err
	}

	employee, err := s.users.Create(ctx, repository.CreateUserParams{
		Name:      params.Name,
		Surname:   params.Surname,
		Email:     params.Email,
		Username:  params.Username,
		Password:  hash,
		Role:      constants.RoleEmployee,
		Status:    params.Status,
		CompanyID: &company.ID,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create employee")
		return nil, err
	}

	s.logger.Info().
		Str("employee_id", employee.ID).
		Str("company_id", company.ID).
		Msg("added employee")
	return employee, nil
}
