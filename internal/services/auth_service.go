package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"taskdesk.com/taskdesk/internal/constants"
	apperrors "taskdesk.com/taskdesk/internal/errors"
	model "taskdesk.com/taskdesk/internal/models"
	repository "taskdesk.com/taskdesk/internal/repositories"
)

type AuthService struct {
	logger     zerolog.Logger
	users      *repository.UserRepository
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(
	logger zerolog.Logger,
	users *repository.UserRepository,
	signingKey []byte,
	tokenTTL time.Duration,
) *AuthService {
	return &AuthService{
		logger:     logger,
		users:      users,
		signingKey: signingKey,
		tokenTTL:   tokenTTL,
	}
}

type RegisterParams struct {
	Name     string
	Surname  string
	Email    string
	Username string
	Password string
}

// Register creates a self-service account. Self-registered users are
// admins; employee accounts are only created by an admin through
// AddEmployee.
func (s *AuthService) Register(ctx context.Context, params RegisterParams) (*model.User, error) {
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

	user, err := s.users.Create(ctx, repository.CreateUserParams{
		Name:     params.Name,
		Surname:  params.Surname,
		Email:    params.Email,
		Username: params.Username,
		Password: hash,
		Role:     constants.RoleAdmin,
		Status:   constants.UserActive,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("email", user.Email).
		Msg("registered user")
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("failed to select user by email")
		return "", err
	}

	match, err := argon2id.ComparePasswordAndHash(password, user.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to compare password")
		return "", err
	}
	if !match {
		return "", apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	unsigned := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.ID,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	})
	token, err := unsigned.SignedString(s.signingKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to sign access token")
		return "", err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Msg("user logged in")
	return token, nil
}

// Authenticate resolves a bearer token to the acting user.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*model.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		s.logger.Error().Err(err).Msg("failed to select user by id")
		return nil, err
	}

	return user, nil
}
