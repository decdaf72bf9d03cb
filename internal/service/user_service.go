package service

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Aldonvacriates/E-Commerce-API/internal/apperror"
	"github.com/Aldonvacriates/E-Commerce-API/internal/entity"
	"github.com/Aldonvacriates/E-Commerce-API/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// UserRepository is the persistence surface the user service depends on.
type UserRepository interface {
	GetUsers(ctx context.Context) ([]entity.User, error)
	GetUserByID(ctx context.Context, id int) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	DeleteUser(ctx context.Context, id int) error
}

// UserUpdate carries the fields of a partial user update; nil means
// "leave unchanged".
type UserUpdate struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
}

type UserService struct {
	userRepo UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.userRepo.GetUsers(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing users")
		return nil, err
	}

	return users, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFoundf("user %d not found", id)
		}
		logger.Error().Err(err).Msgf("Error getting user by ID %d", id)
		return nil, err
	}

	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user.Name == "" {
		return nil, apperror.Validationf("name is required")
	}
	if err := validateEmail(user.Email); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetUserByEmail(ctx, user.Email); err == nil {
		return nil, apperror.Conflictf("email already exists")
	} else if !errors.Is(err, sql.ErrNoRows) {
		logger.Error().Err(err).Msg("Error checking email uniqueness")
		return nil, err
	}

	createdUser, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		// the unique index catches creates racing past the check above
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflictf("email already exists")
		}
		logger.Error().Err(err).Msg("Error creating user")
		return nil, err
	}

	return createdUser, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int, update UserUpdate) (*entity.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFoundf("user %d not found", id)
		}
		logger.Error().Err(err).Msgf("Error getting user by ID %d", id)
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	if update.Email != nil {
		if err := validateEmail(*update.Email); err != nil {
			return nil, err
		}
		if other, err := s.userRepo.GetUserByEmail(ctx, *update.Email); err == nil && other.ID != id {
			return nil, apperror.Conflictf("email already exists")
		} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
			logger.Error().Err(err).Msg("Error checking email uniqueness")
			return nil, err
		}
		user.Email = *update.Email
	}

	updatedUser, err := s.userRepo.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflictf("email already exists")
		}
		logger.Error().Err(err).Msgf("Error updating user %d", id)
		return nil, err
	}

	return updatedUser, nil
}

// DeleteUser removes a user; the user's orders and their product
// associations go with them.
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	if _, err := s.userRepo.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NotFoundf("user %d not found", id)
		}
		logger.Error().Err(err).Msgf("Error getting user by ID %d", id)
		return err
	}

	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting user %d", id)
		return err
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return apperror.Validationf("email must be a valid email address")
	}
	return nil
}
