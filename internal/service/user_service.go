// Package service provides application business logic (products, chats,
// categories, users, wishlists).
package service

import (
	"context"
	"errors"

	"tradepost/internal/database"
	"tradepost/internal/models"
	"tradepost/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// validate checks the struct tags on service input types.
var validate = validator.New()

// UserService provides user account business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// CreateUserInput is the input for registering a user.
type CreateUserInput struct {
	Username          string `validate:"required,max=150"`
	Email             string `validate:"required,email"`
	FirstName         string `validate:"max=150"`
	LastName          string `validate:"max=150"`
	ProfilePictureURL string `validate:"omitempty,url"`
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser registers a new account. The email is the user's public handle
// and must be unique.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if err := validate.Struct(in); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	user := &models.User{
		Username:          in.Username,
		Email:             in.Email,
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		ProfilePictureURL: in.ProfilePictureURL,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, models.NewConflictError("A user with this email already exists")
		}
		return nil, err
	}
	return user, nil
}

// Exists reports whether an account with the email is registered.
func (s *UserService) Exists(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, models.NewValidationError("Email is required")
	}
	return s.userRepo.ExistsByEmail(ctx, email)
}

// GetByEmail returns the account registered under email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", email)
		}
		return nil, err
	}
	return user, nil
}
