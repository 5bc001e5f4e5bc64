package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/timetrackhq/timesheet-api/internal/apperrors"
	"github.com/timetrackhq/timesheet-api/internal/models"
	"github.com/timetrackhq/timesheet-api/internal/repository"
	"github.com/timetrackhq/timesheet-api/internal/utils"
)

// UserService provides business logic for user CRUD.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents the fields for admin user creation. Unlike
// registration there is no confirmation field.
type CreateUserInput struct {
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Gender      string
	Email       string
	Password    string
}

// UpdateUserInput is the explicit partial-update structure for users: only
// the listed fields may change, and only when non-nil.
type UpdateUserInput struct {
	ID          uint64
	FirstName   *string
	LastName    *string
	DateOfBirth *time.Time
	Gender      *string
	Email       *string
	Password    *string
}

// List returns users matching the filter, with projects and per-user
// timesheets.
func (s *UserService) List(filter repository.UserFilter) ([]models.User, error) {
	users, err := s.userRepo.ListWithProjects(filter)
	if err != nil {
		return nil, apperrors.Internal()
	}
	return users, nil
}

// Create validates and persists a new user.
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	if problems := utils.ValidatePassword(input.Password); len(problems) > 0 {
		return nil, apperrors.Validation(problems...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal()
	}

	user := &models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		DateOfBirth:  input.DateOfBirth,
		Gender:       input.Gender,
		Email:        input.Email,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Validation("email has already been taken")
		}
		return nil, apperrors.Internal()
	}

	return user, nil
}

// Get returns a user with their projects and own timesheets.
func (s *UserService) Get(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByIDWithProjects(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Internal()
	}
	return user, nil
}

// Update applies the non-nil fields of input. The password hash changes only
// when a new password is supplied; a supplied password must pass the policy.
func (s *UserService) Update(input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(input.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Internal()
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = *input.DateOfBirth
	}
	if input.Gender != nil {
		user.Gender = *input.Gender
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		if problems := utils.ValidatePassword(*input.Password); len(problems) > 0 {
			return nil, apperrors.Validation(problems...)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Internal()
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Validation("email has already been taken")
		}
		return nil, apperrors.Internal()
	}

	return user, nil
}

// Delete removes the user and, in the same transaction, their timesheets,
// memberships, and tokens.
func (s *UserService) Delete(id uint64) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("User not found")
		}
		return apperrors.Internal()
	}

	if err := s.userRepo.DeleteCascade(id); err != nil {
		return apperrors.Internal()
	}
	return nil
}
