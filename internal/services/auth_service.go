package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/timetrackhq/timesheet-api/internal/apperrors"
	"github.com/timetrackhq/timesheet-api/internal/constants"
	"github.com/timetrackhq/timesheet-api/internal/models"
	"github.com/timetrackhq/timesheet-api/internal/repository"
	"github.com/timetrackhq/timesheet-api/internal/utils"
)

// AuthService is the credential and token store: it registers users,
// verifies credentials, and issues/revokes/authenticates bearer tokens.
type AuthService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// RegisterInput represents the required information to register a new user.
type RegisterInput struct {
	FirstName            string
	LastName             string
	DateOfBirth          time.Time
	Gender               string
	Email                string
	Password             string
	PasswordConfirmation string
}

// Register validates the password policy and email uniqueness, hashes the
// password, and persists the user.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if problems := utils.ValidatePassword(input.Password); len(problems) > 0 {
		return nil, apperrors.Validation(problems...)
	}
	if input.Password != input.PasswordConfirmation {
		return nil, apperrors.Validation("password confirmation does not match")
	}

	user := &models.User{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
		Email:       input.Email,
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal()
	}
	user.PasswordHash = string(hash)

	// The unique index on email is the authority; a concurrent duplicate
	// insert surfaces here as ErrDuplicatedKey.
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Validation("email has already been taken")
		}
		return nil, apperrors.Internal()
	}

	return user, nil
}

// Login verifies the credentials and issues a new bearer token. A missing
// user and a wrong password produce the identical error so responses do not
// leak account existence.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.Authentication("Invalid credentials.")
		}
		return "", apperrors.Internal()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.Authentication("Invalid credentials.")
	}

	raw, err := utils.GenerateToken()
	if err != nil {
		return "", apperrors.Internal()
	}

	token := &models.AccessToken{
		Name:      constants.DefaultTokenName,
		TokenHash: utils.HashToken(raw),
		UserID:    user.ID,
	}
	if err := s.tokenRepo.Create(token); err != nil {
		return "", apperrors.Internal()
	}

	// The raw token leaves the process exactly once, here.
	return raw, nil
}

// Authenticate resolves a presented raw token to its user by hash lookup.
func (s *AuthService) Authenticate(rawToken string) (*models.User, error) {
	token, err := s.tokenRepo.FindByHash(utils.HashToken(rawToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Authentication("Unauthenticated.")
		}
		return nil, apperrors.Internal()
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Authentication("Unauthenticated.")
		}
		return nil, apperrors.Internal()
	}

	return user, nil
}

// Logout revokes every token of the user. Idempotent.
func (s *AuthService) Logout(userID uint64) error {
	if err := s.tokenRepo.DeleteAllForUser(userID); err != nil {
		return apperrors.Internal()
	}
	return nil
}
