package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/timetrackhq/timesheet-api/internal/apperrors"
	"github.com/timetrackhq/timesheet-api/internal/dto"
	"github.com/timetrackhq/timesheet-api/internal/middleware"
	"github.com/timetrackhq/timesheet-api/internal/response"
	"github.com/timetrackhq/timesheet-api/internal/services"
)

// AuthHandler coordinates registration, login, and logout.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		FirstName            string `json:"first_name" binding:"required,max=255"`
		LastName             string `json:"last_name" binding:"required,max=255"`
		DateOfBirth          string `json:"date_of_birth" binding:"required"`
		Gender               string `json:"gender" binding:"required"`
		Email                string `json:"email" binding:"required,email"`
		Password             string `json:"password" binding:"required"`
		PasswordConfirmation string `json:"password_confirmation" binding:"required"`
	}

	var req RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	dob, err := parseDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		DateOfBirth:          dob,
		Gender:               req.Gender,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User registered successfully.", gin.H{"user": dto.ToUserDTO(*user)})
}

// Login verifies credentials and returns a fresh bearer token. The raw token
// appears only in this response; the server keeps its hash.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful.", gin.H{"token": token})
}

// Logout revokes all of the caller's tokens.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		response.Error(c, apperrors.Authentication("Unauthenticated."))
		return
	}

	if err := h.authService.Logout(userID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User logged out successfully.", nil)
}
