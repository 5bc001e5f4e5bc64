package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/timetrackhq/timesheet-api/internal/dto"
	"github.com/timetrackhq/timesheet-api/internal/repository"
	"github.com/timetrackhq/timesheet-api/internal/response"
	"github.com/timetrackhq/timesheet-api/internal/services"
	"github.com/timetrackhq/timesheet-api/internal/utils"
)

// UserHandler exposes user CRUD endpoints.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns users, optionally filtered by first_name, gender, and
// date_of_birth. Each user carries their projects and, per project, their
// own timesheets.
func (h *UserHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	filter := repository.UserFilter{
		Offset: params.Offset,
		Limit:  params.Limit,
	}

	if v := c.Query("first_name"); v != "" {
		filter.FirstName = &v
	}
	if v := c.Query("gender"); v != "" {
		filter.Gender = &v
	}
	if v := c.Query("date_of_birth"); v != "" {
		dob, err := parseDate("date_of_birth", v)
		if err != nil {
			response.Error(c, err)
			return
		}
		filter.DateOfBirth = &dob
	}

	users, err := h.userService.List(filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	dtos := make([]dto.UserDTO, len(users))
	for i, user := range users {
		dtos[i] = dto.ToUserWithProjectsDTO(user)
	}

	response.OK(c, "Get All Users", gin.H{"users": dtos})
}

// Create stores a new user.
func (h *UserHandler) Create(c *gin.Context) {
	type CreateUserRequest struct {
		FirstName   string `json:"first_name" binding:"required,max=255"`
		LastName    string `json:"last_name" binding:"required,max=255"`
		DateOfBirth string `json:"date_of_birth" binding:"required"`
		Gender      string `json:"gender" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required"`
	}

	var req CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	dob, err := parseDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userService.Create(services.CreateUserInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
		Gender:      req.Gender,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User Created Successfully", gin.H{"user": dto.ToUserDTO(*user)})
}

// Get returns a single user with projects and own timesheets.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User Fetched Successfully", gin.H{"user": dto.ToUserWithProjectsDTO(*user)})
}

// Update applies a partial update identified by the id field in the body.
func (h *UserHandler) Update(c *gin.Context) {
	type UpdateUserRequest struct {
		ID          uint64  `json:"id" binding:"required"`
		FirstName   *string `json:"first_name" binding:"omitempty,max=255"`
		LastName    *string `json:"last_name" binding:"omitempty,max=255"`
		DateOfBirth *string `json:"date_of_birth"`
		Gender      *string `json:"gender"`
		Email       *string `json:"email" binding:"omitempty,email"`
		Password    *string `json:"password"`
	}

	var req UpdateUserRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	dob, err := parseOptionalDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userService.Update(services.UpdateUserInput{
		ID:          req.ID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
		Gender:      req.Gender,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User Updated Successfully", gin.H{"user": dto.ToUserDTO(*user)})
}

// Delete removes a user and cascades to their timesheets.
func (h *UserHandler) Delete(c *gin.Context) {
	type DeleteUserRequest struct {
		ID uint64 `json:"id" binding:"required"`
	}

	var req DeleteUserRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.userService.Delete(req.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User deleted successfully", nil)
}
