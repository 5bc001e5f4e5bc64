package dto

import (
	"time"

	"github.com/timetrackhq/timesheet-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash and the
// membership pivot rows are never part of any response shape.
type UserDTO struct {
	ID          uint64       `json:"id"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	DateOfBirth string       `json:"date_of_birth"`
	Gender      string       `json:"gender"`
	Email       string       `json:"email"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Projects    []ProjectDTO `json:"projects,omitempty"`
}

// ToUserDTO converts a User model to UserDTO without relations.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		DateOfBirth: formatDate(user.DateOfBirth),
		Gender:      user.Gender,
		Email:       user.Email,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// ToUserWithProjectsDTO converts a User with preloaded projects; each project
// carries the timesheets the repository scoped to this user.
func ToUserWithProjectsDTO(user models.User) UserDTO {
	d := ToUserDTO(user)

	d.Projects = make([]ProjectDTO, len(user.Projects))
	for i, project := range user.Projects {
		p := ToProjectDTO(project)
		p.Timesheets = toTimesheetDTOs(project.Timesheets)
		d.Projects[i] = p
	}

	return d
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
