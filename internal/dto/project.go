package dto

import (
	"time"

	"github.com/timetrackhq/timesheet-api/internal/models"
)

// ProjectDTO represents a project in API responses.
type ProjectDTO struct {
	ID         uint64         `json:"id"`
	Name       string         `json:"name"`
	Department string         `json:"department"`
	StartDate  string         `json:"start_date"`
	EndDate    string         `json:"end_date"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	Users      []UserDTO      `json:"users,omitempty"`
	Timesheets []TimesheetDTO `json:"timesheets,omitempty"`
}

// ToProjectDTO converts a Project model to ProjectDTO without relations.
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:         project.ID,
		Name:       project.Name,
		Department: project.Department,
		StartDate:  formatDate(project.StartDate),
		EndDate:    formatDate(project.EndDate),
		Status:     project.Status,
		CreatedAt:  project.CreatedAt,
		UpdatedAt:  project.UpdatedAt,
	}
}

// ToProjectWithRelationsDTO converts a Project with preloaded member users
// and timesheets.
func ToProjectWithRelationsDTO(project models.Project) ProjectDTO {
	d := ToProjectDTO(project)

	d.Users = make([]UserDTO, len(project.Users))
	for i, user := range project.Users {
		d.Users[i] = ToUserDTO(user)
	}

	d.Timesheets = toTimesheetDTOs(project.Timesheets)

	return d
}
