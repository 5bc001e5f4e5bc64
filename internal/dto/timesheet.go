package dto

import (
	"time"

	"github.com/timetrackhq/timesheet-api/internal/models"
)

// TimesheetDTO represents a timesheet in API responses.
type TimesheetDTO struct {
	ID        uint64      `json:"id"`
	TaskName  string      `json:"task_name"`
	Date      string      `json:"date"`
	Hours     float64     `json:"hours"`
	UserID    uint64      `json:"user_id"`
	ProjectID uint64      `json:"project_id"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	User      *UserDTO    `json:"user,omitempty"`
	Project   *ProjectDTO `json:"project,omitempty"`
}

// ToTimesheetDTO converts a Timesheet model to TimesheetDTO without relations.
func ToTimesheetDTO(timesheet models.Timesheet) TimesheetDTO {
	return TimesheetDTO{
		ID:        timesheet.ID,
		TaskName:  timesheet.TaskName,
		Date:      formatDate(timesheet.Date),
		Hours:     timesheet.Hours,
		UserID:    timesheet.UserID,
		ProjectID: timesheet.ProjectID,
		CreatedAt: timesheet.CreatedAt,
		UpdatedAt: timesheet.UpdatedAt,
	}
}

// ToTimesheetWithRelationsDTO converts a Timesheet with preloaded user and
// project.
func ToTimesheetWithRelationsDTO(timesheet models.Timesheet) TimesheetDTO {
	d := ToTimesheetDTO(timesheet)

	if timesheet.User.ID != 0 {
		user := ToUserDTO(timesheet.User)
		d.User = &user
	}

	if timesheet.Project.ID != 0 {
		project := ToProjectDTO(timesheet.Project)
		d.Project = &project
	}

	return d
}

func toTimesheetDTOs(timesheets []models.Timesheet) []TimesheetDTO {
	if len(timesheets) == 0 {
		return nil
	}

	dtos := make([]TimesheetDTO, len(timesheets))
	for i, timesheet := range timesheets {
		dtos[i] = ToTimesheetDTO(timesheet)
	}
	return dtos
}
