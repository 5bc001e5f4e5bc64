package repository

import (
	"time"

	"github.com/timetrackhq/timesheet-api/internal/models"
)

// UserFilter holds the equality filters for listing users.
type UserFilter struct {
	FirstName   *string
	Gender      *string
	DateOfBirth *time.Time
	Offset      int
	Limit       int
}

// ProjectFilter holds the filters for listing projects: name is a substring
// match, department an exact match.
type ProjectFilter struct {
	Name       *string
	Department *string
	Offset     int
	Limit      int
}

// TimesheetFilter holds the equality filters for listing timesheets.
type TimesheetFilter struct {
	UserID    *uint64
	ProjectID *uint64
	Offset    int
	Limit     int
}

// UserRepository defines the interface for user data access.
//
// The *WithProjects methods eagerly load the user's projects and, under each
// project, only the timesheets logged by that user — the response shape is
// part of the method contract.
type UserRepository interface {
	Create(user *models.User) error

	FindByID(id uint64) (*models.User, error)

	FindByIDWithProjects(id uint64) (*models.User, error)

	FindByEmail(email string) (*models.User, error)

	ListWithProjects(filter UserFilter) ([]models.User, error)

	Update(user *models.User) error

	// DeleteCascade removes the user together with their timesheets,
	// memberships, and access tokens in a single transaction.
	DeleteCascade(id uint64) error
}

// ProjectRepository defines the interface for project data access.
type ProjectRepository interface {
	Create(project *models.Project) error

	FindByID(id uint64) (*models.Project, error)

	// FindByIDWithRelations loads the project with its member users and
	// its timesheets.
	FindByIDWithRelations(id uint64) (*models.Project, error)

	ListWithRelations(filter ProjectFilter) ([]models.Project, error)

	Update(project *models.Project) error

	// DeleteCascade removes the project together with its timesheets and
	// memberships in a single transaction.
	DeleteCascade(id uint64) error

	// AddMember inserts a membership row. Re-assigning an existing member
	// is a no-op; the membership set never holds duplicates.
	AddMember(member *models.ProjectMember) error
}

// TimesheetRepository defines the interface for timesheet data access.
type TimesheetRepository interface {
	Create(timesheet *models.Timesheet) error

	FindByID(id uint64) (*models.Timesheet, error)

	// FindByIDWithRelations loads the timesheet with its user and project.
	FindByIDWithRelations(id uint64) (*models.Timesheet, error)

	ListWithRelations(filter TimesheetFilter) ([]models.Timesheet, error)

	FindByUserAndProject(userID, projectID uint64) (*models.Timesheet, error)

	Update(timesheet *models.Timesheet) error

	Delete(id uint64) error
}

// TokenRepository defines the interface for access-token data access.
type TokenRepository interface {
	Create(token *models.AccessToken) error

	FindByHash(hash string) (*models.AccessToken, error)

	// DeleteAllForUser revokes every token of the user. Idempotent.
	DeleteAllForUser(userID uint64) error
}
