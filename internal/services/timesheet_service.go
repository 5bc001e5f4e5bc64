package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/timetrackhq/timesheet-api/internal/apperrors"
	"github.com/timetrackhq/timesheet-api/internal/models"
	"github.com/timetrackhq/timesheet-api/internal/repository"
)

// duplicatePairMessage is returned when a user already has a timesheet for
// a project. Creation is rejected per user/project pair, regardless of date.
const duplicatePairMessage = "this user has already logged a timesheet for this project"

// TimesheetService provides business logic for timesheet CRUD.
type TimesheetService struct {
	timesheetRepo repository.TimesheetRepository
	userRepo      repository.UserRepository
	projectRepo   repository.ProjectRepository
}

// NewTimesheetService creates a new TimesheetService.
func NewTimesheetService(
	timesheetRepo repository.TimesheetRepository,
	userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository,
) *TimesheetService {
	return &TimesheetService{
		timesheetRepo: timesheetRepo,
		userRepo:      userRepo,
		projectRepo:   projectRepo,
	}
}

// CreateTimesheetInput represents the fields for timesheet creation.
type CreateTimesheetInput struct {
	TaskName  string
	Date      time.Time
	Hours     float64
	UserID    uint64
	ProjectID uint64
}

// UpdateTimesheetInput is the explicit partial-update structure for
// timesheets: each field is independently optional.
type UpdateTimesheetInput struct {
	ID        uint64
	TaskName  *string
	Date      *time.Time
	Hours     *float64
	UserID    *uint64
	ProjectID *uint64
}

// List returns timesheets matching the filter, with user and project.
func (s *TimesheetService) List(filter repository.TimesheetFilter) ([]models.Timesheet, error) {
	timesheets, err := s.timesheetRepo.ListWithRelations(filter)
	if err != nil {
		return nil, apperrors.Internal()
	}
	return timesheets, nil
}

// Create validates hours, foreign keys, and pair uniqueness, then persists
// the timesheet. The unique index on (user_id, project_id) is the final
// authority, so a concurrent duplicate insert is rejected too.
func (s *TimesheetService) Create(input CreateTimesheetInput) (*models.Timesheet, error) {
	if input.Hours < 0 {
		return nil, apperrors.Validation("hours must not be negative")
	}
	if err := s.checkReferences(&input.UserID, &input.ProjectID); err != nil {
		return nil, err
	}

	if _, err := s.timesheetRepo.FindByUserAndProject(input.UserID, input.ProjectID); err == nil {
		return nil, apperrors.Validation(duplicatePairMessage)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal()
	}

	timesheet := &models.Timesheet{
		TaskName:  input.TaskName,
		Date:      input.Date,
		Hours:     input.Hours,
		UserID:    input.UserID,
		ProjectID: input.ProjectID,
	}

	if err := s.timesheetRepo.Create(timesheet); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Validation(duplicatePairMessage)
		}
		return nil, apperrors.Internal()
	}

	return timesheet, nil
}

// Get returns a timesheet with its user and project.
func (s *TimesheetService) Get(id uint64) (*models.Timesheet, error) {
	timesheet, err := s.timesheetRepo.FindByIDWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Timesheet not found")
		}
		return nil, apperrors.Internal()
	}
	return timesheet, nil
}

// Update applies the non-nil fields of input, re-checking foreign keys when
// they change and keeping the user/project pair unique.
func (s *TimesheetService) Update(input UpdateTimesheetInput) (*models.Timesheet, error) {
	timesheet, err := s.timesheetRepo.FindByID(input.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Timesheet not found")
		}
		return nil, apperrors.Internal()
	}

	if input.Hours != nil && *input.Hours < 0 {
		return nil, apperrors.Validation("hours must not be negative")
	}
	if err := s.checkReferences(input.UserID, input.ProjectID); err != nil {
		return nil, err
	}

	if input.TaskName != nil {
		timesheet.TaskName = *input.TaskName
	}
	if input.Date != nil {
		timesheet.Date = *input.Date
	}
	if input.Hours != nil {
		timesheet.Hours = *input.Hours
	}
	if input.UserID != nil {
		timesheet.UserID = *input.UserID
	}
	if input.ProjectID != nil {
		timesheet.ProjectID = *input.ProjectID
	}

	if err := s.timesheetRepo.Update(timesheet); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Validation(duplicatePairMessage)
		}
		return nil, apperrors.Internal()
	}

	return timesheet, nil
}

// Delete removes a single timesheet.
func (s *TimesheetService) Delete(id uint64) error {
	if _, err := s.timesheetRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Timesheet not found")
		}
		return apperrors.Internal()
	}

	if err := s.timesheetRepo.Delete(id); err != nil {
		return apperrors.Internal()
	}
	return nil
}

// checkReferences validates the supplied foreign keys. Nil means the field
// is not being set.
func (s *TimesheetService) checkReferences(userID, projectID *uint64) error {
	if userID != nil {
		if _, err := s.userRepo.FindByID(*userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.Validation("user_id does not reference an existing user")
			}
			return apperrors.Internal()
		}
	}

	if projectID != nil {
		if _, err := s.projectRepo.FindByID(*projectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.Validation("project_id does not reference an existing project")
			}
			return apperrors.Internal()
		}
	}

	return nil
}
