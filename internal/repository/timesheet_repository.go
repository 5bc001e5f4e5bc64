package repository

import (
	"gorm.io/gorm"

	"github.com/timetrackhq/timesheet-api/internal/models"
)

// GormTimesheetRepository is a GORM implementation of TimesheetRepository
type GormTimesheetRepository struct {
	db *gorm.DB
}

// NewTimesheetRepository creates a new TimesheetRepository
func NewTimesheetRepository(db *gorm.DB) TimesheetRepository {
	return &GormTimesheetRepository{db: db}
}

// Create creates a new timesheet. The unique index on (user_id, project_id)
// rejects a second entry for the same pair at the storage layer; callers see
// gorm.ErrDuplicatedKey.
func (r *GormTimesheetRepository) Create(timesheet *models.Timesheet) error {
	return r.db.Create(timesheet).Error
}

// FindByID finds a timesheet by ID
func (r *GormTimesheetRepository) FindByID(id uint64) (*models.Timesheet, error) {
	var timesheet models.Timesheet
	if err := r.db.First(&timesheet, id).Error; err != nil {
		return nil, err
	}
	return &timesheet, nil
}

// FindByIDWithRelations finds a timesheet with its user and project.
func (r *GormTimesheetRepository) FindByIDWithRelations(id uint64) (*models.Timesheet, error) {
	var timesheet models.Timesheet
	err := r.db.
		Preload("User").
		Preload("Project").
		First(&timesheet, id).Error
	if err != nil {
		return nil, err
	}
	return &timesheet, nil
}

// ListWithRelations lists timesheets matching the filter with user and
// project loaded.
func (r *GormTimesheetRepository) ListWithRelations(filter TimesheetFilter) ([]models.Timesheet, error) {
	query := r.db.Model(&models.Timesheet{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}

	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}

	var timesheets []models.Timesheet
	err := query.
		Preload("User").
		Preload("Project").
		Order("timesheets.id").
		Find(&timesheets).Error
	if err != nil {
		return nil, err
	}

	return timesheets, nil
}

// FindByUserAndProject finds the timesheet for a user/project pair.
func (r *GormTimesheetRepository) FindByUserAndProject(userID, projectID uint64) (*models.Timesheet, error) {
	var timesheet models.Timesheet
	err := r.db.
		Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&timesheet).Error
	if err != nil {
		return nil, err
	}
	return &timesheet, nil
}

// Update updates a timesheet
func (r *GormTimesheetRepository) Update(timesheet *models.Timesheet) error {
	return r.db.Save(timesheet).Error
}

// Delete deletes a timesheet
func (r *GormTimesheetRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Timesheet{}, id).Error
}
