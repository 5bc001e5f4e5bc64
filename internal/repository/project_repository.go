package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/timetrackhq/timesheet-api/internal/models"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByIDWithRelations finds a project with its member users and timesheets.
func (r *GormProjectRepository) FindByIDWithRelations(id uint64) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Users").
		Preload("Timesheets").
		First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListWithRelations lists projects matching the filter with member users and
// timesheets. Name matches as a substring, department exactly.
func (r *GormProjectRepository) ListWithRelations(filter ProjectFilter) ([]models.Project, error) {
	query := r.db.Model(&models.Project{})

	if filter.Name != nil {
		query = query.Where("name LIKE ?", "%"+*filter.Name+"%")
	}
	if filter.Department != nil {
		query = query.Where("department = ?", *filter.Department)
	}

	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}

	var projects []models.Project
	err := query.
		Preload("Users").
		Preload("Timesheets").
		Order("projects.id").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}

	return projects, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// DeleteCascade deletes a project, its timesheets, and its memberships in a
// transaction.
func (r *GormProjectRepository) DeleteCascade(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Timesheet{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Project{}, id).Error
	})
}

// AddMember inserts a membership row. The ON CONFLICT clause over the
// composite primary key makes repeat assignment a no-op, so concurrent
// identical calls cannot produce duplicate rows.
func (r *GormProjectRepository) AddMember(member *models.ProjectMember) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(member).Error
}
