package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/timetrackhq/timesheet-api/internal/apperrors"
	"github.com/timetrackhq/timesheet-api/internal/models"
	"github.com/timetrackhq/timesheet-api/internal/repository"
)

// ProjectService provides business logic for project CRUD and the
// user-project membership.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// CreateProjectInput represents the fields for project creation.
type CreateProjectInput struct {
	Name       string
	Department string
	StartDate  time.Time
	EndDate    time.Time
	Status     string
}

// UpdateProjectInput is the explicit partial-update structure for projects.
type UpdateProjectInput struct {
	ID         uint64
	Name       *string
	Department *string
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *string
}

// List returns projects matching the filter, with member users and
// timesheets.
func (s *ProjectService) List(filter repository.ProjectFilter) ([]models.Project, error) {
	projects, err := s.projectRepo.ListWithRelations(filter)
	if err != nil {
		return nil, apperrors.Internal()
	}
	return projects, nil
}

// Create validates the date range and persists a new project.
func (s *ProjectService) Create(input CreateProjectInput) (*models.Project, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, apperrors.Validation("end_date must not be before start_date")
	}

	project := &models.Project{
		Name:       input.Name,
		Department: input.Department,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Status:     input.Status,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, apperrors.Internal()
	}

	return project, nil
}

// Get returns a project with its member users and timesheets.
func (s *ProjectService) Get(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByIDWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Project not found")
		}
		return nil, apperrors.Internal()
	}
	return project, nil
}

// Update applies the non-nil fields of input; the resulting date range must
// still be valid.
func (s *ProjectService) Update(input UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(input.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Project not found")
		}
		return nil, apperrors.Internal()
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Department != nil {
		project.Department = *input.Department
	}
	if input.StartDate != nil {
		project.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		project.EndDate = *input.EndDate
	}
	if input.Status != nil {
		project.Status = *input.Status
	}

	if project.EndDate.Before(project.StartDate) {
		return nil, apperrors.Validation("end_date must not be before start_date")
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, apperrors.Internal()
	}

	return project, nil
}

// Delete removes the project and, in the same transaction, its timesheets
// and memberships.
func (s *ProjectService) Delete(id uint64) error {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Project not found")
		}
		return apperrors.Internal()
	}

	if err := s.projectRepo.DeleteCascade(id); err != nil {
		return apperrors.Internal()
	}
	return nil
}

// AssignUser adds a user to a project. Both ids must reference existing
// rows. Assigning an existing member again is a no-op.
func (s *ProjectService) AssignUser(userID, projectID uint64) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Validation("user_id does not reference an existing user")
		}
		return apperrors.Internal()
	}

	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Validation("project_id does not reference an existing project")
		}
		return apperrors.Internal()
	}

	member := &models.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
	}
	if err := s.projectRepo.AddMember(member); err != nil {
		return apperrors.Internal()
	}

	return nil
}
