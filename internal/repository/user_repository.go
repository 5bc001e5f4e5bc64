package repository

import (
	"gorm.io/gorm"

	"github.com/timetrackhq/timesheet-api/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDWithProjects finds a user with their projects and, per project,
// only the timesheets logged by this user.
func (r *GormUserRepository) FindByIDWithProjects(id uint64) (*models.User, error) {
	var user models.User
	err := r.db.
		Preload("Projects").
		Preload("Projects.Timesheets", "user_id = ?", id).
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListWithProjects lists users matching the filter, each with their projects
// and their own timesheets under each project.
func (r *GormUserRepository) ListWithProjects(filter UserFilter) ([]models.User, error) {
	query := r.db.Model(&models.User{})

	if filter.FirstName != nil {
		query = query.Where("first_name = ?", *filter.FirstName)
	}
	if filter.Gender != nil {
		query = query.Where("gender = ?", *filter.Gender)
	}
	if filter.DateOfBirth != nil {
		query = query.Where("date_of_birth = ?", *filter.DateOfBirth)
	}

	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}

	var users []models.User
	err := query.
		Preload("Projects").
		Order("users.id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	// Per-user timesheet scoping cannot be expressed as a single preload
	// condition across the whole list, so load each user's rows here.
	for i := range users {
		for j := range users[i].Projects {
			var sheets []models.Timesheet
			err := r.db.
				Where("user_id = ? AND project_id = ?", users[i].ID, users[i].Projects[j].ID).
				Find(&sheets).Error
			if err != nil {
				return nil, err
			}
			users[i].Projects[j].Timesheets = sheets
		}
	}

	return users, nil
}

// Update updates a user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// DeleteCascade deletes a user and all dependent rows in a transaction.
// Timesheets, memberships, and tokens cannot outlive their user; either the
// whole cascade commits or none of it does.
func (r *GormUserRepository) DeleteCascade(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Timesheet{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.AccessToken{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, id).Error
	})
}
