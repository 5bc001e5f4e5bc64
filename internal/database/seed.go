package database

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/timetrackhq/timesheet-api/internal/models"
)

// Seed inserts development fixture data: two users, two projects, and two
// timesheets. It is a no-op when the users table already has rows.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing data: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Secret123!"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := []models.User{
		{
			FirstName:    "John",
			LastName:     "Doe",
			DateOfBirth:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			Gender:       "male",
			Email:        "john.doe@example.com",
			PasswordHash: string(hash),
		},
		{
			FirstName:    "Jane",
			LastName:     "Smith",
			DateOfBirth:  time.Date(1985, 5, 15, 0, 0, 0, 0, time.UTC),
			Gender:       "female",
			Email:        "jane.smith@example.com",
			PasswordHash: string(hash),
		},
	}

	projects := []models.Project{
		{
			Name:       "Project Alpha",
			Department: "IT",
			StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			Status:     "active",
		},
		{
			Name:       "Project Beta",
			Department: "HR",
			StartDate:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
			Status:     "active",
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return err
		}
		if err := tx.Create(&projects).Error; err != nil {
			return err
		}

		timesheets := []models.Timesheet{
			{
				TaskName:  "Development Task",
				Date:      time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC),
				Hours:     5,
				UserID:    users[0].ID,
				ProjectID: projects[0].ID,
			},
			{
				TaskName:  "Testing Task",
				Date:      time.Date(2024, 10, 11, 0, 0, 0, 0, time.UTC),
				Hours:     3,
				UserID:    users[1].ID,
				ProjectID: projects[0].ID,
			},
		}

		return tx.Create(&timesheets).Error
	})
}
