package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	FirstName    string    `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName     string    `gorm:"type:varchar(255);not null" json:"last_name"`
	DateOfBirth  time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender       string    `gorm:"type:varchar(20);not null" json:"gender"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Memberships []ProjectMember `gorm:"foreignKey:UserID" json:"-"`
	Projects    []Project       `gorm:"many2many:project_members" json:"projects,omitempty"`
	Timesheets  []Timesheet     `gorm:"foreignKey:UserID" json:"-"`
	Tokens      []AccessToken   `gorm:"foreignKey:UserID" json:"-"`
}
