package models

import "time"

type Project struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Department string    `gorm:"type:varchar(255);not null" json:"department"`
	StartDate  time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time `gorm:"type:date;not null" json:"end_date"`
	Status     string    `gorm:"type:varchar(50);not null" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Members    []ProjectMember `gorm:"foreignKey:ProjectID" json:"-"`
	Users      []User          `gorm:"many2many:project_members" json:"users,omitempty"`
	Timesheets []Timesheet     `gorm:"foreignKey:ProjectID" json:"timesheets,omitempty"`
}
