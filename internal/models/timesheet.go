package models

import "time"

// Timesheet is a logged work entry. A user may hold at most one timesheet
// per project; the composite unique index enforces that under concurrent
// creates, not just at validation time.
type Timesheet struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	TaskName  string    `gorm:"type:varchar(255);not null" json:"task_name"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	Hours     float64   `gorm:"not null" json:"hours"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_timesheets_user_project" json:"user_id"`
	ProjectID uint64    `gorm:"not null;uniqueIndex:idx_timesheets_user_project" json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
