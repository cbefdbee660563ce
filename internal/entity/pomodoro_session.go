package entity

import (
	"database/sql"
	"time"
)

type PomodoroSession struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	DurationMinutes int
	TaskName        string

	StartedAt   time.Time
	CompletedAt sql.NullTime
	Completed   bool `gorm:"default:false"`
}
