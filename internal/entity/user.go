package entity

import (
	"database/sql"
)

// User carries both the account identity and the gamification progress
// aggregate. The progress columns (exp, level, streak, active quest) are
// mutated only inside the quest domain transactions.
type User struct {
	Base

	Username     string `gorm:"unique"`
	PasswordHash string

	Level          int `gorm:"default:1"`
	CurrentExp     int `gorm:"default:0"`
	ExpToNextLevel int `gorm:"default:100"`

	DailyStreak          int `gorm:"default:0"`
	LastQuestDate        sql.NullTime
	TotalQuestsCompleted int `gorm:"default:0"`

	// ActiveQuestID is the single quest the user is currently working on.
	// At most one quest is active per user at any time.
	ActiveQuestID sql.NullString
}
