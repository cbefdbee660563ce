package entity

import (
	"database/sql"
	"time"
)

// UserQuest is one attempt of a quest on a calendar day. Non-repeatable
// quests keep a single row per (user, quest, day) that is updated in place;
// repeatable and capped quests append a fresh row for every completion.
type UserQuest struct {
	Base

	UserID string `gorm:"index:idx_user_quest_date"`
	User   User   `gorm:"foreignKey:UserID"`

	QuestID string `gorm:"index:idx_user_quest_date"`
	Quest   Quest  `gorm:"foreignKey:QuestID"`

	QuestDate time.Time `gorm:"index:idx_user_quest_date"`

	IsActive    bool `gorm:"index"`
	StartedAt   sql.NullTime
	CompletedAt sql.NullTime

	EarnedExp       int
	StreakBonus     int
	CompletedStreak int
}

// Completed reports whether this attempt has finished. An attempt with a
// null completion timestamp is in progress or abandoned.
func (uq *UserQuest) Completed() bool {
	return uq.CompletedAt.Valid
}
