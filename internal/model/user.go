package model

type User struct {
	ID                   string `json:"id"`
	Username             string `json:"username"`
	Level                int    `json:"level"`
	CurrentExp           int    `json:"current_exp"`
	ExpToNextLevel       int    `json:"exp_to_next_level"`
	DailyStreak          int    `json:"daily_streak"`
	LastQuestDate        string `json:"last_quest_date,omitempty"`
	TotalQuestsCompleted int    `json:"total_quests_completed"`
	ActiveQuestID        string `json:"active_quest_id,omitempty"`
	CreatedAt            string `json:"created_at"`
}
