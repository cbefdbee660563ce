package model

type Quest struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	SkillID             string `json:"skill_id"`
	SkillName           string `json:"skill_name"`
	SkillIcon           string `json:"skill_icon"`
	BaseExp             int    `json:"base_exp"`
	DurationMinutes     int    `json:"duration_minutes"`
	Frequency           string `json:"frequency"`
	IsSystem            bool   `json:"is_system"`
	Repeatable          bool   `json:"repeatable"`
	MaxDailyCompletions int    `json:"max_daily_completions,omitempty"`
	CompletedToday      int    `json:"completed_today"`
	IsActive            bool   `json:"is_active"`
}

type GetListQuestRequest struct{}

type GetListQuestResponse struct {
	Quests []Quest `json:"quests"`
}

type StartQuestRequest struct {
	QuestID string `json:"quest_id"`
}

type StartQuestResponse struct {
	UserQuestID string `json:"user_quest_id"`
	StartedAt   string `json:"started_at"`
}

type CompleteQuestRequest struct {
	QuestID string `json:"quest_id"`
}

type CompleteQuestResponse struct {
	EarnedExp      int  `json:"earned_exp"`
	StreakBonus    int  `json:"streak_bonus"`
	DailyStreak    int  `json:"daily_streak"`
	Level          int  `json:"level"`
	CurrentExp     int  `json:"current_exp"`
	ExpToNextLevel int  `json:"exp_to_next_level"`
	LeveledUp      bool `json:"leveled_up"`
}

type QuestStatisticRequest struct{}

type QuestStatisticResponse struct {
	CompletedToday       int `json:"completed_today"`
	TotalQuestsCompleted int `json:"total_quests_completed"`
	DailyStreak          int `json:"daily_streak"`
	Level                int `json:"level"`
	CurrentExp           int `json:"current_exp"`
	ExpToNextLevel       int `json:"exp_to_next_level"`
}

type LeaderboardEntry struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	TotalExp int64  `json:"total_exp"`
	Rank     int64  `json:"rank"`
}

type GetLeaderboardRequest struct {
	Period string `json:"period"`
	Limit  int    `json:"limit"`
}

type GetLeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
	MyRank  int64              `json:"my_rank,omitempty"`
}
