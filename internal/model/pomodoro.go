package model

type PomodoroSession struct {
	ID              string `json:"id"`
	DurationMinutes int    `json:"duration_minutes"`
	TaskName        string `json:"task_name"`
	StartedAt       string `json:"started_at"`
	CompletedAt     string `json:"completed_at,omitempty"`
	Completed       bool   `json:"completed"`
}

type GetListPomodoroRequest struct {
	Limit int `json:"limit"`
}

type GetListPomodoroResponse struct {
	Sessions []PomodoroSession `json:"sessions"`
}

type CreatePomodoroRequest struct {
	DurationMinutes int    `json:"duration_minutes"`
	TaskName        string `json:"task_name"`
}

type CreatePomodoroResponse struct {
	Session PomodoroSession `json:"session"`
}

type CompletePomodoroRequest struct {
	SessionID string `json:"session_id"`
}

type CompletePomodoroResponse struct {
	Session PomodoroSession `json:"session"`
}

type PomodoroDayStatistic struct {
	Date           string `json:"date"`
	Sessions       int64  `json:"sessions"`
	Completed      int64  `json:"completed"`
	FocusedMinutes int64  `json:"focused_minutes"`
}

type PomodoroStatisticRequest struct{}

type PomodoroStatisticResponse struct {
	Days           []PomodoroDayStatistic `json:"days"`
	TotalCompleted int64                  `json:"total_completed"`
	CompletedToday int64                  `json:"completed_today"`
}
