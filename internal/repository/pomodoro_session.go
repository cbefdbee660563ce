package repository

import (
	"context"
	"time"

	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/pkg/xcontext"
)

type PomodoroDayAggregate struct {
	Day           string
	Sessions      int64
	Completed     int64
	FocusedMinute int64
}

type PomodoroSessionRepository interface {
	Create(ctx context.Context, data *entity.PomodoroSession) error
	GetByID(ctx context.Context, id string) (*entity.PomodoroSession, error)
	GetListByUserID(ctx context.Context, userID string, limit int) ([]entity.PomodoroSession, error)
	CompleteByID(ctx context.Context, id string, completedAt time.Time) error
	AggregateByDay(ctx context.Context, userID string, begin time.Time) ([]PomodoroDayAggregate, error)
}

type pomodoroSessionRepository struct{}

func NewPomodoroSessionRepository() PomodoroSessionRepository {
	return &pomodoroSessionRepository{}
}

func (r *pomodoroSessionRepository) Create(ctx context.Context, data *entity.PomodoroSession) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *pomodoroSessionRepository) GetByID(ctx context.Context, id string) (*entity.PomodoroSession, error) {
	var record entity.PomodoroSession
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *pomodoroSessionRepository) GetListByUserID(
	ctx context.Context, userID string, limit int,
) ([]entity.PomodoroSession, error) {
	tx := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("started_at desc")

	if limit > 0 {
		tx = tx.Limit(limit)
	}

	result := []entity.PomodoroSession{}
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *pomodoroSessionRepository) CompleteByID(ctx context.Context, id string, completedAt time.Time) error {
	return xcontext.DB(ctx).Model(&entity.PomodoroSession{}).Where("id=?", id).Updates(map[string]any{
		"completed":    true,
		"completed_at": completedAt,
	}).Error
}

// AggregateByDay groups the user's sessions on or after begin by calendar day.
// DATE() exists in both sqlite and mysql.
func (r *pomodoroSessionRepository) AggregateByDay(
	ctx context.Context, userID string, begin time.Time,
) ([]PomodoroDayAggregate, error) {
	result := []PomodoroDayAggregate{}
	err := xcontext.DB(ctx).Model(&entity.PomodoroSession{}).
		Select("DATE(started_at) AS day, "+
			"COUNT(*) AS sessions, "+
			"SUM(CASE WHEN completed THEN 1 ELSE 0 END) AS completed, "+
			"SUM(CASE WHEN completed THEN duration_minutes ELSE 0 END) AS focused_minute").
		Where("user_id=? AND started_at >= ?", userID, begin).
		Group("DATE(started_at)").
		Order("day asc").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
