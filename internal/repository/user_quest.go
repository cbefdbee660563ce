package repository

import (
	"context"
	"time"

	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/pkg/dateutil"
	"github.com/hieuduy1751/paio/pkg/xcontext"
)

type UserExpAggregate struct {
	UserID    string
	TotalExp  int64
	Completed int64
}

type SkillCompletionAggregate struct {
	SkillID   string
	Completed int64
}

type UserQuestRepository interface {
	Create(ctx context.Context, data *entity.UserQuest) error
	GetByID(ctx context.Context, id string) (*entity.UserQuest, error)
	GetByUserAndQuestInDay(ctx context.Context, userID, questID string, day dateutil.Day) ([]entity.UserQuest, error)
	GetByUserInDay(ctx context.Context, userID string, day dateutil.Day) ([]entity.UserQuest, error)
	CountCompletedInDay(ctx context.Context, userID, questID string, day dateutil.Day) (int64, error)
	CountCompletedByUserInDay(ctx context.Context, userID string, day dateutil.Day) (int64, error)
	CountCompletedBySkill(ctx context.Context, userID string) ([]SkillCompletionAggregate, error)
	UpdateByID(ctx context.Context, id string, data *entity.UserQuest) error
	DeactivateAllByUser(ctx context.Context, userID string) error
	SumEarnedExp(ctx context.Context, since *time.Time) ([]UserExpAggregate, error)
}

type userQuestRepository struct{}

func NewUserQuestRepository() UserQuestRepository {
	return &userQuestRepository{}
}

func (r *userQuestRepository) Create(ctx context.Context, data *entity.UserQuest) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userQuestRepository) GetByID(ctx context.Context, id string) (*entity.UserQuest, error) {
	var record entity.UserQuest
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// GetByUserAndQuestInDay returns every attempt of a quest on the given day,
// most recent first.
func (r *userQuestRepository) GetByUserAndQuestInDay(
	ctx context.Context, userID, questID string, day dateutil.Day,
) ([]entity.UserQuest, error) {
	result := []entity.UserQuest{}
	err := xcontext.DB(ctx).
		Where("user_id=? AND quest_id=? AND quest_date=?", userID, questID, day.Time()).
		Order("created_at desc").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userQuestRepository) GetByUserInDay(
	ctx context.Context, userID string, day dateutil.Day,
) ([]entity.UserQuest, error) {
	result := []entity.UserQuest{}
	err := xcontext.DB(ctx).
		Where("user_id=? AND quest_date=?", userID, day.Time()).
		Order("created_at asc").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CountCompletedInDay counts the finished attempts of a quest on the given
// day. Both the start gate and the completion gate use this count, so the
// daily cap is enforced identically at both call sites.
func (r *userQuestRepository) CountCompletedInDay(
	ctx context.Context, userID, questID string, day dateutil.Day,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.UserQuest{}).
		Where("user_id=? AND quest_id=? AND quest_date=? AND completed_at IS NOT NULL",
			userID, questID, day.Time()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *userQuestRepository) CountCompletedByUserInDay(
	ctx context.Context, userID string, day dateutil.Day,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.UserQuest{}).
		Where("user_id=? AND quest_date=? AND completed_at IS NOT NULL", userID, day.Time()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *userQuestRepository) CountCompletedBySkill(
	ctx context.Context, userID string,
) ([]SkillCompletionAggregate, error) {
	result := []SkillCompletionAggregate{}
	err := xcontext.DB(ctx).Model(&entity.UserQuest{}).
		Select("quests.skill_id AS skill_id, COUNT(*) AS completed").
		Joins("JOIN quests ON quests.id = user_quests.quest_id").
		Where("user_quests.user_id=? AND user_quests.completed_at IS NOT NULL", userID).
		Group("quests.skill_id").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userQuestRepository) UpdateByID(ctx context.Context, id string, data *entity.UserQuest) error {
	return xcontext.DB(ctx).Model(&entity.UserQuest{}).Where("id=?", id).Updates(map[string]any{
		"is_active":        data.IsActive,
		"started_at":       data.StartedAt,
		"completed_at":     data.CompletedAt,
		"earned_exp":       data.EarnedExp,
		"streak_bonus":     data.StreakBonus,
		"completed_streak": data.CompletedStreak,
	}).Error
}

// DeactivateAllByUser clears the active flag of every attempt of the user.
// Keeps the at-most-one-active-attempt invariant before activating or
// completing an attempt.
func (r *userQuestRepository) DeactivateAllByUser(ctx context.Context, userID string) error {
	return xcontext.DB(ctx).Model(&entity.UserQuest{}).
		Where("user_id=? AND is_active=?", userID, true).
		Update("is_active", false).Error
}

// SumEarnedExp aggregates completed exp per user, optionally restricted to
// attempts on or after the given day. Feeds the leaderboard rebuild.
func (r *userQuestRepository) SumEarnedExp(
	ctx context.Context, since *time.Time,
) ([]UserExpAggregate, error) {
	tx := xcontext.DB(ctx).Model(&entity.UserQuest{}).
		Select("user_id AS user_id, SUM(earned_exp) AS total_exp, COUNT(*) AS completed").
		Where("completed_at IS NOT NULL").
		Group("user_id")

	if since != nil {
		tx = tx.Where("quest_date >= ?", *since)
	}

	result := []UserExpAggregate{}
	if err := tx.Scan(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
