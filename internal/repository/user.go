package repository

import (
	"context"

	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdateProgressByID(ctx context.Context, id string, data *entity.User) error
	UpdateActiveQuestByID(ctx context.Context, id string, data *entity.User) error
	DecreaseExp(ctx context.Context, id string, amount int) error
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// GetByIDForUpdate reads the user row with a row-level write lock. Quest and
// skill transactions take it first so concurrent gate checks for the same
// user serialize. The sqlite driver drops the locking clause, which is fine
// because its single test connection already serializes transactions.
func (r *userRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error) {
	var record entity.User
	err := xcontext.DB(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id=?", id).Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.User, error) {
	result := []entity.User{}
	if err := xcontext.DB(ctx).Where("id IN (?)", ids).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("username=?", username).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// UpdateProgressByID writes the gamification aggregate of the user. It must
// only be called inside the quest completion transaction.
func (r *userRepository) UpdateProgressByID(ctx context.Context, id string, data *entity.User) error {
	return xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Updates(map[string]any{
		"level":                  data.Level,
		"current_exp":            data.CurrentExp,
		"exp_to_next_level":      data.ExpToNextLevel,
		"daily_streak":           data.DailyStreak,
		"last_quest_date":        data.LastQuestDate,
		"total_quests_completed": data.TotalQuestsCompleted,
		"active_quest_id":        data.ActiveQuestID,
	}).Error
}

func (r *userRepository) UpdateActiveQuestByID(ctx context.Context, id string, data *entity.User) error {
	return xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).
		Update("active_quest_id", data.ActiveQuestID).Error
}

func (r *userRepository) DecreaseExp(ctx context.Context, id string, amount int) error {
	return xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).
		Update("current_exp", gorm.Expr("current_exp - ?", amount)).Error
}
