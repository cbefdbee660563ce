package repository

import (
	"context"

	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/pkg/xcontext"
)

type UserSkillRepository interface {
	Create(ctx context.Context, data *entity.UserSkill) error
	Get(ctx context.Context, userID, skillID string) (*entity.UserSkill, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.UserSkill, error)
	UpdateByID(ctx context.Context, id string, data *entity.UserSkill) error
}

type userSkillRepository struct{}

func NewUserSkillRepository() UserSkillRepository {
	return &userSkillRepository{}
}

func (r *userSkillRepository) Create(ctx context.Context, data *entity.UserSkill) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userSkillRepository) Get(ctx context.Context, userID, skillID string) (*entity.UserSkill, error) {
	var record entity.UserSkill
	err := xcontext.DB(ctx).
		Where("user_id=? AND skill_id=?", userID, skillID).
		Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userSkillRepository) GetByUserID(ctx context.Context, userID string) ([]entity.UserSkill, error) {
	result := []entity.UserSkill{}
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userSkillRepository) UpdateByID(ctx context.Context, id string, data *entity.UserSkill) error {
	return xcontext.DB(ctx).Model(&entity.UserSkill{}).Where("id=?", id).Updates(map[string]any{
		"level":          data.Level,
		"exp_multiplier": data.ExpMultiplier,
	}).Error
}
