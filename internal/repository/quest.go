package repository

import (
	"context"

	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/pkg/xcontext"
)

type QuestRepository interface {
	Create(ctx context.Context, data *entity.Quest) error
	GetByID(ctx context.Context, id string) (*entity.Quest, error)
	GetList(ctx context.Context) ([]entity.Quest, error)
}

type questRepository struct{}

func NewQuestRepository() QuestRepository {
	return &questRepository{}
}

func (r *questRepository) Create(ctx context.Context, data *entity.Quest) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *questRepository) GetByID(ctx context.Context, id string) (*entity.Quest, error) {
	var record entity.Quest
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *questRepository) GetList(ctx context.Context) ([]entity.Quest, error) {
	result := []entity.Quest{}
	if err := xcontext.DB(ctx).Preload("Skill").Order("created_at asc").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
