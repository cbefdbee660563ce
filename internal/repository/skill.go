package repository

import (
	"context"

	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/pkg/xcontext"
)

type SkillRepository interface {
	Create(ctx context.Context, data *entity.Skill) error
	GetByID(ctx context.Context, id string) (*entity.Skill, error)
	GetList(ctx context.Context) ([]entity.Skill, error)
}

type skillRepository struct{}

func NewSkillRepository() SkillRepository {
	return &skillRepository{}
}

func (r *skillRepository) Create(ctx context.Context, data *entity.Skill) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *skillRepository) GetByID(ctx context.Context, id string) (*entity.Skill, error) {
	var record entity.Skill
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *skillRepository) GetList(ctx context.Context) ([]entity.Skill, error) {
	result := []entity.Skill{}
	if err := xcontext.DB(ctx).Order("name asc").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
