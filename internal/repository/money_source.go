package repository

import (
	"context"

	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/pkg/xcontext"
	"gorm.io/gorm"
)

type MoneySourceRepository interface {
	Create(ctx context.Context, data *entity.MoneySource) error
	GetByID(ctx context.Context, id string) (*entity.MoneySource, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.MoneySource, error)
	UpdateByID(ctx context.Context, id string, data *entity.MoneySource) error
	AdjustBalanceByID(ctx context.Context, id string, delta float64) error
	DeleteByID(ctx context.Context, id string) error
}

type moneySourceRepository struct{}

func NewMoneySourceRepository() MoneySourceRepository {
	return &moneySourceRepository{}
}

func (r *moneySourceRepository) Create(ctx context.Context, data *entity.MoneySource) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *moneySourceRepository) GetByID(ctx context.Context, id string) (*entity.MoneySource, error) {
	var record entity.MoneySource
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *moneySourceRepository) GetByUserID(ctx context.Context, userID string) ([]entity.MoneySource, error) {
	result := []entity.MoneySource{}
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at asc").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *moneySourceRepository) UpdateByID(ctx context.Context, id string, data *entity.MoneySource) error {
	return xcontext.DB(ctx).Model(&entity.MoneySource{}).Where("id=?", id).Updates(map[string]any{
		"name":     data.Name,
		"currency": data.Currency,
		"color":    data.Color,
	}).Error
}

// AdjustBalanceByID shifts the balance by delta, negative for debits.
func (r *moneySourceRepository) AdjustBalanceByID(ctx context.Context, id string, delta float64) error {
	return xcontext.DB(ctx).Model(&entity.MoneySource{}).Where("id=?", id).
		Update("balance", gorm.Expr("balance + ?", delta)).Error
}

func (r *moneySourceRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.MoneySource{}).Error
}
