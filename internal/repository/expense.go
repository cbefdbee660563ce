package repository

import (
	"context"
	"time"

	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/pkg/xcontext"
)

type CategoryAggregate struct {
	Category string
	Total    float64
	Count    int64
}

type ExpenseRepository interface {
	Create(ctx context.Context, data *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	GetListByUserID(ctx context.Context, userID string, limit int) ([]entity.Expense, error)
	SumByUserInRange(ctx context.Context, userID string, expenseType entity.ExpenseType, begin, end time.Time) (float64, error)
	SumByCategoryInRange(ctx context.Context, userID string, expenseType entity.ExpenseType, begin, end time.Time) ([]CategoryAggregate, error)
	DeleteByID(ctx context.Context, id string) error
}

type expenseRepository struct{}

func NewExpenseRepository() ExpenseRepository {
	return &expenseRepository{}
}

func (r *expenseRepository) Create(ctx context.Context, data *entity.Expense) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	var record entity.Expense
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *expenseRepository) GetListByUserID(
	ctx context.Context, userID string, limit int,
) ([]entity.Expense, error) {
	tx := xcontext.DB(ctx).
		Preload("MoneySource").
		Where("user_id=?", userID).
		Order("transaction_date desc")

	if limit > 0 {
		tx = tx.Limit(limit)
	}

	result := []entity.Expense{}
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *expenseRepository) SumByUserInRange(
	ctx context.Context, userID string, expenseType entity.ExpenseType, begin, end time.Time,
) (float64, error) {
	var total float64
	err := xcontext.DB(ctx).Model(&entity.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id=? AND type=? AND transaction_date >= ? AND transaction_date < ?",
			userID, expenseType, begin, end).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *expenseRepository) SumByCategoryInRange(
	ctx context.Context, userID string, expenseType entity.ExpenseType, begin, end time.Time,
) ([]CategoryAggregate, error) {
	result := []CategoryAggregate{}
	err := xcontext.DB(ctx).Model(&entity.Expense{}).
		Select("category AS category, SUM(amount) AS total, COUNT(*) AS count").
		Where("user_id=? AND type=? AND transaction_date >= ? AND transaction_date < ?",
			userID, expenseType, begin, end).
		Group("category").
		Order("total desc").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *expenseRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Expense{}).Error
}
