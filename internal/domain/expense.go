package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/internal/model"
	"github.com/hieuduy1751/paio/internal/repository"
	"github.com/hieuduy1751/paio/pkg/enum"
	"github.com/hieuduy1751/paio/pkg/errorx"
	"github.com/hieuduy1751/paio/pkg/xcontext"
	"gorm.io/gorm"
)

const defaultExpenseLimit = 100

type ExpenseDomain interface {
	GetList(context.Context, *model.GetListExpenseRequest) (*model.GetListExpenseResponse, error)
	Create(context.Context, *model.CreateExpenseRequest) (*model.CreateExpenseResponse, error)
	Delete(context.Context, *model.DeleteExpenseRequest) (*model.DeleteExpenseResponse, error)
	Statistic(context.Context, *model.ExpenseStatisticRequest) (*model.ExpenseStatisticResponse, error)
}

type expenseDomain struct {
	expenseRepo     repository.ExpenseRepository
	moneySourceRepo repository.MoneySourceRepository
}

func NewExpenseDomain(
	expenseRepo repository.ExpenseRepository,
	moneySourceRepo repository.MoneySourceRepository,
) *expenseDomain {
	return &expenseDomain{
		expenseRepo:     expenseRepo,
		moneySourceRepo: moneySourceRepo,
	}
}

func (d *expenseDomain) GetList(
	ctx context.Context, req *model.GetListExpenseRequest,
) (*model.GetListExpenseResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultExpenseLimit
	}

	expenses, err := d.expenseRepo.GetListByUserID(ctx, xcontext.RequestUserID(ctx), limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get expenses: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetListExpenseResponse{Expenses: []model.Expense{}}
	for i := range expenses {
		resp.Expenses = append(resp.Expenses, model.ConvertExpense(&expenses[i]))
	}

	return resp, nil
}

// Create records a transaction and shifts the money source balance in the
// same database transaction. A credit adds to the balance, a debit subtracts.
func (d *expenseDomain) Create(
	ctx context.Context, req *model.CreateExpenseRequest,
) (*model.CreateExpenseResponse, error) {
	if req.MoneySourceID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty money source id")
	}

	if req.Amount <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Amount must be positive")
	}

	if req.Category == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty category")
	}

	expenseType, err := enum.ToEnum[entity.ExpenseType](req.Type)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid expense type")
	}

	transactionDate := time.Now()
	if req.TransactionDate != "" {
		transactionDate, err = time.Parse(model.DefaultTimeLayout, req.TransactionDate)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid transaction date")
		}
	}

	userID := xcontext.RequestUserID(ctx)

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	source, err := d.moneySourceRepo.GetByID(ctx, req.MoneySourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found money source")
		}

		xcontext.Logger(ctx).Errorf("Cannot get money source: %v", err)
		return nil, errorx.Unknown
	}

	if source.UserID != userID {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	expense := &entity.Expense{
		Base:            entity.Base{ID: uuid.NewString()},
		UserID:          userID,
		MoneySourceID:   source.ID,
		Type:            expenseType,
		Amount:          req.Amount,
		Category:        req.Category,
		Description:     req.Description,
		TransactionDate: transactionDate,
	}

	if err := d.expenseRepo.Create(ctx, expense); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create expense: %v", err)
		return nil, errorx.Unknown
	}

	delta := req.Amount
	if expenseType == entity.Debit {
		delta = -delta
	}

	if err := d.moneySourceRepo.AdjustBalanceByID(ctx, source.ID, delta); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot adjust balance: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	expense.MoneySource = *source
	return &model.CreateExpenseResponse{Expense: model.ConvertExpense(expense)}, nil
}

// Delete removes a transaction and puts its balance shift back on the money
// source in the same database transaction.
func (d *expenseDomain) Delete(
	ctx context.Context, req *model.DeleteExpenseRequest,
) (*model.DeleteExpenseResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty expense id")
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	expense, err := d.expenseRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found expense")
		}

		xcontext.Logger(ctx).Errorf("Cannot get expense: %v", err)
		return nil, errorx.Unknown
	}

	if expense.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if err := d.expenseRepo.DeleteByID(ctx, expense.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete expense: %v", err)
		return nil, errorx.Unknown
	}

	delta := expense.Amount
	if expense.Type == entity.Credit {
		delta = -delta
	}

	if err := d.moneySourceRepo.AdjustBalanceByID(ctx, expense.MoneySourceID, delta); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot adjust balance: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.DeleteExpenseResponse{}, nil
}

func (d *expenseDomain) Statistic(
	ctx context.Context, req *model.ExpenseStatisticRequest,
) (*model.ExpenseStatisticResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	now := time.Now()
	begin := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := begin.AddDate(0, 1, 0)

	totalCredit, err := d.expenseRepo.SumByUserInRange(ctx, userID, entity.Credit, begin, end)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sum credits: %v", err)
		return nil, errorx.Unknown
	}

	totalDebit, err := d.expenseRepo.SumByUserInRange(ctx, userID, entity.Debit, begin, end)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sum debits: %v", err)
		return nil, errorx.Unknown
	}

	categories := []model.CategoryStatistic{}
	for _, expenseType := range []entity.ExpenseType{entity.Credit, entity.Debit} {
		aggregates, err := d.expenseRepo.SumByCategoryInRange(ctx, userID, expenseType, begin, end)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot sum categories: %v", err)
			return nil, errorx.Unknown
		}

		for _, aggregate := range aggregates {
			categories = append(categories, model.CategoryStatistic{
				Category: aggregate.Category,
				Type:     string(expenseType),
				Total:    aggregate.Total,
				Count:    aggregate.Count,
			})
		}
	}

	return &model.ExpenseStatisticResponse{
		Month:       begin.Format(model.DefaultMonthLayout),
		TotalCredit: totalCredit,
		TotalDebit:  totalDebit,
		Categories:  categories,
	}, nil
}
