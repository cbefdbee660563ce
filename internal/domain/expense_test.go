package domain

import (
	"testing"

	"github.com/hieuduy1751/paio/internal/model"
	"github.com/hieuduy1751/paio/internal/repository"
	"github.com/hieuduy1751/paio/pkg/errorx"
	"github.com/hieuduy1751/paio/pkg/testutil"
	"github.com/hieuduy1751/paio/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_moneySourceDomain_CreateAndList(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, user.ID)
	d := NewMoneySourceDomain(repository.NewMoneySourceRepository())

	created, err := d.Create(ctx, &model.CreateMoneySourceRequest{
		Name:    "Cash",
		Balance: 1000,
	})
	require.NoError(t, err)
	require.Equal(t, "Cash", created.MoneySource.Name)
	require.Equal(t, float64(1000), created.MoneySource.Balance)
	require.Equal(t, "VND", created.MoneySource.Currency)
	require.NotEmpty(t, created.MoneySource.Color)

	list, err := d.GetList(ctx, &model.GetListMoneySourceRequest{})
	require.NoError(t, err)
	require.Len(t, list.MoneySources, 1)
	require.Equal(t, created.MoneySource.ID, list.MoneySources[0].ID)
}

func Test_moneySourceDomain_Create_EmptyName(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, user.ID)
	d := NewMoneySourceDomain(repository.NewMoneySourceRepository())

	_, err = d.Create(ctx, &model.CreateMoneySourceRequest{Balance: 10})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_moneySourceDomain_UpdateAndDelete(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, user.ID)
	d := NewMoneySourceDomain(repository.NewMoneySourceRepository())

	created, err := d.Create(ctx, &model.CreateMoneySourceRequest{Name: "Cash", Balance: 100})
	require.NoError(t, err)

	updated, err := d.Update(ctx, &model.UpdateMoneySourceRequest{
		ID:       created.MoneySource.ID,
		Name:     "Wallet",
		Currency: "USD",
	})
	require.NoError(t, err)
	require.Equal(t, "Wallet", updated.MoneySource.Name)
	require.Equal(t, "USD", updated.MoneySource.Currency)
	require.Equal(t, float64(100), updated.MoneySource.Balance)

	_, err = d.Delete(ctx, &model.DeleteMoneySourceRequest{ID: created.MoneySource.ID})
	require.NoError(t, err)

	list, err := d.GetList(ctx, &model.GetListMoneySourceRequest{})
	require.NoError(t, err)
	require.Empty(t, list.MoneySources)
}

func Test_moneySourceDomain_Update_OtherUser(t *testing.T) {
	ctx := testutil.MockContext()

	owner, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	intruder, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	d := NewMoneySourceDomain(repository.NewMoneySourceRepository())

	created, err := d.Create(
		xcontext.WithRequestUserID(ctx, owner.ID),
		&model.CreateMoneySourceRequest{Name: "Cash"},
	)
	require.NoError(t, err)

	_, err = d.Update(xcontext.WithRequestUserID(ctx, intruder.ID), &model.UpdateMoneySourceRequest{
		ID:   created.MoneySource.ID,
		Name: "Hijacked",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	_, err = d.Delete(xcontext.WithRequestUserID(ctx, intruder.ID), &model.DeleteMoneySourceRequest{
		ID: created.MoneySource.ID,
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}

func Test_expenseDomain_Create_AdjustsBalance(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	moneySourceRepo := repository.NewMoneySourceRepository()
	source, err := NewMoneySourceDomain(moneySourceRepo).Create(ctx, &model.CreateMoneySourceRequest{
		Name:    "Bank",
		Balance: 500,
	})
	require.NoError(t, err)

	d := NewExpenseDomain(repository.NewExpenseRepository(), moneySourceRepo)

	created, err := d.Create(ctx, &model.CreateExpenseRequest{
		MoneySourceID: source.MoneySource.ID,
		Type:          "debit",
		Amount:        120,
		Category:      "food",
	})
	require.NoError(t, err)
	require.Equal(t, "Bank", created.Expense.MoneySourceName)

	_, err = d.Create(ctx, &model.CreateExpenseRequest{
		MoneySourceID: source.MoneySource.ID,
		Type:          "credit",
		Amount:        30,
		Category:      "salary",
	})
	require.NoError(t, err)

	updated, err := moneySourceRepo.GetByID(ctx, source.MoneySource.ID)
	require.NoError(t, err)
	require.Equal(t, float64(410), updated.Balance)
}

func Test_expenseDomain_Create_Invalid(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	moneySourceRepo := repository.NewMoneySourceRepository()
	source, err := NewMoneySourceDomain(moneySourceRepo).Create(ctx, &model.CreateMoneySourceRequest{
		Name: "Bank",
	})
	require.NoError(t, err)

	d := NewExpenseDomain(repository.NewExpenseRepository(), moneySourceRepo)

	testCases := []struct {
		name string
		req  model.CreateExpenseRequest
	}{
		{
			name: "missing source",
			req:  model.CreateExpenseRequest{Type: "debit", Amount: 10, Category: "food"},
		},
		{
			name: "non positive amount",
			req: model.CreateExpenseRequest{
				MoneySourceID: source.MoneySource.ID, Type: "debit", Amount: 0, Category: "food",
			},
		},
		{
			name: "unknown type",
			req: model.CreateExpenseRequest{
				MoneySourceID: source.MoneySource.ID, Type: "transfer", Amount: 10, Category: "food",
			},
		},
		{
			name: "missing category",
			req: model.CreateExpenseRequest{
				MoneySourceID: source.MoneySource.ID, Type: "debit", Amount: 10,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := d.Create(ctx, &tc.req)
			var errx errorx.Error
			require.ErrorAs(t, err, &errx)
			require.Equal(t, errorx.BadRequest, errx.Code)
		})
	}
}

func Test_expenseDomain_Create_OtherUserSource(t *testing.T) {
	ctx := testutil.MockContext()

	owner, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	intruder, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	moneySourceRepo := repository.NewMoneySourceRepository()
	source, err := NewMoneySourceDomain(moneySourceRepo).Create(
		xcontext.WithRequestUserID(ctx, owner.ID),
		&model.CreateMoneySourceRequest{Name: "Bank"},
	)
	require.NoError(t, err)

	d := NewExpenseDomain(repository.NewExpenseRepository(), moneySourceRepo)

	_, err = d.Create(xcontext.WithRequestUserID(ctx, intruder.ID), &model.CreateExpenseRequest{
		MoneySourceID: source.MoneySource.ID,
		Type:          "debit",
		Amount:        10,
		Category:      "food",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}

func Test_expenseDomain_Delete_RestoresBalance(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	moneySourceRepo := repository.NewMoneySourceRepository()
	source, err := NewMoneySourceDomain(moneySourceRepo).Create(ctx, &model.CreateMoneySourceRequest{
		Name:    "Bank",
		Balance: 500,
	})
	require.NoError(t, err)

	d := NewExpenseDomain(repository.NewExpenseRepository(), moneySourceRepo)

	created, err := d.Create(ctx, &model.CreateExpenseRequest{
		MoneySourceID: source.MoneySource.ID,
		Type:          "debit",
		Amount:        120,
		Category:      "food",
	})
	require.NoError(t, err)

	_, err = d.Delete(ctx, &model.DeleteExpenseRequest{ID: created.Expense.ID})
	require.NoError(t, err)

	restored, err := moneySourceRepo.GetByID(ctx, source.MoneySource.ID)
	require.NoError(t, err)
	require.Equal(t, float64(500), restored.Balance)

	list, err := d.GetList(ctx, &model.GetListExpenseRequest{})
	require.NoError(t, err)
	require.Empty(t, list.Expenses)

	_, err = d.Delete(ctx, &model.DeleteExpenseRequest{ID: created.Expense.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_expenseDomain_Delete_OtherUserExpense(t *testing.T) {
	ctx := testutil.MockContext()

	owner, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	intruder, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	ownerCtx := xcontext.WithRequestUserID(ctx, owner.ID)

	moneySourceRepo := repository.NewMoneySourceRepository()
	source, err := NewMoneySourceDomain(moneySourceRepo).Create(ownerCtx, &model.CreateMoneySourceRequest{
		Name: "Bank",
	})
	require.NoError(t, err)

	d := NewExpenseDomain(repository.NewExpenseRepository(), moneySourceRepo)

	created, err := d.Create(ownerCtx, &model.CreateExpenseRequest{
		MoneySourceID: source.MoneySource.ID,
		Type:          "debit",
		Amount:        10,
		Category:      "food",
	})
	require.NoError(t, err)

	_, err = d.Delete(xcontext.WithRequestUserID(ctx, intruder.ID), &model.DeleteExpenseRequest{
		ID: created.Expense.ID,
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}

func Test_expenseDomain_Statistic(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	moneySourceRepo := repository.NewMoneySourceRepository()
	source, err := NewMoneySourceDomain(moneySourceRepo).Create(ctx, &model.CreateMoneySourceRequest{
		Name: "Bank",
	})
	require.NoError(t, err)

	d := NewExpenseDomain(repository.NewExpenseRepository(), moneySourceRepo)

	for _, req := range []model.CreateExpenseRequest{
		{MoneySourceID: source.MoneySource.ID, Type: "debit", Amount: 50, Category: "food"},
		{MoneySourceID: source.MoneySource.ID, Type: "debit", Amount: 25, Category: "food"},
		{MoneySourceID: source.MoneySource.ID, Type: "debit", Amount: 40, Category: "transport"},
		{MoneySourceID: source.MoneySource.ID, Type: "credit", Amount: 300, Category: "salary"},
	} {
		_, err := d.Create(ctx, &req)
		require.NoError(t, err)
	}

	stats, err := d.Statistic(ctx, &model.ExpenseStatisticRequest{})
	require.NoError(t, err)
	require.Equal(t, float64(300), stats.TotalCredit)
	require.Equal(t, float64(115), stats.TotalDebit)

	byCategory := map[string]model.CategoryStatistic{}
	for _, c := range stats.Categories {
		byCategory[c.Type+"/"+c.Category] = c
	}

	food := byCategory["debit/food"]
	require.Equal(t, float64(75), food.Total)
	require.Equal(t, int64(2), food.Count)

	salary := byCategory["credit/salary"]
	require.Equal(t, float64(300), salary.Total)
	require.Equal(t, int64(1), salary.Count)
}
