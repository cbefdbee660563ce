package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/internal/model"
	"github.com/hieuduy1751/paio/internal/repository"
	"github.com/hieuduy1751/paio/pkg/errorx"
	"github.com/hieuduy1751/paio/pkg/xcontext"
	"gorm.io/gorm"
)

const (
	defaultCurrency = "VND"
	defaultColor    = "#3b82f6"
)

type MoneySourceDomain interface {
	GetList(context.Context, *model.GetListMoneySourceRequest) (*model.GetListMoneySourceResponse, error)
	Create(context.Context, *model.CreateMoneySourceRequest) (*model.CreateMoneySourceResponse, error)
	Update(context.Context, *model.UpdateMoneySourceRequest) (*model.UpdateMoneySourceResponse, error)
	Delete(context.Context, *model.DeleteMoneySourceRequest) (*model.DeleteMoneySourceResponse, error)
}

type moneySourceDomain struct {
	moneySourceRepo repository.MoneySourceRepository
}

func NewMoneySourceDomain(moneySourceRepo repository.MoneySourceRepository) *moneySourceDomain {
	return &moneySourceDomain{moneySourceRepo: moneySourceRepo}
}

func (d *moneySourceDomain) GetList(
	ctx context.Context, req *model.GetListMoneySourceRequest,
) (*model.GetListMoneySourceResponse, error) {
	sources, err := d.moneySourceRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get money sources: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetListMoneySourceResponse{MoneySources: []model.MoneySource{}}
	for i := range sources {
		resp.MoneySources = append(resp.MoneySources, model.ConvertMoneySource(&sources[i]))
	}

	return resp, nil
}

func (d *moneySourceDomain) Create(
	ctx context.Context, req *model.CreateMoneySourceRequest,
) (*model.CreateMoneySourceResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty name")
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	color := req.Color
	if color == "" {
		color = defaultColor
	}

	source := &entity.MoneySource{
		Base:     entity.Base{ID: uuid.NewString()},
		UserID:   xcontext.RequestUserID(ctx),
		Name:     req.Name,
		Balance:  req.Balance,
		Currency: currency,
		Color:    color,
	}

	if err := d.moneySourceRepo.Create(ctx, source); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create money source: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateMoneySourceResponse{MoneySource: model.ConvertMoneySource(source)}, nil
}

func (d *moneySourceDomain) Update(
	ctx context.Context, req *model.UpdateMoneySourceRequest,
) (*model.UpdateMoneySourceResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty name")
	}

	source, err := d.getOwnSource(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	source.Name = req.Name
	if req.Currency != "" {
		source.Currency = req.Currency
	}
	if req.Color != "" {
		source.Color = req.Color
	}

	if err := d.moneySourceRepo.UpdateByID(ctx, source.ID, source); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update money source: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateMoneySourceResponse{MoneySource: model.ConvertMoneySource(source)}, nil
}

func (d *moneySourceDomain) Delete(
	ctx context.Context, req *model.DeleteMoneySourceRequest,
) (*model.DeleteMoneySourceResponse, error) {
	source, err := d.getOwnSource(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.moneySourceRepo.DeleteByID(ctx, source.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete money source: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteMoneySourceResponse{}, nil
}

func (d *moneySourceDomain) getOwnSource(
	ctx context.Context, id string,
) (*entity.MoneySource, error) {
	if id == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty money source id")
	}

	source, err := d.moneySourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found money source")
		}

		xcontext.Logger(ctx).Errorf("Cannot get money source: %v", err)
		return nil, errorx.Unknown
	}

	if source.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	return source, nil
}
