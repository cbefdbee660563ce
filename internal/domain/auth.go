package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hieuduy1751/paio/internal/domain/questengine"
	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/internal/model"
	"github.com/hieuduy1751/paio/internal/repository"
	"github.com/hieuduy1751/paio/pkg/crypto"
	"github.com/hieuduy1751/paio/pkg/errorx"
	"github.com/hieuduy1751/paio/pkg/xcontext"
	"gorm.io/gorm"
)

type AuthDomain interface {
	Register(context.Context, *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
}

type authDomain struct {
	userRepo repository.UserRepository
}

func NewAuthDomain(userRepo repository.UserRepository) *authDomain {
	return &authDomain{userRepo: userRepo}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	if len(req.Username) < 3 || len(req.Username) > 50 {
		return nil, errorx.New(errorx.BadRequest, "Username must be 3-50 characters")
	}

	if len(req.Password) < 6 {
		return nil, errorx.New(errorx.BadRequest, "Password must be at least 6 characters")
	}

	_, err := d.userRepo.GetByUsername(ctx, req.Username)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "Username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	user := &entity.User{
		Base:           entity.Base{ID: uuid.NewString()},
		Username:       req.Username,
		PasswordHash:   passwordHash,
		Level:          1,
		CurrentExp:     0,
		ExpToNextLevel: questengine.Threshold(1),
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	token, err := xcontext.TokenEngine(ctx).Generate(user.ID, model.AccessToken{
		ID:       user.ID,
		Username: user.Username,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RegisterResponse{
		User:        model.ConvertUser(user),
		AccessToken: token,
	}, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty username or password")
	}

	user, err := d.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
	}

	token, err := xcontext.TokenEngine(ctx).Generate(user.ID, model.AccessToken{
		ID:       user.ID,
		Username: user.Username,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{
		User:        model.ConvertUser(user),
		AccessToken: token,
	}, nil
}
