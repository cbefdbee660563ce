package testutil

import (
	"context"
	"time"

	"github.com/gorilla/sessions"
	"github.com/hieuduy1751/paio/config"
	"github.com/hieuduy1751/paio/internal/model"
	"github.com/hieuduy1751/paio/migration"
	"github.com/hieuduy1751/paio/pkg/authenticator"
	"github.com/hieuduy1751/paio/pkg/logger"
	"github.com/hieuduy1751/paio/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockContext builds a context backed by an in-memory sqlite database with
// all migrations applied, including the seed skills and quests.
func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Env:      "testing",
		LogLevel: "silence",
		Auth: config.AuthConfigs{
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Secret:     "secret",
				Expiration: config.Duration{Duration: time.Minute},
			},
		},
		Session: config.SessionConfigs{
			Secret: "session-secret",
			Name:   "session",
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.Level(cfg.LogLevel)))
	ctx = xcontext.WithTokenEngine(ctx,
		authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.AccessToken))
	ctx = xcontext.WithSessionStore(ctx, sessions.NewCookieStore([]byte(cfg.Session.Secret)))
	ctx = xcontext.WithDB(ctx, db)

	if err := migration.Migrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}
