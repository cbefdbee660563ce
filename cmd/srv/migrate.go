package main

import (
	"context"

	"github.com/hieuduy1751/paio/migration"
	"github.com/hieuduy1751/paio/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, *s.configs)
	ctx = xcontext.WithLogger(ctx, s.logger)
	ctx = xcontext.WithDB(ctx, s.db)

	return migration.Migrate(ctx)
}
