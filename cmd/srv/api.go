package main

import (
	"context"
	"log"
	"net/http"

	"github.com/hieuduy1751/paio/internal/middleware"
	"github.com/hieuduy1751/paio/pkg/router"
	"github.com/hieuduy1751/paio/pkg/xcontext"
	"github.com/hieuduy1751/paio/pkg/xredis"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: s.router.Handler(),
	}

	log.Printf("Starting server on %s\n", s.configs.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

// loadRedis is best effort. Without redis the server still runs, only the
// leaderboard endpoint is unavailable.
func (s *srv) loadRedis() {
	if s.configs.Redis.Addr == "" {
		return
	}

	ctx := xcontext.WithConfigs(context.Background(), *s.configs)
	redisClient, err := xredis.NewClient(ctx)
	if err != nil {
		s.logger.Warnf("Cannot connect to redis, leaderboard disabled: %v", err)
		return
	}

	s.redisClient = redisClient
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	// Auth API
	authRouter := s.router.Branch()
	authRouter.After(middleware.HandleSetAccessToken())
	authRouter.After(middleware.HandleSaveSession())
	{
		router.POST(authRouter, "/auth/register", s.authDomain.Register)
		router.POST(authRouter, "/auth/login", s.authDomain.Login)
	}

	// These following APIs need authentication.
	authVerifier := middleware.NewAuthVerifier().WithAccessToken()
	authedRouter := s.router.Branch()
	authedRouter.Before(authVerifier.Middleware())
	{
		// Quest API
		router.GET(authedRouter, "/quests/list", s.questDomain.GetList)
		router.POST(authedRouter, "/quests/start", s.questDomain.Start)
		router.POST(authedRouter, "/quests/complete", s.questDomain.Complete)
		router.GET(authedRouter, "/quests/statistic", s.questDomain.Statistic)
		router.GET(authedRouter, "/quests/leaderboard", s.questDomain.Leaderboard)

		// Skill API
		router.GET(authedRouter, "/skills/list", s.skillDomain.GetList)
		router.POST(authedRouter, "/skills/upgrade", s.skillDomain.Upgrade)

		// Money source API
		router.GET(authedRouter, "/money-sources/list", s.moneySourceDomain.GetList)
		router.POST(authedRouter, "/money-sources/create", s.moneySourceDomain.Create)
		router.POST(authedRouter, "/money-sources/update", s.moneySourceDomain.Update)
		router.POST(authedRouter, "/money-sources/delete", s.moneySourceDomain.Delete)

		// Expense API
		router.GET(authedRouter, "/expenses/list", s.expenseDomain.GetList)
		router.POST(authedRouter, "/expenses/create", s.expenseDomain.Create)
		router.POST(authedRouter, "/expenses/delete", s.expenseDomain.Delete)
		router.GET(authedRouter, "/expenses/statistic", s.expenseDomain.Statistic)

		// Pomodoro API
		router.GET(authedRouter, "/pomodoro/list", s.pomodoroDomain.GetList)
		router.POST(authedRouter, "/pomodoro/create", s.pomodoroDomain.Create)
		router.POST(authedRouter, "/pomodoro/complete", s.pomodoroDomain.Complete)
		router.GET(authedRouter, "/pomodoro/statistic", s.pomodoroDomain.Statistic)
	}
}
