package main

import (
	"net/http"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/hieuduy1751/paio/config"
	"github.com/hieuduy1751/paio/internal/domain"
	"github.com/hieuduy1751/paio/internal/domain/statistic"
	"github.com/hieuduy1751/paio/internal/repository"
	"github.com/hieuduy1751/paio/pkg/logger"
	"github.com/hieuduy1751/paio/pkg/router"
	"github.com/hieuduy1751/paio/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB

	redisClient xredis.Client

	userRepo        repository.UserRepository
	questRepo       repository.QuestRepository
	userQuestRepo   repository.UserQuestRepository
	skillRepo       repository.SkillRepository
	userSkillRepo   repository.UserSkillRepository
	moneySourceRepo repository.MoneySourceRepository
	expenseRepo     repository.ExpenseRepository
	pomodoroRepo    repository.PomodoroSessionRepository

	leaderboard statistic.Leaderboard

	authDomain        domain.AuthDomain
	questDomain       domain.QuestDomain
	skillDomain       domain.SkillDomain
	moneySourceDomain domain.MoneySourceDomain
	expenseDomain     domain.ExpenseDomain
	pomodoroDomain    domain.PomodoroDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(cctx *cli.Context) {
	configs := &config.Configs{}
	if _, err := toml.DecodeFile(cctx.String("config"), configs); err != nil {
		panic(err)
	}

	// Environment overrides for deployments that cannot ship secrets in the
	// config file.
	if v := os.Getenv("PORT"); v != "" {
		configs.ApiServer.Port = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		configs.Database.Password = v
	}
	if v := os.Getenv("TOKEN_SECRET"); v != "" {
		configs.Auth.AccessToken.Secret = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		configs.Session.Secret = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		configs.Redis.Addr = v
	}

	s.configs = configs
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(logger.Level(s.configs.LogLevel))
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.questRepo = repository.NewQuestRepository()
	s.userQuestRepo = repository.NewUserQuestRepository()
	s.skillRepo = repository.NewSkillRepository()
	s.userSkillRepo = repository.NewUserSkillRepository()
	s.moneySourceRepo = repository.NewMoneySourceRepository()
	s.expenseRepo = repository.NewExpenseRepository()
	s.pomodoroRepo = repository.NewPomodoroSessionRepository()
}

func (s *srv) loadDomains() {
	if s.redisClient != nil {
		s.leaderboard = statistic.New(s.userRepo, s.userQuestRepo, s.redisClient)
	}

	s.authDomain = domain.NewAuthDomain(s.userRepo)
	s.questDomain = domain.NewQuestDomain(
		s.questRepo, s.userRepo, s.userQuestRepo, s.userSkillRepo, s.leaderboard)
	s.skillDomain = domain.NewSkillDomain(
		s.skillRepo, s.userRepo, s.userSkillRepo, s.userQuestRepo)
	s.moneySourceDomain = domain.NewMoneySourceDomain(s.moneySourceRepo)
	s.expenseDomain = domain.NewExpenseDomain(s.expenseRepo, s.moneySourceRepo)
	s.pomodoroDomain = domain.NewPomodoroDomain(s.pomodoroRepo)
}
