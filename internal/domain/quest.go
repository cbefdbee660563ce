package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hieuduy1751/paio/internal/domain/questengine"
	"github.com/hieuduy1751/paio/internal/domain/statistic"
	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/internal/model"
	"github.com/hieuduy1751/paio/internal/repository"
	"github.com/hieuduy1751/paio/pkg/dateutil"
	"github.com/hieuduy1751/paio/pkg/errorx"
	"github.com/hieuduy1751/paio/pkg/xcontext"
	"gorm.io/gorm"
)

type QuestDomain interface {
	GetList(context.Context, *model.GetListQuestRequest) (*model.GetListQuestResponse, error)
	Start(context.Context, *model.StartQuestRequest) (*model.StartQuestResponse, error)
	Complete(context.Context, *model.CompleteQuestRequest) (*model.CompleteQuestResponse, error)
	Statistic(context.Context, *model.QuestStatisticRequest) (*model.QuestStatisticResponse, error)
	Leaderboard(context.Context, *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
}

type questDomain struct {
	questRepo     repository.QuestRepository
	userRepo      repository.UserRepository
	userQuestRepo repository.UserQuestRepository
	userSkillRepo repository.UserSkillRepository
	leaderboard   statistic.Leaderboard
}

// NewQuestDomain creates the quest domain. The leaderboard is optional, a
// nil value disables the ranking endpoint and the score updates.
func NewQuestDomain(
	questRepo repository.QuestRepository,
	userRepo repository.UserRepository,
	userQuestRepo repository.UserQuestRepository,
	userSkillRepo repository.UserSkillRepository,
	leaderboard statistic.Leaderboard,
) *questDomain {
	return &questDomain{
		questRepo:     questRepo,
		userRepo:      userRepo,
		userQuestRepo: userQuestRepo,
		userSkillRepo: userSkillRepo,
		leaderboard:   leaderboard,
	}
}

func (d *questDomain) GetList(
	ctx context.Context, req *model.GetListQuestRequest,
) (*model.GetListQuestResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	quests, err := d.questRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quests: %v", err)
		return nil, errorx.Unknown
	}

	records, err := d.userQuestRepo.GetByUserInDay(ctx, userID, dateutil.Today())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get today records: %v", err)
		return nil, errorx.Unknown
	}

	completedCount := map[string]int{}
	activeQuest := map[string]bool{}
	for _, record := range records {
		if record.Completed() {
			completedCount[record.QuestID]++
		}

		if record.IsActive {
			activeQuest[record.QuestID] = true
		}
	}

	resp := &model.GetListQuestResponse{Quests: []model.Quest{}}
	for i := range quests {
		quest := &quests[i]
		resp.Quests = append(resp.Quests,
			model.ConvertQuest(quest, completedCount[quest.ID], activeQuest[quest.ID]))
	}

	return resp, nil
}

func (d *questDomain) Start(
	ctx context.Context, req *model.StartQuestRequest,
) (*model.StartQuestResponse, error) {
	if req.QuestID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty quest id")
	}

	userID := xcontext.RequestUserID(ctx)
	today := dateutil.Today()
	now := time.Now()

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	quest, err := d.questRepo.GetByID(ctx, req.QuestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quest")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	// The lock serializes concurrent attempts by the same user so the
	// completion count below cannot run twice before either one writes.
	user, err := d.userRepo.GetByIDForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	completedToday, err := d.userQuestRepo.CountCompletedInDay(ctx, userID, quest.ID, today)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count completions: %v", err)
		return nil, errorx.Unknown
	}

	hasActiveElsewhere := user.ActiveQuestID.Valid && user.ActiveQuestID.String != quest.ID
	if err := questengine.CanStart(quest.RepeatPolicy(), hasActiveElsewhere, int(completedToday)); err != nil {
		return nil, err
	}

	attempts, err := d.userQuestRepo.GetByUserAndQuestInDay(ctx, userID, quest.ID, today)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get today attempts: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userQuestRepo.DeactivateAllByUser(ctx, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot deactivate records: %v", err)
		return nil, errorx.Unknown
	}

	record := questengine.SelectRecord(attempts)
	if record != nil {
		record.IsActive = true
		record.StartedAt = sql.NullTime{Valid: true, Time: now}
		if err := d.userQuestRepo.UpdateByID(ctx, record.ID, record); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot reactivate record: %v", err)
			return nil, errorx.Unknown
		}
	} else {
		record = &entity.UserQuest{
			Base:      entity.Base{ID: uuid.NewString()},
			UserID:    userID,
			QuestID:   quest.ID,
			QuestDate: today.Time(),
			IsActive:  true,
			StartedAt: sql.NullTime{Valid: true, Time: now},
		}

		if err := d.userQuestRepo.Create(ctx, record); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create record: %v", err)
			return nil, errorx.Unknown
		}
	}

	user.ActiveQuestID = sql.NullString{Valid: true, String: quest.ID}
	if err := d.userRepo.UpdateActiveQuestByID(ctx, userID, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set active quest: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.StartQuestResponse{
		UserQuestID: record.ID,
		StartedAt:   now.Format(model.DefaultTimeLayout),
	}, nil
}

func (d *questDomain) Complete(
	ctx context.Context, req *model.CompleteQuestRequest,
) (*model.CompleteQuestResponse, error) {
	if req.QuestID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty quest id")
	}

	userID := xcontext.RequestUserID(ctx)
	today := dateutil.Today()
	now := time.Now()

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	quest, err := d.questRepo.GetByID(ctx, req.QuestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quest")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	// The lock serializes concurrent attempts by the same user so the
	// completion count below cannot run twice before either one writes.
	user, err := d.userRepo.GetByIDForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	completedToday, err := d.userQuestRepo.CountCompletedInDay(ctx, userID, quest.ID, today)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count completions: %v", err)
		return nil, errorx.Unknown
	}

	if err := questengine.CanComplete(quest.RepeatPolicy(), int(completedToday)); err != nil {
		return nil, err
	}

	multiplier := 1.0
	userSkill, err := d.userSkillRepo.Get(ctx, userID, quest.SkillID)
	if err == nil {
		multiplier = userSkill.ExpMultiplier
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get user skill: %v", err)
		return nil, errorx.Unknown
	}

	lastDay := dateutil.Day{}
	if user.LastQuestDate.Valid {
		lastDay = dateutil.DayOf(user.LastQuestDate.Time)
	}

	newStreak, newLastDay := questengine.UpdateStreak(lastDay, today, user.DailyStreak)
	earned, bonus := questengine.ComputeReward(quest.BaseExp, multiplier, newStreak)
	newExp, newLevel, newThreshold := questengine.ApplyExp(
		user.CurrentExp, user.Level, user.ExpToNextLevel, earned)

	attempts, err := d.userQuestRepo.GetByUserAndQuestInDay(ctx, userID, quest.ID, today)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get today attempts: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userQuestRepo.DeactivateAllByUser(ctx, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot deactivate records: %v", err)
		return nil, errorx.Unknown
	}

	completedStreak := int(completedToday) + 1
	record := questengine.SelectRecord(attempts)
	if record != nil {
		record.IsActive = false
		record.CompletedAt = sql.NullTime{Valid: true, Time: now}
		record.EarnedExp = earned
		record.StreakBonus = bonus
		record.CompletedStreak = completedStreak
		if err := d.userQuestRepo.UpdateByID(ctx, record.ID, record); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update record: %v", err)
			return nil, errorx.Unknown
		}
	} else {
		record = &entity.UserQuest{
			Base:            entity.Base{ID: uuid.NewString()},
			UserID:          userID,
			QuestID:         quest.ID,
			QuestDate:       today.Time(),
			IsActive:        false,
			CompletedAt:     sql.NullTime{Valid: true, Time: now},
			EarnedExp:       earned,
			StreakBonus:     bonus,
			CompletedStreak: completedStreak,
		}

		if err := d.userQuestRepo.Create(ctx, record); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create record: %v", err)
			return nil, errorx.Unknown
		}
	}

	leveledUp := newLevel > user.Level

	user.CurrentExp = newExp
	user.Level = newLevel
	user.ExpToNextLevel = newThreshold
	user.DailyStreak = newStreak
	user.LastQuestDate = sql.NullTime{Valid: true, Time: newLastDay.Time()}
	user.TotalQuestsCompleted++
	user.ActiveQuestID = sql.NullString{}
	if err := d.userRepo.UpdateProgressByID(ctx, userID, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user progress: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	if d.leaderboard != nil {
		// Best effort, a completion never fails on leaderboard errors.
		if err := d.leaderboard.ChangeLeaderboard(ctx, int64(earned), now, userID); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot change leaderboard: %v", err)
		}
	}

	return &model.CompleteQuestResponse{
		EarnedExp:      earned,
		StreakBonus:    bonus,
		DailyStreak:    newStreak,
		Level:          newLevel,
		CurrentExp:     newExp,
		ExpToNextLevel: newThreshold,
		LeveledUp:      leveledUp,
	}, nil
}

func (d *questDomain) Statistic(
	ctx context.Context, req *model.QuestStatisticRequest,
) (*model.QuestStatisticResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	completedToday, err := d.userQuestRepo.CountCompletedByUserInDay(ctx, userID, dateutil.Today())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count today completions: %v", err)
		return nil, errorx.Unknown
	}

	return &model.QuestStatisticResponse{
		CompletedToday:       int(completedToday),
		TotalQuestsCompleted: user.TotalQuestsCompleted,
		DailyStreak:          user.DailyStreak,
		Level:                user.Level,
		CurrentExp:           user.CurrentExp,
		ExpToNextLevel:       user.ExpToNextLevel,
	}, nil
}

func (d *questDomain) Leaderboard(
	ctx context.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	if d.leaderboard == nil {
		return nil, errorx.New(errorx.Unavailable, "Leaderboard is not available")
	}

	period, err := statistic.ToPeriod(req.Period)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid period: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid period")
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}

	entries, err := d.leaderboard.GetLeaderBoard(ctx, period, 0, limit)
	if err != nil {
		return nil, err
	}

	myRank, err := d.leaderboard.GetRank(ctx, period, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	return &model.GetLeaderboardResponse{Entries: entries, MyRank: myRank}, nil
}
