package statistic

import (
	"context"
	"errors"
	"time"

	"github.com/hieuduy1751/paio/internal/model"
	"github.com/hieuduy1751/paio/internal/repository"
	"github.com/hieuduy1751/paio/pkg/errorx"
	"github.com/hieuduy1751/paio/pkg/xcontext"
	"github.com/hieuduy1751/paio/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

type Leaderboard interface {
	GetLeaderBoard(ctx context.Context, period Period, offset, limit int) ([]model.LeaderboardEntry, error)
	GetRank(ctx context.Context, period Period, userID string) (int64, error)
	ChangeLeaderboard(ctx context.Context, value int64, completedAt time.Time, userID string) error
}

type leaderboard struct {
	userRepo      repository.UserRepository
	userQuestRepo repository.UserQuestRepository
	redisClient   xredis.Client
}

func New(
	userRepo repository.UserRepository,
	userQuestRepo repository.UserQuestRepository,
	redisClient xredis.Client,
) *leaderboard {
	return &leaderboard{
		userRepo:      userRepo,
		userQuestRepo: userQuestRepo,
		redisClient:   redisClient,
	}
}

func (l *leaderboard) GetLeaderBoard(
	ctx context.Context, period Period, offset, limit int,
) ([]model.LeaderboardEntry, error) {
	key := redisKeyLeaderBoard(period)

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return nil, errorx.Unknown
	}

	// If the key didn't exist in redis, load it from database.
	if !ok {
		if err := l.loadLeaderboardFromDB(ctx, period); err != nil {
			return nil, err
		}
	}

	results, err := l.redisClient.ZRevRangeWithScores(ctx, key, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get revrange redis: %v", err)
		return nil, errorx.Unknown
	}

	entries := []model.LeaderboardEntry{}
	userIDs := []string{}
	for i, z := range results {
		userID := z.Member.(string)
		userIDs = append(userIDs, userID)
		entries = append(entries, model.LeaderboardEntry{
			UserID:   userID,
			TotalExp: int64(z.Score),
			Rank:     int64(offset + i + 1),
		})
	}

	if len(userIDs) > 0 {
		users, err := l.userRepo.GetByIDs(ctx, userIDs)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get leaderboard users: %v", err)
			return nil, errorx.Unknown
		}

		usernames := map[string]string{}
		for _, u := range users {
			usernames[u.ID] = u.Username
		}

		for i := range entries {
			entries[i].Username = usernames[entries[i].UserID]
		}
	}

	return entries, nil
}

// GetRank returns the user's one-based position on the board, zero when the
// user has no score there yet.
func (l *leaderboard) GetRank(
	ctx context.Context, period Period, userID string,
) (int64, error) {
	key := redisKeyLeaderBoard(period)

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return 0, errorx.Unknown
	}

	if !ok {
		if err := l.loadLeaderboardFromDB(ctx, period); err != nil {
			return 0, err
		}
	}

	rank, err := l.redisClient.ZRevRank(ctx, key, userID)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot call ZRevRank redis: %v", err)
		return 0, errorx.Unknown
	}

	return int64(rank) + 1, nil
}

// ChangeLeaderboard bumps the user's score on the boards touched by a
// completion. Boards not yet cached are skipped, the next read rebuilds them
// from the database anyway.
func (l *leaderboard) ChangeLeaderboard(
	ctx context.Context, value int64, completedAt time.Time, userID string,
) error {
	periods := []Period{NewWeekPeriod(completedAt), NewAllTimePeriod()}
	for _, period := range periods {
		key := redisKeyLeaderBoard(period)

		ok, err := l.redisClient.Exist(ctx, key)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
			return errorx.Unknown
		}

		if !ok {
			continue
		}

		if err := l.redisClient.ZIncrBy(ctx, key, value, userID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot call ZIncrBy redis: %v", err)
		}
	}

	return nil
}

func (l *leaderboard) loadLeaderboardFromDB(ctx context.Context, period Period) error {
	aggregates, err := l.userQuestRepo.SumEarnedExp(ctx, period.Since())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load leaderboard from db: %v", err)
		return errorx.Unknown
	}

	key := redisKeyLeaderBoard(period)
	for _, aggregate := range aggregates {
		err := l.redisClient.ZAdd(ctx, key, redis.Z{
			Score:  float64(aggregate.TotalExp),
			Member: aggregate.UserID,
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot call ZAdd redis: %v", err)
			return errorx.Unknown
		}
	}

	return nil
}
