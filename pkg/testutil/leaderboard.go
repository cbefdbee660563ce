package testutil

import (
	"context"
	"time"

	"github.com/hieuduy1751/paio/internal/domain/statistic"
	"github.com/hieuduy1751/paio/internal/model"
)

type MockLeaderboard struct {
	GetLeaderBoardFunc func(
		ctx context.Context, period statistic.Period, offset, limit int,
	) ([]model.LeaderboardEntry, error)

	GetRankFunc func(ctx context.Context, period statistic.Period, userID string) (int64, error)

	ChangeLeaderboardFunc func(
		ctx context.Context, value int64, completedAt time.Time, userID string,
	) error
}

func (m *MockLeaderboard) GetLeaderBoard(
	ctx context.Context, period statistic.Period, offset, limit int,
) ([]model.LeaderboardEntry, error) {
	if m.GetLeaderBoardFunc != nil {
		return m.GetLeaderBoardFunc(ctx, period, offset, limit)
	}

	return nil, nil
}

func (m *MockLeaderboard) GetRank(
	ctx context.Context, period statistic.Period, userID string,
) (int64, error) {
	if m.GetRankFunc != nil {
		return m.GetRankFunc(ctx, period, userID)
	}

	return 0, nil
}

func (m *MockLeaderboard) ChangeLeaderboard(
	ctx context.Context, value int64, completedAt time.Time, userID string,
) error {
	if m.ChangeLeaderboardFunc != nil {
		return m.ChangeLeaderboardFunc(ctx, value, completedAt, userID)
	}

	return nil
}
