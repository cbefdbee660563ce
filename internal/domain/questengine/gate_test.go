package questengine

import (
	"database/sql"
	"testing"
	"time"

	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func Test_CanStart(t *testing.T) {
	unlimited := entity.RepeatPolicy{Kind: entity.RepeatableUnlimited}
	once := entity.RepeatPolicy{Kind: entity.NonRepeatable}
	capped := entity.RepeatPolicy{Kind: entity.RepeatableWithCap, MaxPerDay: 3}

	testcases := []struct {
		name           string
		policy         entity.RepeatPolicy
		hasActive      bool
		completedToday int
		wantCode       errorx.Code
	}{
		{
			name:   "fresh start is allowed",
			policy: once,
		},
		{
			name:      "another active quest blocks any start",
			policy:    unlimited,
			hasActive: true,
			wantCode:  errorx.ActiveQuestExists,
		},
		{
			name:           "non repeatable already done today",
			policy:         once,
			completedToday: 1,
			wantCode:       errorx.AlreadyCompletedToday,
		},
		{
			name:           "capped quest below the cap",
			policy:         capped,
			completedToday: 2,
		},
		{
			name:           "capped quest at the cap",
			policy:         capped,
			completedToday: 3,
			wantCode:       errorx.DailyCapReached,
		},
		{
			name:           "unlimited quest never caps",
			policy:         unlimited,
			completedToday: 50,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanStart(tc.policy, tc.hasActive, tc.completedToday)
			if tc.wantCode == 0 {
				require.NoError(t, err)
				return
			}

			var errx errorx.Error
			require.ErrorAs(t, err, &errx)
			require.Equal(t, tc.wantCode, errx.Code)
		})
	}
}

func Test_CanComplete(t *testing.T) {
	once := entity.RepeatPolicy{Kind: entity.NonRepeatable}
	capped := entity.RepeatPolicy{Kind: entity.RepeatableWithCap, MaxPerDay: 3}

	require.NoError(t, CanComplete(once, 0))

	var errx errorx.Error
	require.ErrorAs(t, CanComplete(once, 1), &errx)
	require.Equal(t, errorx.AlreadyCompletedToday, errx.Code)

	require.NoError(t, CanComplete(capped, 2))
	require.ErrorAs(t, CanComplete(capped, 3), &errx)
	require.Equal(t, errorx.DailyCapReached, errx.Code)
}

func Test_SelectRecord(t *testing.T) {
	now := time.Now()
	completed := entity.UserQuest{
		Base:        entity.Base{ID: "done"},
		CompletedAt: sql.NullTime{Valid: true, Time: now},
	}
	started := entity.UserQuest{Base: entity.Base{ID: "started"}}

	require.Nil(t, SelectRecord(nil))
	require.Nil(t, SelectRecord([]entity.UserQuest{completed}))

	picked := SelectRecord([]entity.UserQuest{started, completed})
	require.NotNil(t, picked)
	require.Equal(t, "started", picked.ID)

	picked = SelectRecord([]entity.UserQuest{completed, started})
	require.NotNil(t, picked)
	require.Equal(t, "started", picked.ID)
}
