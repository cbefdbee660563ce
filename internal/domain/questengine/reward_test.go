package questengine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ComputeReward(t *testing.T) {
	testcases := []struct {
		name       string
		baseExp    int
		multiplier float64
		streak     int
		earned     int
		bonus      int
	}{
		{
			name:       "no streak no multiplier",
			baseExp:    50,
			multiplier: 1.0,
			streak:     0,
			earned:     50,
			bonus:      0,
		},
		{
			name:       "first day of a streak gets no bonus",
			baseExp:    50,
			multiplier: 1.0,
			streak:     1,
			earned:     50,
			bonus:      0,
		},
		{
			name:       "four day streak pays 15 percent",
			baseExp:    50,
			multiplier: 1.0,
			streak:     4,
			earned:     57,
			bonus:      7,
		},
		{
			name:       "bonus rate caps at 50 percent",
			baseExp:    100,
			multiplier: 1.0,
			streak:     30,
			earned:     150,
			bonus:      50,
		},
		{
			name:       "multiplier applies before the bonus",
			baseExp:    10,
			multiplier: 1.5,
			streak:     3,
			earned:     16,
			bonus:      1,
		},
		{
			name:       "adjusted base is floored",
			baseExp:    15,
			multiplier: 1.1,
			streak:     1,
			earned:     16,
			bonus:      0,
		},
		{
			name:       "zero base exp",
			baseExp:    0,
			multiplier: 2.0,
			streak:     10,
			earned:     0,
			bonus:      0,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			earned, bonus := ComputeReward(tc.baseExp, tc.multiplier, tc.streak)
			require.Equal(t, tc.earned, earned)
			require.Equal(t, tc.bonus, bonus)
		})
	}
}

func Test_ComputeReward_BonusNeverExceedsHalfAdjustedBase(t *testing.T) {
	for streak := 0; streak <= 40; streak++ {
		earned, bonus := ComputeReward(200, 1.3, streak)
		adjusted := earned - bonus
		require.Equal(t, 260, adjusted)
		require.LessOrEqual(t, bonus, adjusted/2)
	}
}
