package questengine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Threshold(t *testing.T) {
	require.Equal(t, 100, Threshold(1))
	require.Equal(t, 150, Threshold(2))
	require.Equal(t, 225, Threshold(3))
	require.Equal(t, 337, Threshold(4))
	require.Equal(t, 506, Threshold(5))
}

func Test_UpgradeCost(t *testing.T) {
	require.Equal(t, 150, UpgradeCost(1))
	require.Equal(t, 225, UpgradeCost(2))
	require.Equal(t, 337, UpgradeCost(3))
}

func Test_ApplyExp(t *testing.T) {
	testcases := []struct {
		name         string
		exp          int
		level        int
		threshold    int
		delta        int
		newExp       int
		newLevel     int
		newThreshold int
	}{
		{
			name:         "zero delta changes nothing",
			exp:          40,
			level:        2,
			threshold:    150,
			delta:        0,
			newExp:       40,
			newLevel:     2,
			newThreshold: 150,
		},
		{
			name:         "gain below the threshold",
			exp:          0,
			level:        1,
			threshold:    100,
			delta:        57,
			newExp:       57,
			newLevel:     1,
			newThreshold: 100,
		},
		{
			name:         "single level up carries the remainder",
			exp:          90,
			level:        1,
			threshold:    100,
			delta:        30,
			newExp:       20,
			newLevel:     2,
			newThreshold: 150,
		},
		{
			name:         "exactly reaching the threshold levels up to zero exp",
			exp:          0,
			level:        1,
			threshold:    100,
			delta:        100,
			newExp:       0,
			newLevel:     2,
			newThreshold: 150,
		},
		{
			name:         "large delta settles several levels in one call",
			exp:          0,
			level:        1,
			threshold:    100,
			delta:        500,
			newExp:       25,
			newLevel:     4,
			newThreshold: 337,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			newExp, newLevel, newThreshold := ApplyExp(tc.exp, tc.level, tc.threshold, tc.delta)
			require.Equal(t, tc.newExp, newExp)
			require.Equal(t, tc.newLevel, newLevel)
			require.Equal(t, tc.newThreshold, newThreshold)
			require.Less(t, newExp, newThreshold)
		})
	}
}
