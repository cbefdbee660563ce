package questengine

import (
	"github.com/hieuduy1751/paio/pkg/dateutil"
)

// UpdateStreak advances the daily streak for a completion happening on
// today. A completion on the day after the last one extends the streak,
// a second completion on the same day leaves it untouched, anything else
// restarts it at 1. A last day in the future counts as a gap too, so a
// clock stepping backwards resets rather than inflates the streak.
func UpdateStreak(last dateutil.Day, today dateutil.Day, current int) (int, dateutil.Day) {
	switch {
	case last.Equal(today):
		return current, today

	case last.Equal(today.AddDays(-1)):
		return current + 1, today

	default:
		return 1, today
	}
}
