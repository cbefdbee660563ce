package statistic

import (
	"fmt"
	"time"
)

// Period is a leaderboard window. Key is the redis key suffix, Since is the
// lower time bound for rebuilding the board from the database, nil meaning
// unbounded.
type Period interface {
	Key() string
	Since() *time.Time
}

type weekPeriod struct {
	start time.Time
}

// NewWeekPeriod is the ISO week containing the given instant.
func NewWeekPeriod(current time.Time) Period {
	weekday := int(current.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	y, m, d := current.AddDate(0, 0, 1-weekday).Date()
	return weekPeriod{start: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (p weekPeriod) Key() string {
	year, week := p.start.ISOWeek()
	return fmt.Sprintf("week#%d-%02d", year, week)
}

func (p weekPeriod) Since() *time.Time {
	start := p.start
	return &start
}

type allTimePeriod struct{}

func NewAllTimePeriod() Period {
	return allTimePeriod{}
}

func (p allTimePeriod) Key() string {
	return "alltime"
}

func (p allTimePeriod) Since() *time.Time {
	return nil
}

func ToPeriodWithTime(periodString string, current time.Time) (Period, error) {
	switch periodString {
	case "week":
		return NewWeekPeriod(current), nil
	case "alltime":
		return NewAllTimePeriod(), nil
	}

	return nil, fmt.Errorf("invalid period, expected week or alltime, but got %s", periodString)
}

func ToPeriod(periodString string) (Period, error) {
	return ToPeriodWithTime(periodString, time.Now())
}
