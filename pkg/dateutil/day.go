package dateutil

import (
	"time"
)

const dayLayout = "2006-01-02"

// Day is a calendar day without a time-of-day component. The zero value is
// the zero time and means "no day".
type Day struct {
	t time.Time
}

func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func Today() Day {
	return DayOf(time.Now())
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, err
	}

	return DayOf(t), nil
}

func (d Day) AddDays(n int) Day {
	return DayOf(d.t.AddDate(0, 0, n))
}

func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

func (d Day) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the midnight instant of this day. Suitable for storing into
// a DATE column.
func (d Day) Time() time.Time {
	return d.t
}

func (d Day) String() string {
	return d.t.Format(dayLayout)
}
