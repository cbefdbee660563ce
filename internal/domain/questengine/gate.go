package questengine

import (
	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/pkg/errorx"
)

// CanStart decides whether the user may begin another attempt of a quest
// today, given how many attempts of it they already finished today.
func CanStart(policy entity.RepeatPolicy, hasActiveQuest bool, completedToday int) error {
	if hasActiveQuest {
		return errorx.New(errorx.ActiveQuestExists, "Another quest is already in progress")
	}

	return checkRepeat(policy, completedToday)
}

// CanComplete applies the same repeat rules at completion time. Both gates
// share one rule so a start that was allowed cannot be stranded by a
// stricter completion check, and vice versa.
func CanComplete(policy entity.RepeatPolicy, completedToday int) error {
	return checkRepeat(policy, completedToday)
}

func checkRepeat(policy entity.RepeatPolicy, completedToday int) error {
	switch policy.Kind {
	case entity.NonRepeatable:
		if completedToday >= 1 {
			return errorx.New(errorx.AlreadyCompletedToday, "Quest already completed today")
		}

	case entity.RepeatableWithCap:
		if completedToday >= policy.MaxPerDay {
			return errorx.New(errorx.DailyCapReached, "Daily completion limit reached")
		}
	}

	return nil
}

// SelectRecord picks the attempt a completion should be written into.
// Attempts are today's records, most recent first. An unfinished attempt
// (a started quest) is reused, otherwise the caller inserts a fresh row.
func SelectRecord(attempts []entity.UserQuest) *entity.UserQuest {
	for i := range attempts {
		if !attempts[i].Completed() {
			return &attempts[i]
		}
	}

	return nil
}
