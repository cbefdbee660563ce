package questengine

import (
	"math"

	mathUtil "github.com/pkg/math"
)

const (
	streakBonusStep     = 0.05
	streakBonusCapSteps = 10
)

// ComputeReward turns a quest's base exp into the exp actually awarded.
// The skill multiplier applies first and the result is floored, then the
// streak bonus is a floored percentage of that adjusted base. The bonus
// rate grows 5% per streak day beyond the first and caps at 50%.
func ComputeReward(baseExp int, multiplier float64, streak int) (earned, bonus int) {
	adjusted := int(math.Floor(float64(baseExp) * multiplier))

	if streak > 1 {
		rate := streakBonusStep * float64(mathUtil.MinInt(streak-1, streakBonusCapSteps))
		bonus = int(math.Floor(float64(adjusted) * rate))
	}

	return adjusted + bonus, bonus
}
