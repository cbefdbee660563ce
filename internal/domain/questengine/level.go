package questengine

import (
	"math"
)

// Threshold is the exp needed to move past the given level. Level 1 costs
// 100 and every level after is half again as expensive, floored.
func Threshold(level int) int {
	return int(math.Floor(100 * math.Pow(1.5, float64(level-1))))
}

// UpgradeCost is the exp price of raising a skill from the given level.
func UpgradeCost(skillLevel int) int {
	return int(math.Floor(100 * math.Pow(1.5, float64(skillLevel))))
}

// ApplyExp adds delta to the user's progress and settles any level ups.
// Leftover exp carries across consecutive level ups in one call.
func ApplyExp(exp, level, threshold, delta int) (newExp, newLevel, newThreshold int) {
	newExp = exp + delta
	newLevel = level
	newThreshold = threshold

	for newExp >= newThreshold {
		newExp -= newThreshold
		newLevel++
		newThreshold = Threshold(newLevel)
	}

	return newExp, newLevel, newThreshold
}
