package statistic

import (
	"fmt"
)

func redisKeyLeaderBoard(period Period) string {
	return fmt.Sprintf("leaderboard:exp:%s", period.Key())
}
