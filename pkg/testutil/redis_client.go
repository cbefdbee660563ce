package testutil

import (
	"context"

	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slices"
)

// MockRedisClient is an in-memory stand-in for xredis.Client covering the
// sorted set commands.
type MockRedisClient struct {
	sortedSets map[string]map[string]float64
}

func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{sortedSets: map[string]map[string]float64{}}
}

func (m *MockRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	_, ok := m.sortedSets[key]
	return ok, nil
}

func (m *MockRedisClient) Del(ctx context.Context, key ...string) error {
	for _, k := range key {
		delete(m.sortedSets, k)
	}

	return nil
}

func (m *MockRedisClient) ZAdd(ctx context.Context, key string, z redis.Z) error {
	if m.sortedSets[key] == nil {
		m.sortedSets[key] = map[string]float64{}
	}

	m.sortedSets[key][z.Member.(string)] = z.Score
	return nil
}

func (m *MockRedisClient) ZIncrBy(ctx context.Context, key string, incr int64, member string) error {
	if m.sortedSets[key] == nil {
		m.sortedSets[key] = map[string]float64{}
	}

	m.sortedSets[key][member] += float64(incr)
	return nil
}

func (m *MockRedisClient) ZRevRangeWithScores(
	ctx context.Context, key string, offset, limit int,
) ([]redis.Z, error) {
	members := []redis.Z{}
	for member, score := range m.sortedSets[key] {
		members = append(members, redis.Z{Member: member, Score: score})
	}

	slices.SortFunc(members, func(a, b redis.Z) bool {
		if a.Score != b.Score {
			return a.Score > b.Score
		}

		return a.Member.(string) > b.Member.(string)
	})

	if offset >= len(members) {
		return []redis.Z{}, nil
	}

	end := offset + limit
	if end > len(members) {
		end = len(members)
	}

	return members[offset:end], nil
}

func (m *MockRedisClient) ZRevRank(ctx context.Context, key string, member string) (uint64, error) {
	members, err := m.ZRevRangeWithScores(ctx, key, 0, len(m.sortedSets[key]))
	if err != nil {
		return 0, err
	}

	for i, z := range members {
		if z.Member.(string) == member {
			return uint64(i), nil
		}
	}

	return 0, redis.Nil
}
