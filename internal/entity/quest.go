package entity

import (
	"database/sql"

	"github.com/hieuduy1751/paio/pkg/enum"
)

type FrequencyType string

var (
	Daily  = enum.New(FrequencyType("daily"))
	Weekly = enum.New(FrequencyType("weekly"))
)

type Quest struct {
	Base

	Name        string
	Description string

	SkillID string `gorm:"index"`
	Skill   Skill  `gorm:"foreignKey:SkillID"`

	BaseExp         int
	DurationMinutes int
	Frequency       FrequencyType
	IsSystem        bool

	// The raw repeat columns. Domain code never branches on them directly,
	// it goes through RepeatPolicy().
	Repeatable          bool
	MaxDailyCompletions sql.NullInt64
}

type RepeatPolicyKind int

const (
	NonRepeatable RepeatPolicyKind = iota
	RepeatableUnlimited
	RepeatableWithCap
)

// RepeatPolicy is the tri-state repeat rule of a quest. A cap implies the
// quest is repeatable, so the two raw columns can never contradict each
// other once folded into this type.
type RepeatPolicy struct {
	Kind      RepeatPolicyKind
	MaxPerDay int
}

// RepeatPolicy folds the two nullable repeat columns into an explicit
// variant. It is the only place the raw columns are interpreted.
func (q *Quest) RepeatPolicy() RepeatPolicy {
	if q.MaxDailyCompletions.Valid {
		return RepeatPolicy{Kind: RepeatableWithCap, MaxPerDay: int(q.MaxDailyCompletions.Int64)}
	}

	if q.Repeatable {
		return RepeatPolicy{Kind: RepeatableUnlimited}
	}

	return RepeatPolicy{Kind: NonRepeatable}
}
