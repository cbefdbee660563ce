package entity

type Skill struct {
	Base

	Name        string `gorm:"unique"`
	Description string
	Icon        string
	BaseExp     int `gorm:"default:10"`
}

// UserSkill tracks the per-user upgrade state of a skill. The multiplier is
// applied to the base reward of every quest bound to this skill.
type UserSkill struct {
	Base

	UserID string `gorm:"index:idx_user_skill,unique"`
	User   User   `gorm:"foreignKey:UserID"`

	SkillID string `gorm:"index:idx_user_skill,unique"`
	Skill   Skill  `gorm:"foreignKey:SkillID"`

	Level         int     `gorm:"default:1"`
	ExpMultiplier float64 `gorm:"default:1.0"`
}
