package model

type Skill struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Icon            string  `json:"icon"`
	BaseExp         int     `json:"base_exp"`
	Level           int     `json:"level"`
	ExpMultiplier   float64 `json:"exp_multiplier"`
	CompletedQuests int     `json:"completed_quests"`
}

type GetListSkillRequest struct{}

type GetListSkillResponse struct {
	Skills []Skill `json:"skills"`
}

type UpgradeSkillRequest struct {
	SkillID string `json:"skill_id"`
}

type UpgradeSkillResponse struct {
	SkillID       string  `json:"skill_id"`
	Level         int     `json:"level"`
	ExpMultiplier float64 `json:"exp_multiplier"`
	Cost          int     `json:"cost"`
	CurrentExp    int     `json:"current_exp"`
}
