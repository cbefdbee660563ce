package model

import (
	"time"

	"github.com/hieuduy1751/paio/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano
const DefaultDateLayout string = "2006-01-02"
const DefaultMonthLayout string = "2006-01"

func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	lastQuestDate := ""
	if user.LastQuestDate.Valid {
		lastQuestDate = user.LastQuestDate.Time.Format(DefaultDateLayout)
	}

	return User{
		ID:                   user.ID,
		Username:             user.Username,
		Level:                user.Level,
		CurrentExp:           user.CurrentExp,
		ExpToNextLevel:       user.ExpToNextLevel,
		DailyStreak:          user.DailyStreak,
		LastQuestDate:        lastQuestDate,
		TotalQuestsCompleted: user.TotalQuestsCompleted,
		ActiveQuestID:        user.ActiveQuestID.String,
		CreatedAt:            user.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertQuest(quest *entity.Quest, completedToday int, isActive bool) Quest {
	if quest == nil {
		return Quest{}
	}

	return Quest{
		ID:                  quest.ID,
		Name:                quest.Name,
		Description:         quest.Description,
		SkillID:             quest.SkillID,
		SkillName:           quest.Skill.Name,
		SkillIcon:           quest.Skill.Icon,
		BaseExp:             quest.BaseExp,
		DurationMinutes:     quest.DurationMinutes,
		Frequency:           string(quest.Frequency),
		IsSystem:            quest.IsSystem,
		Repeatable:          quest.Repeatable,
		MaxDailyCompletions: int(quest.MaxDailyCompletions.Int64),
		CompletedToday:      completedToday,
		IsActive:            isActive,
	}
}

func ConvertSkill(skill *entity.Skill, userSkill *entity.UserSkill, completedQuests int) Skill {
	if skill == nil {
		return Skill{}
	}

	level := 0
	multiplier := 1.0
	if userSkill != nil {
		level = userSkill.Level
		multiplier = userSkill.ExpMultiplier
	}

	return Skill{
		ID:              skill.ID,
		Name:            skill.Name,
		Description:     skill.Description,
		Icon:            skill.Icon,
		BaseExp:         skill.BaseExp,
		Level:           level,
		ExpMultiplier:   multiplier,
		CompletedQuests: completedQuests,
	}
}

func ConvertMoneySource(source *entity.MoneySource) MoneySource {
	if source == nil {
		return MoneySource{}
	}

	return MoneySource{
		ID:        source.ID,
		Name:      source.Name,
		Balance:   source.Balance,
		Currency:  source.Currency,
		Color:     source.Color,
		CreatedAt: source.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertExpense(expense *entity.Expense) Expense {
	if expense == nil {
		return Expense{}
	}

	return Expense{
		ID:               expense.ID,
		MoneySourceID:    expense.MoneySourceID,
		MoneySourceName:  expense.MoneySource.Name,
		MoneySourceColor: expense.MoneySource.Color,
		Type:             string(expense.Type),
		Amount:           expense.Amount,
		Category:         expense.Category,
		Description:      expense.Description,
		TransactionDate:  expense.TransactionDate.Format(DefaultTimeLayout),
	}
}

func ConvertPomodoroSession(session *entity.PomodoroSession) PomodoroSession {
	if session == nil {
		return PomodoroSession{}
	}

	completedAt := ""
	if session.CompletedAt.Valid {
		completedAt = session.CompletedAt.Time.Format(DefaultTimeLayout)
	}

	return PomodoroSession{
		ID:              session.ID,
		DurationMinutes: session.DurationMinutes,
		TaskName:        session.TaskName,
		StartedAt:       session.StartedAt.Format(DefaultTimeLayout),
		CompletedAt:     completedAt,
		Completed:       session.Completed,
	}
}
