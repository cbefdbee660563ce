package migration

import (
	"context"
	"database/sql"

	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/pkg/xcontext"
)

func dailyCap(n int64) sql.NullInt64 {
	return sql.NullInt64{Int64: n, Valid: true}
}

// migrate0002 seeds the system quests with their repeat rules. A quest with
// a daily cap is implicitly repeatable.
func migrate0002(ctx context.Context) error {
	quests := []entity.Quest{
		{
			Base:                entity.Base{ID: "read-a-book"},
			Name:                "Read a Book",
			Description:         "Read for knowledge",
			SkillID:             "reading",
			BaseExp:             30,
			DurationMinutes:     30,
			Frequency:           entity.Daily,
			IsSystem:            true,
			Repeatable:          true,
			MaxDailyCompletions: dailyCap(5),
		},
		{
			Base:            entity.Base{ID: "take-a-shower"},
			Name:            "Take a Shower",
			Description:     "Daily hygiene",
			SkillID:         "hygiene",
			BaseExp:         15,
			DurationMinutes: 15,
			Frequency:       entity.Daily,
			IsSystem:        true,
		},
		{
			Base:                entity.Base{ID: "cook-a-meal"},
			Name:                "Cook a Meal",
			Description:         "Prepare food",
			SkillID:             "cooking",
			BaseExp:             40,
			DurationMinutes:     45,
			Frequency:           entity.Daily,
			IsSystem:            true,
			Repeatable:          true,
			MaxDailyCompletions: dailyCap(3),
		},
		{
			Base:            entity.Base{ID: "clean-house"},
			Name:            "Clean House",
			Description:     "Maintain living space",
			SkillID:         "household",
			BaseExp:         35,
			DurationMinutes: 60,
			Frequency:       entity.Daily,
			IsSystem:        true,
		},
		{
			Base:                entity.Base{ID: "focus-session"},
			Name:                "Focus Session",
			Description:         "Deep work with Pomodoro",
			SkillID:             "focus",
			BaseExp:             50,
			DurationMinutes:     25,
			Frequency:           entity.Daily,
			IsSystem:            true,
			Repeatable:          true,
			MaxDailyCompletions: dailyCap(8),
		},
		{
			Base:            entity.Base{ID: "meal-prep-sunday"},
			Name:            "Meal Prep Sunday",
			Description:     "Prepare meals for the week",
			SkillID:         "cooking",
			BaseExp:         100,
			DurationMinutes: 120,
			Frequency:       entity.Weekly,
			IsSystem:        true,
		},
		{
			Base:            entity.Base{ID: "deep-clean"},
			Name:            "Deep Clean",
			Description:     "Thorough house cleaning",
			SkillID:         "household",
			BaseExp:         80,
			DurationMinutes: 180,
			Frequency:       entity.Weekly,
			IsSystem:        true,
		},
		{
			Base:                entity.Base{ID: "drink-water"},
			Name:                "Drink Water",
			Description:         "Stay hydrated throughout the day",
			SkillID:             "hygiene",
			BaseExp:             5,
			DurationMinutes:     1,
			Frequency:           entity.Daily,
			IsSystem:            true,
			Repeatable:          true,
			MaxDailyCompletions: dailyCap(10),
		},
		{
			Base:                entity.Base{ID: "take-a-walk"},
			Name:                "Take a Walk",
			Description:         "Get some fresh air and exercise",
			SkillID:             "household",
			BaseExp:             20,
			DurationMinutes:     30,
			Frequency:           entity.Daily,
			IsSystem:            true,
			Repeatable:          true,
			MaxDailyCompletions: dailyCap(3),
		},
		{
			Base:                entity.Base{ID: "meditate"},
			Name:                "Meditate",
			Description:         "Practice mindfulness and relaxation",
			SkillID:             "focus",
			BaseExp:             25,
			DurationMinutes:     15,
			Frequency:           entity.Daily,
			IsSystem:            true,
			Repeatable:          true,
			MaxDailyCompletions: dailyCap(5),
		},
		{
			Base:                entity.Base{ID: "write-in-journal"},
			Name:                "Write in Journal",
			Description:         "Reflect on your day and thoughts",
			SkillID:             "reading",
			BaseExp:             15,
			DurationMinutes:     20,
			Frequency:           entity.Daily,
			IsSystem:            true,
			Repeatable:          true,
			MaxDailyCompletions: dailyCap(2),
		},
		{
			Base:                entity.Base{ID: "stretch"},
			Name:                "Stretch",
			Description:         "Improve flexibility and reduce tension",
			SkillID:             "household",
			BaseExp:             10,
			DurationMinutes:     10,
			Frequency:           entity.Daily,
			IsSystem:            true,
			Repeatable:          true,
			MaxDailyCompletions: dailyCap(4),
		},
		{
			Base:                entity.Base{ID: "learn-something-new"},
			Name:                "Learn Something New",
			Description:         "Study a new skill or topic",
			SkillID:             "reading",
			BaseExp:             30,
			DurationMinutes:     45,
			Frequency:           entity.Daily,
			IsSystem:            true,
			Repeatable:          true,
			MaxDailyCompletions: dailyCap(3),
		},
		{
			Base:            entity.Base{ID: "wake-up-early"},
			Name:            "Wake Up Early",
			Description:     "Start your day productively",
			SkillID:         "focus",
			BaseExp:         40,
			DurationMinutes: 0,
			Frequency:       entity.Daily,
			IsSystem:        true,
		},
		{
			Base:            entity.Base{ID: "plan-your-day"},
			Name:            "Plan Your Day",
			Description:     "Organize your tasks and goals",
			SkillID:         "focus",
			BaseExp:         25,
			DurationMinutes: 15,
			Frequency:       entity.Daily,
			IsSystem:        true,
		},
		{
			Base:            entity.Base{ID: "review-your-day"},
			Name:            "Review Your Day",
			Description:     "Reflect on accomplishments and areas for improvement",
			SkillID:         "reading",
			BaseExp:         20,
			DurationMinutes: 15,
			Frequency:       entity.Daily,
			IsSystem:        true,
		},
		{
			Base:            entity.Base{ID: "grocery-shopping"},
			Name:            "Grocery Shopping",
			Description:     "Stock up on essentials for the week",
			SkillID:         "cooking",
			BaseExp:         30,
			DurationMinutes: 60,
			Frequency:       entity.Weekly,
			IsSystem:        true,
		},
		{
			Base:            entity.Base{ID: "laundry-day"},
			Name:            "Laundry Day",
			Description:     "Wash and organize your clothes",
			SkillID:         "household",
			BaseExp:         25,
			DurationMinutes: 90,
			Frequency:       entity.Weekly,
			IsSystem:        true,
		},
		{
			Base:            entity.Base{ID: "plan-weekly-goals"},
			Name:            "Plan Weekly Goals",
			Description:     "Set objectives for the upcoming week",
			SkillID:         "focus",
			BaseExp:         35,
			DurationMinutes: 30,
			Frequency:       entity.Weekly,
			IsSystem:        true,
		},
		{
			Base:            entity.Base{ID: "digital-detox"},
			Name:            "Digital Detox",
			Description:     "Take a break from screens and technology",
			SkillID:         "focus",
			BaseExp:         50,
			DurationMinutes: 120,
			Frequency:       entity.Weekly,
			IsSystem:        true,
		},
		{
			Base:            entity.Base{ID: "organize-workspace"},
			Name:            "Organize Workspace",
			Description:     "Tidy up your work or study area",
			SkillID:         "household",
			BaseExp:         30,
			DurationMinutes: 45,
			Frequency:       entity.Weekly,
			IsSystem:        true,
		},
	}

	for i := range quests {
		if err := xcontext.DB(ctx).Create(&quests[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
