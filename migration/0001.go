package migration

import (
	"context"

	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/pkg/xcontext"
)

// migrate0001 seeds the default skills.
func migrate0001(ctx context.Context) error {
	skills := []entity.Skill{
		{
			Base:        entity.Base{ID: "reading"},
			Name:        "Reading",
			Description: "Knowledge through books",
			Icon:        "Book",
			BaseExp:     15,
		},
		{
			Base:        entity.Base{ID: "hygiene"},
			Name:        "Hygiene",
			Description: "Personal care and cleanliness",
			Icon:        "Bath",
			BaseExp:     10,
		},
		{
			Base:        entity.Base{ID: "cooking"},
			Name:        "Cooking",
			Description: "Culinary mastery",
			Icon:        "ChefHat",
			BaseExp:     20,
		},
		{
			Base:        entity.Base{ID: "household"},
			Name:        "Household",
			Description: "Maintaining your space",
			Icon:        "Home",
			BaseExp:     15,
		},
		{
			Base:        entity.Base{ID: "focus"},
			Name:        "Focus",
			Description: "Deep work and concentration",
			Icon:        "Target",
			BaseExp:     25,
		},
	}

	for i := range skills {
		if err := xcontext.DB(ctx).Create(&skills[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
