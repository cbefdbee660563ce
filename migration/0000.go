package migration

import (
	"context"

	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/pkg/xcontext"
)

// migrate0000 creates all tables at the latest schema.
func migrate0000(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Skill{},
		&entity.UserSkill{},
		&entity.Quest{},
		&entity.UserQuest{},
		&entity.MoneySource{},
		&entity.Expense{},
		&entity.PomodoroSession{},
	)
}
