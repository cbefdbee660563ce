package migration

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/pkg/xcontext"
	"gorm.io/gorm"
)

// The migration list. Never reorder or remove entries, only append.
var migrations = []func(context.Context) error{
	migrate0000,
	migrate0001,
	migrate0002,
}

// Migrate applies every migration the database has not seen yet, in order,
// and records the new version after each one.
func Migrate(ctx context.Context) error {
	if err := xcontext.DB(ctx).AutoMigrate(&entity.Migration{}); err != nil {
		return err
	}

	version := -1
	var last entity.Migration
	err := xcontext.DB(ctx).Order("version desc").Take(&last).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	} else {
		version = last.Version
	}

	for i := version + 1; i < len(migrations); i++ {
		xcontext.Logger(ctx).Infof("Applying migration %04d", i)
		if err := migrations[i](ctx); err != nil {
			return err
		}

		record := &entity.Migration{
			Base:    entity.Base{ID: uuid.NewString()},
			Version: i,
		}
		if err := xcontext.DB(ctx).Create(record).Error; err != nil {
			return err
		}
	}

	return nil
}
