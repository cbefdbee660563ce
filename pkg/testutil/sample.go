package testutil

import (
	"context"
	"database/sql"
	"reflect"

	"github.com/google/uuid"
	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/internal/repository"
)

// SampleUser creates a user with fresh-account progress. Non-zero fields of
// init overwrite the sample before insert.
func SampleUser(ctx context.Context, init *entity.User) (entity.User, error) {
	userRepo := repository.NewUserRepository()

	sample := &entity.User{
		Base:           entity.Base{ID: uuid.NewString()},
		Username:       uuid.NewString(),
		PasswordHash:   "x",
		Level:          1,
		CurrentExp:     0,
		ExpToNextLevel: 100,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := userRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}

	return *sample, nil
}

// SampleQuest creates a quest attached to the seeded focus skill unless init
// says otherwise.
func SampleQuest(ctx context.Context, init *entity.Quest) (entity.Quest, error) {
	questRepo := repository.NewQuestRepository()

	sample := &entity.Quest{
		Base:            entity.Base{ID: uuid.NewString()},
		Name:            uuid.NewString(),
		SkillID:         "focus",
		BaseExp:         10,
		DurationMinutes: 15,
		Frequency:       entity.Daily,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := questRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}

	return *sample, nil
}

// RepeatableQuest is a capped sample quest, cap 0 meaning unlimited.
func RepeatableQuest(ctx context.Context, maxPerDay int64) (entity.Quest, error) {
	quest := &entity.Quest{Repeatable: true}
	if maxPerDay > 0 {
		quest.MaxDailyCompletions = sql.NullInt64{Valid: true, Int64: maxPerDay}
	}

	return SampleQuest(ctx, quest)
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if overwriteField.Interface() != reflect.Zero(overwriteField.Type()).Interface() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
