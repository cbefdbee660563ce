package domain

import (
	"testing"

	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/internal/model"
	"github.com/hieuduy1751/paio/internal/repository"
	"github.com/hieuduy1751/paio/pkg/errorx"
	"github.com/hieuduy1751/paio/pkg/testutil"
	"github.com/hieuduy1751/paio/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestSkillDomain() *skillDomain {
	return NewSkillDomain(
		repository.NewSkillRepository(),
		repository.NewUserRepository(),
		repository.NewUserSkillRepository(),
		repository.NewUserQuestRepository(),
	)
}

func Test_skillDomain_Upgrade_FirstLevel(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, &entity.User{CurrentExp: 200})
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, user.ID)
	d := newTestSkillDomain()

	resp, err := d.Upgrade(ctx, &model.UpgradeSkillRequest{SkillID: "focus"})
	require.NoError(t, err)
	require.Equal(t, "focus", resp.SkillID)
	require.Equal(t, 1, resp.Level)
	require.InDelta(t, 1.1, resp.ExpMultiplier, 0.0001)
	require.Equal(t, 100, resp.Cost)
	require.Equal(t, 100, resp.CurrentExp)

	updated, err := repository.NewUserRepository().GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 100, updated.CurrentExp)

	userSkill, err := repository.NewUserSkillRepository().Get(ctx, user.ID, "focus")
	require.NoError(t, err)
	require.Equal(t, 1, userSkill.Level)
}

func Test_skillDomain_Upgrade_CostGrowsWithLevel(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, &entity.User{CurrentExp: 500})
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, user.ID)
	d := newTestSkillDomain()

	first, err := d.Upgrade(ctx, &model.UpgradeSkillRequest{SkillID: "focus"})
	require.NoError(t, err)
	require.Equal(t, 100, first.Cost)

	second, err := d.Upgrade(ctx, &model.UpgradeSkillRequest{SkillID: "focus"})
	require.NoError(t, err)
	require.Equal(t, 150, second.Cost)
	require.Equal(t, 2, second.Level)
	require.InDelta(t, 1.2, second.ExpMultiplier, 0.0001)
	require.Equal(t, 250, second.CurrentExp)
}

func Test_skillDomain_Upgrade_MultiplierStaysExact(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, &entity.User{CurrentExp: 4000})
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, user.ID)
	d := newTestSkillDomain()

	var last *model.UpgradeSkillResponse
	for i := 0; i < 7; i++ {
		last, err = d.Upgrade(ctx, &model.UpgradeSkillRequest{SkillID: "focus"})
		require.NoError(t, err)
	}

	require.Equal(t, 7, last.Level)
	require.Equal(t, 1.7, last.ExpMultiplier)

	userSkill, err := repository.NewUserSkillRepository().Get(ctx, user.ID, "focus")
	require.NoError(t, err)
	require.Equal(t, 1.7, userSkill.ExpMultiplier)
}

func Test_skillDomain_Upgrade_NotEnoughExp(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, &entity.User{CurrentExp: 99})
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, user.ID)
	d := newTestSkillDomain()

	_, err = d.Upgrade(ctx, &model.UpgradeSkillRequest{SkillID: "focus"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotEnoughExp, errx.Code)

	updated, err := repository.NewUserRepository().GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 99, updated.CurrentExp)
}

func Test_skillDomain_Upgrade_UnknownSkill(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, &entity.User{CurrentExp: 500})
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, user.ID)
	d := newTestSkillDomain()

	_, err = d.Upgrade(ctx, &model.UpgradeSkillRequest{SkillID: "no-such-skill"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_skillDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, &entity.User{CurrentExp: 200})
	require.NoError(t, err)

	quest, err := testutil.SampleQuest(ctx, &entity.Quest{SkillID: "focus"})
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	_, err = newTestQuestDomain().Complete(ctx, &model.CompleteQuestRequest{QuestID: quest.ID})
	require.NoError(t, err)

	_, err = newTestSkillDomain().Upgrade(ctx, &model.UpgradeSkillRequest{SkillID: "focus"})
	require.NoError(t, err)

	resp, err := newTestSkillDomain().GetList(ctx, &model.GetListSkillRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Skills)

	bySkillID := map[string]model.Skill{}
	for _, s := range resp.Skills {
		bySkillID[s.ID] = s
	}

	focus, ok := bySkillID["focus"]
	require.True(t, ok)
	require.Equal(t, 1, focus.Level)
	require.InDelta(t, 1.1, focus.ExpMultiplier, 0.0001)
	require.Equal(t, 1, focus.CompletedQuests)

	// Untouched skills stay at level 0 with no multiplier.
	for id, s := range bySkillID {
		if id == "focus" {
			continue
		}
		require.Equal(t, 0, s.Level)
		require.InDelta(t, 1.0, s.ExpMultiplier, 0.0001)
	}
}
