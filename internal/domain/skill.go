package domain

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/hieuduy1751/paio/internal/domain/questengine"
	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/internal/model"
	"github.com/hieuduy1751/paio/internal/repository"
	"github.com/hieuduy1751/paio/pkg/errorx"
	"github.com/hieuduy1751/paio/pkg/xcontext"
	"gorm.io/gorm"
)

type SkillDomain interface {
	GetList(context.Context, *model.GetListSkillRequest) (*model.GetListSkillResponse, error)
	Upgrade(context.Context, *model.UpgradeSkillRequest) (*model.UpgradeSkillResponse, error)
}

type skillDomain struct {
	skillRepo     repository.SkillRepository
	userRepo      repository.UserRepository
	userSkillRepo repository.UserSkillRepository
	userQuestRepo repository.UserQuestRepository
}

func NewSkillDomain(
	skillRepo repository.SkillRepository,
	userRepo repository.UserRepository,
	userSkillRepo repository.UserSkillRepository,
	userQuestRepo repository.UserQuestRepository,
) *skillDomain {
	return &skillDomain{
		skillRepo:     skillRepo,
		userRepo:      userRepo,
		userSkillRepo: userSkillRepo,
		userQuestRepo: userQuestRepo,
	}
}

func (d *skillDomain) GetList(
	ctx context.Context, req *model.GetListSkillRequest,
) (*model.GetListSkillResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	skills, err := d.skillRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get skills: %v", err)
		return nil, errorx.Unknown
	}

	userSkills, err := d.userSkillRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user skills: %v", err)
		return nil, errorx.Unknown
	}

	userSkillBySkillID := map[string]*entity.UserSkill{}
	for i := range userSkills {
		userSkillBySkillID[userSkills[i].SkillID] = &userSkills[i]
	}

	completions, err := d.userQuestRepo.CountCompletedBySkill(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count skill completions: %v", err)
		return nil, errorx.Unknown
	}

	completedBySkillID := map[string]int{}
	for _, c := range completions {
		completedBySkillID[c.SkillID] = int(c.Completed)
	}

	resp := &model.GetListSkillResponse{Skills: []model.Skill{}}
	for i := range skills {
		skill := &skills[i]
		resp.Skills = append(resp.Skills, model.ConvertSkill(
			skill, userSkillBySkillID[skill.ID], completedBySkillID[skill.ID]))
	}

	return resp, nil
}

// Upgrade spends the user's current exp to raise a skill level. The exp
// deduction and the skill row change commit together.
func (d *skillDomain) Upgrade(
	ctx context.Context, req *model.UpgradeSkillRequest,
) (*model.UpgradeSkillResponse, error) {
	if req.SkillID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty skill id")
	}

	userID := xcontext.RequestUserID(ctx)

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if _, err := d.skillRepo.GetByID(ctx, req.SkillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found skill")
		}

		xcontext.Logger(ctx).Errorf("Cannot get skill: %v", err)
		return nil, errorx.Unknown
	}

	// The lock keeps two concurrent upgrades from both passing the exp
	// check on the same balance.
	user, err := d.userRepo.GetByIDForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	userSkill, err := d.userSkillRepo.Get(ctx, userID, req.SkillID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get user skill: %v", err)
			return nil, errorx.Unknown
		}

		userSkill = nil
	}

	// An untouched skill is level 0 with no multiplier, so the first
	// upgrade costs UpgradeCost(0) = 100 and lands on level 1.
	currentLevel := 0
	currentMultiplier := 1.0
	if userSkill != nil {
		currentLevel = userSkill.Level
		currentMultiplier = userSkill.ExpMultiplier
	}

	cost := questengine.UpgradeCost(currentLevel)
	if user.CurrentExp < cost {
		return nil, errorx.New(errorx.NotEnoughExp, "Not enough exp to upgrade")
	}

	if err := d.userRepo.DecreaseExp(ctx, userID, cost); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decrease exp: %v", err)
		return nil, errorx.Unknown
	}

	newLevel := currentLevel + 1
	// Rounded to two decimals so repeated additions cannot drift the
	// stored multiplier.
	newMultiplier := math.Round((currentMultiplier+0.1)*100) / 100

	if userSkill != nil {
		userSkill.Level = newLevel
		userSkill.ExpMultiplier = newMultiplier
		if err := d.userSkillRepo.UpdateByID(ctx, userSkill.ID, userSkill); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update user skill: %v", err)
			return nil, errorx.Unknown
		}
	} else {
		userSkill = &entity.UserSkill{
			Base:          entity.Base{ID: uuid.NewString()},
			UserID:        userID,
			SkillID:       req.SkillID,
			Level:         newLevel,
			ExpMultiplier: newMultiplier,
		}

		if err := d.userSkillRepo.Create(ctx, userSkill); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create user skill: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.UpgradeSkillResponse{
		SkillID:       req.SkillID,
		Level:         newLevel,
		ExpMultiplier: newMultiplier,
		Cost:          cost,
		CurrentExp:    user.CurrentExp - cost,
	}, nil
}
