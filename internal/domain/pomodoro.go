package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hieuduy1751/paio/internal/entity"
	"github.com/hieuduy1751/paio/internal/model"
	"github.com/hieuduy1751/paio/internal/repository"
	"github.com/hieuduy1751/paio/pkg/dateutil"
	"github.com/hieuduy1751/paio/pkg/errorx"
	"github.com/hieuduy1751/paio/pkg/xcontext"
	"gorm.io/gorm"
)

const (
	defaultPomodoroLimit = 50
	pomodoroChartDays    = 7
)

type PomodoroDomain interface {
	GetList(context.Context, *model.GetListPomodoroRequest) (*model.GetListPomodoroResponse, error)
	Create(context.Context, *model.CreatePomodoroRequest) (*model.CreatePomodoroResponse, error)
	Complete(context.Context, *model.CompletePomodoroRequest) (*model.CompletePomodoroResponse, error)
	Statistic(context.Context, *model.PomodoroStatisticRequest) (*model.PomodoroStatisticResponse, error)
}

type pomodoroDomain struct {
	pomodoroRepo repository.PomodoroSessionRepository
}

func NewPomodoroDomain(pomodoroRepo repository.PomodoroSessionRepository) *pomodoroDomain {
	return &pomodoroDomain{pomodoroRepo: pomodoroRepo}
}

func (d *pomodoroDomain) GetList(
	ctx context.Context, req *model.GetListPomodoroRequest,
) (*model.GetListPomodoroResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultPomodoroLimit
	}

	sessions, err := d.pomodoroRepo.GetListByUserID(ctx, xcontext.RequestUserID(ctx), limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get pomodoro sessions: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetListPomodoroResponse{Sessions: []model.PomodoroSession{}}
	for i := range sessions {
		resp.Sessions = append(resp.Sessions, model.ConvertPomodoroSession(&sessions[i]))
	}

	return resp, nil
}

func (d *pomodoroDomain) Create(
	ctx context.Context, req *model.CreatePomodoroRequest,
) (*model.CreatePomodoroResponse, error) {
	if req.DurationMinutes <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Duration must be positive")
	}

	session := &entity.PomodoroSession{
		Base:            entity.Base{ID: uuid.NewString()},
		UserID:          xcontext.RequestUserID(ctx),
		DurationMinutes: req.DurationMinutes,
		TaskName:        req.TaskName,
		StartedAt:       time.Now(),
	}

	if err := d.pomodoroRepo.Create(ctx, session); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create pomodoro session: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreatePomodoroResponse{Session: model.ConvertPomodoroSession(session)}, nil
}

func (d *pomodoroDomain) Complete(
	ctx context.Context, req *model.CompletePomodoroRequest,
) (*model.CompletePomodoroResponse, error) {
	if req.SessionID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty session id")
	}

	session, err := d.pomodoroRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found session")
		}

		xcontext.Logger(ctx).Errorf("Cannot get pomodoro session: %v", err)
		return nil, errorx.Unknown
	}

	if session.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if session.Completed {
		return &model.CompletePomodoroResponse{Session: model.ConvertPomodoroSession(session)}, nil
	}

	now := time.Now()
	if err := d.pomodoroRepo.CompleteByID(ctx, session.ID, now); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot complete pomodoro session: %v", err)
		return nil, errorx.Unknown
	}

	session.Completed = true
	session.CompletedAt.Valid = true
	session.CompletedAt.Time = now

	return &model.CompletePomodoroResponse{Session: model.ConvertPomodoroSession(session)}, nil
}

func (d *pomodoroDomain) Statistic(
	ctx context.Context, req *model.PomodoroStatisticRequest,
) (*model.PomodoroStatisticResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	today := dateutil.Today()
	begin := today.AddDays(1 - pomodoroChartDays)

	aggregates, err := d.pomodoroRepo.AggregateByDay(ctx, userID, begin.Time())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot aggregate pomodoro sessions: %v", err)
		return nil, errorx.Unknown
	}

	byDay := map[string]repository.PomodoroDayAggregate{}
	for _, aggregate := range aggregates {
		byDay[aggregate.Day] = aggregate
	}

	// Fill every day of the window so the chart has no holes.
	resp := &model.PomodoroStatisticResponse{Days: []model.PomodoroDayStatistic{}}
	for day := begin; !today.Before(day); day = day.AddDays(1) {
		aggregate := byDay[day.String()]
		resp.Days = append(resp.Days, model.PomodoroDayStatistic{
			Date:           day.String(),
			Sessions:       aggregate.Sessions,
			Completed:      aggregate.Completed,
			FocusedMinutes: aggregate.FocusedMinute,
		})

		resp.TotalCompleted += aggregate.Completed
		if day.Equal(today) {
			resp.CompletedToday = aggregate.Completed
		}
	}

	return resp, nil
}
