package service

import (
	"context"
	"strings"

	"yourfuture/internal/authz"
	"yourfuture/internal/logger"
	"yourfuture/internal/metrics"
	"yourfuture/internal/model"
	"yourfuture/internal/repository"
	"yourfuture/internal/serrors"

	"go.uber.org/zap"
)

const kindStartup = "startup"

// StartupService runs moderation, funding, timeline and hold operations on
// startups.
type StartupService interface {
	List(ctx context.Context, actor *model.Actor, mineOnly bool) ([]StartupView, error)
	Create(ctx context.Context, actor *model.Actor, req model.CreateStartupRequest) (StartupView, error)
	Approve(ctx context.Context, actor *model.Actor, id int64) (StartupView, error)
	Reject(ctx context.Context, actor *model.Actor, id int64, reason string) (StartupView, error)
	UpdateFunds(ctx context.Context, actor *model.Actor, id int64, funds map[string]any) (StartupView, error)
	UpdateTimeline(ctx context.Context, actor *model.Actor, id int64, edits map[string]any) (StartupView, error)
	ToggleHold(ctx context.Context, actor *model.Actor, id int64) (StartupView, error)
}

type startupService struct {
	repos   repository.Repositories
	tx      repository.Transactor
	metrics *metrics.Metrics
}

// NewStartupService creates a new StartupService
func NewStartupService(repos repository.Repositories, tx repository.Transactor, m *metrics.Metrics) StartupService {
	return &startupService{repos: repos, tx: tx, metrics: m}
}

func (s *startupService) List(ctx context.Context, actor *model.Actor, mineOnly bool) ([]StartupView, error) {
	scope, err := listScope(actor, mineOnly)
	if err != nil {
		return nil, err
	}

	startups, err := s.repos.Startups.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	views := make([]StartupView, 0, len(startups))
	for i := range startups {
		if startupVisible(actor, &startups[i].Startup) {
			views = append(views, startupView(actor, &startups[i]))
		}
	}
	return views, nil
}

// requireCompleteProfile loads the actor's user and checks it may submit.
func requireCompleteProfile(ctx context.Context, users repository.UserRepository, actor *model.Actor) (*model.User, error) {
	if err := authz.Check(actor, authz.Authenticated, 0); err != nil {
		return nil, err
	}
	user, err := users.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serrors.New(serrors.ErrNotFound, "user not found")
	}
	if !user.ProfileComplete() {
		return nil, serrors.New(serrors.ErrBadRequest, "fill in your profile first: telegram and a valid resume link are required")
	}
	return user, nil
}

func (s *startupService) Create(ctx context.Context, actor *model.Actor, req model.CreateStartupRequest) (StartupView, error) {
	user, err := requireCompleteProfile(ctx, s.repos.Users, actor)
	if err != nil {
		return StartupView{}, err
	}

	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" || description == "" {
		return StartupView{}, serrors.New(serrors.ErrBadRequest, "name and description are required")
	}

	var opensea *string
	if req.OpenseaLink != nil {
		if link := strings.TrimSpace(*req.OpenseaLink); link != "" {
			if !model.IsValidURL(link) {
				return StartupView{}, serrors.New(serrors.ErrBadRequest, "invalid opensea link")
			}
			opensea = &link
		}
	}

	stage := model.Stage(strings.TrimSpace(req.CurrentStage))
	if model.StageOrder(stage) == -1 {
		return StartupView{}, serrors.New(serrors.ErrBadRequest, "invalid current stage %q", req.CurrentStage)
	}

	startup := &model.Startup{
		Name:          name,
		Description:   description,
		FundsRaised:   map[string]float64{},
		OpenseaLink:   opensea,
		Moderation:    model.NewModeration(),
		CreatorUserID: user.ID,
		CurrentStage:  stage,
		StageTimeline: model.SeedTimeline(stage),
	}
	if err := s.repos.Startups.Create(ctx, startup); err != nil {
		return StartupView{}, err
	}

	s.metrics.Submitted(kindStartup)
	logger.Info(ctx, "startup submitted", zap.Int64("startup_id", startup.ID), zap.Int64("user_id", user.ID))

	return startupView(actor, &model.StartupWithCreator{
		Startup: *startup,
		Creator: &model.UserContact{Username: user.Username, Telegram: user.Telegram, ResumeLink: user.ResumeLink},
	}), nil
}

// mutate locks startup id, runs fn on it inside one transaction and returns
// the refreshed startup.
func (s *startupService) mutate(ctx context.Context, id int64, fn func(repos repository.Repositories, startup *model.Startup) error) (*model.StartupWithCreator, error) {
	var out *model.StartupWithCreator
	err := s.tx.WithTx(ctx, func(repos repository.Repositories) error {
		startup, err := repos.Startups.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if startup == nil {
			return serrors.New(serrors.ErrNotFound, "startup %d not found", id)
		}
		if err := fn(repos, startup); err != nil {
			return err
		}

		out, err = repos.Startups.FindWithCreator(ctx, id)
		if err != nil {
			return err
		}
		if out == nil {
			return serrors.New(serrors.ErrNotFound, "startup %d not found", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *startupService) Approve(ctx context.Context, actor *model.Actor, id int64) (StartupView, error) {
	if err := authz.Check(actor, authz.Moderate, 0); err != nil {
		return StartupView{}, err
	}

	startup, err := s.mutate(ctx, id, func(repos repository.Repositories, st *model.Startup) error {
		m := st.Moderation
		if err := m.Approve(); err != nil {
			return err
		}
		return repos.Startups.UpdateModeration(ctx, st.ID, m)
	})
	if err != nil {
		return StartupView{}, err
	}

	s.metrics.Moderated(kindStartup, string(model.StatusApproved))
	logger.Info(ctx, "startup approved", zap.Int64("startup_id", id), zap.Int64("admin_id", actor.UserID))
	return startupView(actor, startup), nil
}

func (s *startupService) Reject(ctx context.Context, actor *model.Actor, id int64, reason string) (StartupView, error) {
	if err := authz.Check(actor, authz.Moderate, 0); err != nil {
		return StartupView{}, err
	}

	startup, err := s.mutate(ctx, id, func(repos repository.Repositories, st *model.Startup) error {
		m := st.Moderation
		if err := m.Reject(reason); err != nil {
			return err
		}
		return repos.Startups.UpdateModeration(ctx, st.ID, m)
	})
	if err != nil {
		return StartupView{}, err
	}

	s.metrics.Moderated(kindStartup, string(model.StatusRejected))
	logger.Info(ctx, "startup rejected", zap.Int64("startup_id", id), zap.Int64("admin_id", actor.UserID))
	return startupView(actor, startup), nil
}

// UpdateFunds replaces funds_raised. Creator or admin only.
func (s *startupService) UpdateFunds(ctx context.Context, actor *model.Actor, id int64, funds map[string]any) (StartupView, error) {
	if err := authz.Check(actor, authz.Authenticated, 0); err != nil {
		return StartupView{}, err
	}

	startup, err := s.mutate(ctx, id, func(repos repository.Repositories, st *model.Startup) error {
		if err := authz.Check(actor, authz.EditStartup, st.CreatorUserID); err != nil {
			return err
		}
		validated, err := model.ValidateFunds(funds)
		if err != nil {
			return err
		}
		return repos.Startups.UpdateFunds(ctx, st.ID, validated)
	})
	if err != nil {
		return StartupView{}, err
	}

	logger.Info(ctx, "startup funds updated", zap.Int64("startup_id", id))
	return startupView(actor, startup), nil
}

// UpdateTimeline applies forward-only edits to the stage timeline. Creator or
// admin only.
func (s *startupService) UpdateTimeline(ctx context.Context, actor *model.Actor, id int64, edits map[string]any) (StartupView, error) {
	if err := authz.Check(actor, authz.Authenticated, 0); err != nil {
		return StartupView{}, err
	}

	startup, err := s.mutate(ctx, id, func(repos repository.Repositories, st *model.Startup) error {
		if err := authz.Check(actor, authz.EditStartup, st.CreatorUserID); err != nil {
			return err
		}
		timeline, err := model.ApplyTimelineEdits(st.CurrentStage, st.StageTimeline, edits)
		if err != nil {
			return err
		}
		return repos.Startups.UpdateTimeline(ctx, st.ID, timeline)
	})
	if err != nil {
		return StartupView{}, err
	}

	logger.Info(ctx, "startup timeline updated", zap.Int64("startup_id", id))
	return startupView(actor, startup), nil
}

func (s *startupService) ToggleHold(ctx context.Context, actor *model.Actor, id int64) (StartupView, error) {
	if err := authz.Check(actor, authz.ToggleHold, 0); err != nil {
		return StartupView{}, err
	}

	startup, err := s.mutate(ctx, id, func(repos repository.Repositories, st *model.Startup) error {
		return repos.Startups.SetHeld(ctx, st.ID, !st.IsHeld)
	})
	if err != nil {
		return StartupView{}, err
	}

	logger.Info(ctx, "startup hold toggled", zap.Int64("startup_id", id), zap.Bool("is_held", startup.IsHeld))
	return startupView(actor, startup), nil
}
