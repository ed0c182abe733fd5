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

const kindMeetup = "meetup"

// MeetupService runs submission and moderation of meetups.
type MeetupService interface {
	List(ctx context.Context, actor *model.Actor, mineOnly bool) ([]MeetupView, error)
	Create(ctx context.Context, actor *model.Actor, req model.CreateMeetupRequest) (MeetupView, error)
	Approve(ctx context.Context, actor *model.Actor, id int64) (MeetupView, error)
	Reject(ctx context.Context, actor *model.Actor, id int64, reason string) (MeetupView, error)
}

type meetupService struct {
	repos   repository.Repositories
	tx      repository.Transactor
	metrics *metrics.Metrics
}

// NewMeetupService creates a new MeetupService
func NewMeetupService(repos repository.Repositories, tx repository.Transactor, m *metrics.Metrics) MeetupService {
	return &meetupService{repos: repos, tx: tx, metrics: m}
}

func (s *meetupService) List(ctx context.Context, actor *model.Actor, mineOnly bool) ([]MeetupView, error) {
	scope, err := listScope(actor, mineOnly)
	if err != nil {
		return nil, err
	}

	meetups, err := s.repos.Meetups.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	views := make([]MeetupView, 0, len(meetups))
	for i := range meetups {
		if meetupVisible(actor, &meetups[i].Meetup) {
			views = append(views, meetupView(actor, &meetups[i]))
		}
	}
	return views, nil
}

func (s *meetupService) Create(ctx context.Context, actor *model.Actor, req model.CreateMeetupRequest) (MeetupView, error) {
	user, err := requireCompleteProfile(ctx, s.repos.Users, actor)
	if err != nil {
		return MeetupView{}, err
	}

	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	link := strings.TrimSpace(req.Link)
	if title == "" || description == "" || link == "" || strings.TrimSpace(req.Date) == "" {
		return MeetupView{}, serrors.New(serrors.ErrBadRequest, "title, date, description and link are required")
	}
	date, err := model.ParseMeetupDate(req.Date)
	if err != nil {
		return MeetupView{}, err
	}
	if !model.IsValidURL(link) {
		return MeetupView{}, serrors.New(serrors.ErrBadRequest, "invalid meetup link")
	}

	meetup := &model.Meetup{
		Title:         title,
		Date:          date,
		Description:   description,
		Link:          link,
		Moderation:    model.NewModeration(),
		CreatorUserID: user.ID,
	}
	if err := s.repos.Meetups.Create(ctx, meetup); err != nil {
		return MeetupView{}, err
	}

	s.metrics.Submitted(kindMeetup)
	logger.Info(ctx, "meetup submitted", zap.Int64("meetup_id", meetup.ID), zap.Int64("user_id", user.ID))

	username := user.Username
	return meetupView(actor, &model.MeetupWithCreator{Meetup: *meetup, CreatorUsername: &username}), nil
}

// moderate locks meetup id and persists the transition produced by decide.
func (s *meetupService) moderate(ctx context.Context, id int64, decide func(m *model.Moderation) error) (*model.MeetupWithCreator, error) {
	var out *model.MeetupWithCreator
	err := s.tx.WithTx(ctx, func(repos repository.Repositories) error {
		meetup, err := repos.Meetups.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if meetup == nil {
			return serrors.New(serrors.ErrNotFound, "meetup %d not found", id)
		}

		m := meetup.Moderation
		if err := decide(&m); err != nil {
			return err
		}
		if err := repos.Meetups.UpdateModeration(ctx, id, m); err != nil {
			return err
		}

		out, err = repos.Meetups.FindWithCreator(ctx, id)
		if err != nil {
			return err
		}
		if out == nil {
			return serrors.New(serrors.ErrNotFound, "meetup %d not found", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *meetupService) Approve(ctx context.Context, actor *model.Actor, id int64) (MeetupView, error) {
	if err := authz.Check(actor, authz.Moderate, 0); err != nil {
		return MeetupView{}, err
	}

	meetup, err := s.moderate(ctx, id, func(m *model.Moderation) error { return m.Approve() })
	if err != nil {
		return MeetupView{}, err
	}

	s.metrics.Moderated(kindMeetup, string(model.StatusApproved))
	logger.Info(ctx, "meetup approved", zap.Int64("meetup_id", id), zap.Int64("admin_id", actor.UserID))
	return meetupView(actor, meetup), nil
}

func (s *meetupService) Reject(ctx context.Context, actor *model.Actor, id int64, reason string) (MeetupView, error) {
	if err := authz.Check(actor, authz.Moderate, 0); err != nil {
		return MeetupView{}, err
	}

	meetup, err := s.moderate(ctx, id, func(m *model.Moderation) error { return m.Reject(reason) })
	if err != nil {
		return MeetupView{}, err
	}

	s.metrics.Moderated(kindMeetup, string(model.StatusRejected))
	logger.Info(ctx, "meetup rejected", zap.Int64("meetup_id", id), zap.Int64("admin_id", actor.UserID))
	return meetupView(actor, meetup), nil
}
