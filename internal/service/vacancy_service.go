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

const kindVacancy = "vacancy"

// VacancyService runs submission, moderation and applications of vacancies.
type VacancyService interface {
	List(ctx context.Context, actor *model.Actor, mineOnly bool) ([]VacancyView, error)
	Create(ctx context.Context, actor *model.Actor, req model.CreateVacancyRequest) (VacancyView, error)
	Approve(ctx context.Context, actor *model.Actor, id int64) (VacancyView, error)
	Reject(ctx context.Context, actor *model.Actor, id int64, reason string) (VacancyView, error)
	// Apply appends the actor's contact snapshot to the applicant list. A
	// repeated application is a Conflict and writes nothing.
	Apply(ctx context.Context, actor *model.Actor, id int64) error
}

type vacancyService struct {
	repos   repository.Repositories
	tx      repository.Transactor
	metrics *metrics.Metrics
}

// NewVacancyService creates a new VacancyService
func NewVacancyService(repos repository.Repositories, tx repository.Transactor, m *metrics.Metrics) VacancyService {
	return &vacancyService{repos: repos, tx: tx, metrics: m}
}

func errStartupUnavailable() error {
	return serrors.New(serrors.ErrConflict, "startup is not available")
}

func (s *vacancyService) List(ctx context.Context, actor *model.Actor, mineOnly bool) ([]VacancyView, error) {
	scope, err := listScope(actor, mineOnly)
	if err != nil {
		return nil, err
	}

	vacancies, err := s.repos.Vacancies.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	views := make([]VacancyView, 0, len(vacancies))
	for i := range vacancies {
		if vacancyVisible(actor, &vacancies[i]) {
			views = append(views, vacancyView(actor, &vacancies[i]))
		}
	}
	return views, nil
}

// Create submits a vacancy under an approved, non-held startup owned by the
// actor (or any startup for admins).
func (s *vacancyService) Create(ctx context.Context, actor *model.Actor, req model.CreateVacancyRequest) (VacancyView, error) {
	if err := authz.Check(actor, authz.Authenticated, 0); err != nil {
		return VacancyView{}, err
	}

	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	requirements := strings.TrimSpace(req.Requirements)
	if req.StartupID <= 0 || title == "" || description == "" || requirements == "" {
		return VacancyView{}, serrors.New(serrors.ErrBadRequest, "startup_id, title, description and requirements are required")
	}

	startup, err := s.repos.Startups.FindByID(ctx, req.StartupID)
	if err != nil {
		return VacancyView{}, err
	}
	if startup == nil {
		return VacancyView{}, serrors.New(serrors.ErrNotFound, "startup %d not found", req.StartupID)
	}
	if !startup.Available() {
		return VacancyView{}, errStartupUnavailable()
	}
	if err := authz.Check(actor, authz.PostVacancy, startup.CreatorUserID); err != nil {
		return VacancyView{}, err
	}

	var salary *string
	if req.Salary != nil {
		if v := strings.TrimSpace(*req.Salary); v != "" {
			salary = &v
		}
	}

	vacancy := &model.Vacancy{
		StartupID:     startup.ID,
		Title:         title,
		Description:   description,
		Salary:        salary,
		Requirements:  requirements,
		Applicants:    []model.Applicant{},
		Moderation:    model.NewModeration(),
		CreatorUserID: actor.UserID,
	}
	if err := s.repos.Vacancies.Create(ctx, vacancy); err != nil {
		return VacancyView{}, err
	}

	s.metrics.Submitted(kindVacancy)
	logger.Info(ctx, "vacancy submitted", zap.Int64("vacancy_id", vacancy.ID), zap.Int64("startup_id", startup.ID))

	return vacancyView(actor, &model.VacancyWithStartup{
		Vacancy: *vacancy,
		Startup: &model.StartupRef{
			Name:          startup.Name,
			CreatorUserID: startup.CreatorUserID,
			Status:        startup.Status,
			IsHeld:        startup.IsHeld,
		},
	}), nil
}

// moderate locks vacancy id, lets decide validate the transition and
// persists it.
func (s *vacancyService) moderate(ctx context.Context, id int64,
	decide func(repos repository.Repositories, v *model.Vacancy, m *model.Moderation) error,
) (*model.VacancyWithStartup, error) {
	var out *model.VacancyWithStartup
	err := s.tx.WithTx(ctx, func(repos repository.Repositories) error {
		vacancy, err := repos.Vacancies.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if vacancy == nil {
			return serrors.New(serrors.ErrNotFound, "vacancy %d not found", id)
		}

		m := vacancy.Moderation
		if err := decide(repos, vacancy, &m); err != nil {
			return err
		}
		if err := repos.Vacancies.UpdateModeration(ctx, id, m); err != nil {
			return err
		}

		out, err = repos.Vacancies.FindWithStartup(ctx, id)
		if err != nil {
			return err
		}
		if out == nil {
			return serrors.New(serrors.ErrNotFound, "vacancy %d not found", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Approve also requires the owning startup to be approved and not held.
func (s *vacancyService) Approve(ctx context.Context, actor *model.Actor, id int64) (VacancyView, error) {
	if err := authz.Check(actor, authz.Moderate, 0); err != nil {
		return VacancyView{}, err
	}

	vacancy, err := s.moderate(ctx, id, func(repos repository.Repositories, v *model.Vacancy, m *model.Moderation) error {
		if err := m.Approve(); err != nil {
			return err
		}
		startup, err := repos.Startups.FindByIDForUpdate(ctx, v.StartupID)
		if err != nil {
			return err
		}
		if !startup.Available() {
			return errStartupUnavailable()
		}
		return nil
	})
	if err != nil {
		return VacancyView{}, err
	}

	s.metrics.Moderated(kindVacancy, string(model.StatusApproved))
	logger.Info(ctx, "vacancy approved", zap.Int64("vacancy_id", id), zap.Int64("admin_id", actor.UserID))
	return vacancyView(actor, vacancy), nil
}

func (s *vacancyService) Reject(ctx context.Context, actor *model.Actor, id int64, reason string) (VacancyView, error) {
	if err := authz.Check(actor, authz.Moderate, 0); err != nil {
		return VacancyView{}, err
	}

	vacancy, err := s.moderate(ctx, id, func(_ repository.Repositories, _ *model.Vacancy, m *model.Moderation) error {
		return m.Reject(reason)
	})
	if err != nil {
		return VacancyView{}, err
	}

	s.metrics.Moderated(kindVacancy, string(model.StatusRejected))
	logger.Info(ctx, "vacancy rejected", zap.Int64("vacancy_id", id), zap.Int64("admin_id", actor.UserID))
	return vacancyView(actor, vacancy), nil
}

func (s *vacancyService) Apply(ctx context.Context, actor *model.Actor, id int64) error {
	if err := authz.Check(actor, authz.Authenticated, 0); err != nil {
		return err
	}

	err := s.tx.WithTx(ctx, func(repos repository.Repositories) error {
		vacancy, err := repos.Vacancies.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if vacancy == nil {
			return serrors.New(serrors.ErrNotFound, "vacancy %d not found", id)
		}
		if vacancy.Status != model.StatusApproved {
			return serrors.New(serrors.ErrConflict, "only approved vacancies accept applications")
		}

		startup, err := repos.Startups.FindByID(ctx, vacancy.StartupID)
		if err != nil {
			return err
		}
		if startup == nil || startup.IsHeld {
			return errStartupUnavailable()
		}

		user, err := requireCompleteProfile(ctx, repos.Users, actor)
		if err != nil {
			return err
		}
		if vacancy.HasApplicant(user.ID) {
			return serrors.New(serrors.ErrConflict, "already applied")
		}

		vacancy.Applicants = append(vacancy.Applicants, model.Applicant{
			UserID:     user.ID,
			Telegram:   *user.Telegram,
			ResumeLink: *user.ResumeLink,
		})
		return repos.Vacancies.UpdateApplicants(ctx, id, vacancy.Applicants)
	})
	if err != nil {
		return err
	}

	s.metrics.Applied()
	logger.Info(ctx, "applied to vacancy", zap.Int64("vacancy_id", id), zap.Int64("user_id", actor.UserID))
	return nil
}
