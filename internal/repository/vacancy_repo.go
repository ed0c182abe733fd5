package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"yourfuture/internal/model"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
)

// VacancyRepository defines operations for vacancy data
type VacancyRepository interface {
	Create(ctx context.Context, vacancy *model.Vacancy) error
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*model.Vacancy, error)
	FindWithStartup(ctx context.Context, id int64) (*model.VacancyWithStartup, error)
	List(ctx context.Context, scope model.ListScope) ([]model.VacancyWithStartup, error)
	UpdateModeration(ctx context.Context, id int64, m model.Moderation) error
	UpdateApplicants(ctx context.Context, id int64, applicants []model.Applicant) error
}

type vacancyRepository struct {
	db DBTX
}

// NewVacancyRepository creates a new VacancyRepository
func NewVacancyRepository(db DBTX) VacancyRepository {
	return &vacancyRepository{db: db}
}

func scanVacancy(row rowScanner, extra ...any) (*model.Vacancy, error) {
	var (
		v          model.Vacancy
		status     string
		applicants []byte
	)
	dest := append([]any{
		&v.ID, &v.StartupID, &v.Title, &v.Description, &v.Salary, &v.Requirements, &applicants,
		&status, &v.RejectionReason, &v.CreatorUserID, &v.CreatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	v.Status = model.ModerationStatus(status)
	v.Applicants = []model.Applicant{}
	if len(applicants) > 0 {
		if err := json.Unmarshal(applicants, &v.Applicants); err != nil {
			return nil, fmt.Errorf("failed to decode applicants: %w", err)
		}
	}
	return &v, nil
}

// Create inserts a new vacancy
func (r *vacancyRepository) Create(ctx context.Context, v *model.Vacancy) error {
	if v.Applicants == nil {
		v.Applicants = []model.Applicant{}
	}
	applicants, err := json.Marshal(v.Applicants)
	if err != nil {
		return fmt.Errorf("failed to encode applicants: %w", err)
	}

	sql := `INSERT INTO vacancies (startup_id, title, description, salary, requirements, applicants, status,
                                   rejection_reason, creator_user_id)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at`
	err = r.db.QueryRow(ctx, sql, v.StartupID, v.Title, v.Description, v.Salary, v.Requirements, applicants,
		string(v.Status), v.RejectionReason, v.CreatorUserID).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return wrapError(err, "create vacancy")
	}
	return nil
}

func (r *vacancyRepository) FindByIDForUpdate(ctx context.Context, id int64) (*model.Vacancy, error) {
	sql := `SELECT id, startup_id, title, description, salary, requirements, applicants, status,
                   rejection_reason, creator_user_id, created_at
              FROM vacancies WHERE id = $1 FOR UPDATE`
	v, err := scanVacancy(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find vacancy: %w", err)
	}
	return v, nil
}

func (r *vacancyRepository) withStartup() *goqu.SelectDataset {
	return dialect.From(goqu.T("vacancies").As("v")).
		LeftJoin(goqu.T("startups").As("st"), goqu.On(goqu.I("st.id").Eq(goqu.I("v.startup_id")))).
		Select(
			goqu.I("v.id"), goqu.I("v.startup_id"), goqu.I("v.title"), goqu.I("v.description"), goqu.I("v.salary"),
			goqu.I("v.requirements"), goqu.I("v.applicants"), goqu.I("v.status"), goqu.I("v.rejection_reason"),
			goqu.I("v.creator_user_id"), goqu.I("v.created_at"),
			goqu.I("st.name"), goqu.I("st.creator_user_id"), goqu.I("st.status"), goqu.I("st.is_held"),
		)
}

func scanVacancyWithStartup(row rowScanner) (*model.VacancyWithStartup, error) {
	var (
		name, status *string
		creatorID    *int64
		held         *bool
	)
	v, err := scanVacancy(row, &name, &creatorID, &status, &held)
	if err != nil {
		return nil, err
	}

	out := &model.VacancyWithStartup{Vacancy: *v}
	if name != nil && creatorID != nil && status != nil && held != nil {
		out.Startup = &model.StartupRef{
			Name:          *name,
			CreatorUserID: *creatorID,
			Status:        model.ModerationStatus(*status),
			IsHeld:        *held,
		}
	}
	return out, nil
}

func (r *vacancyRepository) FindWithStartup(ctx context.Context, id int64) (*model.VacancyWithStartup, error) {
	sql, args, err := r.withStartup().Where(goqu.I("v.id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build vacancy query: %w", err)
	}

	v, err := scanVacancyWithStartup(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find vacancy: %w", err)
	}
	return v, nil
}

// List returns the vacancies inside scope, newest first. A vacancy counts
// as approved only while its startup is approved too.
func (r *vacancyRepository) List(ctx context.Context, scope model.ListScope) ([]model.VacancyWithStartup, error) {
	where := scopeWhere(scope, scopeColumns{
		creator: "v.creator_user_id",
		status:  "v.status",
		approved: goqu.And(
			goqu.I("v.status").Eq(string(model.StatusApproved)),
			goqu.I("st.status").Eq(string(model.StatusApproved)),
		),
		notHeld: goqu.I("st.is_held").IsFalse(),
	})
	sql, args, err := r.withStartup().Where(where...).Order(goqu.I("v.id").Desc()).Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build vacancies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vacancies: %w", err)
	}
	defer rows.Close()

	vacancies := []model.VacancyWithStartup{}
	for rows.Next() {
		v, err := scanVacancyWithStartup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vacancy row: %w", err)
		}
		vacancies = append(vacancies, *v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vacancy rows: %w", err)
	}
	return vacancies, nil
}

func (r *vacancyRepository) UpdateModeration(ctx context.Context, id int64, m model.Moderation) error {
	return updateModeration(ctx, r.db, "vacancies", "vacancy", id, m)
}

// UpdateApplicants replaces the applicant list. Callers hold the row lock.
func (r *vacancyRepository) UpdateApplicants(ctx context.Context, id int64, applicants []model.Applicant) error {
	raw, err := json.Marshal(applicants)
	if err != nil {
		return fmt.Errorf("failed to encode applicants: %w", err)
	}
	tag, err := r.db.Exec(ctx, `UPDATE vacancies SET applicants = $1 WHERE id = $2`, raw, id)
	if err != nil {
		return fmt.Errorf("failed to update applicants: %w", err)
	}
	return expectOneRow(tag, "vacancy", id)
}
