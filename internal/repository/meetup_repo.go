package repository

import (
	"context"
	"errors"
	"fmt"

	"yourfuture/internal/model"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
)

// MeetupRepository defines operations for meetup data
type MeetupRepository interface {
	Create(ctx context.Context, meetup *model.Meetup) error
	FindByIDForUpdate(ctx context.Context, id int64) (*model.Meetup, error)
	FindWithCreator(ctx context.Context, id int64) (*model.MeetupWithCreator, error)
	List(ctx context.Context, scope model.ListScope) ([]model.MeetupWithCreator, error)
	UpdateModeration(ctx context.Context, id int64, m model.Moderation) error
}

type meetupRepository struct {
	db DBTX
}

// NewMeetupRepository creates a new MeetupRepository
func NewMeetupRepository(db DBTX) MeetupRepository {
	return &meetupRepository{db: db}
}

func scanMeetup(row rowScanner, extra ...any) (*model.Meetup, error) {
	var (
		m      model.Meetup
		status string
	)
	dest := append([]any{
		&m.ID, &m.Title, &m.Date, &m.Description, &m.Link, &status, &m.RejectionReason, &m.CreatorUserID, &m.CreatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	m.Status = model.ModerationStatus(status)
	m.Date = m.Date.UTC()
	return &m, nil
}

// Create inserts a new meetup
func (r *meetupRepository) Create(ctx context.Context, m *model.Meetup) error {
	sql := `INSERT INTO meetups (title, date, description, link, status, rejection_reason, creator_user_id)
            VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, m.Title, m.Date, m.Description, m.Link, string(m.Status), m.RejectionReason, m.CreatorUserID).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return wrapError(err, "create meetup")
	}
	return nil
}

func (r *meetupRepository) FindByIDForUpdate(ctx context.Context, id int64) (*model.Meetup, error) {
	sql := `SELECT id, title, date, description, link, status, rejection_reason, creator_user_id, created_at
              FROM meetups WHERE id = $1 FOR UPDATE`
	m, err := scanMeetup(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find meetup: %w", err)
	}
	return m, nil
}

func (r *meetupRepository) withCreator() *goqu.SelectDataset {
	return dialect.From(goqu.T("meetups").As("m")).
		LeftJoin(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("m.creator_user_id")))).
		Select(
			goqu.I("m.id"), goqu.I("m.title"), goqu.I("m.date"), goqu.I("m.description"), goqu.I("m.link"),
			goqu.I("m.status"), goqu.I("m.rejection_reason"), goqu.I("m.creator_user_id"), goqu.I("m.created_at"),
			goqu.I("u.username"),
		)
}

func scanMeetupWithCreator(row rowScanner) (*model.MeetupWithCreator, error) {
	var username *string
	m, err := scanMeetup(row, &username)
	if err != nil {
		return nil, err
	}
	return &model.MeetupWithCreator{Meetup: *m, CreatorUsername: username}, nil
}

func (r *meetupRepository) FindWithCreator(ctx context.Context, id int64) (*model.MeetupWithCreator, error) {
	sql, args, err := r.withCreator().Where(goqu.I("m.id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build meetup query: %w", err)
	}

	m, err := scanMeetupWithCreator(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find meetup: %w", err)
	}
	return m, nil
}

// List returns the meetups inside scope, latest date first
func (r *meetupRepository) List(ctx context.Context, scope model.ListScope) ([]model.MeetupWithCreator, error) {
	where := scopeWhere(scope, scopeColumns{
		creator:  "m.creator_user_id",
		status:   "m.status",
		approved: goqu.I("m.status").Eq(string(model.StatusApproved)),
	})
	sql, args, err := r.withCreator().Where(where...).Order(goqu.I("m.date").Desc(), goqu.I("m.id").Desc()).Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build meetups query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query meetups: %w", err)
	}
	defer rows.Close()

	meetups := []model.MeetupWithCreator{}
	for rows.Next() {
		m, err := scanMeetupWithCreator(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meetup row: %w", err)
		}
		meetups = append(meetups, *m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meetup rows: %w", err)
	}
	return meetups, nil
}

func (r *meetupRepository) UpdateModeration(ctx context.Context, id int64, m model.Moderation) error {
	return updateModeration(ctx, r.db, "meetups", "meetup", id, m)
}
