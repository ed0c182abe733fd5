package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"yourfuture/internal/model"
	"yourfuture/internal/serrors"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
)

// StartupRepository defines operations for startup data
type StartupRepository interface {
	Create(ctx context.Context, startup *model.Startup) error
	FindByID(ctx context.Context, id int64) (*model.Startup, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*model.Startup, error)
	FindWithCreator(ctx context.Context, id int64) (*model.StartupWithCreator, error)
	List(ctx context.Context, scope model.ListScope) ([]model.StartupWithCreator, error)
	// UpdateModeration persists a transition out of pending. It fails with a
	// Conflict when the row is no longer pending.
	UpdateModeration(ctx context.Context, id int64, m model.Moderation) error
	UpdateFunds(ctx context.Context, id int64, funds map[string]float64) error
	UpdateTimeline(ctx context.Context, id int64, timeline model.StageTimeline) error
	SetHeld(ctx context.Context, id int64, held bool) error
}

type startupRepository struct {
	db DBTX
}

// NewStartupRepository creates a new StartupRepository
func NewStartupRepository(db DBTX) StartupRepository {
	return &startupRepository{db: db}
}

var startupColumns = []any{ //nolint: gochecknoglobals
	goqu.I("s.id"), goqu.I("s.name"), goqu.I("s.description"), goqu.I("s.funds_raised"),
	goqu.I("s.opensea_link"), goqu.I("s.status"), goqu.I("s.rejection_reason"),
	goqu.I("s.creator_user_id"), goqu.I("s.current_stage"), goqu.I("s.stage_timeline"),
	goqu.I("s.is_held"), goqu.I("s.created_at"),
}

const startupSelect = `SELECT s.id, s.name, s.description, s.funds_raised, s.opensea_link, s.status,
       s.rejection_reason, s.creator_user_id, s.current_stage, s.stage_timeline, s.is_held, s.created_at
  FROM startups s`

// scanStartup reads the startupColumns prefix of a row, followed by extra.
func scanStartup(row rowScanner, extra ...any) (*model.Startup, error) {
	var (
		s                  model.Startup
		status, stage      string
		funds, timelineRaw []byte
	)
	dest := append([]any{
		&s.ID, &s.Name, &s.Description, &funds, &s.OpenseaLink, &status, &s.RejectionReason,
		&s.CreatorUserID, &stage, &timelineRaw, &s.IsHeld, &s.CreatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	s.Status = model.ModerationStatus(status)
	s.CurrentStage = model.Stage(stage)
	s.FundsRaised = map[string]float64{}
	if len(funds) > 0 {
		if err := json.Unmarshal(funds, &s.FundsRaised); err != nil {
			return nil, fmt.Errorf("failed to decode funds_raised: %w", err)
		}
	}
	s.StageTimeline = model.StageTimeline{}
	if len(timelineRaw) > 0 {
		if err := json.Unmarshal(timelineRaw, &s.StageTimeline); err != nil {
			return nil, fmt.Errorf("failed to decode stage_timeline: %w", err)
		}
	}

	return &s, nil
}

// Create inserts a new startup
func (r *startupRepository) Create(ctx context.Context, s *model.Startup) error {
	funds, err := json.Marshal(s.FundsRaised)
	if err != nil {
		return fmt.Errorf("failed to encode funds_raised: %w", err)
	}
	timeline, err := json.Marshal(s.StageTimeline)
	if err != nil {
		return fmt.Errorf("failed to encode stage_timeline: %w", err)
	}

	sql := `INSERT INTO startups (name, description, funds_raised, opensea_link, status, rejection_reason,
                                  creator_user_id, current_stage, stage_timeline, is_held)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at`
	err = r.db.QueryRow(ctx, sql, s.Name, s.Description, funds, s.OpenseaLink, string(s.Status), s.RejectionReason,
		s.CreatorUserID, string(s.CurrentStage), timeline, s.IsHeld).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return wrapError(err, "create startup")
	}
	return nil
}

func (r *startupRepository) findOne(ctx context.Context, sql string, id int64) (*model.Startup, error) {
	s, err := scanStartup(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find startup: %w", err)
	}
	return s, nil
}

// FindByID retrieves a startup by its ID
func (r *startupRepository) FindByID(ctx context.Context, id int64) (*model.Startup, error) {
	return r.findOne(ctx, startupSelect+` WHERE s.id = $1`, id)
}

func (r *startupRepository) FindByIDForUpdate(ctx context.Context, id int64) (*model.Startup, error) {
	return r.findOne(ctx, startupSelect+` WHERE s.id = $1 FOR UPDATE`, id)
}

func (r *startupRepository) withCreator() *goqu.SelectDataset {
	return dialect.From(goqu.T("startups").As("s")).
		LeftJoin(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("s.creator_user_id")))).
		Select(append(startupColumns, goqu.I("u.username"), goqu.I("u.telegram"), goqu.I("u.resume_link"))...)
}

func scanStartupWithCreator(row rowScanner) (*model.StartupWithCreator, error) {
	var username, telegram, resume *string
	s, err := scanStartup(row, &username, &telegram, &resume)
	if err != nil {
		return nil, err
	}

	out := &model.StartupWithCreator{Startup: *s}
	if username != nil {
		out.Creator = &model.UserContact{Username: *username, Telegram: telegram, ResumeLink: resume}
	}
	return out, nil
}

// FindWithCreator retrieves a startup joined with its creator's contacts
func (r *startupRepository) FindWithCreator(ctx context.Context, id int64) (*model.StartupWithCreator, error) {
	sql, args, err := r.withCreator().Where(goqu.I("s.id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build startup query: %w", err)
	}

	s, err := scanStartupWithCreator(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find startup: %w", err)
	}
	return s, nil
}

// List returns the startups inside scope, newest first
func (r *startupRepository) List(ctx context.Context, scope model.ListScope) ([]model.StartupWithCreator, error) {
	where := scopeWhere(scope, scopeColumns{
		creator:  "s.creator_user_id",
		status:   "s.status",
		approved: goqu.I("s.status").Eq(string(model.StatusApproved)),
		notHeld:  goqu.I("s.is_held").IsFalse(),
	})
	sql, args, err := r.withCreator().Where(where...).Order(goqu.I("s.id").Desc()).Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build startups query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query startups: %w", err)
	}
	defer rows.Close()

	startups := []model.StartupWithCreator{}
	for rows.Next() {
		s, err := scanStartupWithCreator(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan startup row: %w", err)
		}
		startups = append(startups, *s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating startup rows: %w", err)
	}
	return startups, nil
}

func (r *startupRepository) UpdateModeration(ctx context.Context, id int64, m model.Moderation) error {
	return updateModeration(ctx, r.db, "startups", "startup", id, m)
}

// UpdateFunds replaces funds_raised
func (r *startupRepository) UpdateFunds(ctx context.Context, id int64, funds map[string]float64) error {
	raw, err := json.Marshal(funds)
	if err != nil {
		return fmt.Errorf("failed to encode funds_raised: %w", err)
	}
	tag, err := r.db.Exec(ctx, `UPDATE startups SET funds_raised = $1 WHERE id = $2`, raw, id)
	if err != nil {
		return fmt.Errorf("failed to update funds: %w", err)
	}
	return expectOneRow(tag, "startup", id)
}

// UpdateTimeline replaces stage_timeline
func (r *startupRepository) UpdateTimeline(ctx context.Context, id int64, timeline model.StageTimeline) error {
	raw, err := json.Marshal(timeline)
	if err != nil {
		return fmt.Errorf("failed to encode stage_timeline: %w", err)
	}
	tag, err := r.db.Exec(ctx, `UPDATE startups SET stage_timeline = $1 WHERE id = $2`, raw, id)
	if err != nil {
		return fmt.Errorf("failed to update timeline: %w", err)
	}
	return expectOneRow(tag, "startup", id)
}

func (r *startupRepository) SetHeld(ctx context.Context, id int64, held bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE startups SET is_held = $1 WHERE id = $2`, held, id)
	if err != nil {
		return fmt.Errorf("failed to update hold flag: %w", err)
	}
	return expectOneRow(tag, "startup", id)
}

// updateModeration is the compare-and-set shared by every moderated table.
func updateModeration(ctx context.Context, db DBTX, table, what string, id int64, m model.Moderation) error {
	sql := `UPDATE ` + table + ` SET status = $1, rejection_reason = $2 WHERE id = $3 AND status = 'pending'`
	tag, err := db.Exec(ctx, sql, string(m.Status), m.RejectionReason, id)
	if err != nil {
		return fmt.Errorf("failed to update %s moderation: %w", what, err)
	}
	if tag.RowsAffected() == 0 {
		return serrors.New(serrors.ErrConflict, "%s %d is no longer pending", what, id)
	}
	return nil
}
