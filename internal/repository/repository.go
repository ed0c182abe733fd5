// Package repository is the PostgreSQL entity store. Every repository works
// on a DBTX so the same code runs on the pool and inside a transaction.
//
//go:generate mockgen -package mockrepository -destination=mock/mockrepository.go yourfuture/internal/repository UserRepository,StartupRepository,MeetupRepository,VacancyRepository,NotificationRepository,TokenRepository,Transactor
package repository

import (
	"context"
	"errors"
	"fmt"

	"yourfuture/internal/serrors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner is a DBTX that can open transactions.
type TxBeginner interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repositories bundles every repository bound to one DBTX.
type Repositories struct {
	Users         UserRepository
	Startups      StartupRepository
	Meetups       MeetupRepository
	Vacancies     VacancyRepository
	Notifications NotificationRepository
	Tokens        TokenRepository
}

// NewRepositories binds all repositories to db.
func NewRepositories(db DBTX) Repositories {
	return Repositories{
		Users:         NewUserRepository(db),
		Startups:      NewStartupRepository(db),
		Meetups:       NewMeetupRepository(db),
		Vacancies:     NewVacancyRepository(db),
		Notifications: NewNotificationRepository(db),
		Tokens:        NewTokenRepository(db),
	}
}

// Transactor runs a unit of work inside one database transaction.
type Transactor interface {
	// WithTx commits if fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(repos Repositories) error) error
}

type transactor struct {
	db TxBeginner
}

// NewTransactor creates a Transactor on db.
func NewTransactor(db TxBeginner) Transactor {
	return &transactor{db: db}
}

func (t *transactor) WithTx(ctx context.Context, fn func(repos Repositories) error) error {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("could not begin tx: %w", err)
	}

	if err := fn(NewRepositories(tx)); err != nil {
		_ = tx.Rollback(ctx)

		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

var dialect = goqu.Dialect("postgres") //nolint: gochecknoglobals

// rowScanner is implemented by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// uniqueMessages maps unique constraints to client-facing messages.
var uniqueMessages = map[string]string{ //nolint: gochecknoglobals
	"users_username_key": "username is already taken",
	"idx_users_telegram": "telegram handle is already taken",
}

// wrapError turns unique violations into conflicts and wraps everything else
// with the failed action.
func wrapError(err error, action string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		msg, ok := uniqueMessages[pgErr.ConstraintName]
		if !ok {
			msg = "duplicate value"
		}
		return serrors.Wrap(serrors.ErrConflict, err, "%s", msg)
	}

	return fmt.Errorf("failed to %s: %w", action, err)
}

// expectOneRow turns a zero-row update into NotFound.
func expectOneRow(tag pgconn.CommandTag, what string, id int64) error {
	if tag.RowsAffected() == 0 {
		return serrors.New(serrors.ErrNotFound, "%s %d not found", what, id)
	}
	return nil
}
