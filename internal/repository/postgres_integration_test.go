package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"yourfuture/internal/config"
	"yourfuture/internal/model"
	"yourfuture/internal/repository"
	"yourfuture/internal/serrors"
	"yourfuture/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "could not start container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Database.Username = testUser
	cfg.Database.Password = testPassword
	cfg.Database.Host = host
	cfg.Database.Port = port.Int()
	cfg.Database.Name = testDB
	cfg.Database.SslMode = "disable"
	cfg.Database.ConnectRetries = 10
	cfg.Database.ConnectInterval = time.Second

	pool, err := config.ConnectDB(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, config.Migrate(ctx, pool))

	return pool
}

func createUser(t *testing.T, repos repository.Repositories, name string) *model.User {
	t.Helper()
	tg := "@" + name
	resume := fmt.Sprintf("https://cv.example.com/%s", name)
	u := &model.User{Username: name, PasswordHash: "x", Role: model.RoleUser, FullName: name, Telegram: &tg, ResumeLink: &resume}
	require.NoError(t, repos.Users.Create(context.Background(), u))
	return u
}

func TestPostgres_ListingVisibility(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repos := repository.NewRepositories(pool)

	alice := createUser(t, repos, "alice")
	bob := createUser(t, repos, "bob")

	approved := &model.Startup{
		Name: "Approved", Description: "d", FundsRaised: map[string]float64{}, Moderation: model.NewModeration(),
		CreatorUserID: alice.ID, CurrentStage: model.StageIdea, StageTimeline: model.SeedTimeline(model.StageIdea),
	}
	pending := &model.Startup{
		Name: "Pending", Description: "d", FundsRaised: map[string]float64{}, Moderation: model.NewModeration(),
		CreatorUserID: alice.ID, CurrentStage: model.StageMVP, StageTimeline: model.SeedTimeline(model.StageMVP),
	}
	require.NoError(t, repos.Startups.Create(ctx, approved))
	require.NoError(t, repos.Startups.Create(ctx, pending))
	require.NoError(t, repos.Startups.UpdateModeration(ctx, approved.ID, model.Moderation{Status: model.StatusApproved}))

	anon, err := repos.Startups.List(ctx, model.ListScope{ExcludeHeld: true})
	require.NoError(t, err)
	require.Len(t, anon, 1)
	assert.Equal(t, "Approved", anon[0].Name)
	require.NotNil(t, anon[0].Creator)
	assert.Equal(t, "alice", anon[0].Creator.Username)

	owner, err := repos.Startups.List(ctx, model.ListScope{ViewerID: alice.ID, ExcludeHeld: true})
	require.NoError(t, err)
	assert.Len(t, owner, 2)

	other, err := repos.Startups.List(ctx, model.ListScope{ViewerID: bob.ID, ExcludeHeld: true})
	require.NoError(t, err)
	assert.Len(t, other, 1)

	require.NoError(t, repos.Startups.SetHeld(ctx, approved.ID, true))
	anon, err = repos.Startups.List(ctx, model.ListScope{ExcludeHeld: true})
	require.NoError(t, err)
	assert.Empty(t, anon)

	err = repos.Startups.UpdateModeration(ctx, approved.ID, model.Moderation{Status: model.StatusApproved})
	assert.ErrorIs(t, err, serrors.ErrConflict)
}

func TestPostgres_TelegramUnique(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repos := repository.NewRepositories(pool)

	alice := createUser(t, repos, "alice")
	bob := createUser(t, repos, "bob")

	bob.Telegram = alice.Telegram
	err := repos.Users.UpdateProfile(ctx, bob)
	assert.ErrorIs(t, err, serrors.ErrConflict)

	found, err := repos.Users.FindByTelegram(ctx, *alice.Telegram)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)
}

func TestPostgres_VacancyApplyInTx(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repos := repository.NewRepositories(pool)
	tx := repository.NewTransactor(pool)

	alice := createUser(t, repos, "alice")
	s := &model.Startup{
		Name: "S", Description: "d", FundsRaised: map[string]float64{}, Moderation: model.NewModeration(),
		CreatorUserID: alice.ID, CurrentStage: model.StageIdea, StageTimeline: model.SeedTimeline(model.StageIdea),
	}
	require.NoError(t, repos.Startups.Create(ctx, s))
	v := &model.Vacancy{StartupID: s.ID, Title: "Go dev", Description: "d", Requirements: "go", Moderation: model.NewModeration(), CreatorUserID: alice.ID}
	require.NoError(t, repos.Vacancies.Create(ctx, v))

	err := tx.WithTx(ctx, func(r repository.Repositories) error {
		locked, err := r.Vacancies.FindByIDForUpdate(ctx, v.ID)
		if err != nil {
			return err
		}
		locked.Applicants = append(locked.Applicants, model.Applicant{UserID: alice.ID, Telegram: "@alice", ResumeLink: "https://cv.example.com/alice"})
		return r.Vacancies.UpdateApplicants(ctx, v.ID, locked.Applicants)
	})
	require.NoError(t, err)

	got, err := repos.Vacancies.FindWithStartup(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, got.Applicants, 1)
	assert.True(t, got.HasApplicant(alice.ID))
	require.NotNil(t, got.Startup)
	assert.Equal(t, "S", got.Startup.Name)
}

// runConcurrently starts n calls of fn at once and collects their errors.
func runConcurrently(n int, fn func() error) []error {
	errs := make([]error, n)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			errs[i] = fn()
		}()
	}
	close(start)
	wg.Wait()

	return errs
}

func countOutcomes(t *testing.T, errs []error) (ok, conflicts int) {
	t.Helper()
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case serrors.KindOf(err) == serrors.ErrConflict:
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	return ok, conflicts
}

func TestPostgres_ConcurrentApproveSucceedsOnce(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repos := repository.NewRepositories(pool)
	startups := service.NewStartupService(repos, repository.NewTransactor(pool), nil)

	alice := createUser(t, repos, "alice")
	s := &model.Startup{
		Name: "Race", Description: "d", FundsRaised: map[string]float64{}, Moderation: model.NewModeration(),
		CreatorUserID: alice.ID, CurrentStage: model.StageIdea, StageTimeline: model.SeedTimeline(model.StageIdea),
	}
	require.NoError(t, repos.Startups.Create(ctx, s))

	admin := &model.Actor{UserID: 1000, Role: model.RoleAdmin}
	const n = 8
	errs := runConcurrently(n, func() error {
		_, err := startups.Approve(ctx, admin, s.ID)
		return err
	})

	ok, conflicts := countOutcomes(t, errs)
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflicts)

	stored, err := repos.Startups.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, stored.Status)
}

func TestPostgres_ConcurrentApplyKeepsOneEntry(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repos := repository.NewRepositories(pool)
	vacancies := service.NewVacancyService(repos, repository.NewTransactor(pool), nil)

	alice := createUser(t, repos, "alice")
	bob := createUser(t, repos, "bob")
	s := &model.Startup{
		Name: "S", Description: "d", FundsRaised: map[string]float64{}, Moderation: model.NewModeration(),
		CreatorUserID: alice.ID, CurrentStage: model.StageIdea, StageTimeline: model.SeedTimeline(model.StageIdea),
	}
	require.NoError(t, repos.Startups.Create(ctx, s))
	require.NoError(t, repos.Startups.UpdateModeration(ctx, s.ID, model.Moderation{Status: model.StatusApproved}))
	v := &model.Vacancy{StartupID: s.ID, Title: "Go dev", Description: "d", Requirements: "go", Moderation: model.NewModeration(), CreatorUserID: alice.ID}
	require.NoError(t, repos.Vacancies.Create(ctx, v))
	require.NoError(t, repos.Vacancies.UpdateModeration(ctx, v.ID, model.Moderation{Status: model.StatusApproved}))

	applicant := &model.Actor{UserID: bob.ID, Role: model.RoleUser}
	const n = 8
	errs := runConcurrently(n, func() error {
		return vacancies.Apply(ctx, applicant, v.ID)
	})

	ok, conflicts := countOutcomes(t, errs)
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflicts)

	got, err := repos.Vacancies.FindWithStartup(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, got.Applicants, 1)
	assert.Equal(t, bob.ID, got.Applicants[0].UserID)
}
