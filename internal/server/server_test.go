package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"yourfuture/internal/logger"
	"yourfuture/internal/metrics"
	"yourfuture/internal/model"
	"yourfuture/internal/repository"
	mockrepository "yourfuture/internal/repository/mock"
	"yourfuture/internal/server"
	"yourfuture/internal/service"
	"yourfuture/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type fixture struct {
	users         *mockrepository.MockUserRepository
	startups      *mockrepository.MockStartupRepository
	meetups       *mockrepository.MockMeetupRepository
	vacancies     *mockrepository.MockVacancyRepository
	notifications *mockrepository.MockNotificationRepository
	tokens        *mockrepository.MockTokenRepository
	jwt           *utils.JWTUtil
	router        *gin.Engine
	dbErr         error
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment))

	ctrl := gomock.NewController(t)
	f := &fixture{
		users:         mockrepository.NewMockUserRepository(ctrl),
		startups:      mockrepository.NewMockStartupRepository(ctrl),
		meetups:       mockrepository.NewMockMeetupRepository(ctrl),
		vacancies:     mockrepository.NewMockVacancyRepository(ctrl),
		notifications: mockrepository.NewMockNotificationRepository(ctrl),
		tokens:        mockrepository.NewMockTokenRepository(ctrl),
		jwt:           utils.NewJWTUtil("test-secret", time.Hour),
	}
	f.tokens.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()

	repos := repository.Repositories{
		Users:         f.users,
		Startups:      f.startups,
		Meetups:       f.meetups,
		Vacancies:     f.vacancies,
		Notifications: f.notifications,
		Tokens:        f.tokens,
	}
	tx := mockrepository.NewMockTransactor(ctrl)
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(repository.Repositories) error) error {
			return fn(repos)
		}).AnyTimes()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	router, err := server.NewRouter(server.Deps{
		DB:            pingFunc(func(context.Context) error { return f.dbErr }),
		JWT:           f.jwt,
		Tokens:        f.tokens,
		Metrics:       m,
		Gatherer:      reg,
		Auth:          service.NewAuthService(f.users, f.tokens, f.jwt),
		Users:         service.NewUserService(f.users),
		Notifications: service.NewNotificationService(f.users, f.notifications, m),
		Startups:      service.NewStartupService(repos, tx, m),
		Meetups:       service.NewMeetupService(repos, tx, m),
		Vacancies:     service.NewVacancyService(repos, tx, m),
	}, server.Options{MetricsPath: "/metrics", AllowedOrigins: []string{"*"}})
	require.NoError(t, err)
	f.router = router

	return f
}

func (f *fixture) token(t *testing.T, userID int64, role string) string {
	t.Helper()
	token, err := f.jwt.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (f *fixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func complete(id int64, username string) *model.User {
	tg := "@" + username
	cv := "https://cv.example.com/" + username
	return &model.User{ID: id, Username: username, Role: model.RoleUser, FullName: username, Telegram: &tg, ResumeLink: &cv}
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","db":"healthy"}`, rec.Body.String())

	f.dbErr = errors.New("down")
	rec = f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)

	var stored *model.User
	f.users.EXPECT().FindByUsername(gomock.Any(), "carol").
		DoAndReturn(func(context.Context, string) (*model.User, error) { return stored, nil }).Times(3)
	f.users.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *model.User) error {
			u.ID = 4
			stored = u
			return nil
		})

	rec := f.do(http.MethodPost, "/register", "", `{"username":"carol","password":"s3cret"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(http.MethodPost, "/register", "", `{"username":"carol","password":"s3cret"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"username is already taken"}`, rec.Body.String())

	rec = f.do(http.MethodPost, "/register", "", `{"username":"dave","password":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/login", "", `{"username":"carol","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]string](t, rec)
	assert.Equal(t, "carol", body["username"])
	assert.Equal(t, model.RoleUser, body["role"])
	assert.NotEmpty(t, body["access_token"])
}

func TestLogoutRevokesToken(t *testing.T) {
	f := newFixture(t)
	token := f.token(t, 2, model.RoleUser)
	f.tokens.EXPECT().Revoke(gomock.Any(), gomock.Any(), int64(2), gomock.Any()).Return(nil)

	rec := f.do(http.MethodPost, "/logout", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/logout", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"authorization header required","code":"token_missing"}`, rec.Body.String())
}

func TestProfileUpdate(t *testing.T) {
	f := newFixture(t)
	token := f.token(t, 2, model.RoleUser)
	f.users.EXPECT().FindByID(gomock.Any(), int64(2)).
		Return(&model.User{ID: 2, Username: "alice", Role: model.RoleUser, FullName: "alice"}, nil).Times(3)
	f.users.EXPECT().FindByTelegram(gomock.Any(), "@alice_tg").Return(nil, nil)
	f.users.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil)

	rec := f.do(http.MethodPut, "/profile", token, `{"telegram":"alice_tg"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Profile service.ProfileView `json:"profile"`
	}](t, rec)
	assert.Equal(t, "@alice_tg", *body.Profile.Telegram)

	rec = f.do(http.MethodPut, "/profile", token, `{"resume_link":"not-a-url"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid resume link"}`, rec.Body.String())

	rec = f.do(http.MethodPut, "/profile", token, `{}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"No data to update"}`, rec.Body.String())
}

func TestStartupListing(t *testing.T) {
	f := newFixture(t)
	f.startups.EXPECT().List(gomock.Any(), model.ListScope{ExcludeHeld: true}).Return(nil, nil)

	rec := f.do(http.MethodGet, "/startups", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = f.do(http.MethodGet, "/startups?filter_by_creator=true", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodGet, "/startups", "Bearer-less", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestModerationRoutesRequireAdmin(t *testing.T) {
	f := newFixture(t)
	user := f.token(t, 2, model.RoleUser)

	for _, path := range []string{"/startups/1/approve", "/meetups/1/approve", "/vacancies/1/approve", "/startups/1/toggle_hold"} {
		rec := f.do(http.MethodPut, path, user, "")
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
	}
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/users", user, "").Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPut, "/startups/1/approve", "", "").Code)
}

func TestStartupApproveTwice(t *testing.T) {
	f := newFixture(t)
	admin := f.token(t, 1, model.RoleAdmin)

	row := &model.Startup{ID: 7, Name: "Rocket", Moderation: model.NewModeration(), CreatorUserID: 2, CurrentStage: model.StageIdea}
	f.startups.EXPECT().FindByIDForUpdate(gomock.Any(), int64(7)).
		DoAndReturn(func(context.Context, int64) (*model.Startup, error) {
			cp := *row
			return &cp, nil
		}).Times(2)
	f.startups.EXPECT().UpdateModeration(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, m model.Moderation) error {
			row.Moderation = m
			return nil
		})
	f.startups.EXPECT().FindWithCreator(gomock.Any(), int64(7)).
		DoAndReturn(func(context.Context, int64) (*model.StartupWithCreator, error) {
			return &model.StartupWithCreator{Startup: *row}, nil
		})

	rec := f.do(http.MethodPut, "/startups/7/approve", admin, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Message string              `json:"message"`
		Startup service.StartupView `json:"startup"`
	}](t, rec)
	assert.Equal(t, model.StatusApproved, body.Startup.Status)
	assert.Equal(t, "N/A", body.Startup.CreatorUsername)

	rec = f.do(http.MethodPut, "/startups/7/approve", admin, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(http.MethodPut, "/startups/abc/approve", admin, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRejectWithoutBody(t *testing.T) {
	f := newFixture(t)
	admin := f.token(t, 1, model.RoleAdmin)

	approved := &model.Startup{ID: 7, Name: "Rocket", Moderation: model.Moderation{Status: model.StatusApproved}, CreatorUserID: 2}
	pending := &model.Startup{ID: 8, Name: "Drone", Moderation: model.NewModeration(), CreatorUserID: 2}
	f.startups.EXPECT().FindByIDForUpdate(gomock.Any(), int64(7)).Return(approved, nil)
	f.startups.EXPECT().FindByIDForUpdate(gomock.Any(), int64(8)).Return(pending, nil)
	f.vacancies.EXPECT().FindByIDForUpdate(gomock.Any(), int64(5)).
		Return(&model.Vacancy{ID: 5, StartupID: 7, Moderation: model.Moderation{Status: model.StatusRejected}}, nil)

	rec := f.do(http.MethodPut, "/startups/7/reject", admin, "")
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = f.do(http.MethodPut, "/vacancies/5/reject", admin, "")
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = f.do(http.MethodPut, "/startups/8/reject", admin, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "rejection reason is required", decode[map[string]string](t, rec)["error"])

	rec = f.do(http.MethodPut, "/startups/8/reject", admin, "{")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["error"], "Invalid request")
}

func TestStartupTimelineAndFunds(t *testing.T) {
	f := newFixture(t)
	owner := f.token(t, 2, model.RoleUser)

	row := &model.Startup{
		ID: 7, Name: "Rocket", Moderation: model.NewModeration(), CreatorUserID: 2,
		CurrentStage: model.StagePMF, StageTimeline: model.SeedTimeline(model.StagePMF),
	}
	f.startups.EXPECT().FindByIDForUpdate(gomock.Any(), int64(7)).
		DoAndReturn(func(context.Context, int64) (*model.Startup, error) {
			cp := *row
			return &cp, nil
		}).AnyTimes()

	rec := f.do(http.MethodPut, "/startups/7/timeline", owner, `{"mvp":"2025-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPut, "/startups/7/funds", owner, `null`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPut, "/startups/7/funds", owner, `{"XRP":"1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVacancyApplyAndHold(t *testing.T) {
	f := newFixture(t)
	bob := f.token(t, 3, model.RoleUser)
	admin := f.token(t, 1, model.RoleAdmin)

	vacancy := &model.Vacancy{
		ID: 20, StartupID: 10, Title: "Backend", Applicants: []model.Applicant{},
		Moderation: model.Moderation{Status: model.StatusApproved}, CreatorUserID: 2,
	}
	startup := &model.Startup{ID: 10, Name: "Rocket", Moderation: model.Moderation{Status: model.StatusApproved}, CreatorUserID: 2}

	f.vacancies.EXPECT().FindByIDForUpdate(gomock.Any(), int64(20)).
		DoAndReturn(func(context.Context, int64) (*model.Vacancy, error) {
			cp := *vacancy
			cp.Applicants = append([]model.Applicant(nil), vacancy.Applicants...)
			return &cp, nil
		}).Times(2)
	f.startups.EXPECT().FindByID(gomock.Any(), int64(10)).Return(startup, nil).Times(2)
	f.users.EXPECT().FindByID(gomock.Any(), int64(3)).Return(complete(3, "bob"), nil).Times(2)
	f.vacancies.EXPECT().UpdateApplicants(gomock.Any(), int64(20), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, a []model.Applicant) error {
			vacancy.Applicants = a
			return nil
		})

	rec := f.do(http.MethodPost, "/vacancies/20/apply", bob, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(http.MethodPost, "/vacancies/20/apply", bob, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"already applied"}`, rec.Body.String())
	assert.Len(t, vacancy.Applicants, 1)

	held := model.VacancyWithStartup{
		Vacancy: *vacancy,
		Startup: &model.StartupRef{Name: "Rocket", CreatorUserID: 2, Status: model.StatusApproved, IsHeld: true},
	}
	f.vacancies.EXPECT().List(gomock.Any(), model.ListScope{ExcludeHeld: true}).Return([]model.VacancyWithStartup{held}, nil)
	f.vacancies.EXPECT().List(gomock.Any(), model.ListScope{AllStatuses: true}).Return([]model.VacancyWithStartup{held}, nil)

	rec = f.do(http.MethodGet, "/vacancies", "", "")
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = f.do(http.MethodGet, "/vacancies", admin, "")
	views := decode[[]service.VacancyView](t, rec)
	require.Len(t, views, 1)
	assert.True(t, views[0].IsEffectivelyHeld)
	assert.Equal(t, 1, views[0].ApplicantCount)
}

func TestSendNotification(t *testing.T) {
	f := newFixture(t)
	admin := f.token(t, 1, model.RoleAdmin)
	f.users.EXPECT().FindByID(gomock.Any(), int64(2)).Return(complete(2, "alice"), nil)
	f.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	rec := f.do(http.MethodPost, "/users/2/notifications", admin, `{"message":"hello"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode[struct {
		Message      string                   `json:"message"`
		Notification service.NotificationView `json:"notification"`
	}](t, rec)
	assert.Equal(t, "Notification sent to alice", body.Message)
	assert.Equal(t, "hello", body.Notification.Message)
	assert.False(t, body.Notification.IsRead)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	f.do(http.MethodGet, "/health", "", "")

	rec := f.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `yourfuture_http_request_duration_seconds_count{method="GET",route="/health",status_code="200"} 1`)
}
