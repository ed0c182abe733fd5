package service

import (
	"context"
	"testing"
	"time"

	"yourfuture/internal/model"
	"yourfuture/internal/repository"
	mockrepository "yourfuture/internal/repository/mock"

	"go.uber.org/mock/gomock"
)

type repoMocks struct {
	users         *mockrepository.MockUserRepository
	startups      *mockrepository.MockStartupRepository
	meetups       *mockrepository.MockMeetupRepository
	vacancies     *mockrepository.MockVacancyRepository
	notifications *mockrepository.MockNotificationRepository
	tokens        *mockrepository.MockTokenRepository
	tx            *mockrepository.MockTransactor
}

func newRepoMocks(t *testing.T) *repoMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &repoMocks{
		users:         mockrepository.NewMockUserRepository(ctrl),
		startups:      mockrepository.NewMockStartupRepository(ctrl),
		meetups:       mockrepository.NewMockMeetupRepository(ctrl),
		vacancies:     mockrepository.NewMockVacancyRepository(ctrl),
		notifications: mockrepository.NewMockNotificationRepository(ctrl),
		tokens:        mockrepository.NewMockTokenRepository(ctrl),
		tx:            mockrepository.NewMockTransactor(ctrl),
	}
}

func (m *repoMocks) repos() repository.Repositories {
	return repository.Repositories{
		Users:         m.users,
		Startups:      m.startups,
		Meetups:       m.meetups,
		Vacancies:     m.vacancies,
		Notifications: m.notifications,
		Tokens:        m.tokens,
	}
}

// expectTx lets n transactions run against the same mocks.
func (m *repoMocks) expectTx(n int) {
	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(repository.Repositories) error) error {
			return fn(m.repos())
		}).
		Times(n)
}

var (
	adminActor = &model.Actor{UserID: 1, Role: model.RoleAdmin} //nolint: gochecknoglobals
	alice      = &model.Actor{UserID: 2, Role: model.RoleUser}  //nolint: gochecknoglobals
	bob        = &model.Actor{UserID: 3, Role: model.RoleUser}  //nolint: gochecknoglobals
)

func strPtr(s string) *string { return &s }

func completeUser(id int64, username string) *model.User {
	return &model.User{
		ID:         id,
		Username:   username,
		Role:       model.RoleUser,
		FullName:   username,
		Telegram:   strPtr("@" + username),
		ResumeLink: strPtr("https://cv.example.com/" + username),
		CreatedAt:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func pendingStartup(id, creator int64, stage model.Stage) *model.Startup {
	return &model.Startup{
		ID:            id,
		Name:          "Rocket",
		Description:   "to the moon",
		FundsRaised:   map[string]float64{},
		Moderation:    model.NewModeration(),
		CreatorUserID: creator,
		CurrentStage:  stage,
		StageTimeline: model.SeedTimeline(stage),
	}
}

func withCreator(s *model.Startup) *model.StartupWithCreator {
	return &model.StartupWithCreator{Startup: *s, Creator: &model.UserContact{Username: "alice", Telegram: strPtr("@alice")}}
}
