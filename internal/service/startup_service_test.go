package service

import (
	"context"
	"testing"

	"yourfuture/internal/model"
	"yourfuture/internal/serrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// statefulStartup wires the startup mock to one in-memory row.
func statefulStartup(m *repoMocks, row *model.Startup) {
	m.startups.EXPECT().FindByIDForUpdate(gomock.Any(), row.ID).
		DoAndReturn(func(context.Context, int64) (*model.Startup, error) {
			cp := *row
			return &cp, nil
		}).AnyTimes()
	m.startups.EXPECT().FindWithCreator(gomock.Any(), row.ID).
		DoAndReturn(func(context.Context, int64) (*model.StartupWithCreator, error) {
			return withCreator(row), nil
		}).AnyTimes()
	m.startups.EXPECT().UpdateModeration(gomock.Any(), row.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, mod model.Moderation) error {
			row.Moderation = mod
			return nil
		}).AnyTimes()
}

func TestStartupService_ApproveTwiceConflicts(t *testing.T) {
	m := newRepoMocks(t)
	row := pendingStartup(10, alice.UserID, model.StageIdea)
	statefulStartup(m, row)
	m.expectTx(2)
	svc := NewStartupService(m.repos(), m.tx, nil)

	view, err := svc.Approve(context.Background(), adminActor, 10)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, view.Status)
	assert.Nil(t, view.RejectionReason)

	_, err = svc.Approve(context.Background(), adminActor, 10)
	assert.ErrorIs(t, err, serrors.ErrConflict)
}

func TestStartupService_ApproveThenRejectConflicts(t *testing.T) {
	m := newRepoMocks(t)
	row := pendingStartup(10, alice.UserID, model.StageIdea)
	statefulStartup(m, row)
	m.expectTx(2)
	svc := NewStartupService(m.repos(), m.tx, nil)

	_, err := svc.Approve(context.Background(), adminActor, 10)
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), adminActor, 10, "spam")
	assert.ErrorIs(t, err, serrors.ErrConflict)
	assert.Equal(t, model.StatusApproved, row.Status)
}

func TestStartupService_RejectStoresTrimmedReason(t *testing.T) {
	m := newRepoMocks(t)
	row := pendingStartup(10, alice.UserID, model.StageIdea)
	statefulStartup(m, row)
	m.expectTx(2)
	svc := NewStartupService(m.repos(), m.tx, nil)

	_, err := svc.Reject(context.Background(), adminActor, 10, "   ")
	assert.ErrorIs(t, err, serrors.ErrBadRequest)

	view, err := svc.Reject(context.Background(), adminActor, 10, "  duplicate  ")
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, view.Status)
	require.NotNil(t, view.RejectionReason)
	assert.Equal(t, "duplicate", *view.RejectionReason)
}

func TestStartupService_ModerationRequiresAdmin(t *testing.T) {
	m := newRepoMocks(t)
	svc := NewStartupService(m.repos(), m.tx, nil)

	_, err := svc.Approve(context.Background(), alice, 10)
	assert.ErrorIs(t, err, serrors.ErrForbidden)

	_, err = svc.Reject(context.Background(), nil, 10, "no")
	assert.ErrorIs(t, err, serrors.ErrUnauthorized)

	_, err = svc.ToggleHold(context.Background(), bob, 10)
	assert.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestStartupService_ApproveMissing(t *testing.T) {
	m := newRepoMocks(t)
	m.expectTx(1)
	m.startups.EXPECT().FindByIDForUpdate(gomock.Any(), int64(99)).Return(nil, nil)
	svc := NewStartupService(m.repos(), m.tx, nil)

	_, err := svc.Approve(context.Background(), adminActor, 99)
	assert.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestStartupService_CreateRequiresCompleteProfile(t *testing.T) {
	m := newRepoMocks(t)
	incomplete := completeUser(alice.UserID, "alice")
	incomplete.ResumeLink = nil
	m.users.EXPECT().FindByID(gomock.Any(), alice.UserID).Return(incomplete, nil)
	svc := NewStartupService(m.repos(), m.tx, nil)

	_, err := svc.Create(context.Background(), alice, model.CreateStartupRequest{
		Name: "Rocket", Description: "d", CurrentStage: "idea",
	})
	assert.ErrorIs(t, err, serrors.ErrBadRequest)
	assert.Contains(t, serrors.MessageOf(err), "fill in your profile")
}

func TestStartupService_CreateSeedsTimeline(t *testing.T) {
	m := newRepoMocks(t)
	m.users.EXPECT().FindByID(gomock.Any(), alice.UserID).Return(completeUser(alice.UserID, "alice"), nil)

	var stored *model.Startup
	m.startups.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *model.Startup) error {
			s.ID = 5
			stored = s
			return nil
		})
	svc := NewStartupService(m.repos(), m.tx, nil)

	view, err := svc.Create(context.Background(), alice, model.CreateStartupRequest{
		Name: "  Rocket ", Description: "d", OpenseaLink: strPtr(" "), CurrentStage: "pmf",
	})
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.Equal(t, model.StatusPending, stored.Status)
	assert.Equal(t, "Rocket", stored.Name)
	assert.Nil(t, stored.OpenseaLink)
	assert.Equal(t, model.StageTimeline{model.StageScaling: nil, model.StageEstablished: nil}, stored.StageTimeline)

	assert.Equal(t, int64(5), view.ID)
	assert.Equal(t, "alice", view.CreatorUsername)
	assert.Equal(t, "@alice", *view.CreatorTelegram)
}

func TestStartupService_CreateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		req  model.CreateStartupRequest
	}{
		{name: "unknown stage", req: model.CreateStartupRequest{Name: "n", Description: "d", CurrentStage: "unicorn"}},
		{name: "bad opensea", req: model.CreateStartupRequest{Name: "n", Description: "d", CurrentStage: "idea", OpenseaLink: strPtr("opensea")}},
		{name: "blank name", req: model.CreateStartupRequest{Name: "  ", Description: "d", CurrentStage: "idea"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRepoMocks(t)
			m.users.EXPECT().FindByID(gomock.Any(), alice.UserID).Return(completeUser(alice.UserID, "alice"), nil)
			svc := NewStartupService(m.repos(), m.tx, nil)

			_, err := svc.Create(context.Background(), alice, tt.req)
			assert.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestStartupService_UpdateTimeline(t *testing.T) {
	m := newRepoMocks(t)
	row := pendingStartup(10, alice.UserID, model.StagePMF)
	statefulStartup(m, row)
	m.startups.EXPECT().UpdateTimeline(gomock.Any(), int64(10), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, tl model.StageTimeline) error {
			row.StageTimeline = tl
			return nil
		})
	m.expectTx(3)
	svc := NewStartupService(m.repos(), m.tx, nil)

	_, err := svc.UpdateTimeline(context.Background(), alice, 10, map[string]any{"mvp": "2025-01-01"})
	assert.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = svc.UpdateTimeline(context.Background(), bob, 10, map[string]any{"scaling": "2026-01-01"})
	assert.ErrorIs(t, err, serrors.ErrForbidden)

	view, err := svc.UpdateTimeline(context.Background(), alice, 10, map[string]any{"scaling": "2026-01-01"})
	require.NoError(t, err)
	require.NotNil(t, view.StageTimeline[model.StageScaling])
	assert.Equal(t, "2026-01-01", *view.StageTimeline[model.StageScaling])
	assert.Nil(t, view.StageTimeline[model.StageEstablished])
	assert.Equal(t, model.StagePMF, view.CurrentStage)
}

func TestStartupService_UpdateFunds(t *testing.T) {
	m := newRepoMocks(t)
	row := pendingStartup(10, alice.UserID, model.StageIdea)
	statefulStartup(m, row)
	m.startups.EXPECT().UpdateFunds(gomock.Any(), int64(10), map[string]float64{"ETH": 2.5}).
		DoAndReturn(func(_ context.Context, _ int64, funds map[string]float64) error {
			row.FundsRaised = funds
			return nil
		})
	m.expectTx(3)
	svc := NewStartupService(m.repos(), m.tx, nil)

	_, err := svc.UpdateFunds(context.Background(), bob, 10, map[string]any{"ETH": 1.0})
	assert.ErrorIs(t, err, serrors.ErrForbidden)

	_, err = svc.UpdateFunds(context.Background(), alice, 10, map[string]any{"DOGE": 1.0})
	assert.ErrorIs(t, err, serrors.ErrBadRequest)

	view, err := svc.UpdateFunds(context.Background(), adminActor, 10, map[string]any{"eth": 2.5})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"ETH": 2.5}, view.FundsRaised)
}

func TestStartupService_ToggleHold(t *testing.T) {
	m := newRepoMocks(t)
	row := pendingStartup(10, alice.UserID, model.StageIdea)
	statefulStartup(m, row)
	m.startups.EXPECT().SetHeld(gomock.Any(), int64(10), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, held bool) error {
			row.IsHeld = held
			return nil
		}).Times(2)
	m.expectTx(2)
	svc := NewStartupService(m.repos(), m.tx, nil)

	view, err := svc.ToggleHold(context.Background(), adminActor, 10)
	require.NoError(t, err)
	assert.True(t, view.IsHeld)

	view, err = svc.ToggleHold(context.Background(), adminActor, 10)
	require.NoError(t, err)
	assert.False(t, view.IsHeld)
}

func TestStartupService_ListVisibility(t *testing.T) {
	approved := pendingStartup(1, alice.UserID, model.StageIdea)
	approved.Status = model.StatusApproved
	alicePending := pendingStartup(2, alice.UserID, model.StageIdea)
	aliceRejected := pendingStartup(3, alice.UserID, model.StageIdea)
	aliceRejected.Status = model.StatusRejected
	aliceRejected.RejectionReason = strPtr("no")
	held := pendingStartup(4, bob.UserID, model.StageIdea)
	held.Status = model.StatusApproved
	held.IsHeld = true

	all := []model.StartupWithCreator{*withCreator(held), *withCreator(aliceRejected), *withCreator(alicePending), *withCreator(approved)}

	ids := func(views []StartupView) []int64 {
		out := make([]int64, 0, len(views))
		for _, v := range views {
			out = append(out, v.ID)
		}
		return out
	}

	t.Run("other user never sees foreign pending or rejected", func(t *testing.T) {
		m := newRepoMocks(t)
		m.startups.EXPECT().List(gomock.Any(), model.ListScope{ViewerID: bob.UserID, ExcludeHeld: true}).Return(all, nil)
		svc := NewStartupService(m.repos(), m.tx, nil)

		views, err := svc.List(context.Background(), bob, false)
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, ids(views))
	})

	t.Run("owner sees own pending and rejected", func(t *testing.T) {
		m := newRepoMocks(t)
		m.startups.EXPECT().List(gomock.Any(), model.ListScope{ViewerID: alice.UserID, ExcludeHeld: true}).Return(all, nil)
		svc := NewStartupService(m.repos(), m.tx, nil)

		views, err := svc.List(context.Background(), alice, false)
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 2, 1}, ids(views))
	})

	t.Run("admin sees everything including held", func(t *testing.T) {
		m := newRepoMocks(t)
		m.startups.EXPECT().List(gomock.Any(), model.ListScope{AllStatuses: true}).Return(all, nil)
		svc := NewStartupService(m.repos(), m.tx, nil)

		views, err := svc.List(context.Background(), adminActor, false)
		require.NoError(t, err)
		assert.Equal(t, []int64{4, 3, 2, 1}, ids(views))
	})

	t.Run("anonymous mine only is rejected", func(t *testing.T) {
		m := newRepoMocks(t)
		svc := NewStartupService(m.repos(), m.tx, nil)

		_, err := svc.List(context.Background(), nil, true)
		assert.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}
