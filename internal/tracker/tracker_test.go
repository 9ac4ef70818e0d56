package tracker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/donorlink/internal/changefeed"
	mocks "github.com/aliskhannn/donorlink/internal/mocks/tracker"
	"github.com/aliskhannn/donorlink/internal/model"
	"github.com/aliskhannn/donorlink/internal/repository/directory"
)

type fixture struct {
	tracker *Tracker
	repo    *mocks.MockmatchRepository
	donors  *mocks.MockdonorResolver
	toasts  *mocks.Mocktoaster
	profile model.Profile
	donorID uuid.UUID
}

var strategy = retry.Strategy{Attempts: 1}

func newFixture(t *testing.T, role model.Role) fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := fixture{
		repo:    mocks.NewMockmatchRepository(ctrl),
		donors:  mocks.NewMockdonorResolver(ctrl),
		toasts:  mocks.NewMocktoaster(ctrl),
		profile: model.Profile{ID: uuid.New(), Role: role, FullName: "Ann Donor"},
		donorID: uuid.New(),
	}
	f.tracker = New(f.profile, f.repo, f.donors, f.toasts, strategy)

	return f
}

func pendingMatch(donorID uuid.UUID) model.Match {
	matchedAt := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	return model.Match{
		ID:        uuid.New(),
		RequestID: uuid.New(),
		DonorID:   donorID,
		Status:    model.MatchPending,
		MatchedAt: &matchedAt,
		Request: model.MatchRequest{
			PatientName: "Jane Roe",
			OrganNeeded: "kidney",
			Urgency:     "high",
			Hospital:    model.MatchHospital{Name: "City Hospital"},
		},
	}
}

func (f fixture) expectFetch(list []model.Match) {
	f.donors.EXPECT().DonorIDByProfile(gomock.Any(), strategy, f.profile.ID).Return(f.donorID, nil)
	f.repo.EXPECT().ListByDonor(gomock.Any(), f.donorID).Return(list, nil)
}

func TestTracker_Refresh_ReplacesList(t *testing.T) {
	f := newFixture(t, model.RoleDonor)

	m := pendingMatch(f.donorID)
	f.expectFetch([]model.Match{m})

	assert.True(t, f.tracker.Board().Loading)

	f.tracker.Refresh(context.Background())

	board := f.tracker.Board()
	assert.False(t, board.Loading)
	require.Len(t, board.Matches, 1)
	assert.Equal(t, m, board.Matches[0].Match)
	assert.False(t, board.Matches[0].Updating)
}

func TestTracker_Refresh_Idempotent(t *testing.T) {
	f := newFixture(t, model.RoleDonor)

	list := []model.Match{pendingMatch(f.donorID), pendingMatch(f.donorID)}
	f.expectFetch(list)
	f.expectFetch(list)

	f.tracker.Refresh(context.Background())
	first := f.tracker.Board()

	f.tracker.Refresh(context.Background())
	second := f.tracker.Board()

	assert.Equal(t, first, second)
}

func TestTracker_Refresh_NotDonor(t *testing.T) {
	f := newFixture(t, model.RoleHospital)

	f.tracker.Refresh(context.Background())

	board := f.tracker.Board()
	assert.False(t, board.Loading)
	assert.Empty(t, board.Matches)
}

func TestTracker_Refresh_NoDonorProfile(t *testing.T) {
	f := newFixture(t, model.RoleDonor)

	f.donors.EXPECT().DonorIDByProfile(gomock.Any(), strategy, f.profile.ID).
		Return(uuid.Nil, fmt.Errorf("get donor id: %w", directory.ErrDonorNotFound))

	f.tracker.Refresh(context.Background())

	assert.False(t, f.tracker.Board().Loading)
}

func TestTracker_Refresh_FetchError(t *testing.T) {
	f := newFixture(t, model.RoleDonor)

	m := pendingMatch(f.donorID)
	f.expectFetch([]model.Match{m})
	f.tracker.Refresh(context.Background())

	f.donors.EXPECT().DonorIDByProfile(gomock.Any(), strategy, f.profile.ID).Return(f.donorID, nil)
	f.repo.EXPECT().ListByDonor(gomock.Any(), f.donorID).Return(nil, errors.New("connection refused"))
	f.toasts.EXPECT().Toast(f.profile.ID, model.Toast{
		Title:       "Error fetching matches",
		Description: "connection refused",
		Variant:     model.ToastDestructive,
	})

	f.tracker.Refresh(context.Background())

	board := f.tracker.Board()
	assert.False(t, board.Loading)
	require.Len(t, board.Matches, 1)
	assert.Equal(t, m.ID, board.Matches[0].ID)
}

func TestTracker_Refresh_StaleResultIgnored(t *testing.T) {
	f := newFixture(t, model.RoleDonor)

	older := []model.Match{pendingMatch(f.donorID)}
	newer := []model.Match{pendingMatch(f.donorID), pendingMatch(f.donorID)}

	entered := make(chan struct{})
	release := make(chan struct{})

	f.donors.EXPECT().DonorIDByProfile(gomock.Any(), strategy, f.profile.ID).Return(f.donorID, nil).Times(2)
	f.repo.EXPECT().ListByDonor(gomock.Any(), f.donorID).DoAndReturn(
		func(context.Context, uuid.UUID) ([]model.Match, error) {
			close(entered)
			<-release
			return older, nil
		},
	)
	f.repo.EXPECT().ListByDonor(gomock.Any(), f.donorID).Return(newer, nil)

	done := make(chan struct{})
	go func() {
		f.tracker.Refresh(context.Background())
		close(done)
	}()

	<-entered
	f.tracker.Refresh(context.Background())
	close(release)
	<-done

	board := f.tracker.Board()
	assert.Len(t, board.Matches, 2)
	assert.False(t, board.Loading)
}

func TestTracker_Refresh_ResultAfterUnmountIgnored(t *testing.T) {
	f := newFixture(t, model.RoleDonor)

	entered := make(chan struct{})
	release := make(chan struct{})

	f.donors.EXPECT().DonorIDByProfile(gomock.Any(), strategy, f.profile.ID).Return(f.donorID, nil)
	f.repo.EXPECT().ListByDonor(gomock.Any(), f.donorID).DoAndReturn(
		func(context.Context, uuid.UUID) ([]model.Match, error) {
			close(entered)
			<-release
			return []model.Match{pendingMatch(f.donorID)}, nil
		},
	)

	done := make(chan struct{})
	go func() {
		f.tracker.Refresh(context.Background())
		close(done)
	}()

	<-entered
	f.tracker.Unmount()
	close(release)
	<-done

	assert.Empty(t, f.tracker.Board().Matches)
}

func TestTracker_UpdateStatus_AcceptedRoundTrip(t *testing.T) {
	f := newFixture(t, model.RoleDonor)

	m := pendingMatch(f.donorID)
	f.expectFetch([]model.Match{m})
	f.tracker.Refresh(context.Background())

	now := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	f.tracker.now = func() time.Time { return now }

	accepted := m
	accepted.Status = model.MatchAccepted
	accepted.RespondedAt = &now

	f.repo.EXPECT().UpdateStatus(gomock.Any(), m.ID, model.MatchAccepted, now).Return(nil)
	f.toasts.EXPECT().Toast(f.profile.ID, model.Toast{
		Title:       "Match accepted",
		Description: "The hospital will contact you with next steps.",
		Variant:     model.ToastDefault,
	})
	f.expectFetch([]model.Match{accepted})

	err := f.tracker.UpdateStatus(context.Background(), m.ID, model.MatchAccepted)
	require.NoError(t, err)

	board := f.tracker.Board()
	require.Len(t, board.Matches, 1)
	assert.Equal(t, model.MatchAccepted, board.Matches[0].Status)
	assert.NotNil(t, board.Matches[0].RespondedAt)
	assert.False(t, board.Matches[0].Updating)
}

func TestTracker_UpdateStatus_Declined(t *testing.T) {
	f := newFixture(t, model.RoleDonor)

	m := pendingMatch(f.donorID)
	f.expectFetch([]model.Match{m})
	f.tracker.Refresh(context.Background())

	f.repo.EXPECT().UpdateStatus(gomock.Any(), m.ID, model.MatchDeclined, gomock.Any()).Return(nil)
	f.toasts.EXPECT().Toast(f.profile.ID, model.Toast{
		Title:       "Match declined",
		Description: "Thank you for your response.",
		Variant:     model.ToastDefault,
	})
	f.expectFetch([]model.Match{m})

	require.NoError(t, f.tracker.UpdateStatus(context.Background(), m.ID, model.MatchDeclined))
}

func TestTracker_UpdateStatus_InFlight(t *testing.T) {
	f := newFixture(t, model.RoleDonor)

	m := pendingMatch(f.donorID)
	f.expectFetch([]model.Match{m})
	f.tracker.Refresh(context.Background())

	entered := make(chan struct{})
	release := make(chan struct{})

	f.repo.EXPECT().UpdateStatus(gomock.Any(), m.ID, model.MatchAccepted, gomock.Any()).DoAndReturn(
		func(context.Context, uuid.UUID, model.MatchStatus, time.Time) error {
			close(entered)
			<-release
			return nil
		},
	)
	f.toasts.EXPECT().Toast(f.profile.ID, gomock.Any())
	f.expectFetch([]model.Match{m})

	done := make(chan error, 1)
	go func() { done <- f.tracker.UpdateStatus(context.Background(), m.ID, model.MatchAccepted) }()

	<-entered
	board := f.tracker.Board()
	require.Len(t, board.Matches, 1)
	assert.True(t, board.Matches[0].Updating)

	err := f.tracker.UpdateStatus(context.Background(), m.ID, model.MatchDeclined)
	assert.ErrorIs(t, err, ErrUpdateInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, f.tracker.Board().Matches[0].Updating)
}

func TestTracker_UpdateStatus_RemoteFailure(t *testing.T) {
	f := newFixture(t, model.RoleDonor)

	m := pendingMatch(f.donorID)
	f.expectFetch([]model.Match{m})
	f.tracker.Refresh(context.Background())

	f.repo.EXPECT().UpdateStatus(gomock.Any(), m.ID, model.MatchAccepted, gomock.Any()).Return(errors.New("permission denied"))
	f.toasts.EXPECT().Toast(f.profile.ID, model.Toast{
		Title:       "Error updating match",
		Description: "permission denied",
		Variant:     model.ToastDestructive,
	})

	err := f.tracker.UpdateStatus(context.Background(), m.ID, model.MatchAccepted)
	assert.ErrorContains(t, err, "permission denied")

	board := f.tracker.Board()
	assert.Equal(t, model.MatchPending, board.Matches[0].Status)
	assert.False(t, board.Matches[0].Updating)
}

func TestTracker_UpdateStatus_Rejections(t *testing.T) {
	f := newFixture(t, model.RoleDonor)

	assert.ErrorIs(t, f.tracker.UpdateStatus(context.Background(), uuid.New(), model.MatchCompleted), ErrInvalidStatus)
	assert.ErrorIs(t, f.tracker.UpdateStatus(context.Background(), uuid.New(), model.MatchPending), ErrInvalidStatus)
	assert.ErrorIs(t, f.tracker.UpdateStatus(context.Background(), uuid.New(), model.MatchAccepted), ErrMatchNotFound)
}

func TestTracker_Mount_RefreshesOnMatchChanges(t *testing.T) {
	f := newFixture(t, model.RoleDonor)
	hub := changefeed.NewHub()

	f.tracker.Mount(hub)
	f.tracker.Mount(hub)
	require.Equal(t, 1, hub.Len())

	// any donor's match triggers a refresh
	f.expectFetch([]model.Match{})
	f.expectFetch([]model.Match{})

	ctx := context.Background()
	require.NoError(t, hub.Deliver(ctx, model.ChangeEvent{Schema: "public", Table: model.MatchesTable, Type: model.OpInsert}))
	hub.Wait()
	require.NoError(t, hub.Deliver(ctx, model.ChangeEvent{Schema: "public", Table: model.MatchesTable, Type: model.OpUpdate}))
	hub.Wait()
	require.NoError(t, hub.Deliver(ctx, model.ChangeEvent{Schema: "public", Table: model.MatchesTable, Type: model.OpDelete}))
	require.NoError(t, hub.Deliver(ctx, model.ChangeEvent{Schema: "public", Table: "requests", Type: model.OpInsert}))
	hub.Wait()

	f.tracker.Unmount()
	assert.Equal(t, 0, hub.Len())

	require.NoError(t, hub.Deliver(ctx, model.ChangeEvent{Schema: "public", Table: model.MatchesTable, Type: model.OpInsert}))
	hub.Wait()
}

func TestTracker_Mount_NotDonor(t *testing.T) {
	f := newFixture(t, model.RoleNGO)
	hub := changefeed.NewHub()

	f.tracker.Mount(hub)
	assert.Equal(t, 0, hub.Len())

	f.tracker.Unmount()
}
