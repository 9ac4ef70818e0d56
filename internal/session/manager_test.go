package session

import (
	"context"
	"encoding/json"
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
	"github.com/aliskhannn/donorlink/internal/config"
	mocks "github.com/aliskhannn/donorlink/internal/mocks/session"
	"github.com/aliskhannn/donorlink/internal/model"
	"github.com/aliskhannn/donorlink/internal/repository/directory"
	"github.com/aliskhannn/donorlink/internal/toast"
)

var strategy = retry.Strategy{Attempts: 1}

var sessionConfig = config.Session{IdleTTL: 30 * time.Minute, ReapInterval: time.Minute, RoleCheck: time.Minute}

type fixture struct {
	manager *Manager
	dir     *mocks.MockprofileDirectory
	matches *mocks.MockmatchRepository
	forward *mocks.Mockforwarder
	hub     *changefeed.Hub
	inbox   *toast.Inbox
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := fixture{
		dir:     mocks.NewMockprofileDirectory(ctrl),
		matches: mocks.NewMockmatchRepository(ctrl),
		forward: mocks.NewMockforwarder(ctrl),
		hub:     changefeed.NewHub(),
		inbox:   toast.NewInbox(10),
	}
	f.manager = NewManager(f.dir, f.matches, f.inbox, f.forward, f.hub, strategy, 50, sessionConfig)

	return f
}

// withClock makes the manager read time from *now.
func (f *fixture) withClock(now *time.Time) {
	f.manager.now = func() time.Time { return *now }
}

func TestManager_Acquire_Donor(t *testing.T) {
	f := newFixture(t)

	profile := model.Profile{ID: uuid.New(), Role: model.RoleDonor}
	donorID := uuid.New()
	m := model.Match{ID: uuid.New(), DonorID: donorID, Status: model.MatchPending}

	f.dir.EXPECT().ProfileByID(gomock.Any(), profile.ID).Return(profile, nil)
	f.dir.EXPECT().DonorIDByProfile(gomock.Any(), strategy, profile.ID).Return(donorID, nil)
	f.matches.EXPECT().ListByDonor(gomock.Any(), donorID).Return([]model.Match{m}, nil)

	s, err := f.manager.Acquire(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.Equal(t, profile, s.Profile())

	again, err := f.manager.Acquire(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.Same(t, s, again)

	assert.Equal(t, 1, f.manager.Len())
	assert.Equal(t, 2, f.hub.Len())

	board, err := f.manager.Board(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.False(t, board.Loading)
	require.Len(t, board.Matches, 1)
	assert.Equal(t, m.ID, board.Matches[0].ID)
}

func TestManager_Acquire_UnknownProfile(t *testing.T) {
	f := newFixture(t)

	profileID := uuid.New()
	f.dir.EXPECT().ProfileByID(gomock.Any(), profileID).
		Return(model.Profile{}, fmt.Errorf("get profile: %w", directory.ErrProfileNotFound))

	_, err := f.manager.Acquire(context.Background(), profileID)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Equal(t, 0, f.manager.Len())
}

func TestManager_UpdateMatchStatus(t *testing.T) {
	f := newFixture(t)

	profile := model.Profile{ID: uuid.New(), Role: model.RoleDonor}
	donorID := uuid.New()
	m := model.Match{ID: uuid.New(), DonorID: donorID, Status: model.MatchPending}

	respondedAt := time.Now()
	accepted := m
	accepted.Status = model.MatchAccepted
	accepted.RespondedAt = &respondedAt

	f.dir.EXPECT().ProfileByID(gomock.Any(), profile.ID).Return(profile, nil)
	f.dir.EXPECT().DonorIDByProfile(gomock.Any(), strategy, profile.ID).Return(donorID, nil).Times(2)
	gomock.InOrder(
		f.matches.EXPECT().ListByDonor(gomock.Any(), donorID).Return([]model.Match{m}, nil),
		f.matches.EXPECT().UpdateStatus(gomock.Any(), m.ID, model.MatchAccepted, gomock.Any()).Return(nil),
		f.matches.EXPECT().ListByDonor(gomock.Any(), donorID).Return([]model.Match{accepted}, nil),
	)

	board, err := f.manager.UpdateMatchStatus(context.Background(), profile.ID, m.ID, model.MatchAccepted)
	require.NoError(t, err)
	require.Len(t, board.Matches, 1)
	assert.Equal(t, model.MatchAccepted, board.Matches[0].Status)

	toasts, err := f.manager.Toasts(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Len(t, toasts, 1)
	assert.Equal(t, "Match accepted", toasts[0].Title)

	toasts, err = f.manager.Toasts(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.Empty(t, toasts)
}

func TestManager_HospitalNotifications(t *testing.T) {
	f := newFixture(t)

	profile := model.Profile{ID: uuid.New(), Role: model.RoleHospital}
	f.dir.EXPECT().ProfileByID(gomock.Any(), profile.ID).Return(profile, nil)

	_, err := f.manager.Acquire(context.Background(), profile.ID)
	require.NoError(t, err)

	// hospitals do not track matches, only notifications
	assert.Equal(t, 1, f.hub.Len())

	row := model.MatchRow{ID: uuid.New(), RequestID: uuid.New(), DonorID: uuid.New(), Status: model.MatchDeclined}
	newRow, err := json.Marshal(row)
	require.NoError(t, err)

	f.dir.EXPECT().RequestSummary(gomock.Any(), row.RequestID).Return(model.RequestSummary{
		ID:              row.RequestID,
		PatientName:     "Jane Roe",
		HospitalOwnerID: uuid.NullUUID{UUID: profile.ID, Valid: true},
	}, nil)
	f.dir.EXPECT().DonorDisplayName(gomock.Any(), row.DonorID).Return("Ann Donor", nil)
	f.forward.EXPECT().Forward(gomock.Any(), profile, gomock.Any())

	require.NoError(t, f.hub.Deliver(context.Background(), model.ChangeEvent{
		Schema: "public",
		Table:  model.MatchesTable,
		Type:   model.OpUpdate,
		New:    newRow,
	}))
	f.hub.Wait()

	feed, err := f.manager.Notifications(context.Background(), profile.ID, time.Now())
	require.NoError(t, err)
	require.Len(t, feed.Notifications, 1)
	assert.Equal(t, "Ann Donor has declined the match for Jane Roe", feed.Notifications[0].Message)
	assert.Equal(t, "1", feed.Badge)

	assert.ErrorIs(t, f.manager.MarkRead(context.Background(), profile.ID, uuid.New()), ErrEntryNotFound)
	require.NoError(t, f.manager.MarkRead(context.Background(), profile.ID, feed.Notifications[0].ID))

	feed, err = f.manager.Notifications(context.Background(), profile.ID, time.Now())
	require.NoError(t, err)
	assert.Zero(t, feed.UnreadCount)

	require.NoError(t, f.manager.MarkAllRead(context.Background(), profile.ID))

	toasts, err := f.manager.Toasts(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Len(t, toasts, 1)
	assert.Equal(t, "Donor Declined Match", toasts[0].Title)
}

func TestManager_Release(t *testing.T) {
	f := newFixture(t)

	profile := model.Profile{ID: uuid.New(), Role: model.RoleNGO}
	f.dir.EXPECT().ProfileByID(gomock.Any(), profile.ID).Return(profile, nil)

	_, err := f.manager.Acquire(context.Background(), profile.ID)
	require.NoError(t, err)
	f.inbox.Toast(profile.ID, model.Toast{Title: "pending"})

	assert.True(t, f.manager.Release(profile.ID))
	assert.False(t, f.manager.Release(profile.ID))

	assert.Equal(t, 0, f.manager.Len())
	assert.Equal(t, 0, f.hub.Len())
	assert.Empty(t, f.inbox.Drain(profile.ID))
}

func TestManager_Close(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 3; i++ {
		profile := model.Profile{ID: uuid.New(), Role: model.RoleAdmin}
		f.dir.EXPECT().ProfileByID(gomock.Any(), profile.ID).Return(profile, nil)

		_, err := f.manager.Acquire(context.Background(), profile.ID)
		require.NoError(t, err)
	}
	require.Equal(t, 3, f.manager.Len())

	f.manager.Close()

	assert.Equal(t, 0, f.manager.Len())
	assert.Equal(t, 0, f.hub.Len())
}

func TestManager_Reap_EndsIdleSessions(t *testing.T) {
	f := newFixture(t)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f.withClock(&now)

	idle := model.Profile{ID: uuid.New(), Role: model.RoleHospital}
	active := model.Profile{ID: uuid.New(), Role: model.RoleHospital}
	f.dir.EXPECT().ProfileByID(gomock.Any(), idle.ID).Return(idle, nil)
	f.dir.EXPECT().ProfileByID(gomock.Any(), active.ID).Return(active, nil)

	_, err := f.manager.Acquire(context.Background(), idle.ID)
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	_, err = f.manager.Acquire(context.Background(), active.ID)
	require.NoError(t, err)
	require.Equal(t, 2, f.hub.Len())

	assert.Zero(t, f.manager.Reap())

	now = now.Add(11 * time.Minute)
	assert.Equal(t, 1, f.manager.Reap())

	assert.Equal(t, 1, f.manager.Len())
	assert.Equal(t, 1, f.hub.Len())

	f.inbox.Toast(idle.ID, model.Toast{Title: "after reap"})
	assert.Empty(t, f.inbox.Drain(idle.ID))

	f.inbox.Toast(active.ID, model.Toast{Title: "still live"})
	assert.Len(t, f.inbox.Drain(active.ID), 1)
}

func TestManager_RunReaper_StopsWithContext(t *testing.T) {
	f := newFixture(t)

	now := time.Now()
	f.withClock(&now)

	profile := model.Profile{ID: uuid.New(), Role: model.RoleAdmin}
	f.dir.EXPECT().ProfileByID(gomock.Any(), profile.ID).Return(profile, nil)

	_, err := f.manager.Acquire(context.Background(), profile.ID)
	require.NoError(t, err)

	// every later tick sees the session as idle
	now = now.Add(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.manager.RunReaper(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return f.manager.Len() == 0 }, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reaper did not stop")
	}
}

func TestManager_Acquire_RebuildsOnRoleChange(t *testing.T) {
	f := newFixture(t)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f.withClock(&now)

	donor := model.Profile{ID: uuid.New(), Role: model.RoleDonor}
	demoted := donor
	demoted.Role = model.RoleNGO
	donorID := uuid.New()

	gomock.InOrder(
		f.dir.EXPECT().ProfileByID(gomock.Any(), donor.ID).Return(donor, nil),
		f.dir.EXPECT().ProfileByID(gomock.Any(), donor.ID).Return(donor, nil),
		f.dir.EXPECT().ProfileByID(gomock.Any(), donor.ID).Return(demoted, nil),
	)
	f.dir.EXPECT().DonorIDByProfile(gomock.Any(), strategy, donor.ID).Return(donorID, nil)
	f.matches.EXPECT().ListByDonor(gomock.Any(), donorID).Return([]model.Match{}, nil)

	first, err := f.manager.Acquire(context.Background(), donor.ID)
	require.NoError(t, err)
	require.Equal(t, 2, f.hub.Len())

	// within the role check window the profile is not reloaded
	now = now.Add(30 * time.Second)
	same, err := f.manager.Acquire(context.Background(), donor.ID)
	require.NoError(t, err)
	assert.Same(t, first, same)

	// reloaded, role unchanged
	now = now.Add(time.Minute)
	same, err = f.manager.Acquire(context.Background(), donor.ID)
	require.NoError(t, err)
	assert.Same(t, first, same)

	// reloaded, role changed
	now = now.Add(time.Minute)
	rebuilt, err := f.manager.Acquire(context.Background(), donor.ID)
	require.NoError(t, err)
	assert.NotSame(t, first, rebuilt)
	assert.Equal(t, model.RoleNGO, rebuilt.Profile().Role)

	assert.Equal(t, 1, f.manager.Len())
	// the donor match tracker is gone, only the notification log remains
	assert.Equal(t, 1, f.hub.Len())
}

func TestManager_Acquire_EndsSessionOfRemovedProfile(t *testing.T) {
	f := newFixture(t)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f.withClock(&now)

	profile := model.Profile{ID: uuid.New(), Role: model.RoleHospital}
	gomock.InOrder(
		f.dir.EXPECT().ProfileByID(gomock.Any(), profile.ID).Return(profile, nil),
		f.dir.EXPECT().ProfileByID(gomock.Any(), profile.ID).
			Return(model.Profile{}, fmt.Errorf("get profile: %w", directory.ErrProfileNotFound)),
	)

	_, err := f.manager.Acquire(context.Background(), profile.ID)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = f.manager.Acquire(context.Background(), profile.ID)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	assert.Equal(t, 0, f.manager.Len())
	assert.Equal(t, 0, f.hub.Len())
}

func TestManager_Acquire_KeepsSessionWhenRecheckFails(t *testing.T) {
	f := newFixture(t)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f.withClock(&now)

	profile := model.Profile{ID: uuid.New(), Role: model.RoleHospital}
	gomock.InOrder(
		f.dir.EXPECT().ProfileByID(gomock.Any(), profile.ID).Return(profile, nil),
		f.dir.EXPECT().ProfileByID(gomock.Any(), profile.ID).Return(model.Profile{}, errors.New("connection reset")),
	)

	first, err := f.manager.Acquire(context.Background(), profile.ID)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	again, err := f.manager.Acquire(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.Same(t, first, again)
}
