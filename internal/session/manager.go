// Package session keeps one match tracker and one notification log per
// signed-in profile.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/donorlink/internal/changefeed"
	"github.com/aliskhannn/donorlink/internal/config"
	"github.com/aliskhannn/donorlink/internal/metrics"
	"github.com/aliskhannn/donorlink/internal/model"
	"github.com/aliskhannn/donorlink/internal/reconciler"
	"github.com/aliskhannn/donorlink/internal/repository/directory"
	"github.com/aliskhannn/donorlink/internal/tracker"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrEntryNotFound   = errors.New("notification not found")
)

//go:generate mockgen -source=manager.go -destination=../mocks/session/mock.go -package=mocks
type profileDirectory interface {
	ProfileByID(ctx context.Context, id uuid.UUID) (model.Profile, error)
	DonorIDByProfile(ctx context.Context, strategy retry.Strategy, profileID uuid.UUID) (uuid.UUID, error)
	DonorDisplayName(ctx context.Context, donorID uuid.UUID) (string, error)
	RequestSummary(ctx context.Context, requestID uuid.UUID) (model.RequestSummary, error)
}

type matchRepository interface {
	ListByDonor(ctx context.Context, donorID uuid.UUID) ([]model.Match, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.MatchStatus, respondedAt time.Time) error
}

type toastInbox interface {
	Open(profileID uuid.UUID)
	Toast(profileID uuid.UUID, t model.Toast)
	Drain(profileID uuid.UUID) []model.Toast
	Forget(profileID uuid.UUID)
}

type forwarder interface {
	Forward(ctx context.Context, profile model.Profile, entry model.Entry)
}

type changeHub interface {
	Subscribe(channel string, filter changefeed.Filter, handler changefeed.Handler) changefeed.Subscription
	Unsubscribe(sub changefeed.Subscription)
}

// Session is the live state of one profile.
type Session struct {
	profile    model.Profile
	tracker    *tracker.Tracker
	reconciler *reconciler.Reconciler

	// guarded by Manager.mu
	lastSeen  time.Time
	checkedAt time.Time
}

// Profile returns the profile the session belongs to.
func (s *Session) Profile() model.Profile {
	return s.profile
}

// Manager creates sessions on first use and tears them down on release
// or after they sit idle for idleTTL.
type Manager struct {
	dir       profileDirectory
	matches   matchRepository
	toasts    toastInbox
	forward   forwarder
	hub       changeHub
	strategy  retry.Strategy
	capacity  int
	idleTTL   time.Duration
	roleCheck time.Duration
	now       func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewManager(
	dir profileDirectory,
	matches matchRepository,
	toasts toastInbox,
	forward forwarder,
	hub changeHub,
	strategy retry.Strategy,
	capacity int,
	cfg config.Session,
) *Manager {
	return &Manager{
		dir:       dir,
		matches:   matches,
		toasts:    toasts,
		forward:   forward,
		hub:       hub,
		strategy:  strategy,
		capacity:  capacity,
		idleTTL:   cfg.IdleTTL,
		roleCheck: cfg.RoleCheck,
		now:       time.Now,
		sessions:  make(map[uuid.UUID]*Session),
	}
}

// Acquire returns the profile's session, creating, mounting and loading
// it the first time. A session whose role was loaded more than roleCheck
// ago has its profile reloaded: it is rebuilt when the role changed and
// ended when the profile is gone.
func (m *Manager) Acquire(ctx context.Context, profileID uuid.UUID) (*Session, error) {
	now := m.now()

	m.mu.Lock()
	s, ok := m.sessions[profileID]
	if ok {
		s.lastSeen = now
		if now.Sub(s.checkedAt) < m.roleCheck {
			m.mu.Unlock()
			return s, nil
		}
	}
	m.mu.Unlock()

	profile, err := m.dir.ProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, directory.ErrProfileNotFound) {
			if ok {
				m.remove(profileID, s, "profile removed")
			}
			return nil, ErrProfileNotFound
		}
		if ok {
			zlog.Logger.Warn().Err(err).Str("profile_id", profileID.String()).Msg("failed to recheck session role")
			return s, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	if ok {
		if profile.Role == s.profile.Role {
			m.mu.Lock()
			s.checkedAt = now
			m.mu.Unlock()
			return s, nil
		}
		m.remove(profileID, s, "role changed")
	}

	m.mu.Lock()
	if s, ok := m.sessions[profileID]; ok {
		s.lastSeen = now
		m.mu.Unlock()
		return s, nil
	}

	s = &Session{
		profile:    profile,
		tracker:    tracker.New(profile, m.matches, m.dir, m.toasts, m.strategy),
		reconciler: reconciler.New(profile, m.dir, m.toasts, m.forward, m.strategy, m.capacity),
		lastSeen:   now,
		checkedAt:  now,
	}
	m.toasts.Open(profileID)
	s.tracker.Mount(m.hub)
	s.reconciler.Mount(m.hub)
	m.sessions[profileID] = s
	m.mu.Unlock()

	metrics.ActiveSessions.Inc()
	zlog.Logger.Info().
		Str("profile_id", profileID.String()).
		Str("role", string(profile.Role)).
		Msg("session started")

	s.tracker.Refresh(ctx)

	return s, nil
}

// Board returns the profile's match list.
func (m *Manager) Board(ctx context.Context, profileID uuid.UUID) (model.MatchBoard, error) {
	s, err := m.Acquire(ctx, profileID)
	if err != nil {
		return model.MatchBoard{}, err
	}

	return s.tracker.Board(), nil
}

// Refresh reloads the profile's match list and returns it.
func (m *Manager) Refresh(ctx context.Context, profileID uuid.UUID) (model.MatchBoard, error) {
	s, err := m.Acquire(ctx, profileID)
	if err != nil {
		return model.MatchBoard{}, err
	}

	s.tracker.Refresh(ctx)

	return s.tracker.Board(), nil
}

// UpdateMatchStatus answers a match on behalf of the profile.
func (m *Manager) UpdateMatchStatus(ctx context.Context, profileID, matchID uuid.UUID, status model.MatchStatus) (model.MatchBoard, error) {
	s, err := m.Acquire(ctx, profileID)
	if err != nil {
		return model.MatchBoard{}, err
	}

	if err := s.tracker.UpdateStatus(ctx, matchID, status); err != nil {
		return model.MatchBoard{}, err
	}

	return s.tracker.Board(), nil
}

// Notifications renders the profile's notification log as of now.
func (m *Manager) Notifications(ctx context.Context, profileID uuid.UUID, now time.Time) (model.NotificationFeed, error) {
	s, err := m.Acquire(ctx, profileID)
	if err != nil {
		return model.NotificationFeed{}, err
	}

	return s.reconciler.Feed(now), nil
}

// MarkRead marks one notification read.
func (m *Manager) MarkRead(ctx context.Context, profileID, entryID uuid.UUID) error {
	s, err := m.Acquire(ctx, profileID)
	if err != nil {
		return err
	}

	if !s.reconciler.MarkRead(entryID) {
		return ErrEntryNotFound
	}

	return nil
}

// MarkAllRead marks every notification read.
func (m *Manager) MarkAllRead(ctx context.Context, profileID uuid.UUID) error {
	s, err := m.Acquire(ctx, profileID)
	if err != nil {
		return err
	}

	s.reconciler.MarkAllRead()

	return nil
}

// Toasts drains the toasts raised for the profile.
func (m *Manager) Toasts(ctx context.Context, profileID uuid.UUID) ([]model.Toast, error) {
	if _, err := m.Acquire(ctx, profileID); err != nil {
		return nil, err
	}

	return m.toasts.Drain(profileID), nil
}

// Release ends the profile's session. It reports whether one existed.
func (m *Manager) Release(profileID uuid.UUID) bool {
	m.mu.Lock()
	s, ok := m.sessions[profileID]
	m.mu.Unlock()

	if !ok {
		return false
	}

	return m.remove(profileID, s, "released")
}

// Reap ends every session unused for longer than idleTTL and returns how
// many it ended.
func (m *Manager) Reap() int {
	now := m.now()

	m.mu.Lock()
	var idle []*Session
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.idleTTL {
			delete(m.sessions, id)
			m.toasts.Forget(id)
			idle = append(idle, s)
		}
	}
	m.mu.Unlock()

	for _, s := range idle {
		m.teardown(s, "idle")
	}

	return len(idle)
}

// RunReaper calls Reap every interval until ctx is done.
func (m *Manager) RunReaper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Reap(); n > 0 {
				zlog.Logger.Info().Int("sessions", n).Msg("reaped idle sessions")
			}
		}
	}
}

// Close ends every session.
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[uuid.UUID]*Session)
	for id := range sessions {
		m.toasts.Forget(id)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		m.teardown(s, "shutdown")
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

// remove ends s if it is still the profile's session.
func (m *Manager) remove(profileID uuid.UUID, s *Session, reason string) bool {
	m.mu.Lock()
	if m.sessions[profileID] != s {
		m.mu.Unlock()
		return false
	}
	delete(m.sessions, profileID)
	m.toasts.Forget(profileID)
	m.mu.Unlock()

	m.teardown(s, reason)

	return true
}

func (m *Manager) teardown(s *Session, reason string) {
	s.tracker.Unmount()
	s.reconciler.Unmount()

	metrics.ActiveSessions.Dec()
	zlog.Logger.Info().
		Str("profile_id", s.profile.ID.String()).
		Str("reason", reason).
		Msg("session ended")
}
