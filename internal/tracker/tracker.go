// Package tracker keeps a donor's view of their matches in step with the
// database and carries out accept and decline responses.
package tracker

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
	"github.com/aliskhannn/donorlink/internal/metrics"
	"github.com/aliskhannn/donorlink/internal/model"
	"github.com/aliskhannn/donorlink/internal/repository/directory"
)

// Channel is the change feed channel the tracker subscribes on.
const Channel = "matches-changes"

var (
	ErrInvalidStatus  = errors.New("status must be accepted or declined")
	ErrMatchNotFound  = errors.New("match not found")
	ErrUpdateInFlight = errors.New("an update for this match is already in progress")
)

//go:generate mockgen -source=tracker.go -destination=../mocks/tracker/mock.go -package=mocks
type matchRepository interface {
	ListByDonor(ctx context.Context, donorID uuid.UUID) ([]model.Match, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.MatchStatus, respondedAt time.Time) error
}

type donorResolver interface {
	DonorIDByProfile(ctx context.Context, strategy retry.Strategy, profileID uuid.UUID) (uuid.UUID, error)
}

type toaster interface {
	Toast(profileID uuid.UUID, t model.Toast)
}

type subscriber interface {
	Subscribe(channel string, filter changefeed.Filter, handler changefeed.Handler) changefeed.Subscription
	Unsubscribe(sub changefeed.Subscription)
}

// Tracker is the match list of one profile.
type Tracker struct {
	profile  model.Profile
	matches  matchRepository
	donors   donorResolver
	toasts   toaster
	strategy retry.Strategy
	now      func() time.Time

	mu       sync.Mutex
	loading  bool
	list     []model.Match
	updating map[uuid.UUID]struct{}
	issued   uint64 // last refresh started
	applied  uint64 // last refresh whose result was stored
	epoch    uint64 // bumped on Unmount
	hub      subscriber
	sub      *changefeed.Subscription
}

func New(
	profile model.Profile,
	matches matchRepository,
	donors donorResolver,
	toasts toaster,
	strategy retry.Strategy,
) *Tracker {
	return &Tracker{
		profile:  profile,
		matches:  matches,
		donors:   donors,
		toasts:   toasts,
		strategy: strategy,
		now:      time.Now,
		loading:  true,
		list:     []model.Match{},
		updating: make(map[uuid.UUID]struct{}),
	}
}

// Mount subscribes to match inserts and updates; each one triggers a refresh.
// Only donors are subscribed.
func (t *Tracker) Mount(hub subscriber) {
	if t.profile.Role != model.RoleDonor {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sub != nil {
		return
	}

	filter := changefeed.Filter{
		Schema: "public",
		Table:  model.MatchesTable,
		Ops:    []model.Op{model.OpInsert, model.OpUpdate},
	}

	sub := hub.Subscribe(Channel, filter, func(ctx context.Context, ev model.ChangeEvent) {
		zlog.Logger.Debug().
			Str("profile_id", t.profile.ID.String()).
			Str("op", string(ev.Type)).
			Msg("match change received, refreshing")
		t.Refresh(ctx)
	})

	t.hub = hub
	t.sub = &sub
}

// Unmount drops the subscription. Refreshes still running complete but
// their results are ignored.
func (t *Tracker) Unmount() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.epoch++

	if t.sub == nil {
		return
	}

	t.hub.Unsubscribe(*t.sub)
	t.sub = nil
	t.hub = nil
}

// Refresh replaces the match list with the donor's matches, newest first.
// Failures are reported as toasts and leave the list unchanged.
func (t *Tracker) Refresh(ctx context.Context) {
	t.mu.Lock()
	if t.profile.Role != model.RoleDonor {
		t.loading = false
		t.mu.Unlock()
		return
	}

	t.issued++
	seq, epoch := t.issued, t.epoch
	t.loading = true
	t.mu.Unlock()

	start := time.Now()
	defer func() { metrics.MatchRefreshDuration.Observe(time.Since(start).Seconds()) }()

	donorID, err := t.donors.DonorIDByProfile(ctx, t.strategy, t.profile.ID)
	if err != nil {
		if errors.Is(err, directory.ErrDonorNotFound) {
			zlog.Logger.Info().Str("profile_id", t.profile.ID.String()).Msg("no donor profile found")
			t.settle(seq, epoch, nil, nil)
			return
		}

		t.settle(seq, epoch, nil, err)
		return
	}

	list, err := t.matches.ListByDonor(ctx, donorID)
	if err != nil {
		t.settle(seq, epoch, nil, err)
		return
	}

	t.settle(seq, epoch, list, nil)
}

// settle records the outcome of refresh seq started during epoch.
func (t *Tracker) settle(seq, epoch uint64, list []model.Match, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if epoch != t.epoch {
		zlog.Logger.Debug().Str("profile_id", t.profile.ID.String()).Msg("discarding refresh result after unmount")
		return
	}

	if seq == t.issued {
		t.loading = false
	}

	if err != nil {
		zlog.Logger.Error().Err(err).Str("profile_id", t.profile.ID.String()).Msg("error fetching matches")
		t.toasts.Toast(t.profile.ID, model.Toast{
			Title:       "Error fetching matches",
			Description: err.Error(),
			Variant:     model.ToastDestructive,
		})
		return
	}

	if list == nil || seq < t.applied {
		return
	}

	t.list = list
	t.applied = seq
}

// UpdateStatus answers a match on behalf of the donor and refreshes the
// list once the database accepts it.
func (t *Tracker) UpdateStatus(ctx context.Context, id uuid.UUID, status model.MatchStatus) error {
	if !status.IsResponse() {
		return ErrInvalidStatus
	}

	t.mu.Lock()
	if !t.has(id) {
		t.mu.Unlock()
		return ErrMatchNotFound
	}
	if _, busy := t.updating[id]; busy {
		t.mu.Unlock()
		return ErrUpdateInFlight
	}
	t.updating[id] = struct{}{}
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		delete(t.updating, id)
		t.mu.Unlock()
	}()

	if err := t.matches.UpdateStatus(ctx, id, status, t.now()); err != nil {
		t.toasts.Toast(t.profile.ID, model.Toast{
			Title:       "Error updating match",
			Description: err.Error(),
			Variant:     model.ToastDestructive,
		})
		return fmt.Errorf("update match status: %w", err)
	}

	confirmation := model.Toast{
		Title:       "Match declined",
		Description: "Thank you for your response.",
		Variant:     model.ToastDefault,
	}
	if status == model.MatchAccepted {
		confirmation.Title = "Match accepted"
		confirmation.Description = "The hospital will contact you with next steps."
	}
	t.toasts.Toast(t.profile.ID, confirmation)

	zlog.Logger.Info().
		Str("profile_id", t.profile.ID.String()).
		Str("match_id", id.String()).
		Str("status", string(status)).
		Msg("match status updated")

	t.Refresh(ctx)

	return nil
}

func (t *Tracker) has(id uuid.UUID) bool {
	for _, m := range t.list {
		if m.ID == id {
			return true
		}
	}

	return false
}

// Board returns a snapshot of the match list.
func (t *Tracker) Board() model.MatchBoard {
	t.mu.Lock()
	defer t.mu.Unlock()

	cards := make([]model.MatchCard, 0, len(t.list))
	for _, m := range t.list {
		_, busy := t.updating[m.ID]
		cards = append(cards, model.MatchCard{Match: m, Updating: busy})
	}

	return model.MatchBoard{Loading: t.loading, Matches: cards}
}
