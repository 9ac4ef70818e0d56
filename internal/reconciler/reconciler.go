// Package reconciler turns match change events into the notification log
// of one profile.
package reconciler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/donorlink/internal/changefeed"
	"github.com/aliskhannn/donorlink/internal/metrics"
	"github.com/aliskhannn/donorlink/internal/model"
)

// Channel is the change feed channel the reconciler subscribes on.
const Channel = "notification-triggers"

//go:generate mockgen -source=reconciler.go -destination=../mocks/reconciler/mock.go -package=mocks
type directory interface {
	DonorIDByProfile(ctx context.Context, strategy retry.Strategy, profileID uuid.UUID) (uuid.UUID, error)
	DonorDisplayName(ctx context.Context, donorID uuid.UUID) (string, error)
	RequestSummary(ctx context.Context, requestID uuid.UUID) (model.RequestSummary, error)
}

type toaster interface {
	Toast(profileID uuid.UUID, t model.Toast)
}

type forwarder interface {
	Forward(ctx context.Context, profile model.Profile, entry model.Entry)
}

type subscriber interface {
	Subscribe(channel string, filter changefeed.Filter, handler changefeed.Handler) changefeed.Subscription
	Unsubscribe(sub changefeed.Subscription)
}

// Reconciler owns the notification log of one profile.
type Reconciler struct {
	profile  model.Profile
	dir      directory
	toasts   toaster
	forward  forwarder
	strategy retry.Strategy
	log      *Log
	now      func() time.Time

	mu  sync.Mutex
	hub subscriber
	sub *changefeed.Subscription
}

func New(
	profile model.Profile,
	dir directory,
	toasts toaster,
	forward forwarder,
	strategy retry.Strategy,
	capacity int,
) *Reconciler {
	return &Reconciler{
		profile:  profile,
		dir:      dir,
		toasts:   toasts,
		forward:  forward,
		strategy: strategy,
		log:      NewLog(capacity),
		now:      time.Now,
	}
}

// Mount subscribes to match inserts and updates.
func (r *Reconciler) Mount(hub subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sub != nil {
		return
	}

	filter := changefeed.Filter{
		Schema: "public",
		Table:  model.MatchesTable,
		Ops:    []model.Op{model.OpInsert, model.OpUpdate},
	}

	sub := hub.Subscribe(Channel, filter, func(ctx context.Context, ev model.ChangeEvent) {
		switch ev.Type {
		case model.OpInsert:
			r.OnMatchInserted(ctx, ev)
		case model.OpUpdate:
			r.OnMatchUpdated(ctx, ev)
		}
	})

	r.hub = hub
	r.sub = &sub
}

// Unmount drops the subscription.
func (r *Reconciler) Unmount() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sub == nil {
		return
	}

	r.hub.Unsubscribe(*r.sub)
	r.sub = nil
	r.hub = nil
}

// OnMatchInserted tells a donor about a match made for them.
func (r *Reconciler) OnMatchInserted(ctx context.Context, ev model.ChangeEvent) {
	if r.profile.Role != model.RoleDonor {
		return
	}

	row, _, err := ev.MatchRows()
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("skipping undecodable match insert")
		return
	}

	donorID, err := r.dir.DonorIDByProfile(ctx, r.strategy, r.profile.ID)
	if err != nil {
		r.skip(err, "donor lookup failed")
		return
	}
	if row.DonorID != donorID {
		return
	}

	req, err := r.dir.RequestSummary(ctx, row.RequestID)
	if err != nil {
		r.skip(err, "request lookup failed")
		return
	}

	hospital := req.HospitalName
	if hospital == "" {
		hospital = "an unknown hospital"
	}

	r.create(ctx, model.EntryNewMatch,
		"New Match Found!",
		fmt.Sprintf("You've been matched with a %s priority %s request from %s", req.Urgency, req.OrganNeeded, hospital),
		model.EntryData{RequestID: req.ID, MatchID: row.ID},
	)
}

// OnMatchUpdated tells a hospital that a donor answered one of its matches.
func (r *Reconciler) OnMatchUpdated(ctx context.Context, ev model.ChangeEvent) {
	if r.profile.Role != model.RoleHospital {
		return
	}

	row, old, err := ev.MatchRows()
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("skipping undecodable match update")
		return
	}
	if old != nil && old.Status == row.Status {
		return
	}

	var (
		entryType model.EntryType
		title     string
	)
	switch row.Status {
	case model.MatchAccepted:
		entryType, title = model.EntryMatchAccepted, "Donor Accepted Match"
	case model.MatchDeclined:
		entryType, title = model.EntryMatchDeclined, "Donor Declined Match"
	default:
		return
	}

	req, err := r.dir.RequestSummary(ctx, row.RequestID)
	if err != nil {
		r.skip(err, "request lookup failed")
		return
	}
	if !req.HospitalOwnerID.Valid || req.HospitalOwnerID.UUID != r.profile.ID {
		return
	}

	name, err := r.dir.DonorDisplayName(ctx, row.DonorID)
	if err != nil {
		r.skip(err, "donor name lookup failed")
		return
	}
	if name == "" {
		name = "A donor"
	}

	r.create(ctx, entryType,
		title,
		fmt.Sprintf("%s has %s the match for %s", name, row.Status, req.PatientName),
		model.EntryData{RequestID: req.ID, MatchID: row.ID},
	)
}

func (r *Reconciler) skip(err error, reason string) {
	zlog.Logger.Debug().Err(err).Str("profile_id", r.profile.ID.String()).Msg(reason)
}

func (r *Reconciler) create(ctx context.Context, t model.EntryType, title, message string, data model.EntryData) {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	entry := model.Entry{
		ID:        id,
		Type:      t,
		Title:     title,
		Message:   message,
		Timestamp: r.now(),
		Data:      data,
	}

	r.log.Prepend(entry)
	metrics.NotificationsCreatedTotal.WithLabelValues(string(t)).Inc()

	r.toasts.Toast(r.profile.ID, model.Toast{
		Title:       entry.Title,
		Description: entry.Message,
		Variant:     model.ToastDefault,
	})

	zlog.Logger.Info().
		Str("profile_id", r.profile.ID.String()).
		Str("type", string(t)).
		Str("match_id", data.MatchID.String()).
		Msg("notification created")

	if r.forward != nil {
		r.forward.Forward(ctx, r.profile, entry)
	}
}

// MarkRead marks one entry read. It reports whether the entry exists.
func (r *Reconciler) MarkRead(id uuid.UUID) bool {
	return r.log.MarkRead(id)
}

// MarkAllRead marks every entry read.
func (r *Reconciler) MarkAllRead() {
	r.log.MarkAllRead()
}

// Feed renders the log as of now.
func (r *Reconciler) Feed(now time.Time) model.NotificationFeed {
	entries, unread := r.log.Snapshot()

	views := make([]model.EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, model.EntryView{
			Entry:        e,
			Icon:         Icon(e.Type),
			RelativeTime: FormatTimestamp(e.Timestamp, now),
		})
	}

	return model.NotificationFeed{
		Notifications: views,
		UnreadCount:   unread,
		Badge:         BadgeLabel(unread),
	}
}
