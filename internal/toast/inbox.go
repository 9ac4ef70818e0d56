// Package toast queues transient notices per profile until the client
// drains them.
package toast

import (
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/donorlink/internal/metrics"
	"github.com/aliskhannn/donorlink/internal/model"
)

// Inbox holds undrained toasts, at most backlog per profile.
// When full, the oldest toast is dropped. Only profiles opened with Open
// receive toasts; anything raised for other profiles is discarded.
type Inbox struct {
	mu      sync.Mutex
	backlog int
	open    map[uuid.UUID]struct{}
	queues  map[uuid.UUID][]model.Toast
}

func NewInbox(backlog int) *Inbox {
	if backlog <= 0 {
		backlog = 1
	}

	return &Inbox{
		backlog: backlog,
		open:    make(map[uuid.UUID]struct{}),
		queues:  make(map[uuid.UUID][]model.Toast),
	}
}

// Open starts accepting toasts for the profile.
func (in *Inbox) Open(profileID uuid.UUID) {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.open[profileID] = struct{}{}
}

// Toast queues t for the profile.
func (in *Inbox) Toast(profileID uuid.UUID, t model.Toast) {
	if t.Variant == "" {
		t.Variant = model.ToastDefault
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	if _, ok := in.open[profileID]; !ok {
		zlog.Logger.Debug().
			Str("profile_id", profileID.String()).
			Str("title", t.Title).
			Msg("toast dropped, no open inbox")
		return
	}

	q := append(in.queues[profileID], t)
	if len(q) > in.backlog {
		q = q[len(q)-in.backlog:]
	}
	in.queues[profileID] = q

	metrics.ToastsRaisedTotal.WithLabelValues(string(t.Variant)).Inc()

	zlog.Logger.Debug().
		Str("profile_id", profileID.String()).
		Str("title", t.Title).
		Str("variant", string(t.Variant)).
		Msg("toast raised")
}

// Drain returns the queued toasts, oldest first, and empties the queue.
func (in *Inbox) Drain(profileID uuid.UUID) []model.Toast {
	in.mu.Lock()
	defer in.mu.Unlock()

	q := in.queues[profileID]
	delete(in.queues, profileID)

	if q == nil {
		return []model.Toast{}
	}

	return q
}

// Forget discards everything queued for the profile and stops accepting
// new toasts until it is opened again.
func (in *Inbox) Forget(profileID uuid.UUID) {
	in.mu.Lock()
	defer in.mu.Unlock()

	delete(in.open, profileID)
	delete(in.queues, profileID)
}
