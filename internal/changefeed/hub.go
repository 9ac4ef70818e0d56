// Package changefeed fans row-level change events out to in-process
// subscribers.
//
// A Hub is fed by a single dispatcher loop (see internal/worker) and calls
// every matching handler on its own goroutine, so handlers for different
// sessions never block each other and may interleave.
package changefeed

import (
	"context"
	"errors"
	"sync"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/donorlink/internal/model"
)

// ErrClosed is returned by Deliver once the hub has been closed.
var ErrClosed = errors.New("change feed hub closed")

// Handler receives a change event matching its subscription filter.
type Handler func(ctx context.Context, ev model.ChangeEvent)

// Filter selects events by schema, table and operation.
// Empty fields match everything.
type Filter struct {
	Schema string
	Table  string
	Ops    []model.Op
}

// Match reports whether ev passes the filter.
func (f Filter) Match(ev model.ChangeEvent) bool {
	if f.Schema != "" && f.Schema != ev.Schema {
		return false
	}
	if f.Table != "" && f.Table != ev.Table {
		return false
	}
	if len(f.Ops) == 0 {
		return true
	}

	for _, op := range f.Ops {
		if op == ev.Type {
			return true
		}
	}

	return false
}

// Subscription identifies a registered handler.
type Subscription struct {
	id      uint64
	Channel string
}

type subscriber struct {
	channel string
	filter  Filter
	handler Handler
}

// Hub keeps the set of subscribers and delivers events to them.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[uint64]subscriber
	closed bool

	wg sync.WaitGroup
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]subscriber)}
}

// Subscribe registers handler on channel for events passing filter.
func (h *Hub) Subscribe(channel string, filter Filter, handler Handler) Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	h.subs[h.nextID] = subscriber{channel: channel, filter: filter, handler: handler}

	zlog.Logger.Debug().Str("channel", channel).Uint64("subscription", h.nextID).Msg("subscribed to change feed")

	return Subscription{id: h.nextID, Channel: channel}
}

// Unsubscribe removes the subscription. Handlers already running finish.
func (h *Hub) Unsubscribe(sub Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub.id]; !ok {
		return
	}
	delete(h.subs, sub.id)

	zlog.Logger.Debug().Str("channel", sub.Channel).Uint64("subscription", sub.id).Msg("unsubscribed from change feed")
}

// Len returns the number of active subscriptions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs)
}

// Deliver starts every matching handler on its own goroutine and returns
// without waiting for them.
func (h *Hub) Deliver(ctx context.Context, ev model.ChangeEvent) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return ErrClosed
	}

	for _, s := range h.subs {
		if !s.filter.Match(ev) {
			continue
		}

		h.wg.Add(1)
		go func(s subscriber) {
			defer h.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					zlog.Logger.Error().Interface("panic", r).Str("channel", s.channel).Msg("change handler panicked")
				}
			}()

			s.handler(ctx, ev)
		}(s)
	}

	return nil
}

// Wait blocks until every handler started so far has returned.
func (h *Hub) Wait() {
	h.wg.Wait()
}

// Close stops accepting events, drops all subscriptions and waits for
// running handlers.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	h.subs = make(map[uint64]subscriber)
	h.mu.Unlock()

	h.wg.Wait()
}
