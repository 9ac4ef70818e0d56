package reconciler

import (
	"sync"

	"github.com/google/uuid"

	"github.com/aliskhannn/donorlink/internal/model"
)

// DefaultCapacity is the number of entries a log keeps unless configured.
const DefaultCapacity = 50

// Log is a bounded newest-first list of notification entries.
// The unread count always equals the number of entries not yet read.
type Log struct {
	mu       sync.Mutex
	capacity int
	entries  []model.Entry
	unread   int
}

func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Log{
		capacity: capacity,
		entries:  make([]model.Entry, 0, capacity),
	}
}

// Prepend puts e first and drops the oldest entries beyond capacity.
func (l *Log) Prepend(e model.Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]model.Entry{e}, l.entries...)
	if !e.Read {
		l.unread++
	}

	if len(l.entries) <= l.capacity {
		return
	}

	for _, dropped := range l.entries[l.capacity:] {
		if !dropped.Read {
			l.unread--
		}
	}
	l.entries = l.entries[:l.capacity:l.capacity]
}

// MarkRead marks the entry read. It reports whether the entry exists.
func (l *Log) MarkRead(id uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID != id {
			continue
		}

		if !l.entries[i].Read {
			l.entries[i].Read = true
			l.unread--
		}

		return true
	}

	return false
}

// MarkAllRead marks every entry read.
func (l *Log) MarkAllRead() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		l.entries[i].Read = true
	}
	l.unread = 0
}

// Snapshot returns a copy of the entries, newest first, and the unread count.
func (l *Log) Snapshot() ([]model.Entry, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.Entry, len(l.entries))
	copy(out, l.entries)

	return out, l.unread
}
