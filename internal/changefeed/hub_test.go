package changefeed

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/donorlink/internal/model"
)

func matchesEvent(op model.Op) model.ChangeEvent {
	return model.ChangeEvent{Schema: "public", Table: model.MatchesTable, Type: op}
}

func TestFilter_Match(t *testing.T) {
	f := Filter{Schema: "public", Table: model.MatchesTable, Ops: []model.Op{model.OpInsert, model.OpUpdate}}

	assert.True(t, f.Match(matchesEvent(model.OpInsert)))
	assert.True(t, f.Match(matchesEvent(model.OpUpdate)))
	assert.False(t, f.Match(matchesEvent(model.OpDelete)))
	assert.False(t, f.Match(model.ChangeEvent{Schema: "public", Table: "requests", Type: model.OpInsert}))
	assert.False(t, f.Match(model.ChangeEvent{Schema: "audit", Table: model.MatchesTable, Type: model.OpInsert}))
	assert.True(t, Filter{}.Match(model.ChangeEvent{Table: "anything", Type: model.OpDelete}))
}

func TestHub_DeliverToMatchingSubscribers(t *testing.T) {
	h := NewHub()

	var inserts, updates int32
	h.Subscribe("inserts", Filter{Table: model.MatchesTable, Ops: []model.Op{model.OpInsert}}, func(context.Context, model.ChangeEvent) {
		atomic.AddInt32(&inserts, 1)
	})
	h.Subscribe("updates", Filter{Table: model.MatchesTable, Ops: []model.Op{model.OpUpdate}}, func(context.Context, model.ChangeEvent) {
		atomic.AddInt32(&updates, 1)
	})

	require.NoError(t, h.Deliver(context.Background(), matchesEvent(model.OpInsert)))
	require.NoError(t, h.Deliver(context.Background(), matchesEvent(model.OpInsert)))
	require.NoError(t, h.Deliver(context.Background(), matchesEvent(model.OpUpdate)))
	h.Wait()

	assert.EqualValues(t, 2, atomic.LoadInt32(&inserts))
	assert.EqualValues(t, 1, atomic.LoadInt32(&updates))
}

func TestHub_Unsubscribe(t *testing.T) {
	h := NewHub()

	var calls int32
	sub := h.Subscribe("matches-changes", Filter{}, func(context.Context, model.ChangeEvent) {
		atomic.AddInt32(&calls, 1)
	})
	require.Equal(t, 1, h.Len())

	h.Unsubscribe(sub)
	h.Unsubscribe(sub)
	assert.Equal(t, 0, h.Len())

	require.NoError(t, h.Deliver(context.Background(), matchesEvent(model.OpInsert)))
	h.Wait()
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestHub_HandlersRunConcurrently(t *testing.T) {
	h := NewHub()

	release := make(chan struct{})
	var started sync.WaitGroup
	started.Add(2)

	for i := 0; i < 2; i++ {
		h.Subscribe("matches-changes", Filter{}, func(context.Context, model.ChangeEvent) {
			started.Done()
			<-release
		})
	}

	require.NoError(t, h.Deliver(context.Background(), matchesEvent(model.OpInsert)))

	// both handlers must be running at once for this to return
	started.Wait()
	close(release)
	h.Wait()
}

func TestHub_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	h := NewHub()

	var calls int32
	h.Subscribe("bad", Filter{}, func(context.Context, model.ChangeEvent) { panic("boom") })
	h.Subscribe("good", Filter{}, func(context.Context, model.ChangeEvent) { atomic.AddInt32(&calls, 1) })

	require.NoError(t, h.Deliver(context.Background(), matchesEvent(model.OpInsert)))
	h.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestHub_Close(t *testing.T) {
	h := NewHub()
	h.Subscribe("matches-changes", Filter{}, func(context.Context, model.ChangeEvent) {})

	h.Close()

	assert.Equal(t, 0, h.Len())
	assert.ErrorIs(t, h.Deliver(context.Background(), matchesEvent(model.OpInsert)), ErrClosed)
}
