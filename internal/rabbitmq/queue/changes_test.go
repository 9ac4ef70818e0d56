package queue

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/donorlink/internal/model"
)

func TestDecode_SkipsMalformedMessages(t *testing.T) {
	ev := model.ChangeEvent{
		Schema:          "public",
		Table:           model.MatchesTable,
		Type:            model.OpInsert,
		CommitTimestamp: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
		New:             json.RawMessage(`{"status":"pending"}`),
	}
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	in := make(chan []byte, 2)
	out := make(chan model.ChangeEvent, 2)
	in <- []byte("{broken")
	in <- body
	close(in)

	decode(context.Background(), in, out)

	require.Len(t, out, 1)
	got := <-out
	assert.Equal(t, ev.Type, got.Type)
	assert.Equal(t, ev.Table, got.Table)
	assert.True(t, ev.CommitTimestamp.Equal(got.CommitTimestamp))
	assert.JSONEq(t, string(ev.New), string(got.New))
}

func TestDecode_StopsOnContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := make(chan []byte, 1)
	in <- []byte(`{"table":"matches","eventType":"INSERT"}`)

	done := make(chan struct{})
	go func() {
		decode(ctx, in, make(chan model.ChangeEvent))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("decode did not stop after cancellation")
	}
}

func TestTopology_ReplicaQueueIsUniquePerSubscriber(t *testing.T) {
	topo := Topology{Exchange: "match-changes", Queue: "match-changes-queue", DLQ: "match-changes-dlq", RoutingKey: "matches"}

	first, second := topo.ReplicaQueue(), topo.ReplicaQueue()

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "match-changes-queue."))
	assert.True(t, strings.HasPrefix(second, "match-changes-queue."))
}
