package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/donorlink/internal/mocks/worker"
	"github.com/aliskhannn/donorlink/internal/model"
)

func TestDispatcher_Run_DeliversInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeed := mocks.NewMockchangeFeed(ctrl)
	mockSink := mocks.NewMockchangeSink(ctrl)

	d := NewDispatcher(mockFeed, mockSink, 4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	first := model.ChangeEvent{Table: model.MatchesTable, Type: model.OpInsert}
	second := model.ChangeEvent{Table: model.MatchesTable, Type: model.OpUpdate}

	mockFeed.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(ctx context.Context, out chan<- model.ChangeEvent, _ retry.Strategy) error {
			out <- first
			out <- second
			<-ctx.Done()
			return nil
		},
	)

	delivered := make(chan struct{})
	gomock.InOrder(
		mockSink.EXPECT().Deliver(gomock.Any(), first).Return(nil),
		mockSink.EXPECT().Deliver(gomock.Any(), second).DoAndReturn(
			func(context.Context, model.ChangeEvent) error {
				close(delivered)
				return nil
			},
		),
	)

	done := make(chan struct{})
	go func() {
		assert.NoError(t, d.Run(ctx, strategy))
		close(done)
	}()

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("events were not delivered")
	}

	cancel()
	<-done
}

func TestDispatcher_Run_SinkErrorDoesNotStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeed := mocks.NewMockchangeFeed(ctrl)
	mockSink := mocks.NewMockchangeSink(ctrl)

	d := NewDispatcher(mockFeed, mockSink, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	ev := model.ChangeEvent{Table: model.MatchesTable, Type: model.OpInsert}

	mockFeed.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(ctx context.Context, out chan<- model.ChangeEvent, _ retry.Strategy) error {
			out <- ev
			out <- ev
			<-ctx.Done()
			return nil
		},
	)

	delivered := make(chan struct{})
	mockSink.EXPECT().Deliver(gomock.Any(), ev).Return(errors.New("hub closed"))
	mockSink.EXPECT().Deliver(gomock.Any(), ev).DoAndReturn(
		func(context.Context, model.ChangeEvent) error {
			close(delivered)
			return nil
		},
	)

	done := make(chan struct{})
	go func() {
		assert.NoError(t, d.Run(ctx, strategy))
		close(done)
	}()

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("second event was not delivered")
	}

	cancel()
	<-done
}

func TestDispatcher_Run_FeedErrorStopsDispatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeed := mocks.NewMockchangeFeed(ctrl)
	mockSink := mocks.NewMockchangeSink(ctrl)

	d := NewDispatcher(mockFeed, mockSink, 1)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockFeed.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).
		Return(errors.New("connection refused"))

	errCh := make(chan error, 1)
	go func() { errCh <- d.Run(context.Background(), strategy) }()

	select {
	case err := <-errCh:
		require.Error(t, err)
		assert.ErrorContains(t, err, "connection refused")
	case <-time.After(time.Second):
		t.Fatal("dispatcher kept running after the feed failed")
	}
}

func TestDispatcher_Run_FeedEndDeliversQueuedEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeed := mocks.NewMockchangeFeed(ctrl)
	mockSink := mocks.NewMockchangeSink(ctrl)

	d := NewDispatcher(mockFeed, mockSink, 2)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	ev := model.ChangeEvent{Table: model.MatchesTable, Type: model.OpUpdate}

	mockFeed.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- model.ChangeEvent, _ retry.Strategy) error {
			out <- ev
			out <- ev
			return nil
		},
	)
	mockSink.EXPECT().Deliver(gomock.Any(), ev).Return(nil).Times(2)

	err := d.Run(context.Background(), strategy)
	assert.ErrorIs(t, err, ErrFeedStopped)
}

func TestDispatcher_Run_CancelIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeed := mocks.NewMockchangeFeed(ctrl)
	mockSink := mocks.NewMockchangeSink(ctrl)

	d := NewDispatcher(mockFeed, mockSink, 1)

	ctx, cancel := context.WithCancel(context.Background())
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	started := make(chan struct{})
	mockFeed.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(ctx context.Context, _ chan<- model.ChangeEvent, _ retry.Strategy) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		},
	)

	errCh := make(chan error, 1)
	go func() { errCh <- d.Run(ctx, strategy) }()

	<-started
	cancel()
	assert.NoError(t, <-errCh)
}
