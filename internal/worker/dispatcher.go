package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/donorlink/internal/metrics"
	"github.com/aliskhannn/donorlink/internal/model"
)

// ErrFeedStopped is reported when the feed returns without an error while
// the dispatcher is still running.
var ErrFeedStopped = errors.New("change feed ended unexpectedly")

//go:generate mockgen -source=dispatcher.go -destination=../mocks/worker/mock.go -package=mocks
type changeFeed interface {
	Consume(ctx context.Context, out chan<- model.ChangeEvent, strategy retry.Strategy) error
}

type changeSink interface {
	Deliver(ctx context.Context, ev model.ChangeEvent) error
}

// Dispatcher moves change events from a feed into a sink one at a time,
// preserving feed order.
type Dispatcher struct {
	feed   changeFeed
	sink   changeSink
	buffer int
}

func NewDispatcher(feed changeFeed, sink changeSink, buffer int) *Dispatcher {
	return &Dispatcher{
		feed:   feed,
		sink:   sink,
		buffer: buffer,
	}
}

// Run blocks until ctx is done or the feed stops. A feed that stops while
// ctx is still live is reported as an error; events it already queued are
// delivered first.
func (d *Dispatcher) Run(ctx context.Context, strategy retry.Strategy) error {
	events := make(chan model.ChangeEvent, d.buffer)
	feedDone := make(chan error, 1)

	go func() {
		feedDone <- d.feed.Consume(ctx, events, strategy)
	}()

	zlog.Logger.Info().Msg("dispatcher started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("dispatcher stopped")
			return nil
		case err := <-feedDone:
			if ctx.Err() != nil {
				zlog.Logger.Info().Msg("dispatcher stopped")
				return nil
			}

			d.drain(ctx, events)

			if err == nil {
				err = ErrFeedStopped
			}
			return fmt.Errorf("change feed stopped: %w", err)
		case ev := <-events:
			d.deliver(ctx, ev)
		}
	}
}

func (d *Dispatcher) drain(ctx context.Context, events <-chan model.ChangeEvent) {
	for {
		select {
		case ev := <-events:
			d.deliver(ctx, ev)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, ev model.ChangeEvent) {
	metrics.ChangeEventsTotal.WithLabelValues(ev.Table, string(ev.Type)).Inc()

	if err := d.sink.Deliver(ctx, ev); err != nil {
		metrics.ChangeEventsFailedTotal.Inc()
		zlog.Logger.Error().
			Err(err).
			Str("table", ev.Table).
			Str("op", string(ev.Type)).
			Msg("failed to deliver change event")
	}
}
