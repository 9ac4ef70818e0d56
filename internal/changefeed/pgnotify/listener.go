// Package pgnotify reads match change events from a Postgres NOTIFY channel.
package pgnotify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/donorlink/internal/model"
)

// Listener wraps a lib/pq listener subscribed to one channel.
type Listener struct {
	listener     *pq.Listener
	channel      string
	pingInterval time.Duration
}

// NewListener opens a dedicated listening connection to dsn.
// The connection is re-established between minReconnect and maxReconnect
// after it drops.
func NewListener(dsn, channel string, minReconnect, maxReconnect, pingInterval time.Duration) *Listener {
	l := pq.NewListener(dsn, minReconnect, maxReconnect, func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventConnected:
			zlog.Logger.Info().Str("channel", channel).Msg("notify listener connected")
		case pq.ListenerEventDisconnected:
			zlog.Logger.Warn().Err(err).Str("channel", channel).Msg("notify listener disconnected")
		case pq.ListenerEventReconnected:
			zlog.Logger.Info().Str("channel", channel).Msg("notify listener reconnected")
		case pq.ListenerEventConnectionAttemptFailed:
			zlog.Logger.Error().Err(err).Str("channel", channel).Msg("notify listener connection attempt failed")
		}
	})

	return &Listener{
		listener:     l,
		channel:      channel,
		pingInterval: pingInterval,
	}
}

// Consume listens on the channel and sends decoded events to out until ctx
// is done.
func (l *Listener) Consume(ctx context.Context, out chan<- model.ChangeEvent, strategy retry.Strategy) error {
	err := retry.Do(func() error {
		return l.listener.Listen(l.channel)
	}, strategy)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", l.channel, err)
	}

	return pump(ctx, l.listener.Notify, l.listener.Ping, l.pingInterval, out)
}

// Close stops listening and closes the connection.
func (l *Listener) Close() error {
	return l.listener.Close()
}

func pump(
	ctx context.Context,
	notify <-chan *pq.Notification,
	ping func() error,
	pingInterval time.Duration,
	out chan<- model.ChangeEvent,
) error {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case n, ok := <-notify:
			if !ok {
				return nil
			}
			// nil is sent after a reconnect; notifications may have been lost
			if n == nil {
				zlog.Logger.Warn().Msg("notify connection re-established, events may have been missed")
				continue
			}

			ev, err := Decode(n.Extra)
			if err != nil {
				zlog.Logger.Error().Err(err).Str("channel", n.Channel).Msg("failed to decode change event")
				continue
			}

			select {
			case out <- ev:
			case <-ctx.Done():
				return nil
			}
		case <-ticker.C:
			if err := ping(); err != nil {
				zlog.Logger.Warn().Err(err).Msg("notify listener ping failed")
			}
		}
	}
}

// Decode parses a NOTIFY payload produced by the notify_match_change trigger.
func Decode(payload string) (model.ChangeEvent, error) {
	var ev model.ChangeEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return model.ChangeEvent{}, fmt.Errorf("unmarshal payload: %w", err)
	}

	if ev.Table == "" || ev.Type == "" {
		return model.ChangeEvent{}, fmt.Errorf("payload is missing table or event type")
	}

	return ev, nil
}
