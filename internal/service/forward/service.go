package forward

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/donorlink/internal/metrics"
	"github.com/aliskhannn/donorlink/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/forward/mock.go -package=mocks
type Notifier interface {
	Send(to, subject, msg string) error
}

const (
	ChannelEmail    = "email"
	ChannelTelegram = "telegram"
)

// Service copies notification entries to an out-of-band channel.
type Service struct {
	notifiers map[string]Notifier
	channel   string
	chatID    string
	strategy  retry.Strategy
}

// NewService creates a forwarder for channel. An empty channel disables
// forwarding. Telegram messages go to chatID, emails to the profile address.
func NewService(notifiers map[string]Notifier, channel, chatID string, strategy retry.Strategy) *Service {
	return &Service{
		notifiers: notifiers,
		channel:   channel,
		chatID:    chatID,
		strategy:  strategy,
	}
}

// Forward sends the entry to the profile. Failures are logged, not returned.
func (s *Service) Forward(ctx context.Context, profile model.Profile, entry model.Entry) {
	if s.channel == "" {
		return
	}

	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return s.send(profile, entry)
		}
	}, s.strategy)
	if err != nil {
		metrics.ForwardFailuresTotal.WithLabelValues(s.channel).Inc()
		zlog.Logger.Error().
			Err(err).
			Str("channel", s.channel).
			Str("profile_id", profile.ID.String()).
			Str("entry_id", entry.ID.String()).
			Msg("failed to forward notification")
		return
	}

	zlog.Logger.Info().
		Str("channel", s.channel).
		Str("entry_id", entry.ID.String()).
		Msg("notification forwarded")
}

func (s *Service) send(profile model.Profile, entry model.Entry) error {
	notifier, ok := s.notifiers[s.channel]
	if !ok {
		return fmt.Errorf("unknown channel %s", s.channel)
	}

	to := s.chatID
	if s.channel == ChannelEmail {
		to = profile.Email
	}
	if to == "" {
		return fmt.Errorf("no %s recipient for profile %s", s.channel, profile.ID)
	}

	if err := notifier.Send(to, entry.Title, entry.Message); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	return nil
}
