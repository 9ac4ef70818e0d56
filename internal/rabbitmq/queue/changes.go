package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/donorlink/internal/model"
)

// Topology names the exchange and queues change events travel through.
// Queue is the prefix of the per-replica subscriber queues.
type Topology struct {
	Exchange   string
	Queue      string
	DLQ        string
	RoutingKey string
}

// ReplicaQueue returns a queue name unique to one subscriber process.
func (t Topology) ReplicaQueue() string {
	return t.Queue + "." + uuid.NewString()
}

// declare sets up the exchange and the shared dead letter queue and
// returns the exchange name.
func declare(ch *rabbitmq.Channel, t Topology) (string, error) {
	exchange := rabbitmq.NewExchange(t.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return "", fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)
	if _, err := qm.DeclareQueue(t.DLQ, rabbitmq.QueueConfig{Durable: true}); err != nil {
		return "", fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	return exchange.Name(), nil
}

// ChangePublisher publishes match change events to the exchange. It is the
// relay side of the feed.
type ChangePublisher struct {
	Publisher  *rabbitmq.Publisher
	routingKey string
	strategy   retry.Strategy
}

func NewChangePublisher(ch *rabbitmq.Channel, t Topology, strategy retry.Strategy) (*ChangePublisher, error) {
	exchange, err := declare(ch, t)
	if err != nil {
		return nil, err
	}

	return &ChangePublisher{
		Publisher:  rabbitmq.NewPublisher(ch, exchange),
		routingKey: t.RoutingKey,
		strategy:   strategy,
	}, nil
}

// Deliver publishes the event to the exchange.
func (p *ChangePublisher) Deliver(_ context.Context, ev model.ChangeEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	if err := p.Publisher.PublishWithRetry(body, p.routingKey, "application/json", p.strategy); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}

	return nil
}

// ChangeSubscriber reads change events from a queue owned by this process.
// Every subscriber binds its own queue, so each replica sees every event.
type ChangeSubscriber struct {
	Consumer *rabbitmq.Consumer
	Queue    string
}

// NewChangeSubscriber declares an exclusive auto-deleted queue bound to the
// exchange. Rejected messages are dead-lettered to the shared DLQ.
func NewChangeSubscriber(ch *rabbitmq.Channel, t Topology) (*ChangeSubscriber, error) {
	exchange, err := declare(ch, t)
	if err != nil {
		return nil, err
	}

	qm := rabbitmq.NewQueueManager(ch)

	q, err := qm.DeclareQueue(t.ReplicaQueue(), rabbitmq.QueueConfig{
		Exclusive:  true,
		AutoDelete: true,
		Args: map[string]interface{}{
			"x-dead-letter-exchange":    "",
			"x-dead-letter-routing-key": t.DLQ,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare replica queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, t.RoutingKey, exchange, false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the replica queue: %w", err)
	}

	zlog.Logger.Info().Str("queue", q.Name).Str("exchange", exchange).Msg("change subscriber queue declared")

	return &ChangeSubscriber{
		Consumer: rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(q.Name)),
		Queue:    q.Name,
	}, nil
}

// Consume reads change events from the replica queue into out.
func (s *ChangeSubscriber) Consume(ctx context.Context, out chan<- model.ChangeEvent, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go decode(ctx, msgChan, out)

	return s.Consumer.ConsumeWithRetry(msgChan, strategy)
}

func decode(ctx context.Context, in <-chan []byte, out chan<- model.ChangeEvent) {
	for m := range in {
		var ev model.ChangeEvent
		if err := json.Unmarshal(m, &ev); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to unmarshal change event")
			continue
		}

		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}
