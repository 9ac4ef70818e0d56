package main

import (
	"context"

	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/donorlink/internal/config"
	"github.com/aliskhannn/donorlink/internal/model"
	"github.com/aliskhannn/donorlink/internal/rabbitmq/queue"
)

type changeFeed interface {
	Consume(ctx context.Context, out chan<- model.ChangeEvent, strategy retry.Strategy) error
}

func topology(r config.RabbitMQ) queue.Topology {
	return queue.Topology{
		Exchange:   r.Exchange,
		Queue:      r.Queue,
		DLQ:        r.DLQ,
		RoutingKey: r.RoutingKey,
	}
}
