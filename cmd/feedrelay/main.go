package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/donorlink/internal/changefeed/pgnotify"
	"github.com/aliskhannn/donorlink/internal/config"
	"github.com/aliskhannn/donorlink/internal/metrics"
	"github.com/aliskhannn/donorlink/internal/rabbitmq/queue"
	"github.com/aliskhannn/donorlink/internal/worker"
)

// feedrelay listens for match changes in Postgres and republishes them to
// RabbitMQ, so API replicas can consume the change feed from the broker.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	metrics.Register()

	if cfg.ChangeFeed.InstallTrigger {
		db, err := dbpg.New(cfg.Database.Master.DSN(), nil, &dbpg.Options{MaxOpenConns: 1, MaxIdleConns: 1})
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
		}

		if err := pgnotify.InstallTrigger(ctx, db, cfg.ChangeFeed.Channel); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to install change trigger")
		}

		if err := db.Master.Close(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close master DB")
		}
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	pub, err := queue.NewChangePublisher(ch, queue.Topology{
		Exchange:   cfg.RabbitMQ.Exchange,
		Queue:      cfg.RabbitMQ.Queue,
		DLQ:        cfg.RabbitMQ.DLQ,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
	}, cfg.Retry)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create change publisher")
	}

	listener := pgnotify.NewListener(
		cfg.Database.Master.DSN(),
		cfg.ChangeFeed.Channel,
		cfg.ChangeFeed.MinReconnect,
		cfg.ChangeFeed.MaxReconnect,
		cfg.ChangeFeed.PingInterval,
	)

	failed := false

	zlog.Logger.Info().
		Str("channel", cfg.ChangeFeed.Channel).
		Str("exchange", cfg.RabbitMQ.Exchange).
		Msg("feedrelay started")

	if err := worker.NewDispatcher(listener, pub, cfg.ChangeFeed.Buffer).Run(ctx, cfg.Retry); err != nil {
		zlog.Logger.Error().Err(err).Msg("relay stopped")
		failed = true
	}

	zlog.Logger.Info().Msg("shutting down relay")

	if err := listener.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close listener")
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}

	if failed {
		zlog.Logger.Fatal().Msg("relay exited after change feed failure")
	}
}
