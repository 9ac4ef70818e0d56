package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/donorlink/internal/api/dto"
	"github.com/aliskhannn/donorlink/internal/api/handlers/match"
	"github.com/aliskhannn/donorlink/internal/api/handlers/notification"
	"github.com/aliskhannn/donorlink/internal/api/handlers/request"
	"github.com/aliskhannn/donorlink/internal/api/router"
	"github.com/aliskhannn/donorlink/internal/api/server"
	"github.com/aliskhannn/donorlink/internal/changefeed"
	"github.com/aliskhannn/donorlink/internal/changefeed/pgnotify"
	"github.com/aliskhannn/donorlink/internal/config"
	"github.com/aliskhannn/donorlink/internal/metrics"
	"github.com/aliskhannn/donorlink/internal/rabbitmq/queue"
	dirrepo "github.com/aliskhannn/donorlink/internal/repository/directory"
	matchrepo "github.com/aliskhannn/donorlink/internal/repository/match"
	reqrepo "github.com/aliskhannn/donorlink/internal/repository/request"
	dirsvc "github.com/aliskhannn/donorlink/internal/service/directory"
	"github.com/aliskhannn/donorlink/internal/service/forward"
	reqsvc "github.com/aliskhannn/donorlink/internal/service/request"
	"github.com/aliskhannn/donorlink/internal/session"
	"github.com/aliskhannn/donorlink/internal/toast"
	"github.com/aliskhannn/donorlink/internal/worker"
	"github.com/aliskhannn/donorlink/pkg/email"
	"github.com/aliskhannn/donorlink/pkg/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	metrics.Register()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	hub := changefeed.NewHub()

	var (
		feed    changeFeed
		closers []func() error
	)

	switch cfg.ChangeFeed.Source {
	case "rabbitmq":
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
		}

		ch, err := conn.Channel()
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
		}

		sub, err := queue.NewChangeSubscriber(ch, topology(cfg.RabbitMQ))
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to create change subscriber")
		}

		feed = sub
		closers = append(closers, ch.Close, conn.Close)
	default:
		if cfg.ChangeFeed.InstallTrigger {
			if err := pgnotify.InstallTrigger(ctx, db, cfg.ChangeFeed.Channel); err != nil {
				zlog.Logger.Fatal().Err(err).Msg("failed to install change trigger")
			}
		}

		l := pgnotify.NewListener(
			cfg.Database.Master.DSN(),
			cfg.ChangeFeed.Channel,
			cfg.ChangeFeed.MinReconnect,
			cfg.ChangeFeed.MaxReconnect,
			cfg.ChangeFeed.PingInterval,
		)

		feed = l
		closers = append(closers, l.Close)
	}

	feedErr := make(chan error, 1)
	dispatcher := worker.NewDispatcher(feed, hub, cfg.ChangeFeed.Buffer)
	go func() {
		if err := dispatcher.Run(ctx, cfg.Retry); err != nil {
			zlog.Logger.Error().Err(err).Msg("change feed failed, shutting down")
			feedErr <- err
			stop()
		}
	}()

	notifiers := map[string]forward.Notifier{
		forward.ChannelEmail: email.NewClient(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.Username,
			cfg.Email.Password,
			cfg.Email.From,
		),
		forward.ChannelTelegram: telegram.NewClient(cfg.Telegram.Token),
	}
	forwarder := forward.NewService(notifiers, cfg.Notifications.Forward, cfg.Telegram.ChatID, cfg.Retry)

	directory := dirsvc.NewService(dirrepo.NewRepository(db), rdb)
	inbox := toast.NewInbox(cfg.Notifications.ToastBacklog)

	sessions := session.NewManager(
		directory,
		matchrepo.NewRepository(db),
		inbox,
		forwarder,
		hub,
		cfg.Retry,
		cfg.Notifications.Capacity,
		cfg.Session,
	)
	go sessions.RunReaper(ctx, cfg.Session.ReapInterval)

	requests := reqsvc.NewService(reqrepo.NewRepository(db), directory, inbox)

	val := dto.NewValidator()
	r := router.New(router.Handlers{
		Match:        match.NewHandler(sessions, val),
		Notification: notification.NewHandler(sessions),
		Request:      request.NewHandler(requests, val, cfg),
	}, cfg.Auth.JWTSecret)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	zlog.Logger.Info().
		Str("addr", cfg.Server.HTTPPort).
		Str("change_feed", cfg.ChangeFeed.Source).
		Msg("donorlink started")

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	sessions.Close()
	hub.Close()

	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close change feed")
		}
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}

	if err := rdb.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis")
	}

	select {
	case err := <-feedErr:
		zlog.Logger.Fatal().Err(err).Msg("donorlink exited after change feed failure")
	default:
	}
}
