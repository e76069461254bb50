package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"fisc/internal/events"
	"fisc/internal/events/kafka"
	"fisc/internal/events/redisstream"
	httpapi "fisc/internal/http"
	"fisc/internal/jwtprincipal"
	"fisc/internal/ledger/handler"
	"fisc/internal/ledger/metrics"
	"fisc/internal/ledger/ports"
	"fisc/internal/ledger/service"
	storememory "fisc/internal/ledger/store/memory"
	storepostgres "fisc/internal/ledger/store/postgres"
	"fisc/internal/platform/config"
	"fisc/internal/platform/httpserver"
	"fisc/internal/platform/logger"
	platformredis "fisc/internal/platform/redis"
	bankmemory "fisc/internal/settlement/memory"
	id "fisc/pkg/domain"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the ledger HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.New(cfg.Log.Level)

	government, err := cfg.GovernmentPrincipal()
	if err != nil {
		return err
	}
	treasury, err := cfg.TreasuryPrincipal()
	if err != nil {
		return err
	}

	var store ports.Store
	switch cfg.Store.Driver {
	case "postgres":
		pgStore, err := storepostgres.Open(ctx, cfg.Postgres.URL, government)
		if err != nil {
			return err
		}
		defer pgStore.Close()
		store = pgStore
	default:
		store = storememory.New(government)
	}

	bank := bankmemory.NewBank(treasury, map[id.Principal]uint64{
		treasury: cfg.Settlement.InitialBalance,
	})

	sinks := events.Fanout{events.NewLogSink(log)}
	if len(cfg.Events.Kafka.Brokers) > 0 {
		publisher, err := kafka.New(ctx, cfg.Events.Kafka.Brokers, cfg.Events.Kafka.Topic)
		if err != nil {
			return fmt.Errorf("connect kafka sink: %w", err)
		}
		defer publisher.Close()
		sinks = append(sinks, publisher)
		log.Info("kafka event sink enabled", "brokers", cfg.Events.Kafka.Brokers, "topic", cfg.Events.Kafka.Topic)
	}
	if cfg.Events.Redis.URL != "" {
		redisClient, err := platformredis.New(cfg.Events.Redis.URL)
		if err != nil {
			return fmt.Errorf("connect redis sink: %w", err)
		}
		defer redisClient.Close()
		sinks = append(sinks, redisstream.New(redisClient, cfg.Events.Redis.Stream))
		log.Info("redis stream event sink enabled", "stream", cfg.Events.Redis.Stream)
	}

	svc, err := service.New(store, bank,
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
		service.WithEventSink(sinks),
	)
	if err != nil {
		return err
	}

	tokens := jwtprincipal.New(cfg.Auth.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	router := httpapi.NewRouter(handler.New(svc, log), tokens, log)
	srv := httpserver.New(cfg.Server.Addr, router)

	log.Info("fisc ledger starting",
		"addr", cfg.Server.Addr,
		"store", cfg.Store.Driver,
		"government", government,
		"seed_balance", humanize.Comma(int64(cfg.Settlement.InitialBalance)),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
