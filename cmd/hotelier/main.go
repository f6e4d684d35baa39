package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"hotelier/internal/catalog"
	"hotelier/internal/cli"
	"hotelier/internal/config"
	"hotelier/internal/domain"
	"hotelier/internal/events"
	"hotelier/internal/export"
	"hotelier/internal/ledger"
	"hotelier/internal/logging"
	"hotelier/internal/metrics"
	"hotelier/internal/service"
	"hotelier/internal/store"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, logger, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer (func(c io.Closer) { _ = c.Close() })(closer)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Monitoring.PrometheusEnabled {
		startMetricsListener(cfg.Monitoring.PrometheusPort, &logger)
	}

	recordStore, storeCloser, err := newRecordStore(cfg, &logger)
	if err != nil {
		return err
	}
	if storeCloser != nil {
		defer storeCloser.Close()
	}

	eventBus := events.NewEventBus()
	subscribeReservationEvents(eventBus, &logger)

	svc := service.NewReservationService(catalog.New(cfg.Rooms), ledger.New(), recordStore, eventBus, &logger)
	if err := svc.Restore(ctx); err != nil {
		return err
	}

	exportWriter := export.NewWriter(cfg.Exports.Path, &logger)
	menu := cli.New(svc, exportWriter, os.Stdin, os.Stdout, &logger)
	return menu.Run(ctx)
}

func loadConfigAndLogger() (*config.Config, zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}
	logger := baseLogger.With().Str("component", "hotelier-main").Logger()

	return cfg, logger, closer, nil
}

func newRecordStore(cfg *config.Config, logger *zerolog.Logger) (domain.RecordStore, io.Closer, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		s, err := store.NewSQLiteStore(cfg.Storage.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case config.BackendMemory:
		return store.NewMemoryStore(), nil, nil
	default:
		return store.NewFileStore(cfg.Storage.Path, logger), nil, nil
	}
}

func subscribeReservationEvents(bus *events.EventBus, logger *zerolog.Logger) {
	audit := func(event *events.Event) error {
		logger.Info().
			Str("event_id", event.ID).
			Str("event_type", event.Type).
			RawJSON("payload", event.Payload).
			Msg("reservation event")
		return nil
	}
	bus.Subscribe(events.EventReservationBooked, audit)
	bus.Subscribe(events.EventReservationCancelled, audit)
}

func startMetricsListener(port int, logger *zerolog.Logger) {
	metrics.Register()
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		addr := fmt.Sprintf(":%d", port)
		logger.Info().Str("addr", addr).Msg("metrics listener started")
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error().Err(err).Msg("metrics listener error")
		}
	}()
}
