package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bakeshop/internal/catalog"
	"github.com/vladislavdragonenkov/bakeshop/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/bakeshop/internal/health"
	"github.com/vladislavdragonenkov/bakeshop/internal/messaging"
	"github.com/vladislavdragonenkov/bakeshop/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/bakeshop/internal/orders"
	"github.com/vladislavdragonenkov/bakeshop/internal/service/checkout"
	"github.com/vladislavdragonenkov/bakeshop/internal/service/httpapi"
	boltstore "github.com/vladislavdragonenkov/bakeshop/internal/storage/bolt"
	"github.com/vladislavdragonenkov/bakeshop/internal/storage/memory"
	pgstore "github.com/vladislavdragonenkov/bakeshop/internal/storage/postgres"
	"github.com/vladislavdragonenkov/bakeshop/internal/version"
)

const shutdownTimeout = 5 * time.Second

// Run собирает зависимости по конфигурации и держит оба HTTP-сервера
// (API и метрики) до отмены контекста.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	catalogRepo := catalog.NewRepository(store, logger.WithField("layer", "catalog"))
	orderRepo := orders.NewRepository(store, logger.WithField("layer", "orders"))

	// Каталог прогревается на старте; при недоступном хранилище работаем
	// на seed-наборе до конца сессии.
	products := catalogRepo.Load(ctx)
	logger.WithField("products", len(products)).Info("catalog loaded")

	// Kafka опциональна: без брокеров уведомления уходят в лог.
	var sink domain.NotificationSink
	var kafkaProducer *kafka.Producer
	if cfg.KafkaBrokers != "" {
		brokers := strings.Split(cfg.KafkaBrokers, ",")
		producer, err := kafka.NewProducer(brokers, cfg.KafkaTopic)
		if err != nil {
			logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		} else {
			kafkaProducer = producer
			sink = producer
			logger.WithField("brokers", brokers).Info("kafka producer initialized")
		}
	}
	if sink == nil {
		sink = messaging.NewNoopSink(logger.WithField("component", "noop-sink"))
	}

	factory := orders.NewFactory()
	checkoutSvc := checkout.NewService(factory, orderRepo, sink, logger.WithField("layer", "checkout"))

	apiServer := httpapi.NewServer(catalogRepo, orderRepo, checkoutSvc, logger.WithField("layer", "http"))
	e := apiServer.Echo()

	healthHandler := healthcheck.NewHandler(version.String())
	healthHandler.RegisterChecker("store", healthcheck.NewStoreChecker(cfg.Storage, store))

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP API слушает %s", cfg.HTTPAddr)
		errCh <- e.Start(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем HTTP сервер")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("graceful stop превысил таймаут, принудительно останавливаем")
			_ = e.Close()
		}
		shutdownHTTP(metricsSrv, logger)
		closeProducer(kafkaProducer, logger)
		return ctx.Err()
	case err := <-errCh:
		shutdownHTTP(metricsSrv, logger)
		closeProducer(kafkaProducer, logger)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// openStore создаёт key-value хранилище по выбранному бэкенду.
func openStore(ctx context.Context, cfg Config, logger *log.Entry) (domain.KeyValueStore, func(), error) {
	switch cfg.Storage {
	case StorageMemory:
		logger.Info("using in-memory key-value store")
		return memory.NewKeyValueStore(), func() {}, nil
	case StorageBolt:
		store, err := boltstore.Open(cfg.BoltPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt store: %w", err)
		}
		logger.WithField("path", cfg.BoltPath).Info("using bolt key-value store")
		return store, func() { closeQuiet(store, logger) }, nil
	case StoragePostgres:
		store, err := pgstore.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres store: %w", err)
		}
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("ensure postgres schema: %w", err)
		}
		logger.Info("using postgres key-value store")
		return store, func() { closeQuiet(store, logger) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

func closeQuiet(c io.Closer, logger *log.Entry) {
	if err := c.Close(); err != nil {
		logger.WithError(err).Warn("failed to close store")
	}
}

func closeProducer(p *kafka.Producer, logger *log.Entry) {
	if p == nil {
		return
	}
	if err := p.Close(); err != nil {
		logger.WithError(err).Warn("failed to close kafka producer")
	} else {
		logger.Info("kafka producer closed")
	}
}

// startMetricsServer запускает HTTP-обработчик /metrics для Prometheus.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler http.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		logger.Infof("health checks: %s/healthz, %s/livez", addr, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("metrics shutdown with error")
	}
}
