package main

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/kubev2v/dexkeeper/internal/config"
	"github.com/kubev2v/dexkeeper/internal/importer"
	"github.com/kubev2v/dexkeeper/internal/metrics"
	"github.com/kubev2v/dexkeeper/internal/services"
	"github.com/kubev2v/dexkeeper/internal/store"
	"github.com/kubev2v/dexkeeper/internal/store/migrations"
	"github.com/kubev2v/dexkeeper/pkg/catalog"
)

// app holds the components shared by the commands.
type app struct {
	cfg      *config.Configuration
	store    *store.Store
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

func newApp(cfg *config.Configuration) (*app, error) {
	db, err := store.NewDB(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &app{
		cfg:      cfg,
		store:    store.NewStore(db),
		registry: registry,
		metrics:  metrics.New(registry),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

func (a *app) migrate(ctx context.Context, dir migrations.Direction) error {
	return migrations.Migrate(ctx, a.store.DB(), dir, migrations.WithMetrics(a.metrics))
}

func (a *app) migrationEngine() (*migrations.Engine, error) {
	return migrations.NewEngine(a.store.DB(), migrations.Units(), migrations.WithMetrics(a.metrics))
}

func (a *app) seedService() (*services.SeedService, error) {
	client, err := catalog.NewClient(a.cfg.Catalog.URL,
		catalog.WithTimeout(a.cfg.Catalog.Timeout),
		catalog.WithRateLimit(a.cfg.Catalog.RateLimit, a.cfg.Catalog.Burst),
		catalog.WithMetrics(a.metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog client: %w", err)
	}

	imp := importer.New(client,
		importer.WithPageSize(a.cfg.Importer.PageSize),
		importer.WithBatchSize(a.cfg.Importer.BatchSize),
		importer.WithMetrics(a.metrics),
	)

	return services.NewSeedService(a.store, imp,
		services.WithMaxAttempts(a.cfg.Importer.MaxAttempts),
		services.WithBackOff(backoff.NewExponentialBackOff()),
	), nil
}
