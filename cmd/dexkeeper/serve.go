package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/kubev2v/dexkeeper/api/v1"
	"github.com/kubev2v/dexkeeper/internal/config"
	"github.com/kubev2v/dexkeeper/internal/handlers"
	"github.com/kubev2v/dexkeeper/internal/server"
	"github.com/kubev2v/dexkeeper/internal/server/middlewares"
	"github.com/kubev2v/dexkeeper/internal/services"
	"github.com/kubev2v/dexkeeper/internal/store/migrations"
	"github.com/kubev2v/dexkeeper/pkg/scheduler"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Configuration) error {
	logger := zap.S().Named("serve")

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if cfg.Database.AutoMigrate {
		if err := a.migrate(ctx, migrations.Forward); err != nil {
			return err
		}
	}

	seeder, err := a.seedService()
	if err != nil {
		return err
	}
	if cfg.Database.AutoSeed {
		report, err := seeder.Run(ctx)
		if err != nil {
			return err
		}
		logger.Infow("store seeded", "run_id", report.RunID, "creatures", report.Creatures)
	}

	sched := scheduler.NewScheduler(1)
	defer sched.Close()

	st := a.store
	importJobs := services.NewImportJobService(sched, seeder)
	h := handlers.New(
		services.NewCreatureService(st),
		services.NewTrainerService(st),
		services.NewTagService(st),
		services.NewRosterService(st, cfg.Roster.MaxCatalogID),
		services.NewInsightsService(st),
		importJobs,
	)

	var guards []v1.MiddlewareFunc
	if cfg.Auth.Enabled {
		guards = append(guards, middlewares.BearerScoped(middlewares.Auth(cfg.Auth.Secret)))
	}

	srv, err := server.NewServer(cfg, a.registry, func(router *gin.RouterGroup) {
		h.Register(router, guards...)
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := importJobs.Stop(shutdownCtx); err != nil {
		logger.Warnw("import job did not stop in time", "error", err)
	}
	if err := srv.Stop(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
