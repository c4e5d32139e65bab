package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kubev2v/dexkeeper/internal/config"
	"github.com/kubev2v/dexkeeper/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.NewConfigurationWithOptionsAndDefaults()
	var (
		configFile string
		restoreLog func()
	)

	cmd := &cobra.Command{
		Use:           "dexkeeper",
		Short:         "Creature catalog with trainers, a roster and a remote catalog importer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(cfg, cmd.Flags(), configFile); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			restore, err := logger.Setup(cfg)
			if err != nil {
				return err
			}
			restoreLog = restore

			zap.S().Debugw("configuration loaded",
				"server", cfg.Server.DebugMap(),
				"database", cfg.Database.DebugMap(),
				"catalog", cfg.Catalog.DebugMap(),
				"import", cfg.Importer.DebugMap(),
				"roster", cfg.Roster.DebugMap(),
				"auth", cfg.Auth.DebugMap(),
				"log", cfg.Log.DebugMap(),
				"log_format", cfg.LogFormat,
				"log_level", cfg.LogLevel,
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if restoreLog != nil {
				_ = zap.L().Sync()
				restoreLog()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "path of a yaml, json or toml config file")
	cobraflags.Register(cmd, config.Flags(cfg)...)
	cobraflags.CobraOnInitialize(config.EnvPrefix, cmd)

	cmd.AddCommand(
		newMigrateCmd(cfg),
		newSeedCmd(cfg),
		newServeCmd(cfg),
		newExportCmd(cfg),
	)
	return cmd
}
