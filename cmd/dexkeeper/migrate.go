package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kubev2v/dexkeeper/internal/config"
	"github.com/kubev2v/dexkeeper/internal/store/migrations"
)

func newMigrateCmd(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate [forward|reverse]",
		Short:     "Apply or revert the schema migrations",
		Long:      "Apply (forward, up) or revert (reverse, down) every schema migration unit. The default direction is forward.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"forward", "reverse", "up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			token := ""
			if len(args) == 1 {
				token = args[0]
			}
			dir, err := migrations.ParseDirection(token)
			if err != nil {
				return err
			}

			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.migrate(cmd.Context(), dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrations completed (%s)\n", dir)
			return nil
		},
	}

	cmd.AddCommand(newMigrateStatusCmd(cfg))
	return cmd
}

func newMigrateStatusCmd(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List the migration units and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			engine, err := a.migrationEngine()
			if err != nil {
				return err
			}
			statuses, err := engine.Status(cmd.Context())
			if err != nil {
				return err
			}

			applied := color.New(color.FgGreen).SprintFunc()
			pending := color.New(color.FgYellow).SprintFunc()
			out := cmd.OutOrStdout()
			for _, s := range statuses {
				if s.Applied {
					fmt.Fprintf(out, "%s  %-32s %s\n", applied("applied"), s.Name, s.AppliedAt.Format(time.RFC3339))
					continue
				}
				fmt.Fprintf(out, "%s  %s\n", pending("pending"), s.Name)
			}
			return nil
		},
	}
}
