package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kubev2v/dexkeeper/internal/config"
	"github.com/kubev2v/dexkeeper/internal/store/migrations"
)

func newSeedCmd(cfg *config.Configuration) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed tags and trainers and import the remote catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if migrate {
				if err := a.migrate(cmd.Context(), migrations.Forward); err != nil {
					return err
				}
			}

			seeder, err := a.seedService()
			if err != nil {
				return err
			}
			report, err := seeder.Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"seed %s completed: %d tags, %d trainers, %d creatures in %d attempt(s), %s\n",
				report.RunID, report.Tags, report.Trainers, report.Creatures, report.Attempts, report.Duration.Round(time.Millisecond),
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", true, "run the forward migrations first")
	return cmd
}
