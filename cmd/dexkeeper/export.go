package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kubev2v/dexkeeper/internal/config"
	"github.com/kubev2v/dexkeeper/internal/export"
)

func newExportCmd(cfg *config.Configuration) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog and the roster to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			creatures, err := a.store.Creature().List(ctx)
			if err != nil {
				return err
			}
			roster, err := a.store.Roster().List(ctx)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %q: %w", output, err)
			}
			if err := export.Write(f, creatures, roster); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported %d creatures and %d roster slots to %s\n", len(creatures), len(roster), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "dexkeeper.xlsx", "path of the workbook to write")
	return cmd
}
