// cmd/telescope/cmd_seed.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"timetelescope/internal/catalog"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the landmark table and seed it if empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			st, err := catalog.OpenStore(cmd.Context(), cfg.Catalog.Driver, cfg.Catalog.DSN, logger)
			if err != nil {
				return fmt.Errorf("seed: opening store: %w", err)
			}
			defer func() { _ = st.Close() }()

			seeded, err := catalog.Seed(cmd.Context(), st, logger)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			if !seeded {
				fmt.Println("catalog already populated; nothing to do")
				return nil
			}
			fmt.Printf("seeded %d landmarks\n", len(catalog.DefaultLandmarks))
			return nil
		},
	}
}
