// cmd/telescope/cmd_calculate.go
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timetelescope/internal/clients"
	"timetelescope/internal/telescope"
)

func calculateCmd() *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:   "calculate <RFC3339 timestamp>",
		Short: "Compute the light-travel distance since a past instant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := time.Parse(time.RFC3339, args[0])
			if err != nil {
				return fmt.Errorf("calculate: parsing timestamp: %w", err)
			}

			var out *telescope.CalculateResponse
			if serverURL != "" {
				client := clients.NewTelescopeClient(serverURL)
				if err := client.Health(cmd.Context()); err != nil {
					return fmt.Errorf("calculate: server %s unreachable: %w", serverURL, err)
				}
				out, err = client.Calculate(cmd.Context(), target)
				if err != nil {
					return fmt.Errorf("calculate: %w", err)
				}
			} else {
				c, err := loadCatalog(cmd.Context(), newLogger())
				if err != nil {
					return fmt.Errorf("calculate: %w", err)
				}
				res, err := telescope.Calculate(time.Now().UTC(), target, c)
				if err != nil {
					return fmt.Errorf("calculate: %w", err)
				}
				resp := telescope.NewCalculateResponse(res)
				out = &resp
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "base URL of a running telescope service (computes locally when empty)")
	return cmd
}
