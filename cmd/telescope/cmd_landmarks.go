// cmd/telescope/cmd_landmarks.go
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func landmarksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "landmarks",
		Short: "List the reference catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(cmd.Context(), newLogger())
			if err != nil {
				return fmt.Errorf("landmarks: %w", err)
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tDISTANCE (LY)\tTYPE")
			for _, l := range c.Entries() {
				fmt.Fprintf(tw, "%d\t%s\t%g\t%s\n", l.ID, l.Name, l.DistanceLY, l.ObjectType)
			}
			return tw.Flush()
		},
	}
}
