package main

import (
	"fmt"

	"github.com/soypat/brickrail"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the standard curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-12s %8s %10s %12s %5s\n", "LABEL", "CIRCLE", "RADIUS mm", "RAIL mm", "TIES")
			for _, e := range brickrail.Catalog {
				c := e.Curve(full)
				fmt.Fprintf(w, "%-12s %8g %10g %12.1f %5d\n",
					c.Label(), 360/c.Angle, c.CenterRadius(), c.RailLength(), len(c.TieAngles()))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "count ties for full segments")
	return cmd
}
