package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nandinis/edudeck/internal/catalog"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the game library",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.NewService(true)
		if err != nil {
			return err
		}
		games, err := cat.All(context.Background())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tDIFFICULTY\tFEATURED")
		for _, g := range games {
			featured := ""
			if g.Featured {
				featured = "★"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", g.ID, g.Title, g.Category, g.Difficulty, featured)
		}
		return w.Flush()
	},
}
