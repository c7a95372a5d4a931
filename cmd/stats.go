package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nandinis/edudeck/internal/config"
	"github.com/nandinis/edudeck/internal/store"
)

var statGames = []string{"math-blitz", "word-explorer", "memory-match", "timeline-sort", "logic-grid"}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show saved progress for every game",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "GAME\tHIGH SCORE\tLEVELS\tPLAY TIME\tLAST PLAYED")
		for _, id := range statGames {
			p, err := st.ProgressRepo().Load(ctx, id)
			if err != nil {
				return err
			}
			last := "never"
			if p.LastPlayed != nil {
				last = p.LastPlayed.Format("2006-01-02 15:04")
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%dm%02ds\t%s\n",
				id, p.HighScore, p.LevelsCompleted,
				p.TotalPlayTimeSecs/60, p.TotalPlayTimeSecs%60, last)
		}
		return w.Flush()
	},
}
