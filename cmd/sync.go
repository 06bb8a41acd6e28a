package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile usage tracking against the game history",
	Long: "Replays the local game history into the usage tracker. By default marks " +
		"are only added; with --rebuild the usage state is recomputed from " +
		"scratch, which also releases questions from deleted games.",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		rebuild, _ := cmd.Flags().GetBool("rebuild")

		if d.tracker.AccountID() == "" {
			fmt.Println("No account configured; local play needs no reconciliation.")
			return nil
		}

		stats, err := d.tracker.Reconcile(cmd.Context(), rebuild)
		if err != nil {
			return fmt.Errorf("reconcile: %w", err)
		}

		fmt.Printf("Synced %d question(s) from history.\n", stats.Synced)
		if len(stats.PerCategory) > 0 {
			cats := make([]string, 0, len(stats.PerCategory))
			for c := range stats.PerCategory {
				cats = append(cats, c)
			}
			sort.Strings(cats)
			for _, c := range cats {
				fmt.Printf("  %-20s %d\n", c, stats.PerCategory[c])
			}
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().Bool("rebuild", false, "Recompute usage from scratch instead of only adding marks")
}
