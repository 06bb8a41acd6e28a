package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show question pool statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		ctx := cmd.Context()
		d.tracker.UpdatePool(ctx, d.catalog)
		d.tracker.WaitForSync(ctx, 3*time.Second)
		s := d.tracker.Statistics(ctx)

		account := d.tracker.AccountID()
		if account == "" {
			account = "local"
		}

		fmt.Printf("Account:     %s\n", account)
		fmt.Printf("Pool size:   %d\n", s.PoolSize)
		fmt.Printf("Played:      %d\n", s.UsedCount)
		fmt.Printf("Remaining:   %d\n", s.UnusedCount)
		fmt.Printf("Completion:  %.1f%%\n", s.CompletionPercentage)
		if s.CycleComplete {
			fmt.Println("Cycle complete — the pool was reset.")
		}
		return nil
	},
}
