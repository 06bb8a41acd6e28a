package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Return played questions to the pool",
	Long: "Clears usage tracking so questions can be dealt again. Resets the whole " +
		"pool by default; with --category only that category's questions are " +
		"returned. Games played before the reset are excluded from future " +
		"history reconciliation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		ctx := cmd.Context()
		categoryID, _ := cmd.Flags().GetString("category")

		if categoryID == "" {
			if err := d.tracker.ResetAll(ctx); err != nil {
				return fmt.Errorf("reset pool: %w", err)
			}
			fmt.Println("Pool reset. All questions are available again.")
			return nil
		}

		cat := d.catalog.Category(categoryID)
		if cat == nil {
			return fmt.Errorf("unknown category %q", categoryID)
		}
		if err := d.tracker.ResetCategory(ctx, categoryID, d.catalog); err != nil {
			return fmt.Errorf("reset category: %w", err)
		}
		fmt.Printf("Category %q reset. Its questions are available again.\n", cat.Name)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("category", "", "Reset only the given category ID")
}
