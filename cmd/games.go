package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbox/internal/history"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Manage the game history",
}

var gamesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded games",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		recs, err := d.store.GameRepo().ListGames(cmd.Context(), d.tracker.AccountID())
		if err != nil {
			return fmt.Errorf("list games: %w", err)
		}
		if len(recs) == 0 {
			fmt.Println("No games recorded.")
			return nil
		}

		for _, rec := range recs {
			questions := len(rec.Assigned)
			if rec.Format == history.FormatLegacy {
				questions = len(rec.LegacyUsed)
			}
			fmt.Printf("%s  %s  %d question(s)\n",
				rec.ID, rec.StartedAt.Format("2006-01-02 15:04"), questions)
		}
		return nil
	},
}

var gamesDeleteCmd = &cobra.Command{
	Use:   "delete <game-id>",
	Short: "Delete a game and return its questions to the pool",
	Long: "Removes a game from the history, then rebuilds usage tracking from the " +
		"remaining games so the deleted game's questions can be dealt again.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		ctx := cmd.Context()
		if err := d.store.GameRepo().Delete(ctx, args[0]); err != nil {
			return fmt.Errorf("delete game: %w", err)
		}

		stats, err := d.tracker.Reconcile(ctx, true)
		if err != nil {
			return fmt.Errorf("rebuild usage after deletion: %w", err)
		}

		fmt.Printf("Game %s deleted. Usage rebuilt from %d question(s) still in the history.\n",
			args[0], stats.Synced)
		return nil
	},
}

func init() {
	gamesCmd.AddCommand(gamesListCmd)
	gamesCmd.AddCommand(gamesDeleteCmd)
}
