package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbox/internal/catalog"
	"github.com/abhisek/quizbox/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <pack.json>",
	Short: "Import a question pack",
	Long:  "Validates a question pack file and copies it into the packs directory.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		packsDir, err := store.DefaultPacksDir()
		if err != nil {
			return fmt.Errorf("resolve packs dir: %w", err)
		}

		pack, err := catalog.ImportPack(args[0], packsDir)
		if err != nil {
			return fmt.Errorf("import pack: %w", err)
		}

		total := 0
		for _, c := range pack.Categories {
			total += len(c.Questions)
		}
		fmt.Printf("Imported %q: %d categories, %d questions.\n", pack.Name, len(pack.Categories), total)
		return nil
	},
}
