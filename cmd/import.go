package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/storage"
)

var importYes bool

var importCmd = &cobra.Command{
	Use:   "import [backup.json]",
	Short: "Import a backup, replacing the current app state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("Failed to read backup: %w", err)
		}

		if !storage.ValidateImport(data) {
			return fmt.Errorf("Invalid backup file: no recognized state keys")
		}

		if !confirm("Importing overwrites the current state. Continue?", importYes) {
			fmt.Println("Aborted")
			return nil
		}

		imported, err := storage.Import(data)
		if err != nil {
			return fmt.Errorf("Failed to import backup: %w", err)
		}

		st := storage.NewStorage()
		if err := persist(st, imported); err != nil {
			return err
		}

		fmt.Println("✅ Backup imported successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "Skip the confirmation prompt")
}
