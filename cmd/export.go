package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/storage"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full app state to a backup file",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, state, err := loadState()
		if err != nil {
			return err
		}

		data, err := storage.Export(state)
		if err != nil {
			return fmt.Errorf("Failed to export state: %w", err)
		}

		path := exportOutput
		if path == "" {
			path = storage.BackupFilename(time.Now())
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("Failed to write backup: %w", err)
		}

		fmt.Printf("✅ Exported state to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Backup file path (defaults to hypertrophy-backup-YYYY-MM-DD.json)")
}
