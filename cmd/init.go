package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/hypertrophy/hypertrophy/internal/storage"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database file hypertrophy.db",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sql.Open("libsql", "file:./hypertrophy.db?cache=shared&mode=rwc")
		if err != nil {
			return fmt.Errorf("Failed to open database: %w", err)
		}
		defer db.Close()

		if err := storage.InitializeDB(db); err != nil {
			return fmt.Errorf("Failed to initialize database: %w", err)
		}
		fmt.Println("✅ Database initialized successfully as hypertrophy.db")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
