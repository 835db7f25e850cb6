package storage

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/hypertrophy/hypertrophy/internal/config"
	"github.com/hypertrophy/hypertrophy/internal/models"
)

// Storage persists the whole AppState as a single JSON blob in a one-row
// table. Every mutation writes the full state back; last write wins.
type Storage struct {
	DB *sql.DB
}

func NewStorage() *Storage {
	// A .env file is optional; env vars may come from the shell.
	_ = godotenv.Load()

	url := os.Getenv("HYPERTROPHY_DB_URL")
	if url == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		url = cfg.DB.ConnectionString
	}
	if url == "" {
		url = "file:./hypertrophy.db?cache=shared&mode=rwc"
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open db %s: %s\n", url, err)
		os.Exit(1)
	}

	if err := InitializeDB(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
		os.Exit(1)
	}

	return &Storage{DB: db}
}

func InitializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS app_state (
            id INTEGER PRIMARY KEY CHECK (id = 1),
            data TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );
    `)
	return err
}

// LoadState reads the persisted blob, merging it over defaults so that
// missing or legacy fields come back deliberately initialized. A missing
// row or an unreadable blob falls back to a fresh default state.
func (s *Storage) LoadState() (*models.AppState, error) {
	var data []byte
	err := s.DB.QueryRow("SELECT data FROM app_state WHERE id = 1").Scan(&data)
	if err == sql.ErrNoRows {
		return models.DefaultState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state: %w", err)
	}

	state, err := DecodeState(data)
	if err != nil {
		// Corrupt blob: never fatal, start over from defaults.
		return models.DefaultState(), nil
	}
	return state, nil
}

// SaveState writes the full state blob.
func (s *Storage) SaveState(state *models.AppState) error {
	data, err := EncodeState(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	_, err = s.DB.Exec(
		"INSERT OR REPLACE INTO app_state (id, data, updated_at) VALUES (1, ?, ?)",
		data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}
