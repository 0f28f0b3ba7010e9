package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"jarscope/internal/domain"
	"jarscope/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// SettingsStore implements ports.SettingsStore using SQLite.
// Each display flag is one row of the settings table.
type SettingsStore struct {
	db     *sql.DB
	dbPath string
}

// Ensure SettingsStore implements ports.SettingsStore
var _ ports.SettingsStore = (*SettingsStore)(nil)

// OpenSettingsStore opens or creates the settings database at dbPath.
// An empty dbPath selects the default location under XDG_DATA_HOME.
func OpenSettingsStore(dbPath string) (*SettingsStore, error) {
	if dbPath == "" {
		dbPath = DefaultDatabasePath()
	}
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			enabled INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &SettingsStore{db: db, dbPath: dbPath}, nil
}

// Path returns the database file backing the store
func (s *SettingsStore) Path() string {
	return s.dbPath
}

// Load reads the stored flags. Missing rows keep their default (off) and
// rows with unknown keys are ignored.
func (s *SettingsStore) Load() (domain.DisplaySettings, error) {
	var settings domain.DisplaySettings

	rows, err := s.db.Query(`SELECT key, enabled FROM settings`)
	if err != nil {
		return settings, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var raw string
		var enabled bool
		if err := rows.Scan(&raw, &enabled); err != nil {
			return settings, fmt.Errorf("failed to scan setting: %w", err)
		}
		key, err := domain.ParseSettingKey(raw)
		if err != nil {
			continue
		}
		settings = settings.With(key, enabled)
	}

	return settings, rows.Err()
}

// Save writes every flag in a single transaction
func (s *SettingsStore) Save(settings domain.DisplaySettings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, key := range domain.SettingKeys {
		if _, err := tx.Exec(`
			INSERT OR REPLACE INTO settings (key, enabled) VALUES (?, ?)
		`, string(key), settings.Get(key)); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// Close closes the database connection
func (s *SettingsStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DefaultDatabasePath returns the settings database path in the XDG data
// directory
func DefaultDatabasePath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "jarscope", "settings.db")
}
