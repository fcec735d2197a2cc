package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/studiowebux/fa2en/internal/keymap"
	"github.com/studiowebux/fa2en/internal/migrations"
)

const timestampLayout = "2006-01-02 15:04:05"

// ErrNotFound is returned when a snapshot id does not exist
var ErrNotFound = errors.New("snapshot not found")

// Manager stores mapping snapshots in SQLite
type Manager struct {
	db  *sql.DB
	now func() time.Time
}

// NewManager opens (and migrates) the database at dbPath
func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Manager{db: db, now: time.Now}, nil
}

// Record stores the serialized mapping as a new snapshot
func (m *Manager) Record(path, source string, mapping *keymap.Mapping) (int64, error) {
	res, err := m.db.Exec(
		`INSERT INTO snapshots (saved_at, path, content, entries, source) VALUES (?, ?, ?, ?, ?)`,
		m.now().UTC().Format(timestampLayout),
		path,
		keymap.Serialize(mapping),
		mapping.Len(),
		source,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save snapshot: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read snapshot id: %w", err)
	}
	return id, nil
}

// List returns the newest snapshots first. limit <= 0 means all.
func (m *Manager) List(limit int) ([]Snapshot, error) {
	query := `
		SELECT id, saved_at, path, content, entries, source
		FROM snapshots
		ORDER BY id DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := m.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}

	return snapshots, nil
}

// Get returns a single snapshot
func (m *Manager) Get(id int64) (Snapshot, error) {
	row := m.db.QueryRow(`
		SELECT id, saved_at, path, content, entries, source
		FROM snapshots
		WHERE id = ?
	`, id)

	s, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("%w: #%d", ErrNotFound, id)
	}
	return s, err
}

// Clear removes every snapshot
func (m *Manager) Clear() error {
	if _, err := m.db.Exec("DELETE FROM snapshots"); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Close closes the database
func (m *Manager) Close() error {
	return m.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (Snapshot, error) {
	var s Snapshot
	var savedAt string
	if err := row.Scan(&s.ID, &savedAt, &s.Path, &s.Content, &s.Entries, &s.Source); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, err
		}
		return Snapshot{}, fmt.Errorf("failed to scan snapshot: %w", err)
	}

	t, err := parseTimestamp(savedAt)
	if err != nil {
		return Snapshot{}, err
	}
	s.SavedAt = t
	return s, nil
}

// parseTimestamp accepts both the stored UTC layout and RFC3339, which the
// sqlite3 driver returns for DATETIME columns
func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(timestampLayout, value, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid snapshot timestamp %q: %w", value, err)
	}
	return t, nil
}
