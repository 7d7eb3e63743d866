// Package storage keeps a world atlas in SQLite, so a set of room files can
// be imported once and played from a single database file.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-palace/internal/level"
	"github.com/vovakirdan/tui-palace/internal/level/formats"
)

// Store manages the SQLite database connection for the atlas.
type Store struct {
	db *sql.DB
}

// RoomEntry is one stored room without its layout.
type RoomEntry struct {
	X, Y      int
	Name      string
	Width     int
	Height    int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist. The layout
// column holds the room as a YAML document with explicit tile and code rows.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rooms (
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			layout TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (x, y)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// SaveRoom inserts the room or replaces the one already stored at its
// coordinates. The layout is validated first.
func (s *Store) SaveRoom(r level.RoomData) error {
	return saveRoom(s.db, r)
}

// SaveWorld stores every room of w in one transaction and returns how many
// were written.
func (s *Store) SaveWorld(w *level.World) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	rooms := w.Rooms()
	for _, r := range rooms {
		if err := saveRoom(tx, r); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit: %w", err)
	}
	return len(rooms), nil
}

func saveRoom(ex execer, r level.RoomData) error {
	grid, err := r.Grid()
	if err != nil {
		return fmt.Errorf("storage: cannot save room %s: %w", r.Coord(), err)
	}
	layout, err := formats.MarshalYAML([]formats.Room{r.Format()})
	if err != nil {
		return fmt.Errorf("storage: cannot encode room %s: %w", r.Coord(), err)
	}

	_, err = ex.Exec(
		`INSERT INTO rooms (x, y, name, width, height, layout)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(x, y) DO UPDATE SET
			name = excluded.name,
			width = excluded.width,
			height = excluded.height,
			layout = excluded.layout,
			updated_at = CURRENT_TIMESTAMP`,
		r.X, r.Y, r.Name, grid.Width(), grid.Height(), string(layout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save room %s: %w", r.Coord(), err)
	}
	return nil
}

// Room loads the room at (x, y). A missing room wraps level.ErrNoRoom.
func (s *Store) Room(x, y int) (level.RoomData, error) {
	var layout string
	err := s.db.QueryRow(
		"SELECT layout FROM rooms WHERE x = ? AND y = ?",
		x, y,
	).Scan(&layout)

	if errors.Is(err, sql.ErrNoRows) {
		return level.RoomData{}, fmt.Errorf("storage: room %d:%d: %w", x, y, level.ErrNoRoom)
	}
	if err != nil {
		return level.RoomData{}, fmt.Errorf("storage: cannot query room: %w", err)
	}
	return decodeLayout(layout)
}

func decodeLayout(layout string) (level.RoomData, error) {
	parsed, err := formats.ParseYAML([]byte(layout))
	if err != nil {
		return level.RoomData{}, fmt.Errorf("storage: cannot decode room: %w", err)
	}
	if len(parsed) != 1 {
		return level.RoomData{}, fmt.Errorf("storage: stored layout holds %d rooms", len(parsed))
	}
	fr := parsed[0]
	return level.RoomData{X: fr.X, Y: fr.Y, Name: fr.Name, Tiles: fr.Tiles, Codes: fr.Codes}, nil
}

// Rooms lists the stored rooms ordered north to south, then west to east.
func (s *Store) Rooms() ([]RoomEntry, error) {
	rows, err := s.db.Query(
		`SELECT x, y, name, width, height, updated_at
		 FROM rooms
		 ORDER BY y, x`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rooms: %w", err)
	}
	defer rows.Close()

	var entries []RoomEntry
	for rows.Next() {
		var e RoomEntry
		var updatedAt any
		if err := rows.Scan(&e.X, &e.Y, &e.Name, &e.Width, &e.Height, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteRoom removes the room at (x, y). Deleting a missing room is not
// an error.
func (s *Store) DeleteRoom(x, y int) error {
	_, err := s.db.Exec("DELETE FROM rooms WHERE x = ? AND y = ?", x, y)
	if err != nil {
		return fmt.Errorf("storage: cannot delete room: %w", err)
	}
	return nil
}

// World loads every stored room into an atlas.
func (s *Store) World() (*level.World, error) {
	rows, err := s.db.Query("SELECT layout FROM rooms ORDER BY y, x")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rooms: %w", err)
	}
	defer rows.Close()

	w := level.NewWorld()
	for rows.Next() {
		var layout string
		if err := rows.Scan(&layout); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r, err := decodeLayout(layout)
		if err != nil {
			return nil, err
		}
		if err := w.Add(r); err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return w, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
