// Package persistence provides a SQLite-backed movement history.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"hexmancer/pkg/hexmap"
)

// DB is a hexmap.History stored in a SQLite database.
type DB struct {
	conn *sqlx.DB
}

type record struct {
	ID int64 `db:"id"`
	X  int   `db:"x"`
	Y  int   `db:"y"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	slog.Debug("history database opened", "path", path)
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Append adds c as the newest record.
func (db *DB) Append(c hexmap.Coordinate) error {
	_, err := db.conn.Exec("INSERT INTO history (x, y) VALUES (?, ?)", c.X, c.Y)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// ReadAll returns every record, oldest first.
func (db *DB) ReadAll() ([]hexmap.Coordinate, error) {
	var rows []record
	if err := db.conn.Select(&rows, "SELECT id, x, y FROM history ORDER BY id"); err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	out := make([]hexmap.Coordinate, len(rows))
	for i, r := range rows {
		out[i] = hexmap.Coordinate{X: r.X, Y: r.Y}
	}
	return out, nil
}

// Truncate deletes every record.
func (db *DB) Truncate() error {
	if _, err := db.conn.Exec("DELETE FROM history"); err != nil {
		return fmt.Errorf("truncate history: %w", err)
	}
	return nil
}

// RemoveLast deletes the newest record and returns the one before it.
func (db *DB) RemoveLast() (hexmap.Coordinate, error) {
	tx, err := db.conn.Beginx()
	if err != nil {
		return hexmap.Coordinate{}, err
	}
	defer tx.Rollback()

	var last []record
	if err := tx.Select(&last, "SELECT id, x, y FROM history ORDER BY id DESC LIMIT 2"); err != nil {
		return hexmap.Coordinate{}, fmt.Errorf("read history: %w", err)
	}
	if len(last) < 2 {
		return hexmap.Coordinate{}, hexmap.ErrEmptyHistory
	}
	if _, err := tx.Exec("DELETE FROM history WHERE id = ?", last[0].ID); err != nil {
		return hexmap.Coordinate{}, fmt.Errorf("remove history: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return hexmap.Coordinate{}, err
	}
	return hexmap.Coordinate{X: last[1].X, Y: last[1].Y}, nil
}

// Len returns the number of records.
func (db *DB) Len() (int, error) {
	var n int
	err := db.conn.Get(&n, "SELECT COUNT(*) FROM history")
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return n, err
}
