// Package history keeps the visited-cell log as a plain text file, one
// "x,y" record per line, oldest first. The file is meant to stay readable and
// hand-editable. Access from more than one process at a time is not supported.
package history

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"hexmancer/pkg/hexmap"
)

// FileStore is a hexmap.History backed by a text file.
type FileStore struct {
	path string
}

// NewFileStore returns a store for path. The file is created on first append.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path is the backing file.
func (s *FileStore) Path() string { return s.path }

// Append writes c as a new last record.
func (s *FileStore) Append(c hexmap.Coordinate) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create history dir: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	if _, err := f.WriteString(hexmap.FormatRecord(c)); err != nil {
		f.Close()
		return fmt.Errorf("failed to append history: %w", err)
	}
	return f.Close()
}

// ReadAll parses every record. A missing file reads as empty; blank lines are
// ignored; any other malformed line fails with *hexmap.ParseError.
func (s *FileStore) ReadAll() ([]hexmap.Coordinate, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	defer f.Close()

	var out []hexmap.Coordinate
	sc := bufio.NewScanner(f)
	n := 1
	for ; sc.Scan(); n++ {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := hexmap.ParseRecord(n, line)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := sc.Err(); errors.Is(err, bufio.ErrTooLong) {
		return nil, &hexmap.ParseError{Line: n, Err: err}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return out, nil
}

// Truncate empties the file, creating it if needed.
func (s *FileStore) Truncate() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create history dir: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to truncate history: %w", err)
	}
	return f.Close()
}

// RemoveLast drops the newest record and returns the one that is now last.
func (s *FileStore) RemoveLast() (hexmap.Coordinate, error) {
	entries, err := s.ReadAll()
	if err != nil {
		return hexmap.Coordinate{}, err
	}
	if len(entries) < 2 {
		return hexmap.Coordinate{}, hexmap.ErrEmptyHistory
	}
	entries = entries[:len(entries)-1]
	if err := s.rewrite(entries); err != nil {
		return hexmap.Coordinate{}, err
	}
	return entries[len(entries)-1], nil
}

// rewrite replaces the file contents through a rename so a crash leaves
// either the old or the new log, never a partial one.
func (s *FileStore) rewrite(entries []hexmap.Coordinate) error {
	var b strings.Builder
	for _, c := range entries {
		b.WriteString(hexmap.FormatRecord(c))
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace history: %w", err)
	}
	return nil
}
