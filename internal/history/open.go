package history

import (
	"errors"
	"fmt"
	"io"

	"hexmancer/internal/persistence"
	"hexmancer/pkg/hexmap"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Store is a history that may hold resources to release.
type Store interface {
	hexmap.History
	io.Closer
}

type fileCloser struct{ *FileStore }

func (fileCloser) Close() error { return nil }

// Open returns the store for backend at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", BackendFile:
		return fileCloser{NewFileStore(path)}, nil
	case BackendSQLite:
		db, err := persistence.Open(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	}
	return nil, fmt.Errorf("unknown history backend %q", backend)
}

// ErrEmptySource is returned by Copy when src holds no records; dst is left
// untouched.
var ErrEmptySource = errors.New("history: source is empty")

// Copy replaces everything in dst with the records of src.
func Copy(dst, src hexmap.History) (int, error) {
	entries, err := src.ReadAll()
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, ErrEmptySource
	}
	if err := dst.Truncate(); err != nil {
		return 0, err
	}
	for _, c := range entries {
		if err := dst.Append(c); err != nil {
			return 0, err
		}
	}
	return len(entries), nil
}
