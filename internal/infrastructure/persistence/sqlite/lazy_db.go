package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/dockit/internal/application/port"
	"github.com/bnema/dockit/internal/logging"
)

// ErrClosed is returned by DB after Close.
var ErrClosed = errors.New("perspective store closed")

// LazyDB opens the perspective store on first use, so commands that only
// read or write state files never load sqlite or run migrations.
type LazyDB struct {
	path string

	mu     sync.Mutex
	db     *sql.DB
	err    error
	tried  bool
	closed bool
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a provider for the store at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the connection, opening it on the first call. A failed open is
// not retried.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, ErrClosed
	}
	if !l.tried {
		l.tried = true
		l.db, l.err = Open(ctx, l.path)
		if l.err != nil {
			logging.FromContext(ctx).Error().Err(l.err).Str("path", l.path).Msg("perspective store unavailable")
		}
	}
	if l.err != nil {
		return nil, fmt.Errorf("perspective store: %w", l.err)
	}
	return l.db, nil
}

// Close closes the connection if it was opened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.db == nil {
		return nil
	}
	db := l.db
	l.db = nil
	return db.Close()
}

// IsInitialized reports whether the connection is open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.path
}
