// Package port holds the interfaces the docking engine and the CLI expect
// from their adapters.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the perspective store connection. The first
// call to DB may open the file and run migrations.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	// Path is the store location, known before the file is opened.
	Path() string
	IsInitialized() bool
	Close() error
}
