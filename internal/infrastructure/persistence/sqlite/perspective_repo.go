package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dockit/internal/domain/entity"
	"github.com/bnema/dockit/internal/domain/repository"
	"github.com/bnema/dockit/internal/logging"
)

const (
	listPerspectivesQuery = `SELECT name, state, updated_at FROM perspectives ORDER BY name`
	getPerspectiveQuery   = `SELECT name, state, updated_at FROM perspectives WHERE name = ?`
	upsertPerspective     = `INSERT INTO perspectives (name, state, updated_at) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`
	deletePerspective     = `DELETE FROM perspectives WHERE name = ?`
	deleteAllPerspectives = `DELETE FROM perspectives`
)

type perspectiveRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewPerspectiveRepository creates a sqlite-backed perspective repository.
func NewPerspectiveRepository(db *sql.DB) repository.PerspectiveRepository {
	return &perspectiveRepo{db: db, now: time.Now}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerspective(row rowScanner) (*entity.Perspective, error) {
	var p entity.Perspective
	if err := row.Scan(&p.Name, &p.State, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *perspectiveRepo) List(ctx context.Context) ([]*entity.Perspective, error) {
	rows, err := r.db.QueryContext(ctx, listPerspectivesQuery)
	if err != nil {
		return nil, fmt.Errorf("list perspectives: %w", err)
	}
	defer rows.Close()

	var out []*entity.Perspective
	for rows.Next() {
		p, err := scanPerspective(rows)
		if err != nil {
			return nil, fmt.Errorf("scan perspective: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *perspectiveRepo) Get(ctx context.Context, name string) (*entity.Perspective, error) {
	p, err := scanPerspective(r.db.QueryRowContext(ctx, getPerspectiveQuery, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get perspective %q: %w", name, err)
	}
	return p, nil
}

func (r *perspectiveRepo) Save(ctx context.Context, p *entity.Perspective) error {
	if p == nil {
		return errors.New("perspective cannot be nil")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = r.now().UTC()
	}
	if _, err := r.db.ExecContext(ctx, upsertPerspective, p.Name, p.State, p.UpdatedAt); err != nil {
		return fmt.Errorf("save perspective %q: %w", p.Name, err)
	}
	logging.FromContext(ctx).Debug().
		Str("perspective", p.Name).
		Int("bytes", len(p.State)).
		Msg("perspective saved")
	return nil
}

func (r *perspectiveRepo) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, deletePerspective, name); err != nil {
		return fmt.Errorf("delete perspective %q: %w", name, err)
	}
	return nil
}

func (r *perspectiveRepo) ReplaceAll(ctx context.Context, perspectives []*entity.Perspective) error {
	log := logging.FromContext(ctx)
	for _, p := range perspectives {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin perspectives transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Debug().Err(rollbackErr).Msg("perspectives rollback reported non-terminal error")
		}
	}()

	if _, err := tx.ExecContext(ctx, deleteAllPerspectives); err != nil {
		return fmt.Errorf("clear perspectives: %w", err)
	}
	now := r.now().UTC()
	for _, p := range perspectives {
		if p.UpdatedAt.IsZero() {
			p.UpdatedAt = now
		}
		if _, err := tx.ExecContext(ctx, upsertPerspective, p.Name, p.State, p.UpdatedAt); err != nil {
			return fmt.Errorf("insert perspective %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit perspectives transaction: %w", err)
	}
	log.Debug().Int("count", len(perspectives)).Msg("perspectives replaced")
	return nil
}
