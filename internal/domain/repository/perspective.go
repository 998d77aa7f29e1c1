package repository

import (
	"context"

	"github.com/bnema/dockit/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_perspective.go -package=mocks . PerspectiveRepository

// PerspectiveRepository persists perspective blobs across runs.
type PerspectiveRepository interface {
	// List returns all perspectives ordered by name.
	List(ctx context.Context) ([]*entity.Perspective, error)
	// Get returns nil, nil when the perspective does not exist.
	Get(ctx context.Context, name string) (*entity.Perspective, error)
	Save(ctx context.Context, p *entity.Perspective) error
	Delete(ctx context.Context, name string) error
	// ReplaceAll atomically replaces the stored set.
	ReplaceAll(ctx context.Context, perspectives []*entity.Perspective) error
}
