package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockit/internal/app/docking"
	"github.com/bnema/dockit/internal/application/port"
	"github.com/bnema/dockit/internal/domain/entity"
	"github.com/bnema/dockit/internal/domain/repository"
	"github.com/bnema/dockit/internal/infrastructure/statexml"
	"github.com/bnema/dockit/internal/logging"
)

// ErrPerspectiveNotFound is returned for unknown perspective names.
var ErrPerspectiveNotFound = errors.New("perspective not found")

// ManagePerspectivesUseCase handles the stored perspectives outside a
// running host.
type ManagePerspectivesUseCase struct {
	repo repository.PerspectiveRepository
}

// NewManagePerspectivesUseCase creates a new ManagePerspectivesUseCase.
func NewManagePerspectivesUseCase(repo repository.PerspectiveRepository) *ManagePerspectivesUseCase {
	return &ManagePerspectivesUseCase{repo: repo}
}

// PerspectiveSummary describes one stored perspective.
type PerspectiveSummary struct {
	Perspective *entity.Perspective
	Widgets     int
	Containers  int
	// Err is set when the stored state does not decode.
	Err error
}

// List returns every stored perspective with a decoded summary.
func (uc *ManagePerspectivesUseCase) List(ctx context.Context) ([]PerspectiveSummary, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PerspectiveSummary, 0, len(list))
	for _, p := range list {
		s := PerspectiveSummary{Perspective: p}
		doc, err := statexml.Decode(p.State)
		if err != nil {
			s.Err = err
		} else {
			s.Widgets = len(doc.WidgetNames())
			s.Containers = len(doc.Containers)
		}
		out = append(out, s)
	}
	return out, nil
}

// Export returns the stored state of name.
func (uc *ManagePerspectivesUseCase) Export(ctx context.Context, name string) ([]byte, error) {
	p, err := uc.repo.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrPerspectiveNotFound, name)
	}
	return p.State, nil
}

// Import validates state and stores it under name, replacing any
// perspective with that name.
func (uc *ManagePerspectivesUseCase) Import(ctx context.Context, name string, state []byte) error {
	p := &entity.Perspective{Name: name, State: state}
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := statexml.Decode(state); err != nil {
		return fmt.Errorf("perspective %q: %w", name, err)
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return err
	}
	logging.FromContext(logging.WithPerspective(ctx, name)).Info().Msg("perspective imported")
	return nil
}

// Delete removes name, failing when it does not exist.
func (uc *ManagePerspectivesUseCase) Delete(ctx context.Context, name string) error {
	p, err := uc.repo.Get(ctx, name)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: %q", ErrPerspectiveNotFound, name)
	}
	return uc.repo.Delete(ctx, name)
}

// ExportSettings writes every stored perspective to store as the array a
// host reads with Manager.LoadPerspectives.
func (uc *ManagePerspectivesUseCase) ExportSettings(ctx context.Context, store port.SettingsArray) (int, error) {
	m := docking.New(ctx, docking.Options{})
	if err := m.FetchPerspectives(ctx, uc.repo); err != nil {
		return 0, err
	}
	m.SavePerspectives(store)
	if syncer, ok := store.(port.SettingsSyncer); ok {
		if err := syncer.Sync(); err != nil {
			return 0, fmt.Errorf("sync settings: %w", err)
		}
	}
	return len(m.PerspectiveNames()), nil
}

// ImportSettings replaces the stored perspectives with the ones in store.
func (uc *ManagePerspectivesUseCase) ImportSettings(ctx context.Context, store port.SettingsArray) (int, error) {
	m := docking.New(ctx, docking.Options{})
	m.LoadPerspectives(store)
	if err := m.SyncPerspectives(ctx, uc.repo); err != nil {
		return 0, err
	}
	return len(m.PerspectiveNames()), nil
}
