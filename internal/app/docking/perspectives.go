package docking

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/dockit/internal/application/port"
	"github.com/bnema/dockit/internal/domain/entity"
	"github.com/bnema/dockit/internal/domain/repository"
)

// Settings keys of the perspective array.
const (
	perspectivesArray = "Perspectives"
	perspectiveName   = "Name"
	perspectiveState  = "State"
)

// AddPerspective stores the current layout under name, replacing any
// perspective with the same name.
func (m *Manager) AddPerspective(name string) {
	m.perspectives[name] = m.SaveState(0)
	m.PerspectiveListChanged.Emit(struct{}{})
}

// RemovePerspective deletes one perspective.
func (m *Manager) RemovePerspective(name string) {
	m.RemovePerspectives(name)
}

// RemovePerspectives deletes the named perspectives. Signals are only
// emitted when at least one existed.
func (m *Manager) RemovePerspectives(names ...string) {
	count := 0
	for _, name := range names {
		if _, ok := m.perspectives[name]; ok {
			delete(m.perspectives, name)
			count++
		}
	}
	if count == 0 {
		return
	}
	m.PerspectivesRemoved.Emit(struct{}{})
	m.PerspectiveListChanged.Emit(struct{}{})
}

// PerspectiveNames returns the stored perspective names sorted.
func (m *Manager) PerspectiveNames() []string {
	names := make([]string, 0, len(m.perspectives))
	for name := range m.perspectives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Perspective returns the stored state of name.
func (m *Manager) Perspective(name string) ([]byte, bool) {
	state, ok := m.perspectives[name]
	return state, ok
}

// OpenPerspective restores the layout stored under name. Unknown names are
// ignored.
func (m *Manager) OpenPerspective(name string) bool {
	state, ok := m.perspectives[name]
	if !ok {
		m.log.Debug().Str("perspective", name).Msg("perspective not found")
		return false
	}
	m.OpeningPerspective.Emit(name)
	if !m.RestoreState(state, 0) {
		return false
	}
	m.PerspectiveOpened.Emit(name)
	return true
}

// SavePerspectives writes every perspective to store as one array of
// {Name, State} records.
func (m *Manager) SavePerspectives(store port.SettingsArray) {
	names := m.PerspectiveNames()
	store.BeginWriteArray(perspectivesArray, len(names))
	for i, name := range names {
		store.SetArrayIndex(i)
		store.SetValue(perspectiveName, name)
		store.SetValue(perspectiveState, m.perspectives[name])
	}
	store.EndArray()
}

// LoadPerspectives replaces the in-memory perspectives with the ones in
// store. Records without a name or state are skipped.
func (m *Manager) LoadPerspectives(store port.SettingsArray) {
	m.perspectives = make(map[string][]byte)
	size := store.BeginReadArray(perspectivesArray)
	for i := 0; i < size; i++ {
		store.SetArrayIndex(i)
		name := toString(store.Value(perspectiveName))
		state := toBytes(store.Value(perspectiveState))
		if name == "" || len(state) == 0 {
			continue
		}
		m.perspectives[name] = state
	}
	store.EndArray()
	m.PerspectiveListChanged.Emit(struct{}{})
	m.PerspectiveListLoaded.Emit(struct{}{})
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	}
	return ""
}

func toBytes(v any) []byte {
	switch b := v.(type) {
	case []byte:
		return b
	case string:
		return []byte(b)
	}
	return nil
}

// SyncPerspectives writes the in-memory perspectives to repo, replacing
// what it held.
func (m *Manager) SyncPerspectives(ctx context.Context, repo repository.PerspectiveRepository) error {
	names := m.PerspectiveNames()
	list := make([]*entity.Perspective, 0, len(names))
	for _, name := range names {
		list = append(list, &entity.Perspective{Name: name, State: m.perspectives[name]})
	}
	if err := repo.ReplaceAll(ctx, list); err != nil {
		return fmt.Errorf("sync perspectives: %w", err)
	}
	return nil
}

// FetchPerspectives replaces the in-memory perspectives with the ones
// stored in repo.
func (m *Manager) FetchPerspectives(ctx context.Context, repo repository.PerspectiveRepository) error {
	list, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("fetch perspectives: %w", err)
	}
	m.perspectives = make(map[string][]byte, len(list))
	for _, p := range list {
		if p.Name == "" || len(p.State) == 0 {
			continue
		}
		m.perspectives[p.Name] = p.State
	}
	m.PerspectiveListChanged.Emit(struct{}{})
	m.PerspectiveListLoaded.Emit(struct{}{})
	return nil
}

// ImportPerspective stores state under name after checking it restores on
// this manager.
func (m *Manager) ImportPerspective(name string, state []byte) error {
	if err := (&entity.Perspective{Name: name}).Validate(); err != nil {
		return err
	}
	if err := m.CheckState(state, 0); err != nil {
		return fmt.Errorf("import perspective %q: %w", name, err)
	}
	m.perspectives[name] = state
	m.PerspectiveListChanged.Emit(struct{}{})
	return nil
}
