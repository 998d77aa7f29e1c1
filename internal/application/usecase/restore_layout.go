package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dockit/internal/app/docking"
	"github.com/bnema/dockit/internal/domain/entity"
	"github.com/bnema/dockit/internal/infrastructure/statexml"
	"github.com/bnema/dockit/internal/logging"
)

// RestoreLayoutUseCase restores a saved layout into a manager that has not
// registered the widgets yet. Every widget the state names is created
// first, so nothing is skipped as unknown.
type RestoreLayoutUseCase struct{}

// NewRestoreLayoutUseCase creates a new RestoreLayoutUseCase.
func NewRestoreLayoutUseCase() *RestoreLayoutUseCase {
	return &RestoreLayoutUseCase{}
}

// Execute registers the missing widgets of data in m and restores it with
// userVersion. It returns the names it created.
func (uc *RestoreLayoutUseCase) Execute(ctx context.Context, m *docking.Manager, data []byte, userVersion int) ([]string, error) {
	log := logging.FromContext(ctx)

	doc, err := statexml.Decode(data)
	if err != nil {
		return nil, err
	}

	var created []string
	if doc.CentralWidget != "" && m.CentralWidget() == nil && len(m.DockWidgetsMap()) == 0 {
		w := m.CreateDockWidget(doc.CentralWidget)
		if _, err := m.SetCentralWidgetErr(w); err != nil {
			return nil, fmt.Errorf("central widget: %w", err)
		}
		created = append(created, w.Name())
	}

	for _, name := range doc.WidgetNames() {
		if m.FindDockWidget(name) != nil {
			continue
		}
		w := m.CreateDockWidget(name)
		if m.AddDockWidget(entity.LeftDockWidgetArea, w, nil) == nil {
			return created, fmt.Errorf("register dock widget %q", name)
		}
		created = append(created, name)
	}

	if err := m.RestoreStateErr(data, userVersion); err != nil {
		return created, err
	}
	log.Debug().Strs("created", created).Msg("layout restored")
	return created, nil
}
