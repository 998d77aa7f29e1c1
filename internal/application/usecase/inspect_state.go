package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/dockit/internal/infrastructure/statexml"
	"github.com/bnema/dockit/internal/logging"
)

// ErrDuplicateDockWidget is returned when a state names a widget twice.
var ErrDuplicateDockWidget = errors.New("dock widget referenced more than once")

// InspectStateUseCase decodes, validates and re-encodes saved layouts
// without a live manager.
type InspectStateUseCase struct{}

// NewInspectStateUseCase creates a new InspectStateUseCase.
func NewInspectStateUseCase() *InspectStateUseCase {
	return &InspectStateUseCase{}
}

// ContainerReport summarizes one container of a state.
type ContainerReport struct {
	Floating bool
	Geometry *statexml.Geometry
	Areas    int
	Widgets  []string
	// AutoHide maps sidebar location names to pinned widget names.
	AutoHide map[string][]string
}

// StateReport is the decoded summary of a saved layout.
type StateReport struct {
	Compressed     bool
	Version        int
	UserVersion    int
	HasUserVersion bool
	CentralWidget  string
	Containers     []ContainerReport
	Widgets        []string
	ClosedWidgets  []string
	Document       *statexml.Document
}

// Execute decodes data and builds its report. exp, when set, is checked
// against the header.
func (uc *InspectStateUseCase) Execute(ctx context.Context, data []byte, exp *statexml.Expectations) (*StateReport, error) {
	log := logging.FromContext(ctx)

	doc, err := statexml.Decode(data)
	if err != nil {
		return nil, err
	}
	if exp != nil {
		if err := doc.CheckHeader(*exp); err != nil {
			return nil, err
		}
	}

	report := &StateReport{
		Compressed:     statexml.IsCompressed(data),
		Version:        doc.Version,
		UserVersion:    doc.UserVersion,
		HasUserVersion: doc.HasUserVersion,
		CentralWidget:  doc.CentralWidget,
		Document:       doc,
	}

	seen := make(map[string]bool)
	var dups []string
	note := func(name string, closed bool) {
		if seen[name] {
			dups = append(dups, name)
		}
		seen[name] = true
		report.Widgets = append(report.Widgets, name)
		if closed {
			report.ClosedWidgets = append(report.ClosedWidgets, name)
		}
	}

	for _, c := range doc.Containers {
		cr := ContainerReport{Floating: c.Floating, Geometry: c.Geometry}
		c.Root.Walk(func(a *statexml.Area) {
			cr.Areas++
			for _, w := range a.Widgets {
				cr.Widgets = append(cr.Widgets, w.Name)
				note(w.Name, w.Closed)
			}
		})
		for _, sb := range c.SideBars {
			if cr.AutoHide == nil {
				cr.AutoHide = make(map[string][]string)
			}
			for _, w := range sb.Widgets {
				cr.AutoHide[sb.Location.String()] = append(cr.AutoHide[sb.Location.String()], w.Name)
				note(w.Name, w.Closed)
			}
		}
		report.Containers = append(report.Containers, cr)
	}

	if len(dups) > 0 {
		sort.Strings(dups)
		return report, fmt.Errorf("%w: %v", ErrDuplicateDockWidget, dups)
	}

	log.Debug().
		Int("containers", len(report.Containers)).
		Int("dock_widgets", len(report.Widgets)).
		Bool("compressed", report.Compressed).
		Msg("state inspected")
	return report, nil
}

// Reformat decodes data and encodes it again with opts.
func (uc *InspectStateUseCase) Reformat(ctx context.Context, data []byte, opts statexml.EncodeOptions) ([]byte, error) {
	report, err := uc.Execute(ctx, data, nil)
	if err != nil {
		return nil, err
	}
	return statexml.Encode(report.Document, opts)
}

// StateInput is a named state to validate.
type StateInput struct {
	Name string
	Load func(ctx context.Context) ([]byte, error)
}

// ValidationResult is the outcome for one StateInput.
type ValidationResult struct {
	Name   string
	Report *StateReport
	Err    error
}

// ValidateAll inspects every input concurrently with at most limit
// workers. Results keep the input order; a failing input does not stop
// the others.
func (uc *InspectStateUseCase) ValidateAll(ctx context.Context, inputs []StateInput, exp *statexml.Expectations, limit int) ([]ValidationResult, error) {
	results := make([]ValidationResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, in := range inputs {
		g.Go(func() error {
			results[i].Name = in.Name
			data, err := in.Load(gctx)
			if err != nil {
				results[i].Err = err
				return gctx.Err()
			}
			results[i].Report, results[i].Err = uc.Execute(gctx, data, exp)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
