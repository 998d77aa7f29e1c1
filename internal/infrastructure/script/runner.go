// Package script builds docking layouts from JavaScript using sobek.
package script

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/grafana/sobek"
	"github.com/rs/zerolog"

	"github.com/bnema/dockit/internal/app/docking"
	"github.com/bnema/dockit/internal/logging"
)

// DefaultTimeout bounds a script run when the context has no deadline.
const DefaultTimeout = 5 * time.Second

// ErrInterrupted is returned when a script is stopped by its context.
var ErrInterrupted = errors.New("script interrupted")

// Runner executes layout scripts against a docking manager.
type Runner struct {
	timeout time.Duration
}

// NewRunner returns a runner. A zero timeout uses DefaultTimeout.
func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{timeout: timeout}
}

// Run evaluates src with a `dock` global bound to m and a `console`
// global writing to the context logger. name labels stack traces.
func (r *Runner) Run(ctx context.Context, m *docking.Manager, name, src string) error {
	log := *logging.FromContext(logging.WithScript(ctx, name))

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	vm := sobek.New()
	vm.SetFieldNameMapper(sobek.UncapFieldNameMapper())

	api := newDockAPI(m)
	if err := vm.Set("dock", api); err != nil {
		return fmt.Errorf("bind dock: %w", err)
	}
	if err := vm.Set("console", &console{log: &log}); err != nil {
		return fmt.Errorf("bind console: %w", err)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	started := time.Now()
	_, err := vm.RunScript(name, src)
	if err != nil {
		var interrupted *sobek.InterruptedError
		if errors.As(err, &interrupted) {
			return fmt.Errorf("%w: %s: %v", ErrInterrupted, name, interrupted.Value())
		}
		return fmt.Errorf("script %s: %w", name, err)
	}

	log.Debug().
		Dur("elapsed", time.Since(started)).
		Int("dock_widgets", len(m.DockWidgets())).
		Msg("layout script finished")
	return nil
}

type console struct {
	log *zerolog.Logger
}

func joinArgs(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

func (c *console) Log(args ...any)   { c.log.Info().Msg(joinArgs(args)) }
func (c *console) Warn(args ...any)  { c.log.Warn().Msg(joinArgs(args)) }
func (c *console) Error(args ...any) { c.log.Error().Msg(joinArgs(args)) }
