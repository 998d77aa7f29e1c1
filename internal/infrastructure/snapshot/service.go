// Package snapshot writes layout state in the background, debouncing bursts
// of changes into a single write.
package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/dockit/internal/logging"
)

const (
	defaultInterval = 2 * time.Second
	stateFilePerm   = 0o644
)

// Sink persists a serialized layout.
type Sink interface {
	WriteState(ctx context.Context, data []byte) error
}

// FileSink replaces a state file atomically.
type FileSink struct {
	Path string
}

// WriteState writes data next to Path and renames it into place.
func (s FileSink) WriteState(_ context.Context, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.Path), "."+filepath.Base(s.Path)+".*")
	if err != nil {
		return fmt.Errorf("create temp state: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp state: %w", err)
	}
	if err := tmp.Chmod(stateFilePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp state: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}

// Service handles debounced layout state snapshots.
type Service struct {
	sink     Sink
	interval time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending []byte
	dirty   bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewService creates a new snapshot service.
func NewService(sink Sink, intervalMs int) *Service {
	interval := defaultInterval
	if intervalMs > 0 {
		interval = time.Duration(intervalMs) * time.Millisecond
	}
	return &Service{
		sink:     sink,
		interval: interval,
	}
}

// Start begins accepting snapshots.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(logging.WithComponent(ctx, "snapshot"))
	logging.FromContext(s.ctx).Debug().Dur("interval", s.interval).Msg("snapshot service started")
}

// Stop stops the service and saves final state.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// MarkDirty records the latest state and schedules a write.
// Calls within the interval collapse into one write of the last state.
func (s *Service) MarkDirty(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending[:0:0], data...)
	s.dirty = true

	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if ctx == nil || ctx.Err() != nil {
			return
		}

		if err := s.saveSnapshot(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to save layout snapshot")
		}
	})
}

// SaveNow forces an immediate write of pending state.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	dirty := s.dirty
	s.mu.Unlock()

	if !dirty {
		return nil
	}

	return s.saveSnapshot(ctx)
}

// Dirty reports whether a state is waiting to be written.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *Service) saveSnapshot(ctx context.Context) error {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	data := s.pending
	s.dirty = false
	s.mu.Unlock()

	if err := s.sink.WriteState(ctx, data); err != nil {
		s.mu.Lock()
		// A newer state may have arrived while writing; keep whichever is latest.
		s.dirty = true
		s.mu.Unlock()
		return err
	}

	logging.FromContext(ctx).Debug().Int("bytes", len(data)).Msg("layout snapshot saved")
	return nil
}
