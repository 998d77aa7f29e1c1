package docking

import (
	"sort"
	"time"

	"github.com/bnema/dockit/internal/application/port"
)

// ManualScheduler is a port.Scheduler driven by hand: posted callbacks run on
// RunPending and timers fire on Advance. Hosts without an event loop (the CLI,
// scripts, tests) use it to flush deferred work deterministically.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	posted  []func()
	timers  []*manualTimer
	running bool
}

type manualTimer struct {
	s       *ManualScheduler
	at      time.Duration
	seq     int
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	for i, x := range t.s.timers {
		if x == t {
			t.s.timers = append(t.s.timers[:i], t.s.timers[i+1:]...)
			break
		}
	}
	return true
}

// NewManualScheduler returns a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler { return &ManualScheduler{} }

var _ port.Scheduler = (*ManualScheduler)(nil)

func (s *ManualScheduler) Post(fn func()) { s.posted = append(s.posted, fn) }

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) port.Timer {
	s.seq++
	t := &manualTimer{s: s, at: s.now + d, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Pending returns the number of posted callbacks not yet run.
func (s *ManualScheduler) Pending() int { return len(s.posted) }

// Timers returns the number of armed timers.
func (s *ManualScheduler) Timers() int { return len(s.timers) }

// RunPending runs posted callbacks, including the ones they post, until the
// queue is empty.
func (s *ManualScheduler) RunPending() {
	if s.running {
		return
	}
	s.running = true
	defer func() { s.running = false }()
	for len(s.posted) > 0 {
		fn := s.posted[0]
		s.posted = s.posted[1:]
		fn()
	}
}

// Advance moves virtual time forward by d, firing due timers in deadline
// order. Posted callbacks are flushed after each timer.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		s.RunPending()
		due := s.due(target)
		if due == nil {
			break
		}
		due.Stop()
		s.now = due.at
		due.fn()
	}
	s.now = target
	s.RunPending()
}

func (s *ManualScheduler) due(target time.Duration) *manualTimer {
	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].at != s.timers[j].at {
			return s.timers[i].at < s.timers[j].at
		}
		return s.timers[i].seq < s.timers[j].seq
	})
	if len(s.timers) == 0 || s.timers[0].at > target {
		return nil
	}
	return s.timers[0]
}
