package docking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualScheduler_RunPending(t *testing.T) {
	s := NewManualScheduler()
	var got []int
	s.Post(func() {
		got = append(got, 1)
		s.Post(func() { got = append(got, 3) })
	})
	s.Post(func() { got = append(got, 2) })

	assert.Equal(t, 2, s.Pending())
	s.RunPending()

	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Zero(t, s.Pending())
}

func TestManualScheduler_Advance(t *testing.T) {
	s := NewManualScheduler()
	var got []string
	s.AfterFunc(200*time.Millisecond, func() { got = append(got, "b") })
	s.AfterFunc(100*time.Millisecond, func() {
		got = append(got, "a")
		s.Post(func() { got = append(got, "a-posted") })
	})
	stopped := s.AfterFunc(150*time.Millisecond, func() { got = append(got, "stopped") })

	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())
	assert.Equal(t, 2, s.Timers())

	s.Advance(150 * time.Millisecond)
	assert.Equal(t, []string{"a", "a-posted"}, got)

	s.Advance(50 * time.Millisecond)
	assert.Equal(t, []string{"a", "a-posted", "b"}, got)
	assert.Zero(t, s.Timers())
}

func TestManualScheduler_TimerArmedByTimer(t *testing.T) {
	s := NewManualScheduler()
	fired := 0
	s.AfterFunc(10*time.Millisecond, func() {
		s.AfterFunc(10*time.Millisecond, func() { fired++ })
	})

	s.Advance(time.Second)

	assert.Equal(t, 1, fired)
}
