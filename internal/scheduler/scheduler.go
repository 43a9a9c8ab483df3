// Package scheduler fires the "show a question" callback after a random
// delay inside the configured interval. Pausing cancels the pending
// timer and remembers how much of the delay was left, so resuming waits
// only the remainder instead of restarting the full interval.
package scheduler

import (
	"math/rand"
	"sync"
	"time"
)

// Default question interval bounds.
const (
	DefaultMinInterval = 2 * time.Minute
	DefaultMaxInterval = 10 * time.Minute
)

// Scheduler arms a one-shot timer per question. The callback runs on the
// timer's goroutine; the caller re-arms with Schedule after handling it.
type Scheduler struct {
	fire func()

	mu       sync.Mutex
	min      time.Duration
	max      time.Duration
	rng      *rand.Rand
	now      func() time.Time
	timer    *time.Timer
	paused   bool
	pausedAt time.Time
	nextAt   time.Time
}

// New creates a Scheduler with the given interval bounds and callback.
func New(min, max time.Duration, fire func()) *Scheduler {
	if min <= 0 {
		min = DefaultMinInterval
	}
	if max < min {
		max = min
	}
	return &Scheduler{
		fire: fire,
		min:  min,
		max:  max,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

// Schedule cancels any pending timer and arms a new one with a random
// delay. No-op while paused.
func (s *Scheduler) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	if s.paused {
		return
	}
	s.armLocked(s.randomDelayLocked())
}

// SetInterval updates the bounds. Takes effect on the next Schedule.
func (s *Scheduler) SetInterval(min, max time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if min > 0 {
		s.min = min
	}
	if max >= s.min {
		s.max = max
	} else {
		s.max = s.min
	}
}

// Pause cancels the pending timer and records when it was cut short.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused {
		return
	}
	s.paused = true
	s.pausedAt = s.now()
	s.stopTimerLocked()
}

// Resume re-arms the timer with the remaining delay from the pause
// point, or schedules fresh when the deadline already passed.
func (s *Scheduler) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.paused {
		return
	}
	s.paused = false

	remaining := time.Duration(0)
	if !s.nextAt.IsZero() && !s.pausedAt.IsZero() {
		remaining = s.nextAt.Sub(s.pausedAt)
	}
	if remaining > 0 {
		s.armLocked(remaining)
		return
	}
	s.armLocked(s.randomDelayLocked())
}

// Stop cancels the pending timer. The scheduler can be re-armed with
// Schedule afterwards.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
	s.nextAt = time.Time{}
}

// Paused reports whether scheduling is paused.
func (s *Scheduler) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// NextAt returns the deadline of the pending timer, or the zero time.
func (s *Scheduler) NextAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextAt
}

func (s *Scheduler) armLocked(delay time.Duration) {
	s.nextAt = s.now().Add(delay)
	s.timer = time.AfterFunc(delay, s.onFire)
}

func (s *Scheduler) onFire() {
	s.mu.Lock()
	if s.paused {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.nextAt = time.Time{}
	s.mu.Unlock()

	s.fire()
}

func (s *Scheduler) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Scheduler) randomDelayLocked() time.Duration {
	if s.max == s.min {
		return s.min
	}
	return s.min + time.Duration(s.rng.Int63n(int64(s.max-s.min)))
}
