// Package animate steps tick-driven animations: stateful processes advanced
// exactly once per external tick until they stop themselves or are stopped.
package animate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSteps is returned by the factories for a step count they
	// cannot honour.
	ErrInvalidSteps = errors.New("animate: invalid step count")

	// ErrReentrantTick is returned when Tick is called from inside a tick.
	ErrReentrantTick = errors.New("animate: tick called while ticking")
)

// Scheduler owns the set of live animations and steps each of them once per
// Tick. It is not safe for concurrent use: all calls, including those made
// from step and completion callbacks, must come from the goroutine driving
// Tick.
type Scheduler struct {
	active   []*Animation
	snapshot []*Animation
	ticking  bool
	ticks    uint64
}

// NewScheduler creates an instance of a Scheduler with no live animations.
func NewScheduler() *Scheduler {
	s := new(Scheduler)
	return s
}

// Start registers a new Animation that calls step on every tick, beginning
// with the next one. onComplete may be nil.
func (s *Scheduler) Start(step StepFunc, onComplete func()) *Animation {
	a := &Animation{
		scheduler:  s,
		step:       step,
		onComplete: onComplete,
	}
	s.active = append(s.active, a)
	return a
}

// Tick steps every animation that was live when the tick began, in
// registration order. Animations stopped earlier in the same tick are
// skipped and animations started during the tick wait for the next one.
//
// A panic in a callback aborts the rest of the tick and propagates to the
// caller; the Scheduler remains usable afterwards.
func (s *Scheduler) Tick() error {
	if s.ticking {
		return ErrReentrantTick
	}
	s.ticking = true
	s.snapshot = append(s.snapshot[:0], s.active...)
	defer func() {
		for i := range s.snapshot {
			s.snapshot[i] = nil
		}
		s.snapshot = s.snapshot[:0]
		s.ticking = false
	}()

	for _, a := range s.snapshot {
		if a.stopped {
			continue
		}
		a.steps++
		if a.step != nil {
			a.step(a)
		}
	}
	s.ticks++
	return nil
}

// Clear stops every live animation in registration order. Animations started
// by completion callbacks while clearing stay registered.
func (s *Scheduler) Clear() {
	live := make([]*Animation, len(s.active))
	copy(live, s.active)
	for _, a := range live {
		a.Stop()
	}
}

// Len returns the number of live animations.
func (s *Scheduler) Len() int {
	return len(s.active)
}

// Ticks returns the number of completed ticks.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

func (s *Scheduler) remove(a *Animation) {
	for i, live := range s.active {
		if live == a {
			copy(s.active[i:], s.active[i+1:])
			s.active[len(s.active)-1] = nil
			s.active = s.active[:len(s.active)-1]
			return
		}
	}
}

func invalidSteps(totalSteps int) error {
	return fmt.Errorf("%w: %d", ErrInvalidSteps, totalSteps)
}
