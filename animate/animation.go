package animate

// StepFunc advances an Animation by one tick. It receives the Animation being
// stepped so it can stop itself.
type StepFunc func(a *Animation)

// An Animation is a unit of work stepped once per tick by its Scheduler until
// Stop is called.
type Animation struct {
	scheduler  *Scheduler
	step       StepFunc
	onComplete func()
	steps      int
	stopped    bool
}

// Stop removes the Animation from its Scheduler and fires the completion
// callback. Only the first call has any effect; it reports whether this call
// stopped the Animation.
func (a *Animation) Stop() bool {
	if a.stopped {
		return false
	}
	a.stopped = true
	a.scheduler.remove(a)

	if a.onComplete != nil {
		a.onComplete()
	}
	return true
}

// Active reports whether the Animation will be stepped on future ticks.
func (a *Animation) Active() bool {
	return !a.stopped
}

// Steps returns how many times the Animation has been stepped.
func (a *Animation) Steps() int {
	return a.steps
}
