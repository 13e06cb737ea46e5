package animate

// fixedStep counts from 0 to total-1, one count per tick.
type fixedStep struct {
	count    int
	total    int
	perCount func(step int)
}

func (f *fixedStep) step(a *Animation) {
	if f.count < f.total {
		f.perCount(f.count)
		f.count++
	}
	if f.count >= f.total {
		a.Stop()
	}
}

// FixedStep starts an Animation that calls perCount with 0, 1, ...,
// totalSteps-1 on consecutive ticks and stops itself after the last one.
// A zero totalSteps stops on the first tick without calling perCount.
func (s *Scheduler) FixedStep(totalSteps int, perCount func(step int), onComplete func()) (*Animation, error) {
	if totalSteps < 0 {
		return nil, invalidSteps(totalSteps)
	}

	f := &fixedStep{total: totalSteps, perCount: perCount}
	return s.Start(f.step, onComplete), nil
}
