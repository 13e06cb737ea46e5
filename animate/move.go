package animate

// linearMove holds the immutable parameters of a straight-line move.
type linearMove struct {
	start    Point
	end      Point
	dx, dy   float64
	total    int
	perPoint func(x, y float64)
}

func (m *linearMove) at(i int) {
	// The last position is the end point itself so round-off never leaves
	// the mover short of its target.
	if i == m.total-1 {
		m.perPoint(m.end.X, m.end.Y)
		return
	}
	m.perPoint(m.start.X+m.dx*float64(i), m.start.Y+m.dy*float64(i))
}

// LinearMove starts an Animation that passes totalSteps evenly spaced points
// on the line from start towards end to perPoint, one per tick. The first
// point is start and the last is exactly end.
func (s *Scheduler) LinearMove(totalSteps int, start, end Point, perPoint func(x, y float64), onComplete func()) (*Animation, error) {
	if totalSteps < 1 {
		return nil, invalidSteps(totalSteps)
	}

	m := &linearMove{
		start:    start,
		end:      end,
		dx:       (end.X - start.X) / float64(totalSteps),
		dy:       (end.Y - start.Y) / float64(totalSteps),
		total:    totalSteps,
		perPoint: perPoint,
	}
	return s.FixedStep(totalSteps, m.at, onComplete)
}

// easedMove follows the same line as linearMove but spaces the points with
// an easing curve mapping [0, 1] onto [0, 1].
type easedMove struct {
	start    Point
	end      Point
	total    int
	curve    func(float64) float64
	perPoint func(x, y float64)
}

func (m *easedMove) at(i int) {
	if i == m.total-1 {
		m.perPoint(m.end.X, m.end.Y)
		return
	}
	t := m.curve(float64(i) / float64(m.total))
	m.perPoint(m.start.X+(m.end.X-m.start.X)*t, m.start.Y+(m.end.Y-m.start.Y)*t)
}

// EasedMove is LinearMove with the fraction of the line covered at each step
// shaped by curve, e.g. ease.InOutQuad. A nil curve moves linearly.
func (s *Scheduler) EasedMove(totalSteps int, start, end Point, curve func(float64) float64, perPoint func(x, y float64), onComplete func()) (*Animation, error) {
	if curve == nil {
		return s.LinearMove(totalSteps, start, end, perPoint, onComplete)
	}
	if totalSteps < 1 {
		return nil, invalidSteps(totalSteps)
	}

	m := &easedMove{
		start:    start,
		end:      end,
		total:    totalSteps,
		curve:    curve,
		perPoint: perPoint,
	}
	return s.FixedStep(totalSteps, m.at, onComplete)
}
