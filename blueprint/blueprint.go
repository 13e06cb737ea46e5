// Package blueprint draws a path that keeps growing with alternating
// horizontal and vertical segments, each drawn out over several ticks.
package blueprint

import (
	"log"
	"math"
	"math/rand"

	"github.com/matt-g-everett/blueprint/animate"
)

// Config holds the parameters of a Blueprint.
type Config struct {
	Width  float64
	Height float64
	// Speed is how far the head of the path moves per tick.
	Speed float64
	// MaxPoints caps the length of the path; the oldest points are dropped.
	// Zero means unbounded.
	MaxPoints int
}

// A Blueprint extends its path forever, one chained move at a time.
type Blueprint struct {
	scheduler *animate.Scheduler
	config    Config
	rng       *rand.Rand
	path      Path
	head      *animate.Animation
	stopped   bool
	segments  int
	// added counts segments started; it picks the direction of the next one
	// and is not affected by trimming.
	added int
}

// NewBlueprint creates an instance of a Blueprint. Nothing moves until Start.
func NewBlueprint(scheduler *animate.Scheduler, config Config, rng *rand.Rand) *Blueprint {
	b := new(Blueprint)
	b.scheduler = scheduler
	b.config = config
	b.rng = rng
	return b
}

// Start anchors the path at a random point and begins extending it.
func (b *Blueprint) Start() error {
	if b.head != nil && b.head.Active() {
		return nil
	}
	b.stopped = false
	if b.path.Len() == 0 {
		b.path.Add(animate.Point{
			X: b.config.Width * b.rng.Float64(),
			Y: b.config.Height * b.rng.Float64(),
		})
	}
	return b.Extend()
}

// Extend adds a new segment to the path and starts moving its end from the
// last point to a random target. Completing the move extends the path again.
func (b *Blueprint) Extend() error {
	last, ok := b.path.Last()
	if !ok {
		return b.Start()
	}

	var target animate.Point
	if b.added%2 == 0 {
		target = animate.Point{X: last.X, Y: b.config.Height * b.rng.Float64()}
	} else {
		target = animate.Point{X: b.config.Width * b.rng.Float64(), Y: last.Y}
	}
	b.added++

	b.path.Add(last)
	if b.config.MaxPoints > 0 && b.path.Len() > b.config.MaxPoints {
		b.path.TrimFront(b.path.Len() - b.config.MaxPoints)
	}

	steps := 1
	if b.config.Speed > 0 {
		steps = int(math.Ceil(last.Distance(target) / b.config.Speed))
		if steps < 1 {
			steps = 1
		}
	}

	head, err := b.scheduler.LinearMove(steps, last, target, b.moveHead, b.segmentDone)
	if err != nil {
		return err
	}
	b.head = head
	return nil
}

// Stop halts the path where it is.
func (b *Blueprint) Stop() {
	b.stopped = true
	if b.head != nil {
		b.head.Stop()
		b.head = nil
	}
}

// Path returns the path being drawn.
func (b *Blueprint) Path() *Path {
	return &b.path
}

// Segments returns the number of segments completed so far.
func (b *Blueprint) Segments() int {
	return b.segments
}

func (b *Blueprint) moveHead(x, y float64) {
	b.path.SetLast(animate.Point{X: x, Y: y})
}

func (b *Blueprint) segmentDone() {
	if b.stopped {
		return
	}
	b.segments++
	if err := b.Extend(); err != nil {
		log.Printf("blueprint: extend failed: %v", err)
	}
}
