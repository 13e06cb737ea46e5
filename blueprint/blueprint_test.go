package blueprint

import (
	"math/rand"
	"testing"

	"github.com/matt-g-everett/blueprint/animate"
)

func newTestBlueprint(config Config) (*Blueprint, *animate.Scheduler) {
	s := animate.NewScheduler()
	return NewBlueprint(s, config, rand.New(rand.NewSource(1))), s
}

func TestStartAnchorsInsideCanvas(t *testing.T) {
	b, s := newTestBlueprint(Config{Width: 64, Height: 32, Speed: 1})
	if err := b.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if b.Path().Len() != 2 {
		t.Fatalf("Len = %d, want anchor plus head", b.Path().Len())
	}
	anchor := b.Path().Points()[0]
	if anchor.X < 0 || anchor.X > 64 || anchor.Y < 0 || anchor.Y > 32 {
		t.Errorf("anchor %v outside canvas", anchor)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want one head animation", s.Len())
	}
}

func TestStartTwiceKeepsOneHead(t *testing.T) {
	b, s := newTestBlueprint(Config{Width: 64, Height: 32, Speed: 1})
	b.Start()
	b.Start()
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestSegmentsAlternateDirection(t *testing.T) {
	b, s := newTestBlueprint(Config{Width: 100, Height: 100, Speed: 3})
	b.Start()

	for i := 0; i < 2000 && b.Segments() < 6; i++ {
		if err := s.Tick(); err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
	}
	if b.Segments() < 6 {
		t.Fatalf("only %d segments completed", b.Segments())
	}

	pts := b.Path().Points()
	for i := 1; i < b.Segments(); i++ {
		prev, cur := pts[i-1], pts[i]
		if i%2 == 1 && cur.X != prev.X {
			t.Errorf("segment %d should be vertical: %v -> %v", i, prev, cur)
		}
		if i%2 == 0 && cur.Y != prev.Y {
			t.Errorf("segment %d should be horizontal: %v -> %v", i, prev, cur)
		}
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want exactly one head animation", s.Len())
	}
}

func TestHeadReachesTarget(t *testing.T) {
	b, s := newTestBlueprint(Config{Width: 50, Height: 50, Speed: 2})
	b.Start()

	var before int
	for b.Segments() == 0 {
		before = b.Path().Len()
		s.Tick()
	}

	// The completed segment's end is where the next segment starts.
	pts := b.Path().Points()
	if before != 2 || len(pts) != 3 {
		t.Fatalf("path length %d -> %d", before, len(pts))
	}
	if pts[1] != pts[2] {
		t.Errorf("new head %v should start at %v", pts[2], pts[1])
	}
}

func TestMaxPointsTrims(t *testing.T) {
	b, s := newTestBlueprint(Config{Width: 10, Height: 10, MaxPoints: 4})
	b.Start()
	for i := 0; i < 20; i++ {
		s.Tick()
	}
	if b.Path().Len() != 4 {
		t.Errorf("Len = %d, want 4", b.Path().Len())
	}
	if b.Segments() != 20 {
		t.Errorf("Segments = %d, want 20 with one-step moves", b.Segments())
	}
}

func TestTrimmedPathKeepsAlternating(t *testing.T) {
	b, s := newTestBlueprint(Config{Width: 100, Height: 100, Speed: 1000, MaxPoints: 4})
	b.Start()

	for i := 1; i <= 12; i++ {
		if err := s.Tick(); err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
		if b.Segments() != i {
			t.Fatalf("Segments = %d after %d ticks", b.Segments(), i)
		}

		// The last point is the new head; the two before it are the
		// segment that just completed.
		pts := b.Path().Points()
		prev, cur := pts[len(pts)-3], pts[len(pts)-2]
		if i%2 == 1 && cur.X != prev.X {
			t.Errorf("segment %d should be vertical: %v -> %v", i, prev, cur)
		}
		if i%2 == 0 && cur.Y != prev.Y {
			t.Errorf("segment %d should be horizontal: %v -> %v", i, prev, cur)
		}
	}
	if b.Path().Len() != 4 {
		t.Errorf("Len = %d, want 4", b.Path().Len())
	}
}

func TestStopHaltsChain(t *testing.T) {
	b, s := newTestBlueprint(Config{Width: 10, Height: 10, Speed: 1})
	b.Start()
	s.Tick()
	b.Stop()

	n := b.Path().Len()
	for i := 0; i < 50; i++ {
		s.Tick()
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0 after Stop", s.Len())
	}
	if b.Path().Len() != n {
		t.Errorf("path grew after Stop")
	}
}

func TestPathEmpty(t *testing.T) {
	var p Path
	if _, ok := p.Last(); ok {
		t.Error("Last on empty path should report !ok")
	}
	p.SetLast(animate.Point{X: 1})
	if p.Len() != 0 {
		t.Error("SetLast on empty path should not add a point")
	}
	p.TrimFront(3)
	if p.Len() != 0 {
		t.Error("TrimFront on empty path changed it")
	}
}

func TestPathTrimFront(t *testing.T) {
	var p Path
	for i := 0; i < 5; i++ {
		p.Add(animate.Point{X: float64(i)})
	}
	p.TrimFront(2)
	if p.Len() != 3 || p.Points()[0].X != 2 {
		t.Errorf("points = %v", p.Points())
	}
	p.TrimFront(10)
	if p.Len() != 0 {
		t.Errorf("Len = %d, want 0", p.Len())
	}
}
