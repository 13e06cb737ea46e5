package blueprint

import "github.com/matt-g-everett/blueprint/animate"

// Path is an open polyline.
type Path struct {
	points []animate.Point
}

// Add appends p to the end of the path.
func (p *Path) Add(pt animate.Point) {
	p.points = append(p.points, pt)
}

// Last returns the final point of the path. ok is false on an empty path.
func (p *Path) Last() (pt animate.Point, ok bool) {
	if len(p.points) == 0 {
		return animate.Point{}, false
	}
	return p.points[len(p.points)-1], true
}

// SetLast moves the final point of the path. It does nothing on an empty path.
func (p *Path) SetLast(pt animate.Point) {
	if len(p.points) == 0 {
		return
	}
	p.points[len(p.points)-1] = pt
}

// TrimFront drops the n oldest points.
func (p *Path) TrimFront(n int) {
	if n <= 0 {
		return
	}
	if n >= len(p.points) {
		p.points = p.points[:0]
		return
	}
	p.points = append(p.points[:0], p.points[n:]...)
}

// Len returns the number of points.
func (p *Path) Len() int {
	return len(p.points)
}

// Points returns the points of the path. The slice is only valid until the
// path is next modified.
func (p *Path) Points() []animate.Point {
	return p.points
}
