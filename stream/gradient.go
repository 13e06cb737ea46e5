package stream

import (
	"github.com/lucasb-eyer/go-colorful"
)

// GradientStop is a hue at a position in [0, 1] along a gradient.
type GradientStop struct {
	Hue float64 `yaml:"hue"`
	Pos float64 `yaml:"pos"`
}

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable []GradientStop

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	if len(g) == 0 {
		return colorful.Hcl(0, s, l)
	}

	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			if c1.Pos == c2.Pos {
				return colorful.Hcl(c1.Hue, s, l)
			}

			// We are in between c1 and c2. Go blend them!
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}

	// Nothing found? Means we're before the first or past the last keypoint.
	if t < g[0].Pos {
		return colorful.Hcl(g[0].Hue, s, l)
	}
	return colorful.Hcl(g[len(g)-1].Hue, s, l)
}
