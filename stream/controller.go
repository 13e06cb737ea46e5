package stream

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/blueprint/animate"
	"github.com/matt-g-everett/blueprint/blueprint"
	"github.com/matt-g-everett/blueprint/util"
)

// Controller owns the animation scheduler and renders one Frame per tick.
type Controller struct {
	config     Config
	scheduler  *animate.Scheduler
	rng        *rand.Rand
	blueprint  *blueprint.Blueprint
	background colorful.Color
	stroke     colorful.Color
	chroma     float64
	paused     bool
	cycleTicks int

	// Crossfade from the previous blueprint, if one is in progress.
	previous   *Frame
	transition float64
	fade       *animate.Animation
	fadeLut    []float64

	// Stroke brightness pulse.
	luts       util.Memoizer
	pulse      []float64
	pulseIndex int
	gain       float64
}

// NewController creates an instance of a Controller and starts its first
// blueprint.
func NewController(config Config, rng *rand.Rand) (*Controller, error) {
	c := new(Controller)
	c.config = config
	c.scheduler = animate.NewScheduler()
	c.rng = rng

	var err error
	c.background, err = colorful.Hex(config.Canvas.Background)
	if err != nil {
		return nil, fmt.Errorf("background colour: %w", err)
	}
	c.stroke, err = colorful.Hex(config.Canvas.Stroke)
	if err != nil {
		return nil, fmt.Errorf("stroke colour: %w", err)
	}
	c.fadeLut = util.GenerateRamp(config.Animation.TransitionTicks)
	c.luts = util.Memoizer{}

	if err := c.startBlueprint(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Controller) startBlueprint() error {
	c.blueprint = blueprint.NewBlueprint(c.scheduler, blueprint.Config{
		Width:     float64(c.config.Canvas.Width - 1),
		Height:    float64(c.config.Canvas.Height - 1),
		Speed:     c.config.Animation.Speed,
		MaxPoints: c.config.Animation.MaxPoints,
	}, c.rng)
	c.chroma = util.RandomiseSaturation(c.rng, 0.6, 1.0)
	c.cycleTicks = 0
	if err := c.blueprint.Start(); err != nil {
		return err
	}

	c.startPulse()
	return nil
}

// startPulse cycles the stroke gain through an eased up-and-down table for as
// long as the blueprint runs.
func (c *Controller) startPulse() {
	c.gain = 0
	c.pulseIndex = 0
	if c.config.Animation.PulseTicks < 2 {
		return
	}

	c.pulse = util.GenerateLutMemoized(c.config.Animation.PulseTicks, c.luts)
	c.scheduler.Start(func(*animate.Animation) {
		c.gain = c.pulse[c.pulseIndex]
		c.pulseIndex = (c.pulseIndex + 1) % len(c.pulse)
	}, nil)
}

// Step advances every animation by one tick, unless paused, and renders the
// result.
func (c *Controller) Step() (*Frame, error) {
	if !c.paused {
		if err := c.scheduler.Tick(); err != nil {
			return nil, err
		}

		c.cycleTicks++
		if c.config.Animation.CycleTicks > 0 && c.cycleTicks >= c.config.Animation.CycleTicks {
			if err := c.Restart(); err != nil {
				return nil, err
			}
		}
	}

	f := c.render()
	if c.previous != nil {
		f = c.previous.InterpolateFrame(f, c.transition)
	}
	return f, nil
}

// Restart replaces the blueprint with a new one, fading over from the old
// one when a transition is configured.
func (c *Controller) Restart() error {
	old := c.render()
	if c.previous != nil {
		old = c.previous.InterpolateFrame(old, c.transition)
	}
	// Stop the blueprint first so its head does not chain another segment,
	// then drop the fade and pulse with it.
	c.blueprint.Stop()
	c.scheduler.Clear()

	if err := c.startBlueprint(); err != nil {
		return err
	}
	log.Printf("Restarted blueprint (%d live animations)", c.scheduler.Len())

	if len(c.fadeLut) == 0 {
		return nil
	}

	c.previous = old
	c.transition = 0
	fade, err := c.scheduler.FixedStep(len(c.fadeLut), func(i int) {
		c.transition = c.fadeLut[i]
	}, func() {
		c.previous = nil
		c.fade = nil
	})
	if err != nil {
		return err
	}
	c.fade = fade
	return nil
}

// Pause stops ticking; frames keep rendering unchanged.
func (c *Controller) Pause() {
	c.paused = true
}

// Resume continues ticking after a Pause.
func (c *Controller) Resume() {
	c.paused = false
}

// Paused reports whether the controller is paused.
func (c *Controller) Paused() bool {
	return c.paused
}

// Ticks returns the number of ticks completed.
func (c *Controller) Ticks() uint64 {
	return c.scheduler.Ticks()
}

// LiveAnimations returns the number of animations in the scheduler.
func (c *Controller) LiveAnimations() int {
	return c.scheduler.Len()
}

func (c *Controller) render() *Frame {
	f := NewFrame(c.config.Canvas.Width, c.config.Canvas.Height)
	f.Fill(c.background)

	stroke := c.stroke
	h, ch, l := c.stroke.Hcl()
	if c.gain > 0 {
		// Pull the luminance towards 0.6 as the pulse rises.
		l += (0.6 - l) * c.gain
		stroke = colorful.Hcl(h, ch, l)
	}

	points := c.blueprint.Path().Points()
	segments := len(points) - 1
	for i := 0; i < segments; i++ {
		colour := stroke
		if len(c.config.Animation.Gradient) > 0 {
			colour = c.config.Animation.Gradient.GetColor(float64(i)/float64(segments), c.chroma, l)
		}
		f.DrawLine(points[i], points[i+1], colour)
	}
	return f
}
