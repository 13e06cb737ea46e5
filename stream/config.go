package stream

import (
	"errors"
	"fmt"
	"time"
)

// Config is the YAML configuration of the whole application.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		QoS      byte   `yaml:"qos"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Canvas struct {
		Width      int    `yaml:"width"`
		Height     int    `yaml:"height"`
		Background string `yaml:"background"`
		Stroke     string `yaml:"stroke"`
	} `yaml:"canvas"`
	Animation struct {
		FrameRate       float64       `yaml:"frameRate"`
		Speed           float64       `yaml:"speed"`
		MaxPoints       int           `yaml:"maxPoints"`
		CycleTicks      int           `yaml:"cycleTicks"`
		TransitionTicks int           `yaml:"transitionTicks"`
		PulseTicks      int           `yaml:"pulseTicks"`
		Gradient        GradientTable `yaml:"gradient"`
	} `yaml:"animation"`
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
}

// SetDefaults fills in any unset values.
func (c *Config) SetDefaults() {
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "home/blueprint/stream"
	}
	if c.Mqtt.Topics.Control == "" {
		c.Mqtt.Topics.Control = "home/blueprint/control"
	}
	if c.Canvas.Width == 0 {
		c.Canvas.Width = 64
	}
	if c.Canvas.Height == 0 {
		c.Canvas.Height = 32
	}
	if c.Canvas.Background == "" {
		c.Canvas.Background = "#003153"
	}
	if c.Canvas.Stroke == "" {
		c.Canvas.Stroke = "#cccccc"
	}
	if c.Animation.FrameRate == 0 {
		c.Animation.FrameRate = 30
	}
	if c.Animation.Speed == 0 {
		c.Animation.Speed = 0.5
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":3000"
	}
}

// Validate checks that the configuration can drive a Controller.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Width > 0xffff || c.Canvas.Height > 0xffff {
		return fmt.Errorf("canvas size %dx%d does not fit a frame header", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Animation.FrameRate <= 0 {
		return fmt.Errorf("frame rate %v must be positive", c.Animation.FrameRate)
	}
	if c.Animation.Speed < 0 {
		return fmt.Errorf("speed %v must not be negative", c.Animation.Speed)
	}
	if c.Animation.CycleTicks < 0 || c.Animation.TransitionTicks < 0 ||
		c.Animation.MaxPoints < 0 || c.Animation.PulseTicks < 0 {
		return errors.New("maxPoints, cycleTicks, transitionTicks and pulseTicks must not be negative")
	}
	if c.Mqtt.QoS > 2 {
		return fmt.Errorf("qos %d must be 0, 1 or 2", c.Mqtt.QoS)
	}
	return nil
}

// FrameInterval is the time between ticks.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.Animation.FrameRate)
}
