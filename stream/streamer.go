package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// ControlMessage is a command received on the control topic.
type ControlMessage struct {
	Type string `json:"type"`
}

// Stats is a snapshot of the Streamer's progress.
type Stats struct {
	Ticks           int64 `json:"ticks"`
	LiveAnimations  int64 `json:"liveAnimations"`
	FramesPublished int64 `json:"framesPublished"`
	Paused          bool  `json:"paused"`
}

// Streamer that streams RGB data frames to an LED matrix. It is the only
// tick source for its Controller.
type Streamer struct {
	config     Config
	client     mqtt.Client
	controller *Controller
	commands   chan ControlMessage

	ticks     atomic.Int64
	live      atomic.Int64
	published atomic.Int64
	paused    atomic.Bool
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, controller *Controller) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.controller = controller
	s.commands = make(chan ControlMessage, 16)
	return s
}

// Subscribe listens for commands on the control topic.
func (s *Streamer) Subscribe() error {
	token := s.client.Subscribe(s.config.Mqtt.Topics.Control, 0, s.handleControl)
	token.Wait()
	return token.Error()
}

func (s *Streamer) handleControl(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg on %s: %s", msg.Topic(), msg.Payload())
	if err := s.Enqueue(msg.Payload()); err != nil {
		log.Printf("Ignoring control message: %v", err)
	}
}

// Enqueue decodes a JSON control message and queues it for the run loop.
func (s *Streamer) Enqueue(payload []byte) error {
	var message ControlMessage
	if err := json.Unmarshal(payload, &message); err != nil {
		return fmt.Errorf("decode control message: %w", err)
	}

	select {
	case s.commands <- message:
		return nil
	default:
		return fmt.Errorf("command queue full, dropped %q", message.Type)
	}
}

// Apply carries out a control command. It must only be called from the
// goroutine running the Controller.
func (s *Streamer) Apply(message ControlMessage) error {
	switch message.Type {
	case "restart":
		return s.controller.Restart()
	case "pause":
		s.controller.Pause()
	case "resume":
		s.controller.Resume()
	default:
		return fmt.Errorf("unknown command %q", message.Type)
	}
	return nil
}

// SendFrame advances the Controller by one tick and publishes the resulting
// frame as binary over MQTT.
func (s *Streamer) SendFrame() error {
	f, err := s.controller.Step()
	if err != nil {
		return err
	}
	s.ticks.Store(int64(s.controller.Ticks()))
	s.live.Store(int64(s.controller.LiveAnimations()))
	s.paused.Store(s.controller.Paused())

	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, s.config.Mqtt.QoS, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish frame: %w", err)
	}
	s.published.Add(1)
	return nil
}

// Run causes the Streamer to send Frames continuously until ctx is done.
func (s *Streamer) Run(ctx context.Context) error {
	publishTimer := time.NewTicker(s.config.FrameInterval())
	defer publishTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case message := <-s.commands:
			log.Printf("Applying command %q", message.Type)
			if err := s.Apply(message); err != nil {
				log.Println(err)
			}
		case <-publishTimer.C:
			if err := s.SendFrame(); err != nil {
				log.Println(err)
			}
		}
	}
}

// Stats returns the latest progress counters. It is safe to call from any
// goroutine.
func (s *Streamer) Stats() Stats {
	return Stats{
		Ticks:           s.ticks.Load(),
		LiveAnimations:  s.live.Load(),
		FramesPublished: s.published.Load(),
		Paused:          s.paused.Load(),
	}
}
