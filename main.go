package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/blueprint/api"
	"github.com/matt-g-everett/blueprint/stream"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v2"
)

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Streamer *stream.Streamer
	Api      *api.Api
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Streamer.Subscribe(); err != nil {
		log.Printf("Subscribe to %s failed: %v", a.Config.Mqtt.Topics.Control, err)
	}
}

func (a *app) run(ctx context.Context) error {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer a.Client.Disconnect(250)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.Streamer.Run(ctx) })
	g.Go(func() error { return a.Api.Serve(ctx) })
	return g.Wait()
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&a.Config)
	if err != nil {
		panic(err)
	}

	a.Config.SetDefaults()
	if err := a.Config.Validate(); err != nil {
		log.Fatalf("Invalid config %s: %v", configPath, err)
	}
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Canvas: %dx%d at %v fps", a.Config.Canvas.Width, a.Config.Canvas.Height, a.Config.Animation.FrameRate)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("blueprint").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	rng := rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
	controller, err := stream.NewController(a.Config, rng)
	if err != nil {
		log.Fatalf("Controller: %v", err)
	}
	a.Streamer = stream.NewStreamer(a.Config, a.Client, controller)
	a.Api = api.NewApi(a.Config.HTTP.Addr, a.Streamer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("Stopped")
}
