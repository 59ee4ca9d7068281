package main

import (
	"flag"
	"log"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/animtx/anim"
	"github.com/matt-g-everett/animtx/api"
	"github.com/matt-g-everett/animtx/transform"
)

type app struct {
	Config   anim.Config
	Client   mqtt.Client
	Streamer *anim.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
}

func (a *app) run() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	a.Streamer.Run()
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&a.Config)
	if err != nil {
		panic(err)
	}
}

// buildTimelines turns the configured animation declarations into
// running timelines. Bad keys are logged and skipped; a bad starting
// value drops the whole animation.
func (a *app) buildTimelines(element transform.Element) []*anim.Timeline {
	timelines := make([]*anim.Timeline, 0, len(a.Config.Animations))

	for _, ac := range a.Config.Animations {
		current, err := anim.ParseProperty(ac.From)
		if err != nil {
			log.Printf("Dropping animation for %s: %v", ac.Property, err)
			continue
		}

		// AddKey only resolves the incoming key, so the seed has to be
		// resolved here or it would blend authored units against pixels
		// and radians.
		if ref, ok := current.Value.(anim.TransformRef); ok {
			if err := ref.Transform.ResolveUnits(element); err != nil {
				log.Printf("Dropping animation for %s: %v", ac.Property, err)
				continue
			}
		}

		tl := anim.NewTimeline(ac.Property, anim.OriginFromString(ac.Origin),
			current, 0, ac.Duration, ac.Iterations, ac.Alternate)

		for _, kc := range ac.Keys {
			value, err := anim.ParseProperty(kc.Value)
			if err != nil {
				log.Printf("Skipping key at %v for %s: %v", kc.Time, ac.Property, err)
				continue
			}
			tween, ok := anim.NamedTween(kc.Tween)
			if !ok {
				log.Printf("Unknown tween %q for %s, using linear", kc.Tween, ac.Property)
				tween, _ = anim.NamedTween("linear")
			}
			if err := tl.AddKey(kc.Time, value, element, tween); err != nil {
				log.Printf("Skipping key at %v for %s: %v", kc.Time, ac.Property, err)
			}
		}

		timelines = append(timelines, tl)
	}

	return timelines
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %+v", a.Config)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("animtx").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	client := mqtt.NewClient(options)

	element := transform.NewBox(
		a.Config.Element.Width, a.Config.Element.Height, a.Config.Element.FontSize,
		a.Config.Element.ViewportWidth, a.Config.Element.ViewportHeight)

	a.Client = client
	a.Streamer = anim.NewStreamer(client, a.Config.Mqtt.Topic, a.Config.FrameRate,
		a.buildTimelines(element))

	go api.NewApi(":3000", a.Streamer).Serve()

	a.run()
}
