package anim

import (
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// A Streamer advances a set of timelines against the wall clock and
// publishes each property's current value over MQTT.
type Streamer struct {
	client    mqtt.Client
	topic     string
	frameRate float64

	mu        sync.Mutex
	timelines []*Timeline
	start     time.Time
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(client mqtt.Client, topic string, frameRate float64, timelines []*Timeline) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = topic
	s.frameRate = frameRate
	s.timelines = timelines
	s.start = time.Now()

	return s
}

// SendValues advances every timeline to the current world time and
// publishes the interpolated values.
func (s *Streamer) SendValues() {
	s.mu.Lock()
	defer s.mu.Unlock()

	worldTime := time.Since(s.start).Seconds()
	for _, tl := range s.timelines {
		p, ok := tl.Advance(worldTime)
		if !ok {
			continue
		}
		token := s.client.Publish(s.topic+"/"+tl.PropertyName(), 0, false, []byte(p.String()))
		token.Wait()
	}
}

// Status is a snapshot of one timeline, for diagnostics.
type Status struct {
	Property string  `json:"property"`
	Duration float64 `json:"duration"`
	Factor   float64 `json:"factor"`
	Complete bool    `json:"complete"`
}

// Status reports the state of every timeline.
func (s *Streamer) Status() []Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := make([]Status, len(s.timelines))
	for i, tl := range s.timelines {
		statuses[i] = Status{
			Property: tl.PropertyName(),
			Duration: tl.Duration(),
			Factor:   tl.InterpolationFactor(),
			Complete: tl.IsComplete(),
		}
	}
	return statuses
}

// Run causes the Streamer to publish values continuously.
func (s *Streamer) Run() {
	interval := time.Duration(float64(time.Second) / s.frameRate)
	publishTimer := time.NewTicker(interval)
	for {
		<-publishTimer.C
		s.SendValues()
	}
}
