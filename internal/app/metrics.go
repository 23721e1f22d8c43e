package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts joke delivery outcomes for Prometheus scraping.
type Metrics struct {
	JokesServed        prometheus.Counter
	PunchlinesRevealed prometheus.Counter
	SpeechFailures     prometheus.Counter
}

// NewMetrics registers the delivery counters with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		JokesServed: factory.NewCounter(prometheus.CounterOpts{
			Name: "sir_jokes_served_total",
			Help: "Number of jokes handed out, across console and web.",
		}),
		PunchlinesRevealed: factory.NewCounter(prometheus.CounterOpts{
			Name: "sir_punchlines_revealed_total",
			Help: "Number of punchlines revealed.",
		}),
		SpeechFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "sir_speech_failures_total",
			Help: "Number of text-to-speech invocations that failed.",
		}),
	}
}
