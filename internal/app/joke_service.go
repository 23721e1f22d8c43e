// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/sirbot/sir/internal/ports"
)

// JokeService orchestrates joke delivery use cases.
// It depends on port interfaces, not concrete implementations.
type JokeService struct {
	store   ports.JokeSource
	speaker ports.Speaker
	logger  *slog.Logger
	metrics *Metrics
}

// JokeServiceConfig contains dependencies for the joke service.
type JokeServiceConfig struct {
	Store   ports.JokeSource
	Speaker ports.Speaker
	Logger  *slog.Logger
	Metrics *Metrics
}

// NewJokeService creates a joke service with the provided dependencies.
func NewJokeService(cfg JokeServiceConfig) *JokeService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &JokeService{
		store:   cfg.Store,
		speaker: cfg.Speaker,
		logger:  logger,
		metrics: cfg.Metrics,
	}
}

// NewJoke picks a random joke and starts a two-phase delivery for it.
func (s *JokeService) NewJoke(ctx context.Context) (*Reveal, error) {
	joke, err := s.store.Pick(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to pick a joke",
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "joke served",
		slog.String("joke_id", joke.ID),
	)

	if s.metrics != nil {
		s.metrics.JokesServed.Inc()
	}

	return NewReveal(joke), nil
}

// Reveal advances a delivery to its punchline phase.
func (s *JokeService) Reveal(ctx context.Context, r *Reveal) string {
	punchline := r.Advance()

	s.logger.InfoContext(ctx, "punchline revealed",
		slog.String("joke_id", r.ID()),
	)

	if s.metrics != nil {
		s.metrics.PunchlinesRevealed.Inc()
	}

	return punchline
}

// Punchline resolves a served joke by handle and reveals its punchline.
// This is the second phase of the web flow, where the handle round-trips
// through the client between phases.
func (s *JokeService) Punchline(ctx context.Context, id string) (string, error) {
	joke, err := s.store.ByID(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "punchline requested for unknown joke",
			slog.String("joke_id", id),
			slog.Any("error", err),
		)
		return "", err
	}

	return s.Reveal(ctx, NewReveal(joke)), nil
}

// Count returns the number of jokes available.
func (s *JokeService) Count() int {
	return s.store.Count()
}

// SpeechAvailable reports whether a text-to-speech backend was detected.
func (s *JokeService) SpeechAvailable() bool {
	return s.speaker != nil && s.speaker.Available()
}

// SpeakSetup speaks the setup line. Speech failures are logged and
// counted but never interrupt delivery; the joke still lands in print.
func (s *JokeService) SpeakSetup(ctx context.Context, setup string) {
	s.speak(ctx, setup)
}

// laughDelay is the beat between the punchline and the laugh.
const laughDelay = 500 * time.Millisecond

// SpeakPunchline speaks the punchline followed by the laugh line.
func (s *JokeService) SpeakPunchline(ctx context.Context, punchline string) {
	s.speak(ctx, punchline)

	if !s.SpeechAvailable() {
		return
	}

	select {
	case <-ctx.Done():
		return
	case <-time.After(laughDelay):
	}

	if err := s.speaker.Laugh(ctx); err != nil {
		s.recordSpeechFailure(ctx, err)
	}
}

func (s *JokeService) speak(ctx context.Context, text string) {
	if !s.SpeechAvailable() {
		return
	}

	if err := s.speaker.Say(ctx, text); err != nil {
		s.recordSpeechFailure(ctx, err)
	}
}

func (s *JokeService) recordSpeechFailure(ctx context.Context, err error) {
	s.logger.WarnContext(ctx, "text-to-speech failed",
		slog.String("backend", s.speaker.Backend()),
		slog.Any("error", err),
	)

	if s.metrics != nil {
		s.metrics.SpeechFailures.Inc()
	}
}
