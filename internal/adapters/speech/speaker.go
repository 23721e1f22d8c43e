// Package speech renders text to audio through an OS synthesizer binary.
// macOS ships say; Linux setups commonly have espeak-ng, espeak, or
// spd-say. Detection happens once at construction and the chosen backend
// is invoked as a subprocess per utterance.
package speech

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/sirbot/sir/internal/domain"
)

// Indirected for tests, which substitute a fake binary table and a
// recording runner instead of spawning real synthesizers.
var (
	lookPath = exec.LookPath
	runCmd   = func(ctx context.Context, name string, args ...string) error {
		return exec.CommandContext(ctx, name, args...).Run()
	}
)

// Backends tried in order when detection is automatic.
var autoBackends = []string{"espeak-ng", "espeak", "spd-say"}

// Config controls backend selection and voice.
type Config struct {
	// Backend forces a specific synthesizer binary. Empty or "auto"
	// selects say on macOS and the first espeak-family binary found
	// elsewhere.
	Backend string

	// Voice is passed to say; other backends use their default voice.
	Voice string

	Logger *slog.Logger
}

// Speaker speaks through a detected synthesizer binary.
// The zero value is unusable; construct with New.
type Speaker struct {
	backend string
	voice   string
	logger  *slog.Logger
}

// New detects a synthesizer and returns a Speaker bound to it.
// A Speaker with no detected backend is still valid: Available reports
// false and Say returns domain.ErrSpeech.
func New(cfg Config) *Speaker {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	backend := detect(cfg.Backend)
	if backend == "" {
		logger.Debug("no text-to-speech backend detected")
	} else {
		logger.Debug("text-to-speech backend detected",
			slog.String("backend", backend),
		)
	}

	return &Speaker{
		backend: backend,
		voice:   cfg.Voice,
		logger:  logger,
	}
}

func detect(requested string) string {
	if requested != "" && requested != "auto" {
		if _, err := lookPath(requested); err != nil {
			return ""
		}

		return requested
	}

	if runtime.GOOS == "darwin" {
		if _, err := lookPath("say"); err == nil {
			return "say"
		}
	}

	for _, candidate := range autoBackends {
		if _, err := lookPath(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// Available reports whether a usable backend was detected.
func (s *Speaker) Available() bool {
	return s.backend != ""
}

// Backend returns the detected backend name, empty when none.
func (s *Speaker) Backend() string {
	return s.backend
}

// Say speaks text and blocks until playback finishes.
func (s *Speaker) Say(ctx context.Context, text string) error {
	if s.backend == "" {
		return domain.NewSpeechError("", errors.New("no text-to-speech backend detected"))
	}

	if err := runCmd(ctx, s.backend, s.args(text)...); err != nil {
		return domain.NewSpeechError(s.backend, err)
	}

	return nil
}

// Laugh speaks the fixed laugh line.
func (s *Speaker) Laugh(ctx context.Context) error {
	return s.Say(ctx, domain.LaughLine)
}

func (s *Speaker) args(text string) []string {
	switch s.backend {
	case "say":
		if s.voice != "" {
			return []string{"-v", s.voice, text}
		}

		return []string{text}
	case "spd-say":
		// -w blocks until the utterance is done, matching say and espeak.
		return []string{"-w", text}
	default:
		return []string{text}
	}
}
