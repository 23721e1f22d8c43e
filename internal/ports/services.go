// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application
// layer to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrSpeech, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/sirbot/sir/internal/domain"
)

// JokeSource provides read-only access to a loaded joke collection.
// The collection is immutable after load, so implementations are safe
// for concurrent readers without locking.
type JokeSource interface {
	// Pick selects one joke with uniform probability over all valid
	// entries. Returns domain.ErrEmptyCollection if no jokes are loaded.
	Pick(ctx context.Context) (domain.Joke, error)

	// ByID resolves a joke by its opaque handle.
	// Returns domain.ErrNotFound for an unknown handle.
	ByID(ctx context.Context, id string) (domain.Joke, error)

	// Count returns the number of valid jokes in the collection.
	Count() int
}

// Speaker renders text to audio through an external synthesizer.
// Implementations must be safe to call when no backend exists; failures
// surface as domain.ErrSpeech and the caller decides how to recover.
type Speaker interface {
	// Say speaks the given text and blocks until playback finishes.
	Say(ctx context.Context, text string) error

	// Laugh speaks the fixed laugh line.
	Laugh(ctx context.Context) error

	// Available reports whether a usable backend was detected.
	Available() bool

	// Backend returns the detected backend name, empty when none.
	Backend() string
}
