package app

import "github.com/sirbot/sir/internal/domain"

// Reveal is the two-phase delivery of a single joke.
//
// A fresh Reveal exposes only the setup. The punchline is returned by
// Advance and by nothing else, so callers cannot read it before the
// transition has happened.
type Reveal struct {
	joke     domain.Joke
	revealed bool
}

// NewReveal starts a delivery for the given joke in the setup phase.
func NewReveal(joke domain.Joke) *Reveal {
	return &Reveal{joke: joke}
}

// ID returns the joke's opaque handle.
func (r *Reveal) ID() string {
	return r.joke.ID
}

// Setup returns the setup line.
func (r *Reveal) Setup() string {
	return r.joke.Setup
}

// Revealed reports whether Advance has been called.
func (r *Reveal) Revealed() bool {
	return r.revealed
}

// Advance moves the delivery to the punchline phase and returns the
// punchline. Calling it again returns the same punchline.
func (r *Reveal) Advance() string {
	r.revealed = true
	return r.joke.Punchline
}
