package domain

// Joke represents a setup/punchline pair, the atomic unit of content.
// This is a domain entity - it has no knowledge of external systems.
type Joke struct {
	// ID is an opaque handle assigned when the collection is loaded.
	// It identifies a joke for the two-step web reveal and has no
	// meaning beyond the lifetime of the loaded collection.
	ID string

	// Setup is the question or lead-in, revealed first.
	Setup string

	// Punchline is the payoff, revealed only after an explicit trigger.
	Punchline string
}

// LaughLine is the fixed line spoken (and shown) after a punchline.
const LaughLine = "Ha ha ha ha! That's a good one!"
