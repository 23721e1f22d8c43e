// Package jokefile loads the joke collection from a JSON file and serves
// as the adapter between the on-disk record format and domain Jokes.
// The collection is read once, validated, and never mutated afterwards,
// so a Store is safe for concurrent readers.
package jokefile

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync"

	"github.com/sirbot/sir/internal/domain"
)

// Option configures a Store.
type Option func(*Store)

// WithRand injects the randomness source used by Pick.
// Tests substitute a deterministic source to assert exact selection.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) {
		s.rng = rng
	}
}

// Store is an immutable, process-wide joke collection.
type Store struct {
	path   string
	jokes  []domain.Joke
	byID   map[string]domain.Joke
	logger *slog.Logger

	// rng guarded by mu: *rand.Rand is not safe for concurrent use and
	// web requests pick concurrently.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewStore loads the collection at path.
//
// Invalid records (missing or blank setup/punchline) are skipped with a
// warning; the load fails only when the file is missing/unparseable
// (domain.ErrLoad) or no valid record remains (domain.ErrEmptyCollection).
func NewStore(path string, logger *slog.Logger, opts ...Option) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewLoadError(path, err)
	}

	var parsed jokesFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, domain.NewLoadError(path, err)
	}

	jokes, skipped := translateRecords(parsed.Jokes, logger)
	if len(jokes) == 0 {
		return nil, domain.NewEmptyCollectionError(path, skipped)
	}

	byID := make(map[string]domain.Joke, len(jokes))
	for _, j := range jokes {
		byID[j.ID] = j
	}

	s := &Store{
		path:   path,
		jokes:  jokes,
		byID:   byID,
		logger: logger,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}

	for _, opt := range opts {
		opt(s)
	}

	logger.Info("joke collection loaded",
		slog.String("path", path),
		slog.Int("jokes", len(jokes)),
		slog.Int("skipped", skipped),
	)

	return s, nil
}

// Pick selects one joke with uniform probability over all valid entries.
func (s *Store) Pick(_ context.Context) (domain.Joke, error) {
	if len(s.jokes) == 0 {
		return domain.Joke{}, domain.NewEmptyCollectionError(s.path, 0)
	}

	s.mu.Lock()
	idx := s.rng.IntN(len(s.jokes))
	s.mu.Unlock()

	return s.jokes[idx], nil
}

// ByID resolves a joke by its opaque handle.
func (s *Store) ByID(_ context.Context, id string) (domain.Joke, error) {
	joke, ok := s.byID[id]
	if !ok {
		return domain.Joke{}, domain.NewNotFoundError("joke", id)
	}

	return joke, nil
}

// Count returns the number of valid jokes in the collection.
func (s *Store) Count() int {
	return len(s.jokes)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "jokefile"
}

// Check implements ports.HealthChecker. The collection is immutable, so
// readiness only asserts that valid jokes are present.
func (s *Store) Check(_ context.Context) error {
	if len(s.jokes) == 0 {
		return domain.NewEmptyCollectionError(s.path, 0)
	}

	return nil
}
