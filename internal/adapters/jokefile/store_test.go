package jokefile

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirbot/sir/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeJokes(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "jokes.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const sampleJokes = `{
	"jokes": [
		{"setup": "Why can't your nose be 12 inches long?", "punchline": "Because then it would be a foot!"},
		{"setup": "What do you call a fish with no eyes?", "punchline": "A fsh."},
		{"setup": "Why did the scarecrow win an award?", "punchline": "He was outstanding in his field."}
	]
}`

func TestNewStore_LoadsValidCollection(t *testing.T) {
	path := writeJokes(t, sampleJokes)

	store, err := NewStore(path, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 3, store.Count())
}

func TestNewStore_MissingFile(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "nope.json"), discardLogger())

	require.Error(t, err)
	assert.True(t, domain.IsLoad(err))
}

func TestNewStore_MalformedJSON(t *testing.T) {
	path := writeJokes(t, `{"jokes": [`)

	_, err := NewStore(path, discardLogger())

	require.Error(t, err)
	assert.True(t, domain.IsLoad(err))
}

func TestNewStore_SkipsInvalidRecords(t *testing.T) {
	path := writeJokes(t, `{
		"jokes": [
			{"setup": "Why can't your nose be 12 inches long?", "punchline": "Because then it would be a foot!"},
			{"setup": "", "punchline": "orphan punchline"},
			{"setup": "   ", "punchline": "blank setup"},
			{"setup": "no punchline"}
		]
	}`)

	store, err := NewStore(path, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, store.Count())
}

func TestNewStore_AllRecordsInvalid(t *testing.T) {
	path := writeJokes(t, `{"jokes": [{"setup": "", "punchline": ""}]}`)

	_, err := NewStore(path, discardLogger())

	require.Error(t, err)
	assert.True(t, domain.IsEmptyCollection(err))
}

func TestNewStore_EmptyCollection(t *testing.T) {
	path := writeJokes(t, `{"jokes": []}`)

	_, err := NewStore(path, discardLogger())

	require.Error(t, err)
	assert.True(t, domain.IsEmptyCollection(err))
}

func TestStore_Pick_Deterministic(t *testing.T) {
	path := writeJokes(t, sampleJokes)

	seeded := rand.New(rand.NewPCG(1, 2))
	store, err := NewStore(path, discardLogger(), WithRand(seeded))
	require.NoError(t, err)

	// Replay the same seed against the loaded slice to know which joke
	// Pick must return.
	replay := rand.New(rand.NewPCG(1, 2))
	want := store.jokes[replay.IntN(store.Count())]

	got, err := store.Pick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_Pick_CoversAllJokes(t *testing.T) {
	path := writeJokes(t, sampleJokes)

	store, err := NewStore(path, discardLogger(), WithRand(rand.New(rand.NewPCG(7, 7))))
	require.NoError(t, err)

	seen := make(map[string]int)
	const draws = 10000
	for range draws {
		joke, err := store.Pick(context.Background())
		require.NoError(t, err)
		seen[joke.ID]++
	}

	require.Len(t, seen, store.Count())

	// Uniform selection over 3 jokes and 10k draws should keep every
	// joke within a generous band around draws/3.
	for id, count := range seen {
		assert.InDelta(t, draws/3, count, float64(draws)/10, "joke %s drawn %d times", id, count)
	}
}

func TestStore_ByID(t *testing.T) {
	path := writeJokes(t, sampleJokes)

	store, err := NewStore(path, discardLogger())
	require.NoError(t, err)

	picked, err := store.Pick(context.Background())
	require.NoError(t, err)

	found, err := store.ByID(context.Background(), picked.ID)
	require.NoError(t, err)
	assert.Equal(t, picked, found)
}

func TestStore_ByID_Unknown(t *testing.T) {
	path := writeJokes(t, sampleJokes)

	store, err := NewStore(path, discardLogger())
	require.NoError(t, err)

	_, err = store.ByID(context.Background(), "not-a-handle")

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestStore_HandlesAreUnique(t *testing.T) {
	path := writeJokes(t, sampleJokes)

	store, err := NewStore(path, discardLogger())
	require.NoError(t, err)

	seen := make(map[string]struct{}, store.Count())
	for _, joke := range store.jokes {
		assert.NotEmpty(t, joke.ID)
		_, dup := seen[joke.ID]
		assert.False(t, dup, "duplicate handle %s", joke.ID)
		seen[joke.ID] = struct{}{}
	}
}

func TestStore_HealthCheck(t *testing.T) {
	path := writeJokes(t, sampleJokes)

	store, err := NewStore(path, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, "jokefile", store.Name())
	assert.NoError(t, store.Check(context.Background()))
}
