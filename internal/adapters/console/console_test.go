package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirbot/sir/internal/adapters/jokefile"
	"github.com/sirbot/sir/internal/adapters/speech"
	"github.com/sirbot/sir/internal/app"
)

func singleJokeService(t *testing.T) *app.JokeService {
	t.Helper()

	path := filepath.Join(t.TempDir(), "jokes.json")
	content := `{"jokes": [{"setup": "Why can't your nose be 12 inches long?", "punchline": "Because then it would be a foot!"}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := jokefile.NewStore(path, logger)
	require.NoError(t, err)

	return app.NewJokeService(app.JokeServiceConfig{
		Store:   store,
		Speaker: speech.NewNoop(),
		Logger:  logger,
	})
}

func TestTell_TwoPhaseDelivery(t *testing.T) {
	var out, errOut bytes.Buffer
	runner := New(Config{
		Service: singleJokeService(t),
		In:      strings.NewReader("\n"),
		Out:     &out,
		Err:     &errOut,
	})

	require.NoError(t, runner.Tell(context.Background(), false))

	output := out.String()

	setupIdx := strings.Index(output, "Why can't your nose be 12 inches long?")
	promptIdx := strings.Index(output, "Press Enter for the punchline...")
	punchlineIdx := strings.Index(output, "Because then it would be a foot!")

	require.GreaterOrEqual(t, setupIdx, 0)
	require.GreaterOrEqual(t, promptIdx, 0)
	require.GreaterOrEqual(t, punchlineIdx, 0)

	// Setup, then prompt, then punchline.
	assert.Less(t, setupIdx, promptIdx)
	assert.Less(t, promptIdx, punchlineIdx)

	assert.Empty(t, errOut.String())
}

func TestTell_EOFStillReveals(t *testing.T) {
	var out, errOut bytes.Buffer
	runner := New(Config{
		Service: singleJokeService(t),
		In:      strings.NewReader(""),
		Out:     &out,
		Err:     &errOut,
	})

	require.NoError(t, runner.Tell(context.Background(), false))
	assert.Contains(t, out.String(), "Because then it would be a foot!")
}

func TestTell_SpeakWithoutBackendWarnsAndContinues(t *testing.T) {
	var out, errOut bytes.Buffer
	runner := New(Config{
		Service: singleJokeService(t),
		In:      strings.NewReader("\n"),
		Out:     &out,
		Err:     &errOut,
	})

	require.NoError(t, runner.Tell(context.Background(), true))

	assert.Contains(t, errOut.String(), "No text-to-speech engine found")
	assert.Contains(t, errOut.String(), "Continuing without speech...")
	assert.Contains(t, out.String(), "Because then it would be a foot!")
}
