package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewLoadError("dad_jokes.json", cause)

	require.Error(t, err)
	assert.True(t, IsLoad(err))
	assert.Contains(t, err.Error(), "dad_jokes.json")
	assert.Contains(t, err.Error(), "permission denied")

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "dad_jokes.json", loadErr.Path)
}

func TestLoadError_NoCause(t *testing.T) {
	err := NewLoadError("jokes.json", nil)
	assert.True(t, IsLoad(err))
	assert.Contains(t, err.Error(), "jokes.json")
}

func TestSchemaError(t *testing.T) {
	err := NewSchemaError(3, "punchline is empty")

	assert.True(t, IsSchema(err))
	assert.False(t, IsLoad(err))
	assert.Contains(t, err.Error(), "record 3")
	assert.Contains(t, err.Error(), "punchline is empty")
}

func TestEmptyCollectionError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "no records at all",
			err:      NewEmptyCollectionError("empty.json", 0),
			contains: `no jokes in "empty.json"`,
		},
		{
			name:     "all records skipped",
			err:      NewEmptyCollectionError("bad.json", 4),
			contains: "4 invalid records skipped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, IsEmptyCollection(tt.err))
			assert.Contains(t, tt.err.Error(), tt.contains)
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("joke", "abc-123")

	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), `joke with id "abc-123" not found`)

	err = NewNotFoundError("joke", "")
	assert.Equal(t, "joke not found", err.Error())
}

func TestSpeechError(t *testing.T) {
	err := NewSpeechError("espeak", errors.New("exit status 1"))

	assert.True(t, IsSpeech(err))
	assert.Contains(t, err.Error(), "espeak")
	assert.Contains(t, err.Error(), "exit status 1")
}

func TestSentinels_DistinguishViaWrapping(t *testing.T) {
	// Wrapped errors keep their sentinel identity through fmt wrapping.
	wrapped := fmt.Errorf("telling joke: %w", NewEmptyCollectionError("x.json", 0))

	assert.True(t, IsEmptyCollection(wrapped))
	assert.False(t, IsNotFound(wrapped))
	assert.False(t, IsSpeech(wrapped))
}
