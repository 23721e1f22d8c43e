package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sir", cfg.App.Name)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Log.File.Enabled)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, DefaultJokesPath, cfg.Jokes.Path)
	assert.False(t, cfg.Speech.Enabled)
	assert.Equal(t, "auto", cfg.Speech.Backend)
	assert.Equal(t, DefaultSpeechVoice, cfg.Speech.Voice)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SIR_SERVER_PORT", "8123")
	t.Setenv("SIR_JOKES_PATH", "/tmp/other_jokes.json")
	t.Setenv("SIR_SPEECH_VOICE", "Albert")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8123, cfg.Server.Port)
	assert.Equal(t, "/tmp/other_jokes.json", cfg.Jokes.Path)
	assert.Equal(t, "Albert", cfg.Speech.Voice)
}

func TestLoad_MissingProfileFileIsFine(t *testing.T) {
	cfg, err := Load("does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, "sir", cfg.App.Name)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(_ *Config) {},
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port",
		},
		{
			name:    "bad environment",
			mutate:  func(c *Config) { c.App.Environment = "staging" },
			wantErr: "app.environment",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "log.format",
		},
		{
			name:    "jokes path required",
			mutate:  func(c *Config) { c.Jokes.Path = "" },
			wantErr: "jokes.path",
		},
		{
			name:    "telemetry endpoint required when enabled",
			mutate:  func(c *Config) { c.Telemetry.Enabled = true },
			wantErr: "telemetry.endpoint",
		},
		{
			name: "log file path required when enabled",
			mutate: func(c *Config) {
				c.Log.File.Enabled = true
				c.Log.File.Path = ""
			},
			wantErr: "log.file.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
