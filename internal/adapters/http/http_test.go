package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirbot/sir/internal/adapters/http/handlers"
	"github.com/sirbot/sir/internal/adapters/jokefile"
	"github.com/sirbot/sir/internal/app"
	"github.com/sirbot/sir/internal/platform/config"
	"github.com/sirbot/sir/internal/ports"
)

// fullEngine wires the complete router the way the serve command does.
func fullEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "jokes.json")
	content := `{"jokes": [{"setup": "Why did the scarecrow win an award?", "punchline": "He was outstanding in his field."}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := jokefile.NewStore(path, logger)
	require.NoError(t, err)

	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(store))

	service := app.NewJokeService(app.JokeServiceConfig{
		Store:  store,
		Logger: logger,
	})

	engine := gin.New()
	SetupRouter(engine, NewDefaultRouterConfig(
		logger,
		&config.AppConfig{Name: "sir", Version: "test", Environment: "test"},
		handlers.NewJokeHandler(service),
		handlers.NewPageHandler(),
		handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "", "")),
	))

	return engine
}

func TestRouter_ServesFrontEnd(t *testing.T) {
	engine := fullEngine(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Dad Joke Robot")

	// The page itself never carries joke content.
	assert.NotContains(t, w.Body.String(), "He was outstanding in his field.")
}

func TestRouter_JokeRoundTrip(t *testing.T) {
	engine := fullEngine(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/jokes/new", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var joke handlers.NewJokeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &joke))
	assert.Equal(t, "Why did the scarecrow win an award?", joke.Setup)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/jokes/"+joke.ID+"/punchline", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var reveal handlers.PunchlineResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reveal))
	assert.Equal(t, "He was outstanding in his field.", reveal.Punchline)
}

func TestRouter_HealthEndpoints(t *testing.T) {
	engine := fullEngine(t)

	for _, path := range []string{"/-/live", "/-/ready", "/-/build", "/-/metrics"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestServer_New(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(&config.ServerConfig{
		Port:           5000,
		Host:           "127.0.0.1",
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    2 * time.Minute,
		MaxRequestSize: 1 << 20,
	}, logger)

	assert.Equal(t, "127.0.0.1:5000", srv.Addr())
	assert.NotNil(t, srv.Engine())
}
