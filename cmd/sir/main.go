// Package main is the entry point for sir, the dad joke robot.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sirbot/sir/internal/adapters/console"
	"github.com/sirbot/sir/internal/adapters/http"
	"github.com/sirbot/sir/internal/adapters/http/handlers"
	"github.com/sirbot/sir/internal/adapters/jokefile"
	"github.com/sirbot/sir/internal/adapters/speech"
	"github.com/sirbot/sir/internal/app"
	"github.com/sirbot/sir/internal/platform/config"
	"github.com/sirbot/sir/internal/platform/logging"
	"github.com/sirbot/sir/internal/platform/telemetry"
	"github.com/sirbot/sir/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	profile := os.Getenv("SIR_PROFILE")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if len(args) == 0 {
		printUsage(os.Stdout, cfg)
		return nil
	}

	switch args[0] {
	case "joke", "j", "tell":
		return runJoke(cfg, args[1:])
	case "serve":
		return runServe(cfg)
	case "doctor":
		return runDoctor(cfg, os.Stdout)
	default:
		printUsage(os.Stdout, cfg)
		return nil
	}
}

// runJoke tells one random joke on the terminal.
// Logs go to stderr so the joke itself owns stdout.
func runJoke(cfg *config.Config, args []string) error {
	speak := cfg.Speech.Enabled
	for _, arg := range args {
		if arg == "--speak" || arg == "-s" {
			speak = true
		}
	}

	logger := logging.NewWithWriter(logging.Config{
		Level:   "warn",
		Format:  "text",
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File:    logFileConfig(cfg),
	}, os.Stderr)
	logging.SetDefault(logger)

	store, err := jokefile.NewStore(cfg.Jokes.Path, logger)
	if err != nil {
		return err
	}

	speaker := speech.New(speech.Config{
		Backend: cfg.Speech.Backend,
		Voice:   cfg.Speech.Voice,
		Logger:  logger,
	})

	service := app.NewJokeService(app.JokeServiceConfig{
		Store:   store,
		Speaker: speaker,
		Logger:  logger,
	})

	runner := console.New(console.Config{
		Service: service,
		In:      os.Stdin,
		Out:     os.Stdout,
		Err:     os.Stderr,
	})

	return runner.Tell(context.Background(), speak)
}

// runServe runs the web shell until a shutdown signal arrives.
func runServe(cfg *config.Config) error {
	ctx := context.Background()

	logger := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File:    logFileConfig(cfg),
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	store, err := jokefile.NewStore(cfg.Jokes.Path, logger)
	if err != nil {
		return err
	}

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering jokefile health check: %w", err)
	}

	service := app.NewJokeService(app.JokeServiceConfig{
		Store: store,
		// The web shell never speaks; punchlines land through the page.
		Speaker: speech.NewNoop(),
		Logger:  logger,
		Metrics: app.NewMetrics(prometheus.DefaultRegisterer),
	})

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.NewDefaultRouterConfig(
		logger,
		&cfg.App,
		handlers.NewJokeHandler(service),
		handlers.NewPageHandler(),
		handlers.NewHealthHandler(healthRegistry, buildInfo),
	))

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// runDoctor checks the pieces a working installation needs and reports
// each one. It fails when the joke collection is unusable; a missing
// speech backend is only a note, since speech is optional.
func runDoctor(cfg *config.Config, w io.Writer) error {
	failed := false

	logger := logging.NewWithWriter(logging.Config{
		Level:  "error",
		Format: "text",
	}, os.Stderr)

	store, err := jokefile.NewStore(cfg.Jokes.Path, logger)
	if err != nil {
		failed = true

		fmt.Fprintf(w, "jokes: FAIL %v\n", err)
	} else {
		fmt.Fprintf(w, "jokes: ok (%d jokes in %s)\n", store.Count(), cfg.Jokes.Path)
	}

	speaker := speech.New(speech.Config{
		Backend: cfg.Speech.Backend,
		Voice:   cfg.Speech.Voice,
		Logger:  logger,
	})
	if speaker.Available() {
		fmt.Fprintf(w, "speech: ok (%s)\n", speaker.Backend())
	} else {
		fmt.Fprintln(w, "speech: none (install espeak or use macOS 'say')")
	}

	fmt.Fprintf(w, "config: ok (profile files under configs/, env prefix SIR_)\n")

	if failed {
		return errors.New("doctor found problems")
	}

	return nil
}

func printUsage(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Usage: sir joke [--speak|-s]")
	fmt.Fprintln(w, "       sir serve")
	fmt.Fprintln(w, "       sir doctor")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  joke, j, tell   Tell a random dad joke on the terminal")
	fmt.Fprintln(w, "  serve           Serve the joke page over HTTP")
	fmt.Fprintln(w, "  doctor          Check the installation")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --speak, -s    Tell the joke out loud using text-to-speech")

	speaker := speech.New(speech.Config{
		Backend: cfg.Speech.Backend,
		Voice:   cfg.Speech.Voice,
		Logger:  slog.New(slog.DiscardHandler),
	})
	if speaker.Available() {
		fmt.Fprintf(w, "  Text-to-speech engine detected: %s\n", speaker.Backend())
	} else {
		fmt.Fprintln(w, "  No text-to-speech engine found")
	}
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}

func logFileConfig(cfg *config.Config) logging.FileConfig {
	return logging.FileConfig{
		Enabled:    cfg.Log.File.Enabled,
		Path:       cfg.Log.File.Path,
		MaxSizeMB:  cfg.Log.File.MaxSizeMB,
		MaxBackups: cfg.Log.File.MaxBackups,
		MaxAgeDays: cfg.Log.File.MaxAgeDays,
		Compress:   cfg.Log.File.Compress,
	}
}
