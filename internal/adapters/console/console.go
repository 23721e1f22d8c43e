// Package console delivers jokes on a terminal: setup first, then the
// punchline once the reader presses Enter.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirbot/sir/internal/app"
)

// Config contains dependencies for a Runner.
type Config struct {
	Service *app.JokeService
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
}

// Runner runs the interactive joke flow against injected streams.
type Runner struct {
	service *app.JokeService
	in      *bufio.Reader
	out     io.Writer
	errOut  io.Writer
}

// New creates a Runner.
func New(cfg Config) *Runner {
	return &Runner{
		service: cfg.Service,
		in:      bufio.NewReader(cfg.In),
		out:     cfg.Out,
		errOut:  cfg.Err,
	}
}

// Tell delivers one random joke in two phases. With speak enabled it also
// voices each phase; if no synthesizer is installed it warns once and
// carries on in print only.
func (r *Runner) Tell(ctx context.Context, speak bool) error {
	if speak && !r.service.SpeechAvailable() {
		fmt.Fprintln(r.errOut, "Warning: No text-to-speech engine found. Install espeak or use macOS 'say' command.")
		fmt.Fprintln(r.errOut, "Continuing without speech...")

		speak = false
	}

	reveal, err := r.service.NewJoke(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "\n%s\n", reveal.Setup())

	if speak {
		r.service.SpeakSetup(ctx, reveal.Setup())
	}

	fmt.Fprint(r.out, "Press Enter for the punchline...")

	if err := r.waitForEnter(); err != nil {
		return err
	}

	punchline := r.service.Reveal(ctx, reveal)
	fmt.Fprintf(r.out, "%s\n\n", punchline)

	if speak {
		r.service.SpeakPunchline(ctx, punchline)
	}

	return nil
}

// waitForEnter blocks until a line arrives. EOF counts as a reveal so a
// piped stdin still gets the punchline.
func (r *Runner) waitForEnter() error {
	_, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading stdin: %w", err)
	}

	return nil
}
