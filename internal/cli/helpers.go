package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/scribe"
	"github.com/aretw0/scribe/internal/logging"
	"github.com/aretw0/scribe/internal/presentation/tui"
	"github.com/aretw0/scribe/pkg/prompt"
	"golang.org/x/term"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout output).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printBanner(opts Options) {
	if opts.Quiet || !isTerminal(opts.Out) {
		return
	}
	tui.PrintBanner(opts.Out, scribe.Version)
}

// printer writes prompts to the configured output, separated by a blank line.
type printer struct {
	out    io.Writer
	render func(string) (string, error)
	count  int
}

func newPrinter(opts Options) (*printer, error) {
	p := &printer{out: opts.Out}
	if opts.Pretty {
		render, err := tui.NewRenderer(opts.Width)
		if err != nil {
			return nil, err
		}
		p.render = render
	}
	return p, nil
}

func (p *printer) print(pr prompt.Prompt) error {
	text := pr.Value()
	if p.render != nil {
		rendered, err := p.render(text)
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		text = rendered
	}
	if p.count > 0 {
		fmt.Fprintln(p.out)
	}
	p.count++
	_, err := fmt.Fprintln(p.out, text)
	return err
}
