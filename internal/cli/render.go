package cli

import (
	"fmt"

	"github.com/aretw0/scribe/internal/loader"
	"github.com/aretw0/scribe/pkg/prompt"
)

// RunRender loads each document in paths and prints its rendering.
// With a header, every rendering is preceded by a markdown heading naming the file.
func RunRender(opts Options, paths []string, header bool) error {
	opts = opts.withDefaults()
	logger := createLogger(opts.Debug)
	l := loader.New(opts.Fs, loader.WithLogger(logger))

	p, err := newPrinter(opts)
	if err != nil {
		return err
	}

	for _, path := range paths {
		r, err := l.Load(path)
		if err != nil {
			return err
		}

		out := prompt.New(func(b *prompt.Builder) {
			if header {
				b.Markdown(func(m *prompt.MarkdownBuilder) {
					m.Header(2, path)
				})
			}
			b.Compose(r)
		})

		if err := p.print(out); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		logger.Info("document rendered", "path", path, "bytes", len(out.Value()))
	}
	return nil
}
