package cli

import (
	"fmt"

	"github.com/aretw0/scribe/internal/demo"
)

// RunDemo prints the named sample scenarios, or all of them when names is empty.
func RunDemo(opts Options, names []string) error {
	opts = opts.withDefaults()
	logger := createLogger(opts.Debug)

	var selected []demo.Scenario
	if len(names) == 0 {
		selected = demo.Scenarios()
	}
	for _, name := range names {
		s, err := demo.Lookup(name)
		if err != nil {
			return err
		}
		selected = append(selected, s)
	}

	p, err := newPrinter(opts)
	if err != nil {
		return err
	}

	printBanner(opts)
	for _, s := range selected {
		logger.Debug("rendering scenario", "name", s.Name)
		if err := p.print(s.Build()); err != nil {
			return fmt.Errorf("scenario %s: %w", s.Name, err)
		}
	}
	return nil
}

// ListDemos prints the available scenarios with their descriptions.
func ListDemos(opts Options) {
	opts = opts.withDefaults()
	for _, s := range demo.Scenarios() {
		fmt.Fprintf(opts.Out, "%-10s %s\n", s.Name, s.Description)
	}
}
