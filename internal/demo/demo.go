// Package demo holds the sample documents shipped with the scribe CLI.
package demo

import (
	"fmt"
	"sort"
	"time"

	"github.com/aretw0/scribe/pkg/domain"
	"github.com/aretw0/scribe/pkg/prompt"
)

// Scenario is a named sample document.
type Scenario struct {
	Name        string
	Description string
	Build       func() prompt.Prompt
}

var scenarios = []Scenario{
	{Name: "hello", Description: "Plain lines", Build: Hello},
	{Name: "objective", Description: "Markdown header and text", Build: Objective},
	{Name: "exercises", Description: "Markdown with nested item lists", Build: Exercises},
	{Name: "content", Description: "A single content with its author", Build: func() prompt.Prompt { return Render(SampleContent()) }},
	{Name: "feed", Description: "A feed of two contents", Build: func() prompt.Prompt { return Render(SampleFeed()) }},
}

// Scenarios returns every scenario in display order.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	copy(out, scenarios)
	return out
}

// Names returns the scenario names sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(scenarios))
	for _, s := range scenarios {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a scenario by name.
func Lookup(name string) (Scenario, error) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("unknown scenario %q (available: %v)", name, Names())
}

// Render composes r as the only value of a new prompt.
func Render(r prompt.Renderable) prompt.Prompt {
	return prompt.New(func(b *prompt.Builder) {
		b.Compose(r)
	})
}

// Hello emits two plain lines.
func Hello() prompt.Prompt {
	return prompt.New(func(b *prompt.Builder) {
		b.Line("Hello, world!")
		b.Line("Second line")
	})
}

// Objective is a markdown header followed by body text.
func Objective() prompt.Prompt {
	return prompt.New(func(b *prompt.Builder) {
		b.Markdown(func(m *prompt.MarkdownBuilder) {
			m.Header(1, "Objective")
			m.Text("Build a typed DSL for prompting")
		})
	})
}

// Exercises nests item lists under markdown headers.
func Exercises() prompt.Prompt {
	return prompt.New(func(b *prompt.Builder) {
		b.Markdown(func(m *prompt.MarkdownBuilder) {
			m.Header(1, "Exercise 1 (10min)")
			m.Items(func(i *prompt.ItemsBuilder) {
				i.Item("Create a builder type (i.e. `prompt.Builder`)")
				i.Item("Create a scoping function (i.e. `prompt.New`) which returns the prompt string")
			})
			m.Header(1, "Exercise 2 (10min)")
			m.Items(func(i *prompt.ItemsBuilder) {
				i.Item("Extend `prompt.Builder` with a `Markdown` scope.")
				i.Item("Create `Header`, `Text` functions to build the markdown string")
				i.Item("Create a nested `Items` scope to build the items list")
			})
		})
	})
}

// SampleTime is the creation time used by the sample contents.
var SampleTime = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

// SampleContent is a single post by @johndoe.
func SampleContent() domain.Content {
	return domain.Content{
		ID:        1,
		Content:   "Hello, world!",
		Author:    domain.Author{ID: 1, Handle: "@johndoe"},
		CreatedAt: SampleTime,
	}
}

// SampleFeed holds SampleContent and a second post by @janedoe.
func SampleFeed() domain.Feed {
	return domain.NewFeed(
		SampleContent(),
		domain.Content{
			ID:        2,
			Content:   "Hello, world 2!",
			Author:    domain.Author{ID: 2, Handle: "@janedoe"},
			CreatedAt: SampleTime,
		},
	)
}
