/*
Package scribe is a small structured-text composition engine for building prompts.

A document is described by nesting scoped builders. The root scope (prompt.New) owns a
single append-only buffer; markdown and item scopes opened inside it borrow the same
buffer, so writes always land in document order. Domain values (authors, contents and
feeds) implement prompt.Renderable and are composed into the active builder.

# Packages

  - pkg/prompt: Builder, MarkdownBuilder, ItemsBuilder, Prompt and the Renderable protocol.
  - pkg/domain: Author, Content and Feed with their renderings.

# Usage

	package main

	import (
		"fmt"
		"time"

		"github.com/aretw0/scribe/pkg/domain"
		"github.com/aretw0/scribe/pkg/prompt"
	)

	func main() {
		feed := domain.NewFeed(domain.Content{
			ID:        1,
			Content:   "Hello, world!",
			Author:    domain.Author{ID: 1, Handle: "@johndoe"},
			CreatedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		})

		p := prompt.New(func(b *prompt.Builder) {
			b.Markdown(func(m *prompt.MarkdownBuilder) {
				m.Header(1, "Task")
				m.Text("Summarize the feed.")
			})
			b.Compose(feed)
		})

		fmt.Println(p)
	}

The scribe command line tool (cmd/scribe) prints the built-in samples and renders
author, content and feed documents stored as YAML or JSON.
*/
package scribe
