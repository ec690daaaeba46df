/*
Package prompt provides scoped builders for composing structured text documents ("prompts").

A document is described by nesting configuration functions. Each scope receives a builder
that exposes only the operations valid at its level, and every builder opened during one
root call writes into the same append-only Buffer, in call order.

Example usage:

	p := prompt.New(func(b *prompt.Builder) {
		b.Line("You are a helpful assistant.")
		b.Markdown(func(m *prompt.MarkdownBuilder) {
			m.Header(1, "Objective")
			m.Text("Summarize the feed below.")
			m.Items(func(i *prompt.ItemsBuilder) {
				i.Item("Keep it short")
				i.Item("Quote the author handle")
			})
		})
		b.Compose(feed)
	})

	fmt.Println(p)

Values that know how to write themselves implement Renderable and are composed with
Builder.Compose. A Renderable may compose nested values in place, or render them in an
isolated root call and splice the indented result with Indent.
*/
package prompt
