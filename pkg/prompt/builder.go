package prompt

// Builder is the root composition scope. It writes raw text and renderable values
// into its Buffer and opens nested markdown scopes over the same Buffer.
type Builder struct {
	buf *Buffer
}

// Append writes text without a trailing line break.
func (b *Builder) Append(text string) *Builder {
	b.buf.WriteString(text)
	return b
}

// AppendLine writes text followed by exactly one line break.
func (b *Builder) AppendLine(text string) *Builder {
	b.buf.WriteLine(text)
	return b
}

// Line emits text as a line. It is equivalent to AppendLine.
func (b *Builder) Line(text string) *Builder {
	return b.AppendLine(text)
}

// Compose writes the textual representation of r into the Buffer.
// Renderables may call Compose on the same builder for nested values.
func (b *Builder) Compose(r Renderable) *Builder {
	r.Render(b)
	return b
}

// Markdown opens a markdown scope writing into this builder's Buffer.
// Everything configure writes lands at the current position of the document.
func (b *Builder) Markdown(configure func(m *MarkdownBuilder)) {
	configure(&MarkdownBuilder{buf: b.buf})
}
