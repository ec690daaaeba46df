package prompt

import "strings"

// Renderable is implemented by values that can write themselves into a Builder.
type Renderable interface {
	Render(b *Builder)
}

// RenderFunc adapts an ordinary function to Renderable.
type RenderFunc func(b *Builder)

// Render calls f(b).
func (f RenderFunc) Render(b *Builder) {
	f(b)
}

// Isolated renders r in its own root call, so it can neither read nor write the
// caller's Buffer.
func Isolated(r Renderable) Prompt {
	return New(func(b *Builder) {
		b.Compose(r)
	})
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Indent prefixes every line of text with prefix. Blank lines shorter than prefix
// are replaced by prefix itself. "\r\n" and "\r" count as line breaks and are
// written back as "\n".
func Indent(text, prefix string) string {
	lines := strings.Split(lineBreaks.Replace(text), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(line) < len(prefix) {
				lines[i] = prefix
			}
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
