package prompt

import "strings"

// HeaderMarker is the character repeated to form a markdown heading.
const HeaderMarker = "#"

// MarkdownBuilder adds headers and body text. It borrows the Buffer of the Builder
// that opened it.
type MarkdownBuilder struct {
	buf *Buffer
}

// Header writes a heading line: level markers, a space, then text.
// Levels below 1 are clamped to 1 so the marker is never empty.
func (m *MarkdownBuilder) Header(level int, text string) *MarkdownBuilder {
	if level < 1 {
		level = 1
	}
	m.buf.WriteLine(strings.Repeat(HeaderMarker, level) + " " + text)
	return m
}

// Text writes text as a line, unescaped.
func (m *MarkdownBuilder) Text(text string) *MarkdownBuilder {
	m.buf.WriteLine(text)
	return m
}

// Items opens a bulleted list scope over the same Buffer.
func (m *MarkdownBuilder) Items(configure func(i *ItemsBuilder)) {
	configure(&ItemsBuilder{buf: m.buf})
}
