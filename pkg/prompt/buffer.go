package prompt

import "strings"

// Buffer is the append-only text sink shared by every builder of a single root call.
// Text written to it is never removed or reordered.
type Buffer struct {
	sb strings.Builder
}

// WriteString appends text verbatim.
func (buf *Buffer) WriteString(text string) {
	buf.sb.WriteString(text)
}

// WriteLine appends text followed by a single line break.
func (buf *Buffer) WriteLine(text string) {
	buf.sb.WriteString(text)
	buf.sb.WriteByte('\n')
}

// Len returns the number of bytes written so far.
func (buf *Buffer) Len() int {
	return buf.sb.Len()
}

// String returns the accumulated text.
func (buf *Buffer) String() string {
	return buf.sb.String()
}
