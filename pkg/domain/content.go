package domain

import (
	"strconv"
	"time"

	"github.com/aretw0/scribe/pkg/prompt"
)

// Content is a single post in a feed.
type Content struct {
	ID        int64     `json:"id" mapstructure:"id"`
	Content   string    `json:"content" mapstructure:"content"`
	Author    Author    `json:"author" mapstructure:"author"`
	CreatedAt time.Time `json:"createdAt" mapstructure:"createdAt"`
}

// Render writes the content block. The author is rendered on its own and indented
// one level, so nothing it writes can touch the enclosing document.
func (c Content) Render(b *prompt.Builder) {
	b.AppendLine("Content {")
	b.AppendLine(field(KeyID, strconv.FormatInt(c.ID, 10)))
	b.AppendLine(field(KeyContent, c.Content))
	b.AppendLine(field(KeyAuthor, ""))
	b.AppendLine(prompt.Indent(prompt.Isolated(c.Author).Value(), Indent))
	b.AppendLine(field(KeyCreatedAt, FormatTime(c.CreatedAt)))
	b.Append("}")
}

// FormatTime returns t as RFC 3339 in UTC, with fractional seconds only when present.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
