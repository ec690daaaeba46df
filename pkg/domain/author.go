package domain

import (
	"strconv"

	"github.com/aretw0/scribe/pkg/prompt"
)

// Author identifies who wrote a piece of content.
type Author struct {
	ID     int64  `json:"id" mapstructure:"id"`
	Handle string `json:"handle" mapstructure:"handle"`
}

// Render writes the author block.
func (a Author) Render(b *prompt.Builder) {
	b.AppendLine("Author {")
	b.AppendLine(field(KeyID, strconv.FormatInt(a.ID, 10)))
	b.AppendLine(field(KeyHandle, a.Handle))
	b.Append("}")
}

func field(key, value string) string {
	return Indent + key + ": " + value
}
