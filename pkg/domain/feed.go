package domain

import "github.com/aretw0/scribe/pkg/prompt"

// Feed is an ordered list of contents. Order is preserved when rendering and
// duplicates are allowed.
type Feed struct {
	Items []Content `json:"items" mapstructure:"items"`
}

// NewFeed returns a feed holding items in the given order.
func NewFeed(items ...Content) Feed {
	return Feed{Items: items}
}

// Len returns the number of contents in the feed.
func (f Feed) Len() int {
	return len(f.Items)
}

// Render writes the feed block. Each content is composed directly into b, then
// terminated with a line break.
func (f Feed) Render(b *prompt.Builder) {
	b.AppendLine("Feed {")
	for _, c := range f.Items {
		b.Compose(c)
		b.AppendLine("")
	}
	b.Append("}")
}
