package prompt

// ItemBullet prefixes every list entry.
const ItemBullet = " - "

// ItemsBuilder writes single-level bulleted entries.
type ItemsBuilder struct {
	buf *Buffer
}

// Item writes one entry line.
func (i *ItemsBuilder) Item(text string) *ItemsBuilder {
	i.buf.WriteLine(ItemBullet + text)
	return i
}
