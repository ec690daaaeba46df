package domain

// Indent is the prefix used for fields inside a rendered block.
const Indent = "    "

// Field keys shared by the rendered blocks and the document decoders.
const (
	KeyID        = "id"
	KeyHandle    = "handle"
	KeyContent   = "content"
	KeyAuthor    = "author"
	KeyCreatedAt = "createdAt"
	KeyItems     = "items"
)
