package domain

import "errors"

// ErrUnsupportedFormat is returned when a document file extension is not YAML or JSON.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ErrEmptyDocument is returned when a document contains no renderable value.
var ErrEmptyDocument = errors.New("empty document")

// ErrNonIntegral is returned when a fractional number is decoded into an integer field.
var ErrNonIntegral = errors.New("non-integral number for integer field")

// ErrUnknownKind is returned when a document declares a kind other than author, content or feed.
var ErrUnknownKind = errors.New("unknown document kind")
