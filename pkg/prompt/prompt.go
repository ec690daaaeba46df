package prompt

// Prompt is the immutable text produced by a root composition call.
type Prompt struct {
	value string
}

// Value returns the composed text.
func (p Prompt) Value() string {
	return p.value
}

// String implements fmt.Stringer.
func (p Prompt) String() string {
	return p.value
}

// IsZero reports whether p holds no text.
func (p Prompt) IsZero() bool {
	return p.value == ""
}

// New allocates a fresh Buffer, runs configure against a Builder over it and returns
// the frozen result. A panic raised by configure is not recovered, so no partial
// Prompt is ever returned.
func New(configure func(b *Builder)) Prompt {
	buf := &Buffer{}
	configure(&Builder{buf: buf})
	return Prompt{value: buf.String()}
}

// Build is like New for configuration functions that can fail. The error returned by
// configure is passed through unchanged and the partial output is discarded.
func Build(configure func(b *Builder) error) (Prompt, error) {
	buf := &Buffer{}
	if err := configure(&Builder{buf: buf}); err != nil {
		return Prompt{}, err
	}
	return Prompt{value: buf.String()}, nil
}
