package prompt_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/scribe/pkg/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AppendConcatenatesInCallOrder(t *testing.T) {
	p := prompt.New(func(b *prompt.Builder) {
		b.Append("a")
		b.AppendLine("b")
		b.Append("c")
		b.Append("d")
		b.AppendLine("")
		b.AppendLine("e")
	})

	assert.Equal(t, "ab\ncd\ne\n", p.Value())
	assert.Equal(t, p.Value(), p.String())
}

func TestNew_Empty(t *testing.T) {
	p := prompt.New(func(b *prompt.Builder) {})
	assert.True(t, p.IsZero())
	assert.Equal(t, "", p.Value())
}

func TestBuilder_LineMatchesAppendLine(t *testing.T) {
	inputs := []string{"", "Hello, world!", "with\nbreak", "  padded  "}
	for _, in := range inputs {
		viaLine := prompt.New(func(b *prompt.Builder) { b.Line(in) })
		viaAppendLine := prompt.New(func(b *prompt.Builder) { b.AppendLine(in) })
		assert.Equal(t, viaAppendLine.Value(), viaLine.Value(), "input %q", in)
	}
}

func TestBuilder_Chaining(t *testing.T) {
	p := prompt.New(func(b *prompt.Builder) {
		b.Line("Hello, world!").Line("Second line").Append("tail")
	})
	assert.Equal(t, "Hello, world!\nSecond line\ntail", p.Value())
}

func TestNew_Idempotent(t *testing.T) {
	configure := func(b *prompt.Builder) {
		b.Line("one")
		b.Markdown(func(m *prompt.MarkdownBuilder) {
			m.Header(2, "two")
			m.Items(func(i *prompt.ItemsBuilder) { i.Item("three") })
		})
	}
	assert.Equal(t, prompt.New(configure).Value(), prompt.New(configure).Value())
}

func TestNew_PanicPropagates(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		prompt.New(func(b *prompt.Builder) {
			b.Line("partial")
			panic("boom")
		})
	})
}

func TestBuild_ErrorPropagatesUnwrapped(t *testing.T) {
	sentinel := errors.New("configure failed")

	p, err := prompt.Build(func(b *prompt.Builder) error {
		b.Line("partial")
		return sentinel
	})

	require.Error(t, err)
	assert.Equal(t, sentinel, err)
	assert.True(t, p.IsZero())
}

func TestBuild_Success(t *testing.T) {
	p, err := prompt.Build(func(b *prompt.Builder) error {
		b.Line("ok")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok\n", p.Value())
}

func TestPrompt_FrozenAfterReturn(t *testing.T) {
	var leaked *prompt.Builder
	p := prompt.New(func(b *prompt.Builder) {
		b.Line("before")
		leaked = b
	})
	leaked.Line("after")

	assert.Equal(t, "before\n", p.Value())
}

func TestCompose_Recursive(t *testing.T) {
	inner := prompt.RenderFunc(func(b *prompt.Builder) { b.Append("inner") })
	outer := prompt.RenderFunc(func(b *prompt.Builder) {
		b.Append("[")
		b.Compose(inner)
		b.Append("]")
	})

	p := prompt.New(func(b *prompt.Builder) {
		b.Compose(outer).Compose(outer)
	})
	assert.Equal(t, "[inner][inner]", p.Value())
}

func TestIsolated_DoesNotSeeOuterBuffer(t *testing.T) {
	var isolated prompt.Prompt
	p := prompt.New(func(b *prompt.Builder) {
		b.Line("outer")
		isolated = prompt.Isolated(prompt.RenderFunc(func(b *prompt.Builder) {
			b.Append("inner")
		}))
	})

	assert.Equal(t, "inner", isolated.Value())
	assert.Equal(t, "outer\n", p.Value())
}

func TestIndent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single line", "a", "    a"},
		{"multi line", "a\nb", "    a\n    b"},
		{"blank line becomes prefix", "a\n\nb", "    a\n    \n    b"},
		{"long blank line kept", "a\n      \nb", "    a\n      \n    b"},
		{"trailing newline", "a\n", "    a\n    "},
		{"empty", "", "    "},
		{"crlf", "a\r\nb", "    a\n    b"},
		{"bare cr", "a\rb\r\n\rc", "    a\n    b\n    \n    c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, prompt.Indent(tt.in, "    "))
		})
	}
}

func TestBuffer_AppendOnly(t *testing.T) {
	var buf prompt.Buffer
	buf.WriteString("ab")
	buf.WriteLine("c")
	assert.Equal(t, "abc\n", buf.String())
	assert.Equal(t, 4, buf.Len())

	before := buf.String()
	buf.WriteString("d")
	assert.True(t, strings.HasPrefix(buf.String(), before))
}
