package cli

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// Options holds the settings shared by the demo and render commands.
type Options struct {
	Debug  bool
	Pretty bool // render output as markdown through glamour
	Width  int  // word wrap for pretty output, 0 keeps the default
	Quiet  bool // never print the banner
	Out    io.Writer
	Fs     afero.Fs
}

func (o Options) withDefaults() Options {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	return o
}
