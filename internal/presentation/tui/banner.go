package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"  ___  ___ _ __(_) |__   ___", "#818cf8"},
	{" / __|/ __| '__| | '_ \\ / _ \\", "#a78bfa"},
	{" \\__ \\ (__| |  | | |_) |  __/", "#c084fc"},
	{" |___/\\___|_|  |_|_.__/ \\___|", "#f472b6"},
}

// PrintBanner writes the scribe banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()

	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
