// Package output builds termenv outputs that honor NO_COLOR and plain sinks.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for a terminal sink.
// NO_COLOR forces Ascii; otherwise the terminal capabilities are detected.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output for w. When color is false every style
// degrades to plain text.
func New(w io.Writer, color bool) *termenv.Output {
	if w == nil {
		w = os.Stdout
	}

	profile := termenv.Ascii
	if color {
		profile = ColorProfile()
	}

	return termenv.NewOutput(w,
		termenv.WithProfile(profile),
		termenv.WithTTY(color),
	)
}
