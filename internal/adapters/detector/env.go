// Package detector inspects the process environment to choose how console
// messages are rendered.
package detector

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// FormatEnv selects the console format. "json" switches to structured logs.
const FormatEnv = "ZIX_LOG_FORMAT"

// Format is the rendering format for console messages.
type Format int

const (
	// FormatPretty renders prefixed, optionally colored lines.
	FormatPretty Format = iota
	// FormatJSON renders one JSON object per message.
	FormatJSON
)

// Environment describes how the console sink should behave.
type Environment struct {
	Format Format
	Color  bool
}

// Detect reads NO_COLOR, ZIX_LOG_FORMAT and whether stdout is a terminal.
func Detect() Environment {
	return Environment{
		Format: ResolveFormat(os.Getenv(FormatEnv)),
		Color:  ResolveColor(os.Getenv("NO_COLOR"), term.IsTerminal(int(os.Stdout.Fd()))),
	}
}

// ResolveFormat maps a ZIX_LOG_FORMAT value to a Format. Unknown values fall
// back to FormatPretty.
func ResolveFormat(value string) Format {
	if strings.EqualFold(strings.TrimSpace(value), "json") {
		return FormatJSON
	}
	return FormatPretty
}

// ResolveColor reports whether colors should be emitted.
func ResolveColor(noColor string, isTTY bool) bool {
	return noColor == "" && isTTY
}
