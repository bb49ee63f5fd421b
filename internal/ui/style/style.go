// Package style provides the zix palette and the markers used in listings.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Snowflake = lipgloss.Color("#7EBAE4")
	Slate     = lipgloss.Color("#667085")
	Green     = lipgloss.Color("#22A06B")
	Red       = lipgloss.Color("#D93025")
	Yellow    = lipgloss.Color("#F59E0B")
)

// Markers.
const (
	Current = "*"
	Bullet  = "-"
)
