// Package style holds the colors and icons shared by the terminal surfaces of ponder.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
	Arrow   = "→"
)

// StatusIcon returns the icon of an artifact status name.
func StatusIcon(status string) string {
	switch status {
	case "present":
		return Check
	case "pending":
		return Dot
	case "absent":
		return Circle
	default:
		return Tilde
	}
}
