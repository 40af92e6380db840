package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Palette
// =============================================================================

// Indexed terminal colors. The violet accent is the product color; the
// rest stay close to the default ANSI ramp so output reads fine on both
// dark and light backgrounds.
var (
	colorAccent = lipgloss.Color("141")
	colorOK     = lipgloss.Color("78")
	colorWarn   = lipgloss.Color("214")
	colorFail   = lipgloss.Color("203")
	colorCmd    = lipgloss.Color("81")
	colorText   = lipgloss.Color("252")
	colorSubtle = lipgloss.Color("246")
	colorFaint  = lipgloss.Color("241")
)

// =============================================================================
// Styles
// =============================================================================

// Styles shared with the variant picker and the spinner.
var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleDim       = lipgloss.NewStyle().Foreground(colorFaint)
)

var (
	styleOK      = lipgloss.NewStyle().Foreground(colorOK)
	styleWarn    = lipgloss.NewStyle().Foreground(colorWarn)
	styleFail    = lipgloss.NewStyle().Foreground(colorFail)
	styleInfo    = lipgloss.NewStyle().Foreground(colorSubtle)
	styleValue   = lipgloss.NewStyle().Foreground(colorText)
	styleCommand = lipgloss.NewStyle().Foreground(colorCmd)
	styleSpinner = lipgloss.NewStyle().Foreground(colorAccent)
)

// =============================================================================
// Status Output
// =============================================================================

// statusLine prints a message behind a styled one-character icon.
func statusLine(icon string, style lipgloss.Style, msg string) {
	fmt.Println(style.Render(icon) + " " + msg)
}

func printSuccess(format string, args ...any) {
	statusLine("✓", styleOK, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	statusLine("✗", styleFail, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	statusLine("!", styleWarn, styleWarn.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	statusLine("›", styleInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// =============================================================================
// Result Output
// =============================================================================

// printFile prints the path of a written artifact.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + styleValue.Render(path))
}

// printKeyValue prints an aligned label/value pair.
func printKeyValue(key, value string) {
	label := lipgloss.NewStyle().Foreground(colorSubtle).Width(12)
	fmt.Println(label.Render(key) + " " + styleValue.Render(value))
}

// printStats prints one line of layout counts plus the cache status.
// Zero counts are omitted so an empty graph doesn't print "0 nodes".
func printStats(nodeCount, edgeCount, containerCount int, cached bool) {
	counts := []struct {
		n    int
		unit string
	}{
		{nodeCount, "nodes"},
		{edgeCount, "edges"},
		{containerCount, "containers"},
	}

	parts := make([]string, 0, len(counts)+1)
	for _, c := range counts {
		if c.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", c.n, c.unit))
		}
	}
	if cached {
		parts = append(parts, styleOK.Render("cached"))
	} else {
		parts = append(parts, styleInfo.Render("fresh"))
	}

	fmt.Println("  " + StyleDim.Render(strings.Join(parts, " · ")))
}

// printNextStep suggests the follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
