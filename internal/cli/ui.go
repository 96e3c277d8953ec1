package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette (ANSI 256).
var (
	colorAccent  = lipgloss.Color("36")
	colorOK      = lipgloss.Color("35")
	colorWarn    = lipgloss.Color("220")
	colorBad     = lipgloss.Color("167")
	colorCommand = lipgloss.Color("75")
	colorText    = lipgloss.Color("255")
	colorGray    = lipgloss.Color("245")
	colorDim     = lipgloss.Color("240")
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleNumber    = lipgloss.NewStyle().Foreground(colorAccent)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorText)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorWarn)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorWarn)
	styleCommand     = lipgloss.NewStyle().Foreground(colorCommand)
)

const (
	iconWarning = "!"
	iconArrow   = "→"
)

// stdout receives status lines. Documents written with "-o -" bypass it.
var stdout io.Writer = os.Stdout

// marker prefixes a status line.
type marker struct {
	icon  string
	style lipgloss.Style
	text  lipgloss.Style
}

var (
	markSuccess = marker{"✓", lipgloss.NewStyle().Foreground(colorOK), lipgloss.NewStyle()}
	markError   = marker{"✗", lipgloss.NewStyle().Foreground(colorBad), lipgloss.NewStyle()}
	markWarning = marker{iconWarning, styleIconWarning, StyleWarning}
	markInfo    = marker{"›", lipgloss.NewStyle().Foreground(colorGray), lipgloss.NewStyle()}
)

func (m marker) printf(format string, args ...any) {
	fmt.Fprintln(stdout, m.style.Render(m.icon)+" "+m.text.Render(fmt.Sprintf(format, args...)))
}

func printSuccess(format string, args ...any) { markSuccess.printf(format, args...) }
func printError(format string, args ...any)   { markError.printf(format, args...) }
func printWarning(format string, args ...any) { markWarning.printf(format, args...) }
func printInfo(format string, args ...any)    { markInfo.printf(format, args...) }

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path a result was written to.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printStats prints element counts and whether the result came from the
// cache. Zero counts are left out.
func printStats(glyphs, arcs int, cached bool) {
	var parts []string
	if glyphs > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d glyphs", glyphs)))
	}
	if arcs > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d arcs", arcs)))
	}
	if cached {
		parts = append(parts, markSuccess.style.Render("cached"))
	} else {
		parts = append(parts, markInfo.style.Render("fresh"))
	}
	fmt.Fprintln(stdout, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}
