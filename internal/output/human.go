package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ALT-F4-LLC/trailkit/internal/render"
)

// level is the severity of a human-readable line.
type level int

const (
	levelSuccess level = iota
	levelInfo
	levelWarn
	levelError
)

var levelStyles = map[level]struct {
	glyph string
	color string
	label string
}{
	levelSuccess: {"✔", "2", ""},
	levelInfo:    {"ℹ", "8", ""},
	levelWarn:    {"⚠", "3", "Warning:"},
	levelError:   {"✘", "1", "Error:"},
}

// hints point the user at the command that resolves a failure.
var hints = map[ErrorCode]string{
	ErrValidation: "Run the command with --help to see its accepted flags.",
	ErrMalformed:  "Each language file must be one JSON object with trailId, name, description, and media.",
	ErrOutOfRange: "Run 'trailkit media list' to see the current positions.",
	ErrTrackParse: "The file must be GPX 1.0 or 1.1 XML.",
}

// writeLine writes msg prefixed by the glyph and label of lv. Without colors
// the glyph is dropped and only the label is kept.
func writeLine(w io.Writer, lv level, msg string) {
	st := levelStyles[lv]
	if !render.ColorsEnabled() {
		if st.label != "" {
			msg = st.label + " " + msg
		}
		fmt.Fprintln(w, msg)
		return
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(st.color))
	parts := []string{style.Bold(lv >= levelWarn).Render(st.glyph)}
	if st.label != "" {
		parts = append(parts, style.Bold(true).Render(st.label))
	}
	if lv == levelInfo {
		msg = style.Render(msg)
	}
	parts = append(parts, msg)
	fmt.Fprintln(w, strings.Join(parts, " "))
}

// writeHumanSuccess writes a human-readable success message to w.
// Single-line messages get a checkmark prefix; multi-line content (cards,
// tables, plots, previews) is printed as-is.
func writeHumanSuccess(w io.Writer, message string) {
	if message == "" {
		return
	}
	if strings.Contains(message, "\n") {
		fmt.Fprintln(w, message)
		return
	}
	writeLine(w, levelSuccess, message)
}

// writeHumanError writes err to w, followed by a hint for codes that have one.
func writeHumanError(w io.Writer, err error, code ErrorCode, quiet bool) {
	writeLine(w, levelError, err.Error())
	if hint, ok := hints[code]; ok && !quiet {
		writeLine(w, levelInfo, hint)
	}
}
