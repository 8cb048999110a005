package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
)

const (
	maxCardWidth  = 96
	maxCellWidth  = 36
	cardLabelSize = 5
)

// FrameColors and BorderColors are cycled by position so neighbouring media
// cards are easy to tell apart.
var (
	FrameColors  = []string{"#FFDCDC", "#DCF7FF", "#DCFFDC", "#FFFBDC", "#FFEDDC", "#E6E6FA", "#D4EDDA"}
	BorderColors = []string{"#FF6347", "#00BFFF", "#32CD32", "#FFD700", "#FF8C00", "#9370DB", "#20B2AA"}
)

// CardColors returns the frame and border colour for the card at index i.
func CardColors(i int) (frame, border string) {
	return FrameColors[i%len(FrameColors)], BorderColors[i%len(BorderColors)]
}

// RenderMediaList renders the media list as one card per record, numbered
// from 1 in list order.
func RenderMediaList(records []model.MediaRecord) string {
	if len(records) == 0 {
		return EmptyState("No media items.", "Add one with: trailkit media add", false)
	}

	if !ColorsEnabled() {
		return renderPlainMediaList(records)
	}

	width := min(TerminalWidth(), maxCardWidth)
	cards := make([]string, 0, len(records))
	for i, r := range records {
		cards = append(cards, renderColorCard(i, r, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderColorCard(i int, r model.MediaRecord, width int) string {
	frame, border := CardColors(i)
	ink := lipgloss.Color("#333333")

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(border)).Background(lipgloss.Color(frame))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")).Background(lipgloss.Color(frame))
	valueStyle := lipgloss.NewStyle().Foreground(ink).Background(lipgloss.Color(frame))

	contentWidth := max(width-4, 10)
	valueWidth := max(contentWidth-cardLabelSize-1, 5)

	line := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-*s", cardLabelSize, label)) + " " +
			valueStyle.Render(truncate(orNone(value), valueWidth))
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s Media Item %d", r.Type.OrDefault().Icon(), i+1)),
		line("id", r.ID),
		line("type", string(r.Type.OrDefault())),
		line("url", r.URL),
		line("en", r.DescriptionEn),
		line("he", r.DescriptionHe),
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Background(lipgloss.Color(frame)).
		Padding(0, 1).
		Width(contentWidth)

	return card.Render(strings.Join(lines, "\n"))
}

func renderPlainMediaList(records []model.MediaRecord) string {
	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Media Item %d\n", i+1)
		fmt.Fprintf(&b, "  id:   %s\n", orNone(r.ID))
		fmt.Fprintf(&b, "  type: %s\n", r.Type.OrDefault())
		fmt.Fprintf(&b, "  url:  %s\n", orNone(r.URL))
		fmt.Fprintf(&b, "  en:   %s\n", orNone(r.DescriptionEn))
		fmt.Fprintf(&b, "  he:   %s\n", orNone(r.DescriptionHe))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderMediaTable renders the media list as a compact table.
func RenderMediaTable(records []model.MediaRecord) string {
	if len(records) == 0 {
		return EmptyState("No media items.", "Add one with: trailkit media add", false)
	}

	headers := []string{"#", "ID", "Type", "URL", "English", "Hebrew"}
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			truncate(r.ID, maxCellWidth),
			string(r.Type.OrDefault()),
			truncate(r.URL, maxCellWidth),
			truncate(r.DescriptionEn, maxCellWidth),
			truncate(r.DescriptionHe, maxCellWidth),
		})
	}

	if !ColorsEnabled() {
		return renderPlainTable(headers, rows)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
			if row == table.HeaderRow {
				return s.Bold(true).Foreground(lipgloss.Color("15"))
			}
			if col == 0 && row >= 0 {
				_, border := CardColors(row)
				return s.Bold(true).Foreground(lipgloss.Color(border))
			}
			return s
		})

	return t.String()
}

// renderPlainTable lays out rows in fixed-width columns separated by two
// spaces.
func renderPlainTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if i < len(cells)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
	return strings.TrimRight(b.String(), "\n")
}
