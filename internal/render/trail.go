package render

import (
	"fmt"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"

	"github.com/charmbracelet/lipgloss"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
)

// RenderTrail renders the trail scalars of a session with a media count and
// when the session last changed. Descriptions are rendered as markdown.
func RenderTrail(s *model.Session) string {
	if !ColorsEnabled() {
		return renderPlainTrail(s)
	}

	idStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	headStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var sections []string
	sections = append(sections, fmt.Sprintf("%s %s  %s",
		idStyle.Render("Trail"),
		idStyle.Render(orNone(s.Trail.TrailID)),
		dim.Render(fmt.Sprintf("%d media · updated %s", len(s.Media), humanize.Time(s.UpdatedAt))),
	))

	for _, lang := range []model.Lang{model.LangEn, model.LangHe} {
		lines := []string{
			headStyle.Render(lang.Name() + " Version"),
			fmt.Sprintf("  %s %s", dim.Render("Name:"), orNone(s.Trail.Name(lang))),
		}
		desc := s.Trail.Description(lang)
		if desc == "" {
			lines = append(lines, fmt.Sprintf("  %s %s", dim.Render("Description:"), "(none)"))
		} else {
			rendered, err := RenderMarkdown(desc)
			if err != nil {
				rendered = desc
			}
			lines = append(lines, dim.Render("  Description:"), rendered)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return strings.Join(sections, "\n\n")
}

func renderPlainTrail(s *model.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Trail ID: %s\n", orNone(s.Trail.TrailID))
	fmt.Fprintf(&b, "Media:    %d\n", len(s.Media))
	fmt.Fprintf(&b, "Updated:  %s\n", s.UpdatedAt.UTC().Format(time.RFC3339))
	for _, lang := range []model.Lang{model.LangEn, model.LangHe} {
		fmt.Fprintf(&b, "\n%s Version\n", lang.Name())
		fmt.Fprintf(&b, "  Name:        %s\n", orNone(s.Trail.Name(lang)))
		fmt.Fprintf(&b, "  Description: %s\n", orNone(s.Trail.Description(lang)))
	}
	return strings.TrimRight(b.String(), "\n")
}
