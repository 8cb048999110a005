package render

import (
	"fmt"
	"strings"

	humanize "github.com/dustin/go-humanize"

	"github.com/charmbracelet/lipgloss"

	"github.com/ALT-F4-LLC/trailkit/internal/track"
)

const (
	plotHeight   = 12
	maxPlotWidth = 90
	plotMargin   = 4
)

// TrackStats holds the headline numbers shown for a track.
type TrackStats struct {
	Name            string
	Points          int
	TotalDistanceKm float64
	MinElevation    float64
	MaxElevation    float64
}

// StatsFromSummary extracts the headline numbers of a summary.
func StatsFromSummary(name string, s *track.Summary) TrackStats {
	return TrackStats{
		Name:            name,
		Points:          s.Points,
		TotalDistanceKm: s.TotalDistanceKm,
		MinElevation:    s.MinElevation,
		MaxElevation:    s.MaxElevation,
	}
}

// RenderTrackStats renders distance and elevation statistics.
func RenderTrackStats(st TrackStats) string {
	rows := [][2]string{
		{"Total distance:", humanize.CommafWithDigits(st.TotalDistanceKm, 2) + " km"},
		{"Min elevation:", humanize.CommafWithDigits(st.MinElevation, 1) + " m"},
		{"Max elevation:", humanize.CommafWithDigits(st.MaxElevation, 1) + " m"},
		{"Points:", humanize.Comma(int64(st.Points))},
	}

	title := "Track"
	if st.Name != "" {
		title = "Track: " + st.Name
	}

	if !ColorsEnabled() {
		var b strings.Builder
		b.WriteString(title + "\n")
		for _, r := range rows {
			fmt.Fprintf(&b, "  %-16s %s\n", r[0], r[1])
		}
		return strings.TrimRight(b.String(), "\n")
	}

	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle := lipgloss.NewStyle().Bold(true)

	lines := []string{sectionStyle.Render(title)}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("  %s %s", labelStyle.Render(fmt.Sprintf("%-16s", r[0])), valueStyle.Render(r[1])))
	}
	return strings.Join(lines, "\n")
}

// RenderTrack renders statistics, the track map, and the elevation profile.
func RenderTrack(name string, s *track.Summary) string {
	width := min(TerminalWidth()-plotMargin, maxPlotWidth)

	trackMap := Plot{
		Title:     "Track Map",
		XLabel:    "longitude",
		YLabel:    "latitude",
		Width:     width,
		Height:    plotHeight,
		Endpoints: true,
		Format:    func(v float64) string { return fmt.Sprintf("%.4f", v) },
	}
	profile := Plot{
		Title:  "Elevation Profile",
		XLabel: "distance (km)",
		YLabel: "elevation (m)",
		Width:  width,
		Height: plotHeight,
		Fill:   true,
		Format: func(v float64) string { return humanize.CommafWithDigits(v, 1) },
	}

	return strings.Join([]string{
		RenderTrackStats(StatsFromSummary(name, s)),
		trackMap.Render(s.Longitudes, s.Latitudes),
		profile.Render(s.PerPointDistanceKm, s.Elevations),
	}, "\n\n")
}
