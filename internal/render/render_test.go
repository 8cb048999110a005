package render

import (
	"strings"
	"testing"
	"time"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
	"github.com/ALT-F4-LLC/trailkit/internal/track"
)

func sampleMedia() []model.MediaRecord {
	return []model.MediaRecord{
		{ID: "m1", Type: model.MediaImage, URL: "https://img/1.jpg", DescriptionEn: "Lookout", DescriptionHe: "תצפית"},
		{ID: "m2", Type: model.MediaVideo, URL: "https://vid/2.mp4", DescriptionEn: "Descent"},
		{},
	}
}

func TestCardColorsCycle(t *testing.T) {
	f0, b0 := CardColors(0)
	f7, b7 := CardColors(7)
	if f0 != f7 || b0 != b7 {
		t.Errorf("colors at 0 and 7 differ: %s/%s vs %s/%s", f0, b0, f7, b7)
	}
	f1, _ := CardColors(1)
	if f0 == f1 {
		t.Error("neighbouring cards share a frame colour")
	}
}

func TestRenderMediaListPlain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := RenderMediaList(sampleMedia())
	for _, want := range []string{
		"Media Item 1", "Media Item 2", "Media Item 3",
		"id:   m1", "he:   תצפית", "type: video",
		"he:   (none)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output:\n%s", want, got)
		}
	}
	if strings.Index(got, "m1") > strings.Index(got, "m2") {
		t.Error("cards not in list order")
	}
	// A blank record is presented as an image.
	third := got[strings.Index(got, "Media Item 3"):]
	if !strings.Contains(third, "type: image") {
		t.Errorf("blank record type not defaulted:\n%s", third)
	}
}

func TestRenderMediaListEmpty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	got := RenderMediaList(nil)
	if !strings.Contains(got, "No media items.") || !strings.Contains(got, "trailkit media add") {
		t.Errorf("empty state = %q", got)
	}
}

func TestRenderMediaTablePlain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := RenderMediaTable(sampleMedia())
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "#") || !strings.Contains(lines[0], "Hebrew") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "2 ") || !strings.Contains(lines[2], "m2") {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"שביל ישראל הארוך", 8, "שביל ..."},
		{"abc", 2, "ab"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestRenderTrailPlain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	s := &model.Session{
		Trail: model.TrailFields{
			TrailID:       "carmel-01",
			NameEn:        "Carmel Ridge",
			DescriptionEn: "A ridge walk.",
			NameHe:        "רכס הכרמל",
		},
		Media:     sampleMedia(),
		UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	got := RenderTrail(s)
	for _, want := range []string{
		"Trail ID: carmel-01",
		"Media:    3",
		"English Version",
		"Name:        Carmel Ridge",
		"Hebrew Version",
		"Name:        רכס הכרמל",
		"Description: (none)",
		"2026-01-01T00:00:00Z",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestRenderJSONPreviewPlain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got, err := RenderJSONPreview("English JSON Preview", []byte("{\n    \"trailId\": \"t\"\n}\n"))
	if err != nil {
		t.Fatalf("RenderJSONPreview: %v", err)
	}
	want := "## English JSON Preview\n\n```json\n{\n    \"trailId\": \"t\"\n}\n```\n"
	if got != want {
		t.Errorf("preview =\n%q\nwant\n%q", got, want)
	}
}

func TestBoundsWidensFlatRange(t *testing.T) {
	tests := []struct {
		vs     []float64
		lo, hi float64
	}{
		{[]float64{3, 1, 2}, 1, 3},
		{[]float64{5}, 4, 6},
		{[]float64{7, 7}, 6, 8},
	}
	for _, tt := range tests {
		lo, hi := bounds(tt.vs)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("bounds(%v) = %v, %v, want %v, %v", tt.vs, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestPlotRenderEndpoints(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	p := Plot{Title: "Track Map", XLabel: "longitude", YLabel: "latitude", Width: 30, Height: 8, Endpoints: true}
	got := p.Render([]float64{0, 1, 2}, []float64{0, 1, 0})

	lines := strings.Split(got, "\n")
	if lines[0] != "Track Map" {
		t.Errorf("first line = %q, want title", lines[0])
	}
	if lines[1] != "latitude" {
		t.Errorf("second line = %q, want y label", lines[1])
	}
	if !strings.HasSuffix(lines[len(lines)-1], "longitude") {
		t.Errorf("last line = %q, want x label", lines[len(lines)-1])
	}
	if !strings.Contains(got, "S") || !strings.Contains(got, "E") {
		t.Errorf("expected start and end markers:\n%s", got)
	}
	if !strings.Contains(got, "0.00") || !strings.Contains(got, "2.00") {
		t.Errorf("expected axis tick labels:\n%s", got)
	}
}

func TestPlotRenderFill(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	p := Plot{Width: 20, Height: 6, Fill: true}
	got := p.Render([]float64{0, 1, 2}, []float64{1, 5, 3})
	if !strings.ContainsRune(got, fillRune) {
		t.Errorf("expected shaded area under the line:\n%s", got)
	}

	p.Fill = false
	if got := p.Render([]float64{0, 1, 2}, []float64{1, 5, 3}); strings.ContainsRune(got, fillRune) {
		t.Errorf("unexpected shading without Fill:\n%s", got)
	}
}

func TestPlotRenderSinglePoint(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := Plot{Width: 20, Height: 6}.Render([]float64{3}, []float64{120})
	if !strings.ContainsRune(got, pointRune) {
		t.Errorf("expected a point marker:\n%s", got)
	}
}

func TestPlotRenderMismatched(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	got := Plot{}.Render([]float64{1}, nil)
	if got != "Nothing to plot." {
		t.Errorf("got %q", got)
	}
}

func TestRenderTrackStatsPlain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := RenderTrackStats(TrackStats{Name: "Day one", Points: 1200, TotalDistanceKm: 12.34, MinElevation: -10, MaxElevation: 1050})
	for _, want := range []string{
		"Track: Day one",
		"Total distance:  12.34 km",
		"Min elevation:   -10 m",
		"Max elevation:   1,050 m",
		"Points:          1,200",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestRenderTrack(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	s, err := track.Summarize([]track.Point{
		{Lat: 0, Lon: 0, Ele: 10},
		{Lat: 0, Lon: 0.01, Ele: 20},
	})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	got := RenderTrack("", s)
	for _, want := range []string{"Track Map", "Elevation Profile", "distance (km)", "Total distance:"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}
