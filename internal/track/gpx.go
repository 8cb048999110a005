package track

import (
	"fmt"
	"iter"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
)

// Parsed is a decoded GPX file.
type Parsed struct {
	Name   string
	Tracks int
	gpx    *gpx.GPX
}

// ParseGPX decodes a GPX document. Failures are reported as
// *model.TrackParseError.
func ParseGPX(data []byte) (*Parsed, error) {
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, &model.TrackParseError{Err: err}
	}
	return &Parsed{Name: g.Name, Tracks: len(g.Tracks), gpx: g}, nil
}

// Points yields every track point in recording order, walking tracks then
// segments. Routes and waypoints are ignored.
func (p *Parsed) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, trk := range p.gpx.Tracks {
			for _, seg := range trk.Segments {
				for _, pt := range seg.Points {
					var ele float64
					if pt.Elevation.NotNull() {
						ele = pt.Elevation.Value()
					}
					if !yield(Point{Lat: pt.Latitude, Lon: pt.Longitude, Ele: ele}) {
						return
					}
				}
			}
		}
	}
}

// SummarizeGPX parses data and summarizes its track points.
func SummarizeGPX(data []byte) (*Parsed, *Summary, error) {
	parsed, err := ParseGPX(data)
	if err != nil {
		return nil, nil, err
	}
	summary, err := SummarizeSeq(parsed.Points())
	if err != nil {
		return parsed, nil, fmt.Errorf("summarizing %q: %w", parsed.Name, err)
	}
	return parsed, summary, nil
}
