// Package track derives distance and elevation series from GPS track points.
package track

import (
	"iter"
	"slices"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
)

// Point is one recorded track sample. Elevation is 0 when the source point
// carried none.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
	Ele float64 `json:"ele"`
}

// Summary holds the per-point series and extrema of a track.
type Summary struct {
	Points             int       `json:"points"`
	PerPointDistanceKm []float64 `json:"per_point_distance_km"`
	TotalDistanceKm    float64   `json:"total_distance_km"`
	MinElevation       float64   `json:"min_elevation"`
	MaxElevation       float64   `json:"max_elevation"`
	Latitudes          []float64 `json:"latitudes"`
	Longitudes         []float64 `json:"longitudes"`
	Elevations         []float64 `json:"elevations"`
}

// EmptySummary returns a summary of zero points whose series are empty
// rather than nil.
func EmptySummary() *Summary {
	return &Summary{
		PerPointDistanceKm: []float64{},
		Latitudes:          []float64{},
		Longitudes:         []float64{},
		Elevations:         []float64{},
	}
}

// Stats returns a copy of s holding only the headline numbers; the series
// are emptied.
func (s *Summary) Stats() *Summary {
	out := EmptySummary()
	out.Points = s.Points
	out.TotalDistanceKm = s.TotalDistanceKm
	out.MinElevation = s.MinElevation
	out.MaxElevation = s.MaxElevation
	return out
}

// Summarize computes the cumulative distance and elevation range of points.
// It returns model.ErrEmptyTrack when points is empty.
func Summarize(points []Point) (*Summary, error) {
	return SummarizeSeq(slices.Values(points))
}

// SummarizeSeq is Summarize over a lazily produced point sequence. Distances
// between consecutive points use the same planar approximation as the GPX
// library, falling back to haversine for long hops.
func SummarizeSeq(points iter.Seq[Point]) (*Summary, error) {
	s := &Summary{}
	var prev Point
	var totalM float64

	for p := range points {
		if s.Points == 0 {
			s.MinElevation = p.Ele
			s.MaxElevation = p.Ele
		} else {
			totalM += gpx.Distance2D(prev.Lat, prev.Lon, p.Lat, p.Lon, false)
			s.MinElevation = min(s.MinElevation, p.Ele)
			s.MaxElevation = max(s.MaxElevation, p.Ele)
		}

		s.Latitudes = append(s.Latitudes, p.Lat)
		s.Longitudes = append(s.Longitudes, p.Lon)
		s.Elevations = append(s.Elevations, p.Ele)
		s.PerPointDistanceKm = append(s.PerPointDistanceKm, totalM/1000)
		s.Points++
		prev = p
	}

	if s.Points == 0 {
		return nil, model.ErrEmptyTrack
	}
	s.TotalDistanceKm = totalM / 1000
	return s, nil
}
