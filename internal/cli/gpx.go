package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
	"github.com/ALT-F4-LLC/trailkit/internal/output"
	"github.com/ALT-F4-LLC/trailkit/internal/render"
	"github.com/ALT-F4-LLC/trailkit/internal/track"
)

// gpxResult is the JSON wire format for the gpx command output.
type gpxResult struct {
	File    string         `json:"file"`
	Name    string         `json:"name"`
	Tracks  int            `json:"tracks"`
	Summary *track.Summary `json:"summary"`
}

var gpxCmd = &cobra.Command{
	Use:   "gpx [file]",
	Short: "Show distance, elevation, and a map of a GPX track",
	Long: `Parse a GPX file and summarize its track points.

Shows the point count, total distance, and elevation range, followed by a
map of the route and its elevation profile. Routes and waypoints are
ignored.`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{"skipDB": "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		statsOnly, _ := cmd.Flags().GetBool("stats-only")
		path := args[0]

		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return cmdErr(fmt.Errorf("file %s not found", path), output.ErrNotFound)
			}
			return cmdErr(fmt.Errorf("reading file: %w", err), output.ErrGeneral)
		}

		parsed, summary, err := track.SummarizeGPX(data)
		if err != nil {
			if errors.Is(err, model.ErrEmptyTrack) {
				w.Warn("%s has no track points", path)
				w.Success(gpxResult{
					File:    path,
					Name:    parsed.Name,
					Tracks:  parsed.Tracks,
					Summary: track.EmptySummary(),
				}, fmt.Sprintf("No track points in %s", path))
				return nil
			}
			return cmdErr(err, errorCode(err))
		}

		result := gpxResult{File: path, Name: parsed.Name, Tracks: parsed.Tracks, Summary: summary}

		if w.JSONMode {
			if statsOnly {
				result.Summary = summary.Stats()
			}
			w.Success(result, "")
			return nil
		}

		name := parsed.Name
		if name == "" {
			name = path
		}

		var message string
		if statsOnly {
			message = render.RenderTrackStats(render.StatsFromSummary(name, summary))
		} else {
			message = render.RenderTrack(name, summary)
		}
		w.Success(result, message)
		return nil
	},
}

func init() {
	gpxCmd.Flags().Bool("stats-only", false, "Skip the map and elevation profile")
	rootCmd.AddCommand(gpxCmd)
}
