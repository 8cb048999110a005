package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
	"github.com/ALT-F4-LLC/trailkit/internal/output"
	"github.com/ALT-F4-LLC/trailkit/internal/trail"
)

type loadResult struct {
	TrailID    string   `json:"trail_id"`
	Languages  []string `json:"languages"`
	Merged     int      `json:"merged"`
	Seeded     bool     `json:"seeded"`
	MediaCount int      `json:"media_count"`
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load English and/or Hebrew trail documents into the session",
	Long: `Load one or both language documents of a trail.

Trail names and descriptions are replaced for every language supplied.
The media list is seeded from the merged documents only while it is empty;
once it has items, later loads leave it alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)

		enPath, _ := cmd.Flags().GetString("en")
		hePath, _ := cmd.Flags().GetString("he")

		if enPath == "" && hePath == "" {
			return cmdErr(fmt.Errorf("at least one of --en or --he is required"), output.ErrValidation)
		}

		enData, err := readDocument(enPath)
		if err != nil {
			return err
		}
		heData, err := readDocument(hePath)
		if err != nil {
			return err
		}

		// Both documents are decoded before the session is touched.
		res, err := trail.MergeJSON(enData, heData)
		if err != nil {
			return cmdErr(err, output.ErrMalformed)
		}

		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		var langs []string
		if enData != nil {
			s.Trail.NameEn = res.Fields.NameEn
			s.Trail.DescriptionEn = res.Fields.DescriptionEn
			langs = append(langs, string(model.LangEn))
		}
		if heData != nil {
			s.Trail.NameHe = res.Fields.NameHe
			s.Trail.DescriptionHe = res.Fields.DescriptionHe
			langs = append(langs, string(model.LangHe))
		}
		if res.Fields.TrailID != "" {
			s.Trail.TrailID = res.Fields.TrailID
		}

		seeded := false
		switch {
		case !s.HasMedia():
			s.Media = res.Media
			seeded = len(res.Media) > 0
		case len(res.Media) > 0:
			w.Warn("media list already has %d items and was kept; run 'trailkit session reset' to reseed it", len(s.Media))
		}

		if err := saveSession(cmd, s, "load", strings.Join(langs, "+")); err != nil {
			return err
		}

		if dups := trail.DuplicateIDs(s.Media); len(dups) > 0 {
			w.Warn("duplicate media ids: %s", strings.Join(dups, ", "))
		}

		result := loadResult{
			TrailID:    s.Trail.TrailID,
			Languages:  langs,
			Merged:     len(res.Media),
			Seeded:     seeded,
			MediaCount: len(s.Media),
		}

		msg := fmt.Sprintf("Loaded %s document(s) for trail %s", strings.Join(langs, " and "), displayTrailID(s.Trail.TrailID))
		if seeded {
			msg += fmt.Sprintf(" (%d media items)", len(s.Media))
		}
		w.Success(result, msg)

		return nil
	},
}

// readDocument reads a document file; an empty path means not supplied.
func readDocument(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, cmdErr(fmt.Errorf("file %s not found", path), output.ErrNotFound)
		}
		return nil, cmdErr(fmt.Errorf("reading file: %w", err), output.ErrGeneral)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

func displayTrailID(id string) string {
	if strings.TrimSpace(id) == "" {
		return "(no trail id)"
	}
	return id
}

func init() {
	loadCmd.Flags().String("en", "", "English trail JSON file")
	loadCmd.Flags().String("he", "", "Hebrew trail JSON file")
	rootCmd.AddCommand(loadCmd)
}
