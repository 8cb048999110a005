package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ALT-F4-LLC/trailkit/internal/db"
	"github.com/ALT-F4-LLC/trailkit/internal/model"
	"github.com/ALT-F4-LLC/trailkit/internal/output"
	"github.com/ALT-F4-LLC/trailkit/internal/render"
	"github.com/ALT-F4-LLC/trailkit/internal/trail"
)

// exportResult is the JSON wire format for the export command output.
type exportResult struct {
	TrailID string               `json:"trail_id"`
	Dir     string               `json:"dir"`
	DryRun  bool                 `json:"dry_run"`
	Files   []trail.WrittenFile  `json:"files"`
	English *model.TrailDocument `json:"en,omitempty"`
	Hebrew  *model.TrailDocument `json:"he,omitempty"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the English and Hebrew trail documents",
	Long: `Split the session back into one document per language and write them
as {trailId}_en.json and {trailId}_he.json.

Both documents list media in the same order as 'trailkit media list'.
Use --preview to print the documents, or --dry-run to skip writing.`,
	Example: `  trailkit export
  trailkit export --dir ./out --preview
  trailkit export --dry-run --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		cfg := getCfg(cmd)

		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = cfg.ExportDir
		}
		preview, _ := cmd.Flags().GetBool("preview")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		en, he, err := trail.ExportDocuments(s.Media, s.Trail)
		if err != nil {
			var ve *model.ValidationError
			if errors.As(err, &ve) {
				return cmdErr(fmt.Errorf("%w: set one with 'trailkit trail set --id'", err), output.ErrValidation)
			}
			return cmdErr(err, output.ErrGeneral)
		}

		if !s.HasMedia() {
			w.Warn("media list is empty; documents will have no media")
		}
		if dups := trail.DuplicateIDs(s.Media); len(dups) > 0 {
			w.Warn("duplicate media ids: %s", strings.Join(dups, ", "))
		}

		var previews []string
		if preview && !w.JSONMode {
			for _, p := range []struct {
				title string
				doc   *model.TrailDocument
			}{
				{"English JSON Preview", en},
				{"Hebrew JSON Preview", he},
			} {
				data, err := trail.EncodeDocument(p.doc)
				if err != nil {
					return cmdErr(err, output.ErrGeneral)
				}
				rendered, err := render.RenderJSONPreview(p.title, data)
				if err != nil {
					return cmdErr(fmt.Errorf("rendering preview: %w", err), output.ErrGeneral)
				}
				previews = append(previews, rendered)
			}
		}

		result := exportResult{TrailID: en.TrailID, Dir: dir, DryRun: dryRun, Files: []trail.WrittenFile{}}
		if preview {
			result.English, result.Hebrew = en, he
		}

		if dryRun {
			for _, lang := range []model.Lang{model.LangEn, model.LangHe} {
				result.Files = append(result.Files, trail.WrittenFile{
					Lang: lang,
					Path: filepath.Join(dir, trail.OutputFileName(en.TrailID, lang)),
				})
			}
			previews = append(previews, fmt.Sprintf("Dry run: would write %s and %s",
				result.Files[0].Path, result.Files[1].Path))
			w.Success(result, strings.Join(previews, "\n\n"))
			return nil
		}

		files, err := trail.WriteDocuments(dir, en, he)
		if err != nil {
			return cmdErr(err, output.ErrGeneral)
		}
		result.Files = files

		names := make([]string, len(files))
		for i, f := range files {
			names[i] = fmt.Sprintf("%s (%s)", filepath.Base(f.Path), humanize.Bytes(uint64(f.Size)))
		}
		if err := db.RecordActivity(getDB(cmd), s.ID, "export", strings.Join(names, ", "), cfg.Actor()); err != nil {
			return cmdErr(err, output.ErrGeneral)
		}

		previews = append(previews, fmt.Sprintf("Exported %d media items to %s: %s",
			len(s.Media), dir, strings.Join(names, ", ")))
		w.Success(result, strings.Join(previews, "\n\n"))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("dir", "d", "", "Directory to write into (default: TRAILKIT_EXPORT_DIR or the working directory)")
	exportCmd.Flags().BoolP("preview", "p", false, "Show the documents before writing")
	exportCmd.Flags().Bool("dry-run", false, "Build the documents without writing them")
	rootCmd.AddCommand(exportCmd)
}
