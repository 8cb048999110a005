package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
	"github.com/ALT-F4-LLC/trailkit/internal/output"
)

var mediaEditCmd = &cobra.Command{
	Use:   "edit [position]",
	Short: "Edit the fields of a media item",
	Long: `Edit the fields of the media item at the given 1-based position.

When no field flags are given an interactive form is opened with the
current values filled in.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)

		pos, err := parsePosition(args[0])
		if err != nil {
			return err
		}

		s, err := loadSession(cmd)
		if err != nil {
			return err
		}
		if pos < 1 || pos > len(s.Media) {
			return positionErr(&model.IndexOutOfRangeError{Index: pos - 1, Len: len(s.Media)}, pos)
		}

		rec := s.Media[pos-1]
		changed, err := applyFieldFlags(cmd, &rec)
		if err != nil {
			return err
		}

		if len(changed) == 0 {
			if w.JSONMode {
				return cmdErr(fmt.Errorf("no fields to update: use one of --%s", strings.Join(mediaFieldFlags, ", --")), output.ErrValidation)
			}

			aborted, err := editMediaForm(&rec)
			if err != nil {
				return err
			}
			if aborted {
				w.Info("Cancelled.")
				return nil
			}
			changed = []string{"form"}
		}

		s.Media[pos-1] = rec
		if err := saveSession(cmd, s, "media.edit", fmt.Sprintf("%d:%s", pos, strings.Join(changed, ","))); err != nil {
			return err
		}

		w.Success(mediaItem{Position: pos, MediaRecord: rec}, fmt.Sprintf("Updated %s", describeItem(pos, rec)))
		return nil
	},
}

// editMediaForm runs the interactive editor over rec. It reports whether
// the user aborted the form.
func editMediaForm(rec *model.MediaRecord) (bool, error) {
	kind := string(rec.Type.OrDefault())

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("ID").
				Value(&rec.ID),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("image", string(model.MediaImage)),
					huh.NewOption("video", string(model.MediaVideo)),
				).
				Value(&kind),
			huh.NewInput().
				Title("URL").
				Value(&rec.URL),
			huh.NewText().
				Title("Description (English)").
				Value(&rec.DescriptionEn),
			huh.NewText().
				Title("Description (Hebrew)").
				Value(&rec.DescriptionHe),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return true, nil
		}
		return false, cmdErr(fmt.Errorf("interactive form failed: %w", err), output.ErrGeneral)
	}

	rec.Type = model.MediaType(kind)
	return false, nil
}

func init() {
	addFieldFlags(mediaEditCmd)
	mediaCmd.AddCommand(mediaEditCmd)
}
