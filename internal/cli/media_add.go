package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
	"github.com/ALT-F4-LLC/trailkit/internal/output"
	"github.com/ALT-F4-LLC/trailkit/internal/trail"
)

var mediaAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Insert a new media item",
	Long: `Insert a new media item into the list.

Without a placement flag the item is appended at the end. --top inserts it
first, --above N and --below N insert next to item N, and --at N makes it
item N.`,
	Example: `  trailkit media add --type image --url https://example.org/a.jpg --desc-en "Ridge view"
  trailkit media add --top --generate-id
  trailkit media add --below 3 --type video`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)

		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		pos, label, err := insertPosition(cmd, len(s.Media))
		if err != nil {
			return err
		}

		var rec model.MediaRecord
		if _, err := applyFieldFlags(cmd, &rec); err != nil {
			return err
		}
		if gen, _ := cmd.Flags().GetBool("generate-id"); gen {
			if cmd.Flags().Changed("id") {
				return cmdErr(fmt.Errorf("--id and --generate-id cannot be combined"), output.ErrValidation)
			}
			rec.ID = uuid.NewString()
		}

		list, err := trail.InsertAt(s.Media, pos, rec)
		if err != nil {
			return positionErr(err, pos+1)
		}
		s.Media = list

		if err := saveSession(cmd, s, "media.add", fmt.Sprintf("%d", pos+1)); err != nil {
			return err
		}

		if rec.ID != "" && len(trail.Positions(s.Media, rec.ID)) > 1 {
			w.Warn("media id %q is used by more than one item", rec.ID)
		}

		w.Success(mediaItem{Position: pos + 1, MediaRecord: rec},
			fmt.Sprintf("Added %s %s", describeItem(pos+1, rec), label))
		return nil
	},
}

// insertPosition resolves the placement flags into a 0-based insertion index.
func insertPosition(cmd *cobra.Command, n int) (int, string, error) {
	top, _ := cmd.Flags().GetBool("top")
	var set []string
	if top {
		set = append(set, "--top")
	}
	for _, f := range []string{"above", "below", "at"} {
		if cmd.Flags().Changed(f) {
			set = append(set, "--"+f)
		}
	}
	if len(set) > 1 {
		return 0, "", cmdErr(fmt.Errorf("only one placement flag may be used, got %v", set), output.ErrValidation)
	}

	switch {
	case top:
		return 0, "at the top", nil
	case cmd.Flags().Changed("above"):
		p, _ := cmd.Flags().GetInt("above")
		if p < 1 || p > n {
			return 0, "", positionErr(&model.IndexOutOfRangeError{Index: p - 1, Len: n}, p)
		}
		return p - 1, fmt.Sprintf("above item %d", p), nil
	case cmd.Flags().Changed("below"):
		p, _ := cmd.Flags().GetInt("below")
		if p < 1 || p > n {
			return 0, "", positionErr(&model.IndexOutOfRangeError{Index: p - 1, Len: n}, p)
		}
		return p, fmt.Sprintf("below item %d", p), nil
	case cmd.Flags().Changed("at"):
		p, _ := cmd.Flags().GetInt("at")
		if p < 1 || p > n+1 {
			return 0, "", positionErr(&model.IndexOutOfRangeError{Index: p - 1, Len: n}, p)
		}
		return p - 1, fmt.Sprintf("at position %d", p), nil
	default:
		return n, "at the end", nil
	}
}

func init() {
	addFieldFlags(mediaAddCmd)
	mediaAddCmd.Flags().Bool("generate-id", false, "Assign a random UUID as the media id")
	mediaAddCmd.Flags().Bool("top", false, "Insert before the first item")
	mediaAddCmd.Flags().Int("above", 0, "Insert above item N")
	mediaAddCmd.Flags().Int("below", 0, "Insert below item N")
	mediaAddCmd.Flags().Int("at", 0, "Insert so the new item becomes item N")
	mediaCmd.AddCommand(mediaAddCmd)
}
