package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
	"github.com/ALT-F4-LLC/trailkit/internal/output"
)

var mediaCmd = &cobra.Command{
	Use:     "media",
	Short:   "Manage the ordered media list",
	Aliases: []string{"m"},
}

// mediaItem is the JSON form of a record together with its 1-based position.
type mediaItem struct {
	Position int `json:"position"`
	model.MediaRecord
}

func mediaItems(list []model.MediaRecord) []mediaItem {
	items := make([]mediaItem, len(list))
	for i, r := range list {
		items[i] = mediaItem{Position: i + 1, MediaRecord: r}
	}
	return items
}

// addFieldFlags registers the flags shared by media add and media edit.
func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("id", "", "Media id")
	cmd.Flags().String("type", "", "Media type (image or video)")
	cmd.Flags().String("url", "", "Media URL")
	cmd.Flags().String("desc-en", "", "Media description (English)")
	cmd.Flags().String("desc-he", "", "Media description (Hebrew)")
}

var mediaFieldFlags = []string{"id", "type", "url", "desc-en", "desc-he"}

// applyFieldFlags copies every changed field flag onto r and returns the
// names of the flags applied.
func applyFieldFlags(cmd *cobra.Command, r *model.MediaRecord) ([]string, error) {
	var changed []string
	for _, f := range mediaFieldFlags {
		if !cmd.Flags().Changed(f) {
			continue
		}
		v, _ := cmd.Flags().GetString(f)
		switch f {
		case "id":
			r.ID = v
		case "type":
			if err := model.ValidateMediaType(model.MediaType(v)); err != nil {
				return nil, cmdErr(err, output.ErrValidation)
			}
			r.Type = model.MediaType(v)
		case "url":
			r.URL = v
		case "desc-en":
			r.DescriptionEn = v
		case "desc-he":
			r.DescriptionHe = v
		}
		changed = append(changed, f)
	}
	return changed, nil
}

func describeItem(pos int, r model.MediaRecord) string {
	if r.ID == "" {
		return fmt.Sprintf("media item %d", pos)
	}
	return fmt.Sprintf("media item %d (%s)", pos, r.ID)
}

func init() {
	rootCmd.AddCommand(mediaCmd)
}
