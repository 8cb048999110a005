package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ALT-F4-LLC/trailkit/internal/trail"
)

var mediaRemoveCmd = &cobra.Command{
	Use:     "remove [position]",
	Short:   "Remove a media item",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
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

		list, err := trail.RemoveAt(s.Media, pos-1)
		if err != nil {
			return positionErr(err, pos)
		}
		removed := s.Media[pos-1]
		s.Media = list

		if err := saveSession(cmd, s, "media.remove", fmt.Sprintf("%d", pos)); err != nil {
			return err
		}

		w.Success(mediaItem{Position: pos, MediaRecord: removed},
			fmt.Sprintf("Removed %s (%d remaining)", describeItem(pos, removed), len(s.Media)))
		return nil
	},
}

func init() {
	mediaCmd.AddCommand(mediaRemoveCmd)
}
