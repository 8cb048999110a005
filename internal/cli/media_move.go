package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
	"github.com/ALT-F4-LLC/trailkit/internal/trail"
)

var mediaMoveCmd = &cobra.Command{
	Use:   "move [from] [to]",
	Short: "Move a media item to a new position",
	Example: `  trailkit media move 4 1
  trailkit media move 1 3`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)

		from, err := parsePosition(args[0])
		if err != nil {
			return err
		}
		to, err := parsePosition(args[1])
		if err != nil {
			return err
		}

		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		list, err := trail.Move(s.Media, from-1, to-1)
		if err != nil {
			pos := from
			var ie *model.IndexOutOfRangeError
			if errors.As(err, &ie) {
				pos = ie.Index + 1
			}
			return positionErr(err, pos)
		}
		moved := list[to-1]
		s.Media = list

		if from == to {
			w.Success(mediaItems(s.Media), fmt.Sprintf("%s is already at position %d", describeItem(to, moved), to))
			return nil
		}

		if err := saveSession(cmd, s, "media.move", fmt.Sprintf("%d->%d", from, to)); err != nil {
			return err
		}

		w.Success(mediaItems(s.Media), fmt.Sprintf("Moved %s from %d to %d", describeItem(to, moved), from, to))
		return nil
	},
}

func init() {
	mediaCmd.AddCommand(mediaMoveCmd)
}
