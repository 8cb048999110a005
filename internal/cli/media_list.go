package cli

import (
	"github.com/spf13/cobra"

	"github.com/ALT-F4-LLC/trailkit/internal/render"
)

var mediaListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List media items in export order",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		compact, _ := cmd.Flags().GetBool("compact")

		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		var message string
		if !w.JSONMode {
			if compact {
				message = render.RenderMediaTable(s.Media)
			} else {
				message = render.RenderMediaList(s.Media)
			}
		}
		w.Success(mediaItems(s.Media), message)
		return nil
	},
}

func init() {
	mediaListCmd.Flags().BoolP("compact", "c", false, "Show a one-line-per-item table")
	mediaCmd.AddCommand(mediaListCmd)
}
