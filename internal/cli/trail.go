package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ALT-F4-LLC/trailkit/internal/output"
	"github.com/ALT-F4-LLC/trailkit/internal/render"
)

var trailCmd = &cobra.Command{
	Use:     "trail",
	Short:   "View and edit trail names and descriptions",
	Aliases: []string{"t"},
}

var trailShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the trail id, names, and descriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)

		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		var message string
		if !w.JSONMode {
			message = render.RenderTrail(s)
		}
		w.Success(s.Trail, message)
		return nil
	},
}

// trailFlags maps flag names to the session field they edit.
var trailFlags = []string{"id", "name-en", "desc-en", "name-he", "desc-he"}

var trailSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set trail id, names, or descriptions",
	Example: `  trailkit trail set --id carmel-01
  trailkit trail set --name-he "רכס הכרמל" --desc-he "הליכה לאורך הרכס"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)

		var changed []string
		for _, f := range trailFlags {
			if cmd.Flags().Changed(f) {
				changed = append(changed, f)
			}
		}
		if len(changed) == 0 {
			return cmdErr(fmt.Errorf("no fields to update: use one of --%s", strings.Join(trailFlags, ", --")), output.ErrValidation)
		}

		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		for _, f := range changed {
			v, _ := cmd.Flags().GetString(f)
			switch f {
			case "id":
				s.Trail.TrailID = v
			case "name-en":
				s.Trail.NameEn = v
			case "desc-en":
				s.Trail.DescriptionEn = v
			case "name-he":
				s.Trail.NameHe = v
			case "desc-he":
				s.Trail.DescriptionHe = v
			}
		}

		if err := saveSession(cmd, s, "trail.set", strings.Join(changed, ",")); err != nil {
			return err
		}

		w.Success(s.Trail, fmt.Sprintf("Updated %s for trail %s", strings.Join(changed, ", "), displayTrailID(s.Trail.TrailID)))
		return nil
	},
}

func init() {
	trailSetCmd.Flags().String("id", "", "Trail id shared by both documents")
	trailSetCmd.Flags().String("name-en", "", "Trail name (English)")
	trailSetCmd.Flags().String("desc-en", "", "Trail description (English)")
	trailSetCmd.Flags().String("name-he", "", "Trail name (Hebrew)")
	trailSetCmd.Flags().String("desc-he", "", "Trail description (Hebrew)")

	trailCmd.AddCommand(trailShowCmd)
	trailCmd.AddCommand(trailSetCmd)
	rootCmd.AddCommand(trailCmd)
}
