package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ALT-F4-LLC/trailkit/internal/db"
	"github.com/ALT-F4-LLC/trailkit/internal/output"
	"github.com/ALT-F4-LLC/trailkit/internal/render"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect or reset the editing session",
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the trail and media of the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)

		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		var message string
		if !w.JSONMode {
			message = render.RenderTrail(s)
			if s.HasMedia() {
				message += "\n\n" + render.RenderMediaTable(s.Media)
			} else {
				quiet, _ := cmd.Flags().GetBool("quiet")
				message += "\n\n" + render.EmptyState("No media items.", "Load documents with 'trailkit load' or add one with 'trailkit media add'.", quiet)
			}
		}
		w.Success(s, message)
		return nil
	},
}

var sessionResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the session and start an empty one",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		force, _ := cmd.Flags().GetBool("force")

		if !force && !w.JSONMode {
			confirm := false
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title("Discard the trail fields and all media items?").
						Value(&confirm),
				),
			)
			if err := form.Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					w.Info("Cancelled.")
					return nil
				}
				return cmdErr(fmt.Errorf("interactive form failed: %w", err), output.ErrGeneral)
			}
			if !confirm {
				w.Info("Cancelled.")
				return nil
			}
		}

		s, err := db.ResetSession(getDB(cmd), getCfg(cmd).Actor())
		if err != nil {
			return cmdErr(fmt.Errorf("resetting session: %w", err), output.ErrGeneral)
		}

		w.Success(s, "Session reset")
		return nil
	},
}

func init() {
	sessionResetCmd.Flags().BoolP("force", "f", false, "Reset without confirmation")
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionResetCmd)
	rootCmd.AddCommand(sessionCmd)
}
