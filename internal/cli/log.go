package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ALT-F4-LLC/trailkit/internal/db"
	"github.com/ALT-F4-LLC/trailkit/internal/model"
	"github.com/ALT-F4-LLC/trailkit/internal/output"
	"github.com/ALT-F4-LLC/trailkit/internal/render"
)

// logResult is the JSON wire format for the log command output.
type logResult struct {
	Entries []model.Activity `json:"entries"`
	Total   int              `json:"total"`
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the history of session changes and exports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)

		limit, _ := cmd.Flags().GetInt("limit")
		limit = max(limit, 1)

		activity, err := db.GetActivity(getDB(cmd), limit)
		if err != nil {
			return cmdErr(fmt.Errorf("fetching activity: %w", err), output.ErrGeneral)
		}

		entries := activity
		if entries == nil {
			entries = []model.Activity{}
		}
		result := logResult{Entries: entries, Total: len(entries)}

		if w.JSONMode {
			w.Success(result, "")
			return nil
		}

		if len(activity) == 0 {
			w.Success(result, "No activity recorded")
			return nil
		}

		w.Success(result, formatActivityLog(activity))
		return nil
	},
}

func formatActivityLog(activity []model.Activity) string {
	lines := []string{"Session activity:", ""}

	useColors := render.ColorsEnabled()

	var timeStyle, actionStyle lipgloss.Style
	if useColors {
		timeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		actionStyle = lipgloss.NewStyle().Bold(true)
	}

	type row struct {
		ts, actor, action, detail string
	}
	timeW, actorW, actionW := 0, 0, 0
	rows := make([]row, len(activity))
	for i, a := range activity {
		rows[i] = row{
			ts:     humanize.Time(a.CreatedAt),
			actor:  a.ChangedBy,
			action: a.Action,
			detail: a.Detail,
		}
		if rows[i].actor == "" {
			rows[i].actor = "system"
		}
		timeW = max(timeW, len(rows[i].ts))
		actorW = max(actorW, len(rows[i].actor))
		actionW = max(actionW, len(rows[i].action))
	}

	timeFmt := fmt.Sprintf("%%-%ds", timeW)
	actorFmt := fmt.Sprintf("%%-%ds", actorW)
	actionFmt := fmt.Sprintf("%%-%ds", actionW)

	for _, r := range rows {
		var line string
		if useColors {
			line = fmt.Sprintf("  %s %s %s %s",
				timeStyle.Render(fmt.Sprintf(timeFmt, r.ts)),
				fmt.Sprintf(actorFmt, r.actor),
				actionStyle.Render(fmt.Sprintf(actionFmt, r.action)),
				r.detail,
			)
		} else {
			line = fmt.Sprintf("  "+timeFmt+" "+actorFmt+" "+actionFmt+" %s", r.ts, r.actor, r.action, r.detail)
		}
		lines = append(lines, strings.TrimRight(line, " "))
	}

	return strings.Join(lines, "\n")
}

func init() {
	logCmd.Flags().Int("limit", 20, "Maximum number of entries to show")
	rootCmd.AddCommand(logCmd)
}
