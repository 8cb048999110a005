package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ALT-F4-LLC/trailkit/internal/db"
	"github.com/ALT-F4-LLC/trailkit/internal/output"
	"github.com/ALT-F4-LLC/trailkit/internal/render"
)

type configInfo struct {
	DBPath          string `json:"db_path"`
	DBSizeBytes     int64  `json:"db_size_bytes"`
	SchemaVersion   int    `json:"schema_version"`
	ExportDir       string `json:"export_dir"`
	Author          string `json:"author"`
	DotEnv          string `json:"dotenv"`
	TrailkitPathEnv string `json:"trailkit_path_env"`
	TrailkitPathSet bool   `json:"trailkit_path_set"`
}

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Display trailkit configuration",
	Annotations: map[string]string{"skipDB": "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		cfg := getCfg(cmd)

		info := configInfo{
			DBPath:          cfg.DBPath,
			ExportDir:       cfg.ExportDir,
			Author:          cfg.Actor(),
			DotEnv:          cfg.DotEnv,
			TrailkitPathEnv: os.Getenv("TRAILKIT_PATH"),
			TrailkitPathSet: cfg.EnvVarSet,
		}

		exists, err := cfg.Exists()
		if err != nil {
			return cmdErr(fmt.Errorf("checking session store: %w", err), output.ErrGeneral)
		}

		if !exists {
			w.Warn("No session store yet. It is created by the first command that edits the session.")
			w.Success(info, formatConfigHuman(info, true))
			return nil
		}

		conn, err := db.Open(cfg.DBPath)
		if err != nil {
			return cmdErr(fmt.Errorf("opening session store: %w", err), output.ErrGeneral)
		}
		defer conn.Close()

		info.SchemaVersion, err = db.SchemaVersion(conn)
		if err != nil {
			return cmdErr(fmt.Errorf("reading schema version: %w", err), output.ErrGeneral)
		}

		stat, err := os.Stat(cfg.DBPath)
		if err != nil {
			return cmdErr(fmt.Errorf("reading session store: %w", err), output.ErrGeneral)
		}
		info.DBSizeBytes = stat.Size()

		w.Success(info, formatConfigHuman(info, false))
		return nil
	},
}

func formatEnvValue(val string) string {
	if val == "" {
		return "(not set)"
	}
	return val
}

type configLine struct {
	key, val string
}

func configLines(info configInfo, notFound bool) []configLine {
	dbPath := info.DBPath
	if notFound {
		dbPath += " (not found)"
	}
	lines := []configLine{{"Session store:", dbPath}}
	if !notFound {
		lines = append(lines,
			configLine{"Store size:", humanize.Bytes(uint64(info.DBSizeBytes))},
			configLine{"Schema version:", fmt.Sprintf("%d", info.SchemaVersion)},
		)
	}
	return append(lines,
		configLine{"Export dir:", info.ExportDir},
		configLine{"Author:", info.Author},
		configLine{".env file:", formatEnvValue(info.DotEnv)},
		configLine{"TRAILKIT_PATH:", formatEnvValue(info.TrailkitPathEnv)},
	)
}

func formatConfigHuman(info configInfo, notFound bool) string {
	lines := configLines(info, notFound)

	if !render.ColorsEnabled() {
		out := make([]string, len(lines))
		for i, l := range lines {
			out[i] = fmt.Sprintf("%-16s %s", l.key, l.val)
		}
		return strings.Join(out, "\n")
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))

	indicator := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("●")
	if notFound {
		indicator = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("●")
	}

	out := []string{headerStyle.Render("Trailkit Configuration"), ""}
	for i, l := range lines {
		key := keyStyle.Render(fmt.Sprintf("%-16s", l.key))
		if i == 0 {
			out = append(out, fmt.Sprintf("  %s %s %s", key, indicator, valStyle.Render(l.val)))
			continue
		}
		out = append(out, fmt.Sprintf("  %s %s", key, valStyle.Render(l.val)))
	}
	return strings.Join(out, "\n")
}

func init() {
	rootCmd.AddCommand(configCmd)
}
