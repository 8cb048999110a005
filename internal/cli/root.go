package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ALT-F4-LLC/trailkit/internal/config"
	"github.com/ALT-F4-LLC/trailkit/internal/db"
	"github.com/ALT-F4-LLC/trailkit/internal/model"
	"github.com/ALT-F4-LLC/trailkit/internal/output"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

type contextKey string

const (
	dbKey  contextKey = "db"
	cfgKey contextKey = "cfg"
)

// CmdError wraps an error with a machine-readable error code for structured output.
type CmdError struct {
	Err  error
	Code output.ErrorCode
}

func (e *CmdError) Error() string { return e.Err.Error() }

func (e *CmdError) Unwrap() error { return e.Err }

func cmdErr(err error, code output.ErrorCode) *CmdError {
	return &CmdError{Err: err, Code: code}
}

// errorCode classifies domain errors into output codes.
func errorCode(err error) output.ErrorCode {
	var (
		malformed  *model.MalformedDocumentError
		validation *model.ValidationError
		outOfRange *model.IndexOutOfRangeError
		trackParse *model.TrackParseError
	)
	switch {
	case errors.As(err, &malformed):
		return output.ErrMalformed
	case errors.As(err, &validation):
		return output.ErrValidation
	case errors.As(err, &outOfRange):
		return output.ErrOutOfRange
	case errors.As(err, &trackParse):
		return output.ErrTrackParse
	case errors.Is(err, db.ErrNotFound), errors.Is(err, os.ErrNotExist):
		return output.ErrNotFound
	default:
		return output.ErrGeneral
	}
}

var rootCmd = &cobra.Command{
	Use:     "trailkit",
	Short:   "Edit bilingual trail descriptions and inspect GPX tracks",
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve()
		if err != nil {
			return err
		}

		ctx := context.WithValue(cmd.Context(), cfgKey, cfg)

		if _, ok := cmd.Annotations["skipDB"]; ok {
			cmd.SetContext(ctx)
			return nil
		}

		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return cmdErr(fmt.Errorf("creating session directory: %w", err), output.ErrGeneral)
		}

		conn, err := db.OpenSession(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open session store: %w", err)
		}

		cmd.SetContext(context.WithValue(ctx, dbKey, conn))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		conn, ok := cmd.Context().Value(dbKey).(*sql.DB)
		if ok && conn != nil {
			return conn.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-essential output")
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func getWriter(cmd *cobra.Command) *output.Writer {
	jsonMode, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return output.New(jsonMode, quietMode)
}

func getCfg(cmd *cobra.Command) *config.Config {
	cfg, _ := cmd.Context().Value(cfgKey).(*config.Config)
	return cfg
}

func getDB(cmd *cobra.Command) *sql.DB {
	conn, _ := cmd.Context().Value(dbKey).(*sql.DB)
	return conn
}

// loadSession returns the current editing session, creating it on first use.
func loadSession(cmd *cobra.Command) (*model.Session, error) {
	s, err := db.EnsureSession(getDB(cmd), getCfg(cmd).Actor())
	if err != nil {
		return nil, cmdErr(fmt.Errorf("loading session: %w", err), output.ErrGeneral)
	}
	return s, nil
}

// saveSession writes the whole session back and logs the action.
func saveSession(cmd *cobra.Command, s *model.Session, action, detail string) error {
	if err := db.SaveSession(getDB(cmd), s, action, detail, getCfg(cmd).Actor()); err != nil {
		return cmdErr(fmt.Errorf("saving session: %w", err), output.ErrGeneral)
	}
	return nil
}

// parsePosition converts a 1-based media position argument.
func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, cmdErr(fmt.Errorf("invalid position %q: must be a number", arg), output.ErrValidation)
	}
	return n, nil
}

// positionErr rewrites a list range error in the 1-based terms users type.
func positionErr(err error, pos int) error {
	var ie *model.IndexOutOfRangeError
	if errors.As(err, &ie) {
		return cmdErr(fmt.Errorf("media item %d does not exist (list has %d items)", pos, ie.Len), output.ErrOutOfRange)
	}
	return cmdErr(err, errorCode(err))
}

// Execute runs the root command and returns an exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		jsonMode, _ := rootCmd.PersistentFlags().GetBool("json")
		quietMode, _ := rootCmd.PersistentFlags().GetBool("quiet")
		w := output.New(jsonMode, quietMode)

		var ce *CmdError
		if errors.As(err, &ce) {
			return w.Error(ce.Err, ce.Code)
		}
		return w.Error(err, errorCode(err))
	}
	return 0
}
