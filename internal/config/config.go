package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	dbFileName = "session.db"
	dotEnvFile = ".env"
)

// environment lists the variables trailkit reads.
type environment struct {
	Path      string `env:"TRAILKIT_PATH"`
	ExportDir string `env:"TRAILKIT_EXPORT_DIR"`
	Author    string `env:"TRAILKIT_AUTHOR"`
}

// Config holds resolved configuration for the session directory and exports.
type Config struct {
	Dir       string // resolved .trailkit directory path
	DBPath    string // full path to session.db
	ExportDir string // default directory for exported documents
	Author    string // TRAILKIT_AUTHOR, empty when unset
	EnvVarSet bool   // whether TRAILKIT_PATH was used
	DotEnv    string // path of the .env file that was loaded, if any
}

// Resolve returns the current configuration. A .env file in the working
// directory is loaded first; variables already set in the process win.
// TRAILKIT_PATH selects the session directory, falling back to
// $PWD/.trailkit. Exports default to the working directory.
func Resolve() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	var loaded string
	dotEnv := filepath.Join(cwd, dotEnvFile)
	if err := godotenv.Load(dotEnv); err == nil {
		loaded = dotEnv
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", dotEnv, err)
	}

	var e environment
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	cfg := &Config{
		Dir:       filepath.Join(cwd, ".trailkit"),
		ExportDir: cwd,
		Author:    e.Author,
		DotEnv:    loaded,
	}
	if e.Path != "" {
		cfg.Dir = e.Path
		cfg.EnvVarSet = true
	}
	if e.ExportDir != "" {
		cfg.ExportDir = e.ExportDir
	}
	cfg.DBPath = filepath.Join(cfg.Dir, dbFileName)

	return cfg, nil
}

// Exists checks if the session directory and DB file both exist.
// It returns an error for non-existence failures (e.g. permission errors).
func (c *Config) Exists() (bool, error) {
	if _, err := os.Stat(c.Dir); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if _, err := os.Stat(c.DBPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Actor returns the name recorded against session activity: TRAILKIT_AUTHOR
// when set, otherwise DefaultAuthor.
func (c *Config) Actor() string {
	if c.Author != "" {
		return c.Author
	}
	return DefaultAuthor()
}

var (
	defaultAuthor     string
	defaultAuthorOnce sync.Once
)

// DefaultAuthor tries git config user.name first and falls back to the OS
// username. The result is cached for the lifetime of the process.
func DefaultAuthor() string {
	defaultAuthorOnce.Do(func() {
		defaultAuthor = resolveAuthor()
	})
	return defaultAuthor
}

func resolveAuthor() string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, "git", "config", "user.name").Output()
	if err == nil {
		if name := strings.TrimSpace(string(out)); name != "" {
			return name
		}
	}

	u, err := user.Current()
	if err == nil && u.Username != "" {
		return u.Username
	}

	return "unknown"
}
