package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("TRAILKIT_PATH", "")
	t.Setenv("TRAILKIT_EXPORT_DIR", "")
	t.Setenv("TRAILKIT_AUTHOR", "")

	cfg, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	cwd, _ := os.Getwd()
	if cfg.Dir != filepath.Join(cwd, ".trailkit") {
		t.Errorf("Dir = %q", cfg.Dir)
	}
	if cfg.DBPath != filepath.Join(cwd, ".trailkit", "session.db") {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ExportDir != cwd {
		t.Errorf("ExportDir = %q, want %q", cfg.ExportDir, cwd)
	}
	if cfg.EnvVarSet {
		t.Error("EnvVarSet = true, want false")
	}
	if cfg.DotEnv != "" {
		t.Errorf("DotEnv = %q, want empty", cfg.DotEnv)
	}
}

func TestResolveFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	custom := filepath.Join(t.TempDir(), "state")
	t.Setenv("TRAILKIT_PATH", custom)
	t.Setenv("TRAILKIT_EXPORT_DIR", "/tmp/exports")
	t.Setenv("TRAILKIT_AUTHOR", "ranger")

	cfg, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Dir != custom || !cfg.EnvVarSet {
		t.Errorf("Dir = %q, EnvVarSet = %v", cfg.Dir, cfg.EnvVarSet)
	}
	if cfg.ExportDir != "/tmp/exports" {
		t.Errorf("ExportDir = %q", cfg.ExportDir)
	}
	if cfg.Actor() != "ranger" {
		t.Errorf("Actor() = %q, want ranger", cfg.Actor())
	}
}

func TestResolveLoadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("TRAILKIT_EXPORT_DIR", "")
	os.Unsetenv("TRAILKIT_EXPORT_DIR")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TRAILKIT_EXPORT_DIR=/srv/trails\n"), 0o644); err != nil {
		t.Fatalf("writing .env: %v", err)
	}

	cfg, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.ExportDir != "/srv/trails" {
		t.Errorf("ExportDir = %q, want value from .env", cfg.ExportDir)
	}
	if cfg.DotEnv == "" {
		t.Error("DotEnv not recorded")
	}
	os.Unsetenv("TRAILKIT_EXPORT_DIR")
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Dir: filepath.Join(dir, ".trailkit"), DBPath: filepath.Join(dir, ".trailkit", "session.db")}

	ok, err := cfg.Exists()
	if err != nil || ok {
		t.Fatalf("Exists() = %v, %v; want false, nil", ok, err)
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.DBPath, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	ok, err = cfg.Exists()
	if err != nil || !ok {
		t.Fatalf("Exists() = %v, %v; want true, nil", ok, err)
	}
}
