package mcconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "n_path = 100000\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}
	if cfg.BatchSize != 64 {
		t.Fatalf("BatchSize = %d, want default 64", cfg.BatchSize)
	}
	if cfg.NumWorkers != 4 {
		t.Fatalf("NumWorkers = %d, want default 4", cfg.NumWorkers)
	}
	if cfg.Logger.Level != "info" {
		t.Fatalf("Logger.Level = %q, want default %q", cfg.Logger.Level, "info")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
n_path = 500
antithetic = true
batch_size = 128

[logger]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}
	if cfg.NPath != 500 || !cfg.Antithetic || cfg.BatchSize != 128 {
		t.Fatalf("cfg = %+v, want overridden n_path/antithetic/batch_size", cfg)
	}
	if cfg.Logger.Level != "debug" {
		t.Fatalf("Logger.Level = %q, want %q", cfg.Logger.Level, "debug")
	}
}

func TestLoadRejectsNonPositiveNPath(t *testing.T) {
	path := writeConfig(t, "n_path = 0\n")
	if _, err := Load(path); err == nil {
		t.Fatal("Load with n_path = 0 should fail validation")
	}
}
