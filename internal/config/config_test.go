package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "popper.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if c != Default() {
		t.Errorf("got %+v, want defaults", c)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
scores_file = "/tmp/best.json"
muted = true
autopilot = true
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.ScoresFile != "/tmp/best.json" || !c.Muted || !c.Autopilot {
		t.Errorf("overrides not applied: %+v", c)
	}
	if c.ErrorLog != Default().ErrorLog || c.PopSound != Default().PopSound {
		t.Errorf("unset keys lost their defaults: %+v", c)
	}
}

func TestLoadMalformed(t *testing.T) {
	c, err := Load(writeConfig(t, "muted = = yes"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if c != Default() {
		t.Errorf("malformed file should fall back to defaults, got %+v", c)
	}
}

func TestLoadUnknownKeys(t *testing.T) {
	c, err := Load(writeConfig(t, "muted = true\nvolume = 11\n"))
	if err == nil || !strings.Contains(err.Error(), "volume") {
		t.Fatalf("err = %v, want unknown key report", err)
	}
	if !c.Muted {
		t.Errorf("known keys should still apply")
	}
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(EnvPath, "/etc/popper.toml")
	if got := Path(); got != "/etc/popper.toml" {
		t.Errorf("Path() = %q", got)
	}
	t.Setenv(EnvPath, "")
	if got := Path(); got != "popper.toml" {
		t.Errorf("Path() = %q", got)
	}
}
