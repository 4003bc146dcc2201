// Package config reads the optional popper.toml settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvPath overrides the settings file location.
const EnvPath = "POPPER_CONFIG"

type Config struct {
	ScoresFile  string `toml:"scores_file"`
	ErrorLog    string `toml:"error_log"`
	PopSound    string `toml:"pop_sound"`
	BounceSound string `toml:"bounce_sound"`
	WindowTitle string `toml:"window_title"`
	Muted       bool   `toml:"muted"`
	Autopilot   bool   `toml:"autopilot"`
}

func Default() Config {
	return Config{
		ScoresFile:  "scores.json",
		ErrorLog:    "game_error_log.txt",
		PopSound:    "bubble-pop.wav",
		BounceSound: "bounce.wav",
		WindowTitle: "Cursor Popper",
	}
}

func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return "popper.toml"
}

// Load decodes path over the defaults. A missing file yields the defaults and
// no error. On a malformed file the defaults are returned with the error.
// Unknown keys are reported but the decoded values are kept.
func Load(path string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return c, fmt.Errorf("%s: unknown keys %s", path, strings.Join(names, ", "))
	}
	return c, nil
}
