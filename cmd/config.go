package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the optional settings file for the fda tool. Flags and
// environment variables override it; a missing file is not an error.
type Config struct {
	// EODHDAPIToken enables enrichment lookups. The EODHD_API_TOKEN
	// environment variable takes precedence.
	EODHDAPIToken string `yaml:"eodhd_api_token"`

	// Model names the Gemini model used for richer recognition.
	Model string `yaml:"model"`

	// BatchPause is the delay between enrichment batches.
	BatchPause time.Duration `yaml:"batch_pause"`

	// Currency formats market values in reports (ISO 4217 code).
	Currency string `yaml:"currency"`
}

// loadConfig reads the settings file. With an empty path it tries
// $HOME/.fda.yaml and returns a zero config when none exists.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".fda.yaml")
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}

	if tok := os.Getenv("EODHD_API_TOKEN"); tok != "" {
		cfg.EODHDAPIToken = tok
	}
	return cfg, nil
}
