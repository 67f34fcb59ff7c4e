package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/afero"
)

// PathEnv names the environment variable that points at a config file.
const PathEnv = "LION_CONFIG"

// DefaultPath is tried when no path is given.
const DefaultPath = "lion.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The file is path, else $LION_CONFIG, else ./lion.yaml if it exists. An
// explicitly named file must exist.
func Load(fsys afero.Fs, path string) (*Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = os.Getenv(PathEnv)
		explicit = path != ""
	}

	if !explicit {
		path = DefaultPath
	}

	data, err := afero.ReadFile(fsys, path)

	switch {
	case err == nil && len(bytes.TrimSpace(data)) == 0:
	case err == nil:
		if err := cleanenv.ParseYAML(bytes.NewReader(data), &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
