package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// ToolConfig is the subset of Config read by the maintenance commands.
type ToolConfig struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML path comes from CONFIG_PATH, falling back to ./config.yaml; a
// missing fallback file means ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config
	if err := read(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// LoadTool reads only the database and log sections, from the same sources
// as Load.
func LoadTool() (*ToolConfig, error) {
	var cfg ToolConfig
	if err := read(&cfg); err != nil {
		return nil, err
	}
	if cfg.Database.DSN == "" {
		return nil, errors.New("config: validate: database.dsn is required")
	}
	return &cfg, nil
}

func read(dst any) error {
	path, explicit := os.LookupEnv("CONFIG_PATH")
	required := explicit && path != ""
	if !required {
		path = defaultPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, dst); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case required || !errors.Is(statErr, fs.ErrNotExist):
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(dst); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}
