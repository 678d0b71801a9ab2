package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Store Store `yaml:"store"`
	Data  Data  `yaml:"data"`
	Media Media `yaml:"media"`
}

type Store struct {
	Path string `yaml:"path"`
}

// Data points at the catalog inputs. When Dir is empty the binaries fall
// back to the embedded bundled data.
type Data struct {
	Dir string `yaml:"dir"`
}

type Media struct {
	AssetsDir string `yaml:"assets_dir"`
	Extension string `yaml:"extension"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix GYMKIT_ and underscore-separated paths:
//
//	GYMKIT_STORE_PATH, GYMKIT_DATA_DIR,
//	GYMKIT_MEDIA_ASSETS_DIR, GYMKIT_MEDIA_EXTENSION
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GYMKIT_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("GYMKIT_DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("GYMKIT_MEDIA_ASSETS_DIR"); v != "" {
		cfg.Media.AssetsDir = v
	}
	if v := os.Getenv("GYMKIT_MEDIA_EXTENSION"); v != "" {
		cfg.Media.Extension = v
	}
}

func (c *Config) validate() error {
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	return nil
}
