package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL points at the development backend. An empty api_url is
// also valid and means paths are issued as-is (relative, same origin as
// whatever proxy fronts the client).
const DefaultAPIURL = "http://localhost:5000"

// Environment variables understood by the client
const (
	EnvAPIURL   = "BOOKCTL_API_URL"
	EnvDataDir  = "BOOKCTL_DATA_DIR"
	EnvLogLevel = "BOOKCTL_LOG_LEVEL"
)

// Config holds the resolved client settings
type Config struct {
	// APIURL is the booking backend base URL
	APIURL string `yaml:"api_url"`
	// DataDir holds the session database and config file
	DataDir string `yaml:"data_dir"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// Load resolves configuration with precedence environment > config file >
// defaults. Command-line flags are applied on top by the caller. A .env
// file in the working directory is honored before environment reads.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:   DefaultAPIURL,
		DataDir:  defaultDataDir(),
		LogLevel: "info",
	}

	// The data dir env var has to win before the config file is looked
	// up, since the file lives inside the data dir.
	if v, ok := os.LookupEnv(EnvDataDir); ok {
		cfg.DataDir = v
	}

	if err := cfg.applyFile(filepath.Join(cfg.DataDir, "config.yaml")); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	return cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bookctl"
	}
	return filepath.Join(home, ".bookctl")
}

// applyFile overlays settings from a YAML config file. A missing file is
// fine; a malformed one is an error the user should see.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointer fields so an explicit empty api_url (same-origin mode) is
	// distinguishable from an absent key.
	var f struct {
		APIURL   *string `yaml:"api_url"`
		DataDir  *string `yaml:"data_dir"`
		LogLevel *string `yaml:"log_level"`
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if f.APIURL != nil {
		c.APIURL = *f.APIURL
	}
	if f.DataDir != nil {
		c.DataDir = *f.DataDir
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	return nil
}

// applyEnv overlays settings from the environment. LookupEnv keeps an
// explicitly empty BOOKCTL_API_URL meaningful.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvAPIURL); ok {
		c.APIURL = v
	}
	if v, ok := os.LookupEnv(EnvDataDir); ok {
		c.DataDir = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
}
