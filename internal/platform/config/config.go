package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is resolved in three layers: file, then environment, then flags.
// The caller applies flag overrides after Load.
type Config struct {
	APIBaseURL string `yaml:"api_base_url"`
	StateDir   string `yaml:"state_dir"`
	LogPath    string `yaml:"log_path"`
}

// Load reads the optional config file and applies PRAXIS_* environment
// overrides. A missing file is not an error; a missing API base URL is.
func Load(path string) (Config, error) {
	// .env is a developer convenience; absence is normal.
	_ = godotenv.Load()

	cfg := Config{}
	if path == "" {
		path = defaultConfigPath()
	}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to env and defaults
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if v := os.Getenv("PRAXIS_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("PRAXIS_STATE_DIR"); v != "" {
		cfg.StateDir = v
	}
	if v := os.Getenv("PRAXIS_LOG_PATH"); v != "" {
		cfg.LogPath = v
	}

	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".praxis")
	}
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(cfg.StateDir, "praxis.log")
	}
	return cfg, nil
}

// Finalize validates the merged configuration once flag overrides are in.
func (c Config) Finalize() (Config, error) {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return Config{}, fmt.Errorf("api base url is required (flag --api-url, env PRAXIS_API_URL, or config file)")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, fmt.Errorf("api base url %q is not an absolute URL", c.APIBaseURL)
	}
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")
	if err := os.MkdirAll(c.StateDir, 0o700); err != nil {
		return Config{}, fmt.Errorf("create state dir: %w", err)
	}
	return c, nil
}

// CookieJarPath is where the auth cookie survives between invocations.
func (c Config) CookieJarPath() string {
	return filepath.Join(c.StateDir, "cookies.json")
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".praxis", "config.yaml")
}
