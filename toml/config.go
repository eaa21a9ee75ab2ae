// Package toml provides file-based configuration for llmsget using
// TOML.
package toml

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultDirName is the configuration directory under the user's home.
const DefaultDirName = ".llmsget"

// Config is the llmsget configuration file.
type Config struct {
	Discovery DiscoveryConfig `toml:"discovery"`
	HTTP      HTTPConfig      `toml:"http"`
	Output    OutputConfig    `toml:"output"`
	Gemini    GeminiConfig    `toml:"gemini"`
}

// DiscoveryConfig tunes the discovery pipeline.
type DiscoveryConfig struct {
	// TimeoutSeconds is the wall-clock budget for one discovery run.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// Strategies restricts discovery to the named strategies.
	// Empty means all.
	Strategies []string `toml:"strategies"`

	// CacheTTLMinutes controls how long discovery results are cached.
	CacheTTLMinutes int `toml:"cache_ttl_minutes"`
}

// HTTPConfig tunes outbound requests.
type HTTPConfig struct {
	UserAgent         string  `toml:"user_agent"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// OutputConfig controls where extractions are written.
type OutputConfig struct {
	Dir string `toml:"dir"`
}

// GeminiConfig configures install.md synthesis.
type GeminiConfig struct {
	// APIKey overrides the GEMINI_API_KEY environment variable.
	APIKey string `toml:"api_key"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Discovery: DiscoveryConfig{
			TimeoutSeconds:  30,
			CacheTTLMinutes: 60,
		},
		HTTP: HTTPConfig{
			RequestsPerSecond: 4,
		},
		Output: OutputConfig{
			Dir: "llms-docs",
		},
	}
}

// DefaultPath returns the default config file location,
// ~/.llmsget/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName, "config.toml"), nil
}

// Load reads the config at path, layering file values over defaults.
// A missing file yields the defaults without error; a malformed file
// is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Timeout returns the discovery budget as a duration.
func (c *Config) Timeout() time.Duration {
	if c.Discovery.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Discovery.TimeoutSeconds) * time.Second
}

// CacheTTL returns the discovery cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	if c.Discovery.CacheTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.Discovery.CacheTTLMinutes) * time.Minute
}
