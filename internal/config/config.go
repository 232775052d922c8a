// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Duration decodes TOML strings like "60s" or "2m".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the root configuration structure.
type Config struct {
	Indexer  IndexerConfig  `toml:"indexer"`
	Download DownloadConfig `toml:"download"`
	Search   SearchConfig   `toml:"search"`
}

type IndexerConfig struct {
	URL     string   `toml:"url"`
	Timeout Duration `toml:"timeout"`
}

type DownloadConfig struct {
	Timeout   Duration `toml:"timeout"`
	Directory string   `toml:"directory"`
}

type SearchConfig struct {
	Quality   int  `toml:"quality"`
	Untrusted bool `toml:"untrusted"`
	Closest   bool `toml:"closest"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Indexer: IndexerConfig{
			URL:     "https://nyaa.si",
			Timeout: Duration(30 * time.Second),
		},
		Download: DownloadConfig{
			Timeout: Duration(60 * time.Second),
		},
		Search: SearchConfig{
			Quality: 1080,
		},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "nyaagrab", "config.toml")
}

// Load reads and parses the configuration file. A missing file yields
// the defaults, not an error. Values of the form ${VAR} are substituted
// from the environment; a .env file in the working directory is loaded
// first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content := substituteEnvVars(string(data))
	if _, err := toml.Decode(content, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Re-apply defaults for anything the file zeroed out.
	if cfg.Indexer.URL == "" {
		cfg.Indexer.URL = "https://nyaa.si"
	}
	if cfg.Indexer.Timeout == 0 {
		cfg.Indexer.Timeout = Duration(30 * time.Second)
	}
	if cfg.Download.Timeout == 0 {
		cfg.Download.Timeout = Duration(60 * time.Second)
	}
	if cfg.Search.Quality == 0 {
		cfg.Search.Quality = 1080
	}

	return cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1]
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match
	})
}
