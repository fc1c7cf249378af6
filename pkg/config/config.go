// Package config loads wireform configuration from TOML files.
//
// Configuration is optional: every field has a working default, and a
// missing config file is not an error. The default location is
// ~/.config/wireform/config.toml (respecting XDG_CONFIG_HOME).
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ben-mad-jlp/wireform/pkg/wireframe"
)

// appName is the directory name used under the config root.
const appName = "wireform"

// Config is the top-level configuration.
type Config struct {
	Server   Server   `toml:"server"`
	Cache    CacheCfg `toml:"cache"`
	Defaults Defaults `toml:"defaults"`
}

// Server configures the HTTP facade started by `wireform serve`.
type Server struct {
	// Addr is the listen address, host:port.
	Addr string `toml:"addr"`

	// ReadTimeout and WriteTimeout bound request handling.
	ReadTimeout  duration `toml:"read_timeout"`
	WriteTimeout duration `toml:"write_timeout"`
}

// CacheCfg selects and configures the cache backend.
type CacheCfg struct {
	// Backend is one of "file", "redis", "none".
	Backend string `toml:"backend"`

	// TTL bounds how long layout results stay cached.
	TTL duration `toml:"ttl"`

	// Redis settings, used when Backend is "redis".
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	RedisPrefix   string `toml:"redis_prefix"`
}

// Defaults supplies layout defaults applied when a document leaves them out.
type Defaults struct {
	Viewport    string `toml:"viewport"`
	Arrangement string `toml:"arrangement"`
}

// duration wraps time.Duration with TOML string parsing ("30s", "5m").
type duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML.
func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: Server{
			Addr:         "127.0.0.1:8372",
			ReadTimeout:  duration{10 * time.Second},
			WriteTimeout: duration{30 * time.Second},
		},
		Cache: CacheCfg{
			Backend:     "file",
			TTL:         duration{24 * time.Hour},
			RedisAddr:   "127.0.0.1:6379",
			RedisPrefix: appName + ":",
		},
		Defaults: Defaults{
			Viewport:    string(wireframe.ViewportNarrow),
			Arrangement: string(wireframe.SideBySide),
		},
	}
}

// Path returns the default config file location using the XDG standard.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path, layered over Default().
// A missing file returns the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
