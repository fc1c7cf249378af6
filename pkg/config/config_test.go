package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Default()
	if cfg.Server.Addr != want.Server.Addr {
		t.Errorf("Server.Addr = %q, want default %q", cfg.Server.Addr, want.Server.Addr)
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("Cache.Backend = %q, want file", cfg.Cache.Backend)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
addr = "0.0.0.0:9000"
read_timeout = "5s"

[cache]
backend = "redis"
redis_addr = "redis.internal:6379"
ttl = "1h"

[defaults]
viewport = "wide"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != "0.0.0.0:9000" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout.Duration)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisAddr != "redis.internal:6379" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL.Duration != time.Hour {
		t.Errorf("TTL = %v, want 1h", cfg.Cache.TTL.Duration)
	}
	if cfg.Defaults.Viewport != "wide" {
		t.Errorf("Defaults.Viewport = %q", cfg.Defaults.Viewport)
	}
	// Untouched fields keep their defaults.
	if cfg.Server.WriteTimeout.Duration != 30*time.Second {
		t.Errorf("WriteTimeout = %v, want default 30s", cfg.Server.WriteTimeout.Duration)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("server = \"not a table"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed TOML should fail")
	}
}
