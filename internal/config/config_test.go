package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ferdiebergado/modelstore/internal/config"
)

const testCfg = `
{
  "server": {
    "host": "127.0.0.1",
    "port": 3000,
    "read_timeout": "10s",
    "write_timeout": "10s",
    "idle_timeout": "60s",
    "shutdown_timeout": "5s",
    "max_body_bytes": 1048576
  },
  "store": {
    "kind": "sqlite",
    "path": "data.db",
    "ping_timeout": "5s"
  }
}
`

func writeTestCfg(t *testing.T) string {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(cfgFile, []byte(testCfg), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return cfgFile
}

func TestLoad(t *testing.T) {
	cfgFile := writeTestCfg(t)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		t.Fatalf("config.Load() = %v, want: nil", err)
	}

	if got, want := cfg.Server.Host, "127.0.0.1"; got != want {
		t.Errorf("cfg.Server.Host = %q, want: %q", got, want)
	}

	if got, want := cfg.Server.Port, 3000; got != want {
		t.Errorf("cfg.Server.Port = %d, want: %d", got, want)
	}

	if got, want := cfg.Server.ReadTimeout.Duration, 10*time.Second; got != want {
		t.Errorf("cfg.Server.ReadTimeout = %v, want: %v", got, want)
	}

	if got, want := cfg.Store.Kind, config.StoreSQLite; got != want {
		t.Errorf("cfg.Store.Kind = %q, want: %q", got, want)
	}

	if got, want := cfg.Store.Path, "data.db"; got != want {
		t.Errorf("cfg.Store.Path = %q, want: %q", got, want)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	cfgFile := writeTestCfg(t)

	t.Setenv("PORT", "4000")
	t.Setenv("STORE_KIND", config.StoreMemory)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		t.Fatalf("config.Load() = %v, want: nil", err)
	}

	if got, want := cfg.Server.Port, 4000; got != want {
		t.Errorf("cfg.Server.Port = %d, want: %d", got, want)
	}

	if got, want := cfg.Store.Kind, config.StoreMemory; got != want {
		t.Errorf("cfg.Store.Kind = %q, want: %q", got, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("config.Load() = nil, want: an error")
	}
}
