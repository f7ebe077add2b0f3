package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	timex "github.com/ferdiebergado/modelstore/internal/pkg/time"
)

// Store kinds selectable at startup.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

type Server struct {
	Host            string         `json:"host,omitempty"`
	Port            int            `json:"port,omitempty"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty"`
}

type Store struct {
	Kind        string         `json:"kind,omitempty"`
	Path        string         `json:"path,omitempty"`
	PingTimeout timex.Duration `json:"ping_timeout,omitempty"`
}

type Config struct {
	Server *Server `json:"server,omitempty"`
	Store  *Store  `json:"store,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("server", c.Server),
		slog.Any("store", c.Store),
	)
}

func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := overrideWithEnv(cfg); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := json.Unmarshal(configFile, &cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return &cfg, nil
}

func overrideWithEnv(cfg *Config) error {
	if host, ok := os.LookupEnv("HOST"); ok {
		cfg.Server.Host = host
	}

	if portStr, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return err
		}
		cfg.Server.Port = port
	}

	if kind, ok := os.LookupEnv("STORE_KIND"); ok {
		cfg.Store.Kind = kind
	}

	if path, ok := os.LookupEnv("STORE_PATH"); ok {
		cfg.Store.Path = path
	}

	return nil
}
