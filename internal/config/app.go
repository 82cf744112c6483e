package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Cache backends understood by the server
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// AppConfig is the server configuration, read from fincalc.toml
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
}

// ServerConfig controls the HTTP listener
type ServerConfig struct {
	Port         int    `toml:"port"`
	Mode         string `toml:"mode"` // gin mode: debug, release or test
	ReadTimeout  string `toml:"read_timeout"`
	WriteTimeout string `toml:"write_timeout"`
}

// CacheConfig selects the result cache
type CacheConfig struct {
	Backend   string `toml:"backend"`
	RedisAddr string `toml:"redis_addr"`
	TTL       string `toml:"ttl"`
}

// DefaultAppConfig returns the configuration used when no file is present
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:         8080,
			Mode:         "release",
			ReadTimeout:  "10s",
			WriteTimeout: "10s",
		},
		Cache: CacheConfig{
			Backend:   CacheMemory,
			RedisAddr: "localhost:6379",
			TTL:       "1h",
		},
	}
}

// LoadAppConfig reads a TOML file over the defaults. A missing file is not an error.
func LoadAppConfig(path string) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ports, durations and the cache backend name
func (c *AppConfig) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode %q must be debug, release or test", c.Server.Mode)
	}
	if _, err := c.ReadTimeout(); err != nil {
		return err
	}
	if _, err := c.WriteTimeout(); err != nil {
		return err
	}

	switch c.Cache.Backend {
	case CacheMemory, CacheNone:
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("cache.redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown cache.backend %q", c.Cache.Backend)
	}
	if _, err := c.CacheTTL(); err != nil {
		return err
	}
	return nil
}

// Addr returns the listen address for the configured port
func (c *AppConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *AppConfig) ReadTimeout() (time.Duration, error) {
	return parseDuration("server.read_timeout", c.Server.ReadTimeout)
}

func (c *AppConfig) WriteTimeout() (time.Duration, error) {
	return parseDuration("server.write_timeout", c.Server.WriteTimeout)
}

// CacheTTL is the lifetime of cached results; zero keeps them until evicted
func (c *AppConfig) CacheTTL() (time.Duration, error) {
	return parseDuration("cache.ttl", c.Cache.TTL)
}

func parseDuration(key, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s cannot be negative", key)
	}
	return d, nil
}
