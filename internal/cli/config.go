package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sbgnconv/pkg/dump"
	"github.com/matzehuels/sbgnconv/pkg/errors"
	sbgnio "github.com/matzehuels/sbgnconv/pkg/io"
	"github.com/matzehuels/sbgnconv/pkg/pipeline"
	"github.com/matzehuels/sbgnconv/pkg/server"
)

// Cache backends.
const (
	backendFile  = "file"
	backendNone  = "none"
	backendRedis = "redis"
	backendMongo = "mongo"
)

// Config is the content of config.toml. Flags given on the command line
// override it.
type Config struct {
	Read    ReadConfig    `toml:"read"`
	Write   WriteConfig   `toml:"write"`
	Inspect InspectConfig `toml:"inspect"`
	Cache   CacheConfig   `toml:"cache"`
	Serve   ServeConfig   `toml:"serve"`
}

// ReadConfig holds the [read] section.
type ReadConfig struct {
	From string `toml:"from"`
}

// WriteConfig holds the [write] section.
type WriteConfig struct {
	To            string `toml:"to"`
	NoRender      bool   `toml:"no_render"`
	NoAnnotations bool   `toml:"no_annotations"`
	NoNotes       bool   `toml:"no_notes"`
}

// InspectConfig holds the [inspect] section.
type InspectConfig struct {
	Format string `toml:"format"`
}

// CacheConfig holds the [cache] section.
type CacheConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// RedisConfig holds the [cache.redis] section.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// MongoConfig holds the [cache.mongo] section.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServeConfig holds the [serve] section.
type ServeConfig struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
	Timeout      string `toml:"timeout"`
}

func defaultConfig() *Config {
	return &Config{
		Write:   WriteConfig{To: pipeline.DefaultTo},
		Inspect: InspectConfig{Format: "text"},
		Cache:   CacheConfig{Backend: backendFile},
		Serve: ServeConfig{
			Addr:         server.DefaultAddr,
			MaxBodyBytes: server.DefaultMaxBodyBytes,
			Timeout:      server.DefaultTimeout.String(),
		},
	}
}

// configPath returns the config file location (~/.config/sbgnconv/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads path on top of the defaults. A missing file is only an
// error when the path was given explicitly.
func loadConfig(path string, explicit bool) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Read.From != "" {
		if _, err := sbgnio.Lookup(c.Read.From); err != nil {
			return err
		}
	}
	if _, err := sbgnio.Lookup(c.Write.To); err != nil {
		return err
	}
	if err := validateInspectFormat(c.Inspect.Format); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case backendFile, backendNone:
	case backendRedis:
		if c.Cache.Redis.Addr == "" {
			return errors.New(errors.ErrCodeInvalidInput, "cache.redis.addr is required for the redis backend")
		}
	case backendMongo:
		if c.Cache.Mongo.URI == "" {
			return errors.New(errors.ErrCodeInvalidInput, "cache.mongo.uri is required for the mongo backend")
		}
	default:
		return errors.ValidateFormat(c.Cache.Backend, []string{backendFile, backendMongo, backendNone, backendRedis})
	}
	if _, err := c.Serve.timeout(); err != nil {
		return err
	}
	return nil
}

func (s ServeConfig) timeout() (time.Duration, error) {
	if s.Timeout == "" {
		return server.DefaultTimeout, nil
	}
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid serve.timeout %q", s.Timeout)
	}
	return d, nil
}

// pipelineOptions returns the pipeline options the config implies.
func (c *Config) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		From:                c.Read.From,
		To:                  c.Write.To,
		NoRenderInformation: c.Write.NoRender,
		NoAnnotations:       c.Write.NoAnnotations,
		NoNotes:             c.Write.NoNotes,
	}
}

// inspectFormats are the outputs of the inspect command.
func inspectFormats() []string {
	return append(dump.Formats(), "text")
}

func validateInspectFormat(f string) error {
	if f == "text" {
		return nil
	}
	return errors.ValidateFormat(f, inspectFormats())
}
