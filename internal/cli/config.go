package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/AndySiamas/LayoutLens/pkg/errors"
	"github.com/AndySiamas/LayoutLens/pkg/validate"
)

// defaultConfigFile is read from the working directory when --config is not
// given. A missing default file is not an error.
const defaultConfigFile = "layoutlens.toml"

// Environment variables that override the config file.
const (
	envRedisURL = "LAYOUTLENS_REDIS_URL"
	envMongoURI = "LAYOUTLENS_MONGO_URI"
	envRunsDir  = "LAYOUTLENS_RUNS_DIR"
	envAddr     = "LAYOUTLENS_ADDR"
)

// defaultAddr is the HTTP listen address for serve.
const defaultAddr = ":8080"

// Config is the layoutlens.toml file.
//
//	[tolerances]
//	boundary_tolerance = 0.02
//	wall_max_distance  = 0.35
//
//	[cache]
//	redis_url = "redis://localhost:6379/0"
//
//	[store]
//	runs_dir = "runs"
//
//	[server]
//	addr = ":8080"
type Config struct {
	Tolerances validate.Options `toml:"tolerances"`
	Cache      CacheConfig      `toml:"cache"`
	Store      StoreConfig      `toml:"store"`
	Server     ServerConfig     `toml:"server"`
}

// CacheConfig selects the report cache. RedisURL wins over Dir.
type CacheConfig struct {
	Disabled bool   `toml:"disabled"`
	Dir      string `toml:"dir"`
	RedisURL string `toml:"redis_url"`
}

// StoreConfig selects where rejected runs are kept. MongoURI wins over
// RunsDir; with neither, runs are not kept.
type StoreConfig struct {
	RunsDir  string `toml:"runs_dir"`
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

// ServerConfig configures serve.
type ServerConfig struct {
	Addr string `toml:"addr"`
	// MaxBodyBytes caps request bodies; zero uses the server default.
	MaxBodyBytes int64 `toml:"max_body_bytes"`
}

func defaultConfig() *Config {
	return &Config{
		Tolerances: validate.DefaultOptions(),
		Server:     ServerConfig{Addr: defaultAddr},
	}
}

// loadConfig reads the config file at path, then applies environment
// overrides. An empty path reads defaultConfigFile if it exists. Unknown
// keys are rejected so typos do not silently fall back to defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat config: %w", err)
		}
		if explicit {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config file %s not found", path)
		}
	} else {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}

	cfg.applyEnv(os.Getenv)

	if err := cfg.Tolerances.Validate(); err != nil {
		return nil, err
	}
	cfg.Tolerances = cfg.Tolerances.WithDefaults()
	if cfg.Server.MaxBodyBytes < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "server.max_body_bytes must not be negative")
	}
	return cfg, nil
}

// applyEnv overrides connection settings from the environment. getenv is
// os.Getenv outside tests.
func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(envRedisURL); v != "" {
		c.Cache.RedisURL = v
	}
	if v := getenv(envMongoURI); v != "" {
		c.Store.MongoURI = v
	}
	if v := getenv(envRunsDir); v != "" {
		c.Store.RunsDir = v
	}
	if v := getenv(envAddr); v != "" {
		c.Server.Addr = v
	}
}
