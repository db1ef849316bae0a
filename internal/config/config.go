package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/lookup/web"
	"github.com/thoreinstein/namecheck/internal/paths"
	"github.com/thoreinstein/namecheck/internal/platform"
	"github.com/thoreinstein/namecheck/internal/probe"
)

// EnvPrefix prefixes environment variable overrides.
const EnvPrefix = "NAMECHECK"

// Config represents the top-level configuration structure.
type Config struct {
	Timeout         time.Duration     `mapstructure:"timeout" yaml:"timeout"`
	UserAgent       string            `mapstructure:"user_agent" yaml:"user_agent"`
	MaxConnsPerHost int               `mapstructure:"max_conns_per_host" yaml:"max_conns_per_host"`
	Platforms       []string          `mapstructure:"platforms" yaml:"platforms"`
	Delegated       Delegated         `mapstructure:"delegated" yaml:"delegated"`
	Endpoints       map[string]string `mapstructure:"endpoints" yaml:"endpoints"`
}

// Delegated configures the delegated lookup phase.
type Delegated struct {
	Enabled     bool `mapstructure:"enabled" yaml:"enabled"`
	Concurrency int  `mapstructure:"concurrency" yaml:"concurrency"`
}

// UserAgent returns the default User-Agent for a build version.
func UserAgent(version string) string {
	return fmt.Sprintf("namecheck/%s (go net/http)", version)
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init(version string) {
	viper.SetConfigName(strings.TrimSuffix(paths.ConfigFileName, ".yaml"))
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	for key, value := range Defaults(version) {
		viper.SetDefault(key, value)
	}
}

// Defaults returns the built-in settings keyed the way they appear in a
// config file. Nested keys use dot notation.
func Defaults(version string) map[string]any {
	return map[string]any{
		"timeout":               probe.DefaultTimeout.String(),
		"user_agent":            UserAgent(version),
		"max_conns_per_host":    probe.DefaultMaxConnsPerHost,
		"platforms":             []string{},
		"delegated.enabled":     true,
		"delegated.concurrency": web.DefaultConcurrency,
		"endpoints":             map[string]string{},
	}
}

// Document nests the flat keys of settings into the shape of a config file.
func Document(settings map[string]any) map[string]any {
	doc := make(map[string]any)
	for key, value := range settings {
		parts := strings.Split(key, ".")
		m := doc
		for _, p := range parts[:len(parts)-1] {
			child, ok := m[p].(map[string]any)
			if !ok {
				child = make(map[string]any)
				m[p] = child
			}
			m = child
		}
		m[parts[len(parts)-1]] = value
	}
	return doc
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back
// to defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errors.Join(errs...), "validating config"), errors.ErrInvalidConfig)
	}
	return &cfg, nil
}

// FileUsed returns the config file that was read, or "" when running on
// defaults.
func FileUsed() string {
	return viper.ConfigFileUsed()
}

// PlatformIDs returns the configured platforms, or every platform when
// none are configured.
func (c *Config) PlatformIDs() ([]platform.ID, error) {
	if len(c.Platforms) == 0 {
		return platform.All(), nil
	}
	ids, err := platform.ParseAll(c.Platforms)
	if err != nil {
		return nil, err
	}
	platform.Sort(ids)
	return ids, nil
}

func (c *Config) endpoints() map[platform.ID]string {
	out := make(map[platform.ID]string, len(c.Endpoints))
	for k, v := range c.Endpoints {
		if id, err := platform.Parse(k); err == nil {
			out[id] = v
		}
	}
	return out
}

// ProbeOptions returns the options of the custom probes.
func (c *Config) ProbeOptions() probe.Options {
	opts := probe.DefaultOptions()
	opts.Timeout = c.Timeout
	opts.UserAgent = c.UserAgent
	opts.MaxConnsPerHost = c.MaxConnsPerHost
	opts.Endpoints = c.endpoints()
	return opts
}

// WebOptions returns the options of the delegated web lookup.
func (c *Config) WebOptions() web.Options {
	return web.Options{
		Timeout:     c.Timeout,
		UserAgent:   c.UserAgent,
		Concurrency: c.Delegated.Concurrency,
		Endpoints:   c.endpoints(),
	}
}
