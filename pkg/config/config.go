// Package config loads the sitenav tool configuration from defaults, an
// optional YAML file and SITENAV_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mchmarny/sitenav/pkg/nav"
	"github.com/mchmarny/sitenav/pkg/server"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "SITENAV_"

// Config holds the settings of the build and serve commands.
type Config struct {
	// Src is the directory holding the site sources.
	Src string `koanf:"src"`

	// Out is the directory the rendered site is written to.
	Out string `koanf:"out"`

	// BasePath is prepended to every page location, e.g. "/sajeevan16.github.io".
	BasePath string `koanf:"base_path"`

	// SiteRoot is the location treated as the home view.
	SiteRoot string `koanf:"site_root"`

	// Include lists glob patterns of pages that get a navigation menu.
	Include []string `koanf:"include"`

	// Exclude lists glob patterns of files skipped entirely.
	Exclude []string `koanf:"exclude"`

	// Concurrency bounds the number of pages processed at once.
	Concurrency int `koanf:"concurrency"`

	// Host is the interface the preview server binds to.
	Host string `koanf:"host"`

	// Port is the preview server port.
	Port int `koanf:"port"`

	// TLSCert and TLSKey enable HTTPS on the preview server when both are set.
	TLSCert string `koanf:"tls_cert"`
	TLSKey  string `koanf:"tls_key"`

	// ReadTimeout, WriteTimeout, IdleTimeout and ShutdownTimeout tune the preview server.
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// MaxHeaderBytes caps request header size on the preview server.
	MaxHeaderBytes int `koanf:"max_header_bytes"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat is json or text.
	LogFormat string `koanf:"log_format"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Src:             ".",
		Out:             "_site",
		SiteRoot:        nav.DefaultRoot,
		Include:         []string{"**/*.html"},
		Exclude:         []string{".git/**", "_site/**"},
		Concurrency:     4,
		Host:            server.DefaultHost,
		Port:            server.DefaultPort,
		ReadTimeout:     server.DefaultReadTimeout,
		WriteTimeout:    server.DefaultWriteTimeout,
		IdleTimeout:     server.DefaultIdleTimeout,
		ShutdownTimeout: server.DefaultShutdownTimeout,
		MaxHeaderBytes:  server.DefaultMaxHeaderBytes,
		LogLevel:        "info",
		LogFormat:       "json",
	}
}

// Load reads path, when it exists, over the defaults and then overlays
// environment variables: SITENAV_BASE_PATH -> base_path.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	// lists are replaced, not merged element-wise, by file and env values
	defaults := Default()
	cfg.Include, cfg.Exclude = nil, nil

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if len(cfg.Include) == 0 {
		cfg.Include = defaults.Include
	}
	if len(cfg.Exclude) == 0 {
		cfg.Exclude = defaults.Exclude
	}

	return cfg, nil
}

// ServerOptions translates the preview server settings into server options.
func (c *Config) ServerOptions() []server.Option {
	opts := []server.Option{
		server.WithHost(c.Host),
		server.WithPort(c.Port),
		server.WithReadTimeout(c.ReadTimeout),
		server.WithWriteTimeout(c.WriteTimeout),
		server.WithIdleTimeout(c.IdleTimeout),
		server.WithShutdownTimeout(c.ShutdownTimeout),
		server.WithMaxHeaderBytes(c.MaxHeaderBytes),
	}

	if c.TLSCert != "" && c.TLSKey != "" {
		opts = append(opts, server.WithTLS(server.TLSConfig{CertFile: c.TLSCert, KeyFile: c.TLSKey}))
	}

	return opts
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	var errs []error

	if c.Src == "" {
		errs = append(errs, errors.New("src is required"))
	}
	if c.Out == "" {
		errs = append(errs, errors.New("out is required"))
	}
	if c.Src != "" && c.Src == c.Out {
		errs = append(errs, fmt.Errorf("out must differ from src %q", c.Src))
	}
	if c.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("concurrency must be positive, got %d", c.Concurrency))
	}
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d", c.Port))
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		errs = append(errs, errors.New("tls_cert and tls_key must be set together"))
	}
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 || c.IdleTimeout < 0 || c.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("timeouts must not be negative"))
	}
	if c.MaxHeaderBytes < 0 {
		errs = append(errs, fmt.Errorf("max_header_bytes must not be negative, got %d", c.MaxHeaderBytes))
	}

	return errors.Join(errs...)
}
