// Package config loads dockerdash settings from defaults, an optional YAML
// file, DOCKERDASH_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix of environment overrides, e.g. DOCKERDASH_HOST.
	EnvPrefix = "DOCKERDASH"
	// GlobalConfigDir is the config directory under the home directory.
	GlobalConfigDir = ".config/dockerdash"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yaml"
)

// Config is the effective configuration.
type Config struct {
	Host          string        `mapstructure:"host" yaml:"host"`
	TLSVerify     bool          `mapstructure:"tls_verify" yaml:"tls_verify"`
	CertPath      string        `mapstructure:"cert_path" yaml:"cert_path,omitempty"`
	Timeout       time.Duration `mapstructure:"timeout" yaml:"timeout"`
	ListInterval  time.Duration `mapstructure:"list_interval" yaml:"list_interval"`
	StatsInterval time.Duration `mapstructure:"stats_interval" yaml:"stats_interval"`
	FrameInterval time.Duration `mapstructure:"frame_interval" yaml:"frame_interval"`
	LogFile       string        `mapstructure:"log_file" yaml:"log_file,omitempty"`
	LogLevel      string        `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Host:          "unix:///var/run/docker.sock",
		Timeout:       5 * time.Second,
		ListInterval:  time.Second,
		StatsInterval: time.Second,
		FrameInterval: 100 * time.Millisecond,
		LogLevel:      "info",
	}
}

// SetDefaults registers the defaults on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("host", d.Host)
	v.SetDefault("tls_verify", d.TLSVerify)
	v.SetDefault("cert_path", d.CertPath)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("list_interval", d.ListInterval)
	v.SetDefault("stats_interval", d.StatsInterval)
	v.SetDefault("frame_interval", d.FrameInterval)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// GlobalPath returns ~/.config/dockerdash/config.yaml, or "" when the home
// directory is unknown.
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
}

// Load reads the config file into v and decodes the result. An explicit path
// must exist; the global file is optional.
func Load(v *viper.Viper, explicit string) (*Config, error) {
	path := explicit
	if path == "" {
		path = GlobalPath()
		if path != "" {
			if _, err := os.Stat(path); err != nil {
				path = ""
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the polling and frame intervals and the log level.
func (c *Config) Validate() error {
	var errs []error

	if c.ListInterval < time.Second {
		errs = append(errs, fmt.Errorf("list_interval %s is below 1s", c.ListInterval))
	}
	if c.StatsInterval < time.Second {
		errs = append(errs, fmt.Errorf("stats_interval %s is below 1s", c.StatsInterval))
	}
	if c.FrameInterval <= 0 || c.FrameInterval > time.Second {
		errs = append(errs, fmt.Errorf("frame_interval %s must be in (0, 1s]", c.FrameInterval))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout %s must be positive", c.Timeout))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
