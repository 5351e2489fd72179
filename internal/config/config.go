// Package config provides Viper-based configuration loading for the stats reporter.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SteamConfig holds Steam Web API connection settings.
type SteamConfig struct {
	// BaseURL is the scheme and host of the Steam Web API.
	BaseURL string `mapstructure:"base_url"`
	// AppID is the Steam application whose stats are requested (440 is TF2).
	AppID int `mapstructure:"app_id"`
	// Timeout bounds each HTTP request. Zero disables the client timeout.
	Timeout time.Duration `mapstructure:"timeout"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent"`
}

// CatalogConfig holds the description catalog location.
type CatalogConfig struct {
	// Path is the JSON or YAML file mapping stat names to descriptions.
	Path string `mapstructure:"path"`
}

// ReportConfig holds report rendering settings.
type ReportConfig struct {
	// OutputPath is the Markdown file written (and overwritten) on every run.
	OutputPath string `mapstructure:"output_path"`
	// TemplatesDir optionally overrides the embedded templates. Empty means embedded.
	TemplatesDir string `mapstructure:"templates_dir"`
	// DefaultPlayerName is used when the player summary cannot be fetched.
	DefaultPlayerName string `mapstructure:"default_player_name"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Steam   SteamConfig   `mapstructure:"steam"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Report  ReportConfig  `mapstructure:"report"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateSteam(c.Steam); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateCatalog(c.Catalog); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateReport(c.Report); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSteam(s SteamConfig) error {
	var errs []string
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("steam.base_url must be an absolute URL, got %q", s.BaseURL))
	}
	if s.AppID < 1 {
		errs = append(errs, fmt.Sprintf("steam.app_id must be >= 1, got %d", s.AppID))
	}
	if s.Timeout < 0 {
		errs = append(errs, "steam.timeout must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateCatalog(c CatalogConfig) error {
	if c.Path == "" {
		return errors.New("catalog.path must not be empty")
	}
	return nil
}

func validateReport(r ReportConfig) error {
	var errs []string
	if r.OutputPath == "" {
		errs = append(errs, "report.output_path must not be empty")
	}
	if r.DefaultPlayerName == "" {
		errs = append(errs, "report.default_player_name must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with TF2STATS_ prefix
	v.SetEnvPrefix("TF2STATS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns a Viper instance populated only with default values.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("steam.base_url", "https://api.steampowered.com")
	v.SetDefault("steam.app_id", 440)
	v.SetDefault("steam.timeout", "30s")
	v.SetDefault("steam.user_agent", "tf2stats/1.0")

	v.SetDefault("catalog.path", "stat_names.json")

	v.SetDefault("report.output_path", "stats.md")
	v.SetDefault("report.templates_dir", "")
	v.SetDefault("report.default_player_name", "User")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
