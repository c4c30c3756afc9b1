// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

// Package config loads and validates the service configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Xuanwo/go-locale"
	"github.com/joho/godotenv"
	"github.com/kkyr/fig"
)

const configEnv = "NALSSI"

// DefaultLocale is used when neither the config nor the host environment
// provide a usable locale. The UI and the weather descriptions are Korean
// by default.
const DefaultLocale = "ko"

// Config represents the application's configuration structure.
type Config struct {
	Locale   string     `fig:"locale"`
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	Server struct {
		Listen       string        `fig:"listen" default:":8080"`
		ReadTimeout  time.Duration `fig:"read_timeout" default:"10s"`
		WriteTimeout time.Duration `fig:"write_timeout" default:"30s"`
	} `fig:"server"`

	Weather struct {
		// OpenWeatherMap API key. Falls back to the OPENWEATHER_API_KEY
		// environment variable (optionally loaded from a .env file).
		APIKey string `fig:"api_key"`
		// Allowed values: metric, imperial
		Units string `fig:"units" default:"metric"`
		// Language code for the provider's description strings.
		Lang string `fig:"lang" default:"kr"`
	} `fig:"weather"`

	GeoLocation struct {
		DisableIPAPI    bool `fig:"disable_ipapi"`
		DisableIPAPICom bool `fig:"disable_ipapicom"`
		DisableIPInfo   bool `fig:"disable_ipinfo"`
	} `fig:"geolocation"`
}

// NewFromFile reads the configuration from the given file and path.
func NewFromFile(path, file string) (*Config, error) {
	loadDotEnv()
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

// New reads the configuration from the environment only.
func New() (*Config, error) {
	loadDotEnv()
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.Weather.Units != "metric" && c.Weather.Units != "imperial" {
		return fmt.Errorf("invalid units: %s", c.Weather.Units)
	}
	if c.Weather.APIKey == "" {
		c.Weather.APIKey = os.Getenv("OPENWEATHER_API_KEY")
	}
	if c.Weather.APIKey == "" {
		return fmt.Errorf("no OpenWeatherMap API key configured")
	}
	if c.Locale == "" {
		c.Locale = detectLocale()
	}
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}

	return nil
}

// loadDotEnv makes a .env file in the working directory available to the
// environment-based lookups. A missing file is not an error.
func loadDotEnv() {
	_ = godotenv.Load()
}

func detectLocale() string {
	tag, err := locale.Detect()
	if err != nil {
		return DefaultLocale
	}
	return tag.String()
}
