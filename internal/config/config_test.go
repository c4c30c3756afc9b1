// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("new config with API key from env succeeds", func(t *testing.T) {
		t.Setenv("OPENWEATHER_API_KEY", "test-key")
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to create new config: %s", err)
		}
		if conf.Weather.APIKey != "test-key" {
			t.Errorf("expected API key to be 'test-key', got %q", conf.Weather.APIKey)
		}
		if conf.Weather.Units != "metric" {
			t.Errorf("expected default units to be 'metric', got %q", conf.Weather.Units)
		}
		if conf.Weather.Lang != "kr" {
			t.Errorf("expected default lang to be 'kr', got %q", conf.Weather.Lang)
		}
		if conf.Server.Listen != ":8080" {
			t.Errorf("expected default listen address to be ':8080', got %q", conf.Server.Listen)
		}
	})
	t.Run("new config without API key fails", func(t *testing.T) {
		t.Setenv("OPENWEATHER_API_KEY", "")
		t.Setenv("NALSSI_WEATHER_API_KEY", "")
		if _, err := New(); err == nil {
			t.Fatal("expected config without API key to fail")
		}
	})
}

func TestNewFromFile(t *testing.T) {
	t.Run("config file is loaded", func(t *testing.T) {
		dir := t.TempDir()
		content := []byte("locale: ko\nserver:\n  listen: \":9090\"\nweather:\n  api_key: file-key\n  units: imperial\n")
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600); err != nil {
			t.Fatalf("failed to write test config: %s", err)
		}

		conf, err := NewFromFile(dir, "config.yaml")
		if err != nil {
			t.Fatalf("failed to load config from file: %s", err)
		}
		if conf.Server.Listen != ":9090" {
			t.Errorf("expected listen address to be ':9090', got %q", conf.Server.Listen)
		}
		if conf.Weather.APIKey != "file-key" {
			t.Errorf("expected API key to be 'file-key', got %q", conf.Weather.APIKey)
		}
		if conf.Weather.Units != "imperial" {
			t.Errorf("expected units to be 'imperial', got %q", conf.Weather.Units)
		}
		if conf.Locale != "ko" {
			t.Errorf("expected locale to be 'ko', got %q", conf.Locale)
		}
	})
	t.Run("missing config file fails", func(t *testing.T) {
		if _, err := NewFromFile(t.TempDir(), "nope.yaml"); err == nil {
			t.Fatal("expected missing config file to fail")
		}
	})
	t.Run("invalid units fail validation", func(t *testing.T) {
		dir := t.TempDir()
		content := []byte("weather:\n  api_key: file-key\n  units: kelvin\n")
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600); err != nil {
			t.Fatalf("failed to write test config: %s", err)
		}
		if _, err := NewFromFile(dir, "config.yaml"); err == nil {
			t.Fatal("expected invalid units to fail validation")
		}
	})
}
