// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

package openweather

import (
	"encoding/json"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"testing"
	"time"

	"github.com/seohyun-park/nalssi/internal/geoloc"
	"github.com/seohyun-park/nalssi/internal/http"
	"github.com/seohyun-park/nalssi/internal/logger"
	"github.com/seohyun-park/nalssi/internal/testhelper"
	"github.com/seohyun-park/nalssi/internal/weather"
)

const testAPIKey = "0123456789abcdef"

func TestNew(t *testing.T) {
	t.Run("new openweathermap provider succeeds", func(t *testing.T) {
		provider, err := New(http.New(logger.New(slog.LevelInfo)), logger.New(slog.LevelInfo),
			testAPIKey, "metric", "kr")
		if err != nil {
			t.Fatalf("failed to create openweathermap provider: %s", err)
		}
		if provider == nil {
			t.Fatal("expected provider to be non-nil")
		}
	})
	t.Run("openweathermap without http client fails", func(t *testing.T) {
		if _, err := New(nil, logger.New(slog.LevelInfo), testAPIKey, "metric", "kr"); err == nil {
			t.Fatal("expected provider to fail")
		}
	})
	t.Run("openweathermap without API key fails", func(t *testing.T) {
		client := http.New(logger.New(slog.LevelInfo))
		if _, err := New(client, logger.New(slog.LevelInfo), "", "metric", "kr"); err == nil {
			t.Fatal("expected provider to fail")
		}
	})
}

func TestOpenWeather_CurrentByQuery(t *testing.T) {
	t.Run("current conditions parse on success", func(t *testing.T) {
		var gotQuery string
		provider := testProvider(t, "../../../../testdata/owm_current.json", 200, func(req *stdhttp.Request) {
			gotQuery = req.URL.Query().Get("q")
		})
		current, err := provider.CurrentByQuery(t.Context(), "Seoul,KR")
		if err != nil {
			t.Fatalf("failed to fetch current conditions: %s", err)
		}
		if gotQuery != "Seoul,KR" {
			t.Errorf("expected q parameter Seoul,KR, got %s", gotQuery)
		}
		if current.Name != "Seoul" || current.Country != "KR" {
			t.Errorf("expected Seoul/KR, got %s/%s", current.Name, current.Country)
		}
		if current.Temperature != 21.4 {
			t.Errorf("expected temperature 21.4, got %f", current.Temperature)
		}
		if current.ConditionID != 800 || current.Icon != "01d" {
			t.Errorf("expected condition 800/01d, got %d/%s", current.ConditionID, current.Icon)
		}
		if current.UTCOffset != 9*time.Hour {
			t.Errorf("expected UTC offset of 9h, got %s", current.UTCOffset)
		}
		if current.Sunrise.IsZero() || current.Sunset.IsZero() {
			t.Error("expected sunrise and sunset to be set")
		}
	})
	t.Run("unknown place maps to ErrLocationNotFound", func(t *testing.T) {
		provider := testProvider(t, "../../../../testdata/owm_notfound.json", 404, nil)
		_, err := provider.CurrentByQuery(t.Context(), "Nowhereville")
		if !errors.Is(err, weather.ErrLocationNotFound) {
			t.Errorf("expected ErrLocationNotFound, got %s", err)
		}
	})
	t.Run("server error maps to ErrWeatherUnavailable", func(t *testing.T) {
		provider := testProvider(t, "../../../../testdata/owm_current.json", 500, nil)
		_, err := provider.CurrentByQuery(t.Context(), "Seoul,KR")
		if !errors.Is(err, weather.ErrWeatherUnavailable) {
			t.Errorf("expected ErrWeatherUnavailable, got %s", err)
		}
	})
}

func TestOpenWeather_CurrentByCoords(t *testing.T) {
	var gotLat, gotLon string
	provider := testProvider(t, "../../../../testdata/owm_current.json", 200, func(req *stdhttp.Request) {
		gotLat = req.URL.Query().Get("lat")
		gotLon = req.URL.Query().Get("lon")
	})
	current, err := provider.CurrentByCoords(t.Context(), geoloc.Coordinate{Lat: 37.5665, Lon: 126.978})
	if err != nil {
		t.Fatalf("failed to fetch current conditions: %s", err)
	}
	if gotLat != "37.5665" || gotLon != "126.978" {
		t.Errorf("expected lat/lon parameters 37.5665/126.978, got %s/%s", gotLat, gotLon)
	}
	if current.Coord.Lat != 37.5665 {
		t.Errorf("expected latitude 37.5665, got %f", current.Coord.Lat)
	}
}

func TestOpenWeather_Forecast(t *testing.T) {
	t.Run("forecast samples parse on success", func(t *testing.T) {
		var gotCnt string
		provider := testProvider(t, "../../../../testdata/owm_forecast.json", 200, func(req *stdhttp.Request) {
			gotCnt = req.URL.Query().Get("cnt")
		})
		forecast, err := provider.Forecast(t.Context(), geoloc.Coordinate{Lat: 37.5665, Lon: 126.978})
		if err != nil {
			t.Fatalf("failed to fetch forecast: %s", err)
		}
		if gotCnt != forecastCount {
			t.Errorf("expected cnt parameter %s, got %s", forecastCount, gotCnt)
		}
		if len(forecast.Samples) != 4 {
			t.Fatalf("expected 4 samples, got %d", len(forecast.Samples))
		}
		if forecast.UTCOffset != 9*time.Hour {
			t.Errorf("expected UTC offset of 9h, got %s", forecast.UTCOffset)
		}
		if forecast.Samples[3].POP != 0.6 {
			t.Errorf("expected last sample POP 0.6, got %f", forecast.Samples[3].POP)
		}
		if forecast.Samples[2].ConditionID != 500 {
			t.Errorf("expected rain condition 500, got %d", forecast.Samples[2].ConditionID)
		}
	})
	t.Run("unknown coordinates map to ErrLocationNotFound", func(t *testing.T) {
		provider := testProvider(t, "../../../../testdata/owm_notfound.json", 404, nil)
		_, err := provider.Forecast(t.Context(), geoloc.Coordinate{Lat: 0, Lon: 0})
		if !errors.Is(err, weather.ErrLocationNotFound) {
			t.Errorf("expected ErrLocationNotFound, got %s", err)
		}
	})
}

func TestStatusCode_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    statusCode
		wantErr bool
	}{
		{name: "numeric", data: `200`, want: 200},
		{name: "quoted", data: `"404"`, want: 404},
		{name: "null", data: `null`, want: 0},
		{name: "garbage", data: `"abc"`, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var code statusCode
			err := json.Unmarshal([]byte(tc.data), &code)
			if tc.wantErr {
				if err == nil {
					t.Error("expected unmarshal to fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("failed to unmarshal status code: %s", err)
			}
			if code != tc.want {
				t.Errorf("expected status code %d, got %d", tc.want, code)
			}
		})
	}
}

func testProvider(t *testing.T, file string, code int, inspect func(*stdhttp.Request)) *OpenWeather {
	t.Helper()
	rtFn := func(req *stdhttp.Request) (*stdhttp.Response, error) {
		if inspect != nil {
			inspect(req)
		}
		data, err := os.Open(file)
		if err != nil {
			t.Fatalf("failed to open JSON response file: %s", err)
		}

		return &stdhttp.Response{
			StatusCode: code,
			Body:       data,
			Header:     make(stdhttp.Header),
		}, nil
	}
	client := http.New(logger.New(slog.LevelInfo))
	client.Transport = testhelper.MockRoundTripper{Fn: rtFn}
	provider, err := New(client, logger.New(slog.LevelInfo), testAPIKey, "metric", "kr")
	if err != nil {
		t.Fatalf("failed to create openweathermap provider: %s", err)
	}
	return provider
}
