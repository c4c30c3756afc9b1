// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

// Package weather defines the provider-neutral weather model. Conditions
// and forecasts are fetched on demand and never cached between requests.
package weather

import (
	"context"
	"errors"
	"time"

	"github.com/seohyun-park/nalssi/internal/geoloc"
)

var (
	// ErrLocationNotFound is returned when the backend cannot resolve the
	// requested place name. This is a user-input problem, not an outage.
	ErrLocationNotFound = errors.New("location not found")
	// ErrWeatherUnavailable is returned for backend failures of any other
	// kind (network errors, server errors, malformed payloads).
	ErrWeatherUnavailable = errors.New("weather data unavailable")
)

// Provider is implemented by each weather API backend.
type Provider interface {
	Name() string
	// CurrentByQuery resolves a free-form place query into current
	// conditions. The backend performs the name lookup.
	CurrentByQuery(ctx context.Context, query string) (*Current, error)
	// CurrentByCoords fetches current conditions for a coordinate.
	CurrentByCoords(ctx context.Context, coord geoloc.Coordinate) (*Current, error)
	// Forecast fetches the forward-looking sample list for a coordinate.
	Forecast(ctx context.Context, coord geoloc.Coordinate) (*Forecast, error)
}

// Current holds one observation. Times are UTC; UTCOffset carries the
// displacement of the observed place for local rendering.
type Current struct {
	Name    string
	Country string
	Coord   geoloc.Coordinate

	Temperature float64
	FeelsLike   float64
	TempMin     float64
	TempMax     float64
	Humidity    int
	Pressure    int

	ConditionID int
	Description string
	Icon        string

	WindSpeed  float64
	Cloudiness int

	UTCOffset time.Duration
	Sunrise   time.Time
	Sunset    time.Time

	ObservedAt time.Time
}

// Sample is one forecast data point, typically on a three hour grid.
type Sample struct {
	At time.Time

	Temperature float64
	FeelsLike   float64
	TempMin     float64
	TempMax     float64
	Humidity    int

	ConditionID int
	Description string
	Icon        string

	// POP is the precipitation probability in the range 0 to 1.
	POP float64
}

// Forecast is the raw sample list plus the place metadata needed to group
// the samples into local calendar days.
type Forecast struct {
	Name      string
	Country   string
	Coord     geoloc.Coordinate
	UTCOffset time.Duration

	Samples []Sample
}
