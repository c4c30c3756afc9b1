// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

// Package service orchestrates the location acquisition paths and the
// weather backend into the snapshots the web layer renders.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/seohyun-park/nalssi/internal/alias"
	"github.com/seohyun-park/nalssi/internal/config"
	"github.com/seohyun-park/nalssi/internal/geoloc"
	"github.com/seohyun-park/nalssi/internal/geoloc/provider/ipapi"
	"github.com/seohyun-park/nalssi/internal/geoloc/provider/ipapicom"
	"github.com/seohyun-park/nalssi/internal/geoloc/provider/ipinfo"
	"github.com/seohyun-park/nalssi/internal/http"
	"github.com/seohyun-park/nalssi/internal/logger"
	"github.com/seohyun-park/nalssi/internal/observability"
	"github.com/seohyun-park/nalssi/internal/weather"
	"github.com/seohyun-park/nalssi/internal/weather/provider/openweather"
)

// Snapshot is everything one weather lookup produced: where we looked,
// what the sky does now and what it will do over the next days.
type Snapshot struct {
	Location geoloc.Location

	Current *weather.Current
	Days    []weather.Day
	Outlook []weather.Sample

	// Comfort is the message catalog key for the temperature band label.
	Comfort string

	Sunrise time.Time
	Sunset  time.Time

	GeneratedAt time.Time
}

type Service struct {
	config  *config.Config
	logger  *logger.Logger
	metrics *observability.Metrics

	weather weather.Provider
	ipChain *geoloc.Chain
}

// New wires the default provider set: OpenWeatherMap for weather data and
// the three service IP fallback chain, honoring the per-service disable
// switches from the configuration.
func New(conf *config.Config, log *logger.Logger, metrics *observability.Metrics) (*Service, error) {
	client := http.New(log)

	owm, err := openweather.New(client, log, conf.Weather.APIKey, conf.Weather.Units,
		conf.Weather.Lang)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather provider: %w", err)
	}

	var providers []geoloc.Provider
	if !conf.GeoLocation.DisableIPAPI {
		provider, err := ipapi.New(client)
		if err != nil {
			return nil, fmt.Errorf("failed to create ipapi provider: %w", err)
		}
		providers = append(providers, provider)
	}
	if !conf.GeoLocation.DisableIPAPICom {
		provider, err := ipapicom.New(client)
		if err != nil {
			return nil, fmt.Errorf("failed to create ip-api provider: %w", err)
		}
		providers = append(providers, provider)
	}
	if !conf.GeoLocation.DisableIPInfo {
		provider, err := ipinfo.New(client)
		if err != nil {
			return nil, fmt.Errorf("failed to create ipinfo provider: %w", err)
		}
		providers = append(providers, provider)
	}

	return &Service{
		config:  conf,
		logger:  log,
		metrics: metrics,
		weather: owm,
		ipChain: geoloc.NewChain(providers, log, metrics),
	}, nil
}

// NewWithProviders builds a Service over explicit providers.
func NewWithProviders(conf *config.Config, log *logger.Logger, metrics *observability.Metrics,
	provider weather.Provider, chain *geoloc.Chain,
) *Service {
	return &Service{
		config:  conf,
		logger:  log,
		metrics: metrics,
		weather: provider,
		ipChain: chain,
	}
}

// SearchByName looks up weather for a typed place name. The name runs
// through the alias table first so Korean city and district names reach
// the backend in a form it can resolve.
func (s *Service) SearchByName(ctx context.Context, name string) (*Snapshot, error) {
	resolved := alias.Resolve(name)
	if resolved != name {
		s.logger.Debug("alias resolved", slog.String("input", name),
			slog.String("resolved", resolved))
	}

	start := time.Now()
	current, err := s.weather.CurrentByQuery(ctx, resolved)
	s.metrics.ProviderDuration.WithLabelValues(s.weather.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.WeatherRequests.WithLabelValues("search", "failure").Inc()
		return nil, err
	}

	snapshot, err := s.assemble(ctx, current, geoloc.Location{
		Coordinate: current.Coord,
		Name:       current.Name,
		Country:    current.Country,
		Source:     geoloc.SourceTypedName,
	})
	if err != nil {
		s.metrics.WeatherRequests.WithLabelValues("search", "failure").Inc()
		return nil, err
	}
	s.metrics.WeatherRequests.WithLabelValues("search", "success").Inc()
	return snapshot, nil
}

// WeatherAt looks up weather for a known coordinate, typically a GPS fix
// or a resolved IP location.
func (s *Service) WeatherAt(ctx context.Context, location geoloc.Location) (*Snapshot, error) {
	if !location.Valid() {
		return nil, geoloc.ErrInvalidCoordinate
	}

	start := time.Now()
	current, err := s.weather.CurrentByCoords(ctx, location.Coordinate)
	s.metrics.ProviderDuration.WithLabelValues(s.weather.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.WeatherRequests.WithLabelValues("coords", "failure").Inc()
		return nil, err
	}

	// Keep the backend's place label but the caller's acquisition
	// metadata.
	if location.Name == "" {
		location.Name = current.Name
	}
	if location.Country == "" {
		location.Country = current.Country
	}

	snapshot, err := s.assemble(ctx, current, location)
	if err != nil {
		s.metrics.WeatherRequests.WithLabelValues("coords", "failure").Inc()
		return nil, err
	}
	s.metrics.WeatherRequests.WithLabelValues("coords", "success").Inc()
	return snapshot, nil
}

// LocateByIP resolves the server-observed public IP to a coarse location
// via the fallback chain.
func (s *Service) LocateByIP(ctx context.Context) (geoloc.Location, error) {
	return s.ipChain.Resolve(ctx)
}

func (s *Service) assemble(ctx context.Context, current *weather.Current,
	location geoloc.Location,
) (*Snapshot, error) {
	forecast, err := s.weather.Forecast(ctx, current.Coord)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Location:    location,
		Current:     current,
		Days:        forecast.DailySummaries(),
		Outlook:     forecast.Next24Hours(),
		Comfort:     weather.Comfort(current.Temperature),
		Sunrise:     current.Sunrise,
		Sunset:      current.Sunset,
		GeneratedAt: time.Now().UTC(),
	}

	// Not every backend response carries sun times. Compute them locally
	// when missing.
	if snapshot.Sunrise.IsZero() || snapshot.Sunset.IsZero() {
		localDay := current.ObservedAt.In(time.FixedZone("local", int(current.UTCOffset/time.Second)))
		rise, set := sunrise.SunriseSunset(current.Coord.Lat, current.Coord.Lon,
			localDay.Year(), localDay.Month(), localDay.Day())
		snapshot.Sunrise, snapshot.Sunset = rise, set
	}

	return snapshot, nil
}
