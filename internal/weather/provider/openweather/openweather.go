// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

// Package openweather implements the OpenWeatherMap backend for current
// conditions and the five day forecast.
package openweather

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/seohyun-park/nalssi/internal/geoloc"
	"github.com/seohyun-park/nalssi/internal/http"
	"github.com/seohyun-park/nalssi/internal/logger"
	"github.com/seohyun-park/nalssi/internal/weather"
)

const (
	name             = "openweathermap"
	currentEndpoint  = "https://api.openweathermap.org/data/2.5/weather"
	forecastEndpoint = "https://api.openweathermap.org/data/2.5/forecast"
	apiTimeout       = time.Second * 10

	// forecastCount requests the full five days of three hour samples.
	forecastCount = "40"
)

type OpenWeather struct {
	apiKey string
	units  string
	lang   string
	log    *logger.Logger
	http   *http.Client
}

func New(http *http.Client, log *logger.Logger, apiKey, units, lang string) (*OpenWeather, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	return &OpenWeather{apiKey: apiKey, units: units, lang: lang, http: http, log: log}, nil
}

func (o *OpenWeather) Name() string {
	return name
}

// CurrentByQuery resolves a place query via the q parameter. The backend
// answers 404 with cod "404" for unknown places, which maps to
// ErrLocationNotFound.
func (o *OpenWeather) CurrentByQuery(ctx context.Context, placeQuery string) (*weather.Current, error) {
	query := o.baseQuery()
	query.Set("q", placeQuery)
	return o.fetchCurrent(ctx, query)
}

// CurrentByCoords fetches current conditions via the lat/lon parameters.
func (o *OpenWeather) CurrentByCoords(ctx context.Context, coord geoloc.Coordinate) (*weather.Current, error) {
	query := o.baseQuery()
	query.Set("lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	return o.fetchCurrent(ctx, query)
}

func (o *OpenWeather) fetchCurrent(ctx context.Context, query url.Values) (*weather.Current, error) {
	res := new(currentResponse)
	code, err := o.http.GetWithTimeout(ctx, currentEndpoint, res, query, nil, apiTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", weather.ErrWeatherUnavailable, err)
	}
	if err := checkStatus(code, res.Cod); err != nil {
		return nil, err
	}

	current := &weather.Current{
		Name:        res.Name,
		Country:     res.Sys.Country,
		Coord:       geoloc.Coordinate{Lat: res.Coord.Lat, Lon: res.Coord.Lon},
		Temperature: res.Main.Temp,
		FeelsLike:   res.Main.FeelsLike,
		TempMin:     res.Main.TempMin,
		TempMax:     res.Main.TempMax,
		Humidity:    res.Main.Humidity,
		Pressure:    res.Main.Pressure,
		WindSpeed:   res.Wind.Speed,
		Cloudiness:  res.Clouds.All,
		UTCOffset:   time.Duration(res.Timezone) * time.Second,
		ObservedAt:  time.Unix(res.Dt, 0).UTC(),
	}
	if res.Sys.Sunrise > 0 {
		current.Sunrise = time.Unix(res.Sys.Sunrise, 0).UTC()
	}
	if res.Sys.Sunset > 0 {
		current.Sunset = time.Unix(res.Sys.Sunset, 0).UTC()
	}
	if len(res.Weather) > 0 {
		current.ConditionID = res.Weather[0].ID
		current.Description = res.Weather[0].Description
		current.Icon = res.Weather[0].Icon
	}
	return current, nil
}

// Forecast fetches the three hour sample list for a coordinate.
func (o *OpenWeather) Forecast(ctx context.Context, coord geoloc.Coordinate) (*weather.Forecast, error) {
	query := o.baseQuery()
	query.Set("lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	query.Set("cnt", forecastCount)

	res := new(forecastResponse)
	code, err := o.http.GetWithTimeout(ctx, forecastEndpoint, res, query, nil, apiTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", weather.ErrWeatherUnavailable, err)
	}
	if err := checkStatus(code, res.Cod); err != nil {
		return nil, err
	}

	forecast := &weather.Forecast{
		Name:      res.City.Name,
		Country:   res.City.Country,
		Coord:     geoloc.Coordinate{Lat: res.City.Coord.Lat, Lon: res.City.Coord.Lon},
		UTCOffset: time.Duration(res.City.Timezone) * time.Second,
		Samples:   make([]weather.Sample, 0, len(res.List)),
	}
	for _, entry := range res.List {
		sample := weather.Sample{
			At:          time.Unix(entry.Dt, 0).UTC(),
			Temperature: entry.Main.Temp,
			FeelsLike:   entry.Main.FeelsLike,
			TempMin:     entry.Main.TempMin,
			TempMax:     entry.Main.TempMax,
			Humidity:    entry.Main.Humidity,
			POP:         entry.Pop,
		}
		if len(entry.Weather) > 0 {
			sample.ConditionID = entry.Weather[0].ID
			sample.Description = entry.Weather[0].Description
			sample.Icon = entry.Weather[0].Icon
		}
		forecast.Samples = append(forecast.Samples, sample)
	}
	return forecast, nil
}

func (o *OpenWeather) baseQuery() url.Values {
	query := url.Values{}
	query.Set("appid", o.apiKey)
	query.Set("units", o.units)
	query.Set("lang", o.lang)
	return query
}

// checkStatus folds the HTTP status and the in-band cod field into one
// verdict. Either can signal the 404.
func checkStatus(httpCode int, cod statusCode) error {
	if httpCode == 404 || cod == 404 {
		return weather.ErrLocationNotFound
	}
	if httpCode < 200 || httpCode > 299 {
		return fmt.Errorf("%w: unexpected response code %d", weather.ErrWeatherUnavailable, httpCode)
	}
	if cod != 0 && cod != 200 {
		return fmt.Errorf("%w: unexpected API status %d", weather.ErrWeatherUnavailable, int(cod))
	}
	return nil
}
