// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

// Package ipapi implements the ipapi.co IP geolocation service. It is the
// first and most precise service in the fallback chain, but rate limits
// aggressively.
package ipapi

import (
	"context"
	"fmt"
	"time"

	"github.com/seohyun-park/nalssi/internal/geoloc"
	"github.com/seohyun-park/nalssi/internal/http"
)

const (
	APIEndpoint   = "https://ipapi.co/json/"
	LookupTimeout = time.Second * 5
	name          = "ipapi"
)

type Provider struct {
	name string
	http *http.Client
}

// APIResult is the subset of the ipapi.co payload the chain consumes.
// Coordinates are pointers so a missing or null field is distinguishable
// from a legitimate zero.
type APIResult struct {
	IP          string   `json:"ip"`
	City        string   `json:"city"`
	Region      string   `json:"region"`
	CountryName string   `json:"country_name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

func New(http *http.Client) (*Provider, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	return &Provider{name: name, http: http}, nil
}

func (p *Provider) Name() string {
	return p.name
}

// Locate queries the service once. Success requires a 2xx response with
// both coordinate fields present and non-null.
func (p *Provider) Locate(ctx context.Context) (geoloc.Location, error) {
	result := new(APIResult)
	code, err := p.http.GetWithTimeout(ctx, APIEndpoint, result, nil, nil, LookupTimeout)
	if err != nil {
		return geoloc.Location{}, fmt.Errorf("failed to get geolocation data from ipapi.co: %w", err)
	}
	if code < 200 || code > 299 {
		return geoloc.Location{}, fmt.Errorf("ipapi.co returned non-positive response code: %d", code)
	}
	if result.Latitude == nil || result.Longitude == nil {
		return geoloc.Location{}, fmt.Errorf("ipapi.co response is missing coordinates")
	}

	return geoloc.Location{
		Coordinate: geoloc.Coordinate{Lat: *result.Latitude, Lon: *result.Longitude},
		Name:       result.City,
		Country:    result.CountryName,
		IP:         result.IP,
		Source:     geoloc.IPSource(p.name),
	}, nil
}
