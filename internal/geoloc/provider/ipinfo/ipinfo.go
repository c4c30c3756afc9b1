// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

// Package ipinfo implements the ipinfo.io IP geolocation service, the last
// resort of the fallback chain. Coordinates arrive as a single "lat,lon"
// string which must parse into exactly two floats.
package ipinfo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/seohyun-park/nalssi/internal/geoloc"
	"github.com/seohyun-park/nalssi/internal/http"
)

const (
	APIEndpoint   = "https://ipinfo.io/json"
	LookupTimeout = time.Second * 5
	name          = "ipinfo"
)

type Provider struct {
	name string
	http *http.Client
}

// APIResult is the subset of the ipinfo.io payload the chain consumes.
type APIResult struct {
	IP      string `json:"ip"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
	Loc     string `json:"loc"`
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

// Locate queries the service once and parses the combined coordinate
// string. A loc field that does not split into two valid floats is a
// failure.
func (p *Provider) Locate(ctx context.Context) (geoloc.Location, error) {
	result := new(APIResult)
	code, err := p.http.GetWithTimeout(ctx, APIEndpoint, result, nil, nil, LookupTimeout)
	if err != nil {
		return geoloc.Location{}, fmt.Errorf("failed to get geolocation data from ipinfo.io: %w", err)
	}
	if code < 200 || code > 299 {
		return geoloc.Location{}, fmt.Errorf("ipinfo.io returned non-positive response code: %d", code)
	}

	coord, err := parseLoc(result.Loc)
	if err != nil {
		return geoloc.Location{}, fmt.Errorf("failed to parse ipinfo.io coordinates: %w", err)
	}

	return geoloc.Location{
		Coordinate: coord,
		Name:       result.City,
		Country:    result.Country,
		IP:         result.IP,
		Source:     geoloc.IPSource(p.name),
	}, nil
}

func parseLoc(loc string) (geoloc.Coordinate, error) {
	parts := strings.Split(loc, ",")
	if len(parts) != 2 {
		return geoloc.Coordinate{}, fmt.Errorf("expected 2 coordinate parts, got %d", len(parts))
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geoloc.Coordinate{}, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geoloc.Coordinate{}, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}
	return geoloc.Coordinate{Lat: lat, Lon: lon}, nil
}
