// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

// Package ipapicom implements the ip-api.com IP geolocation service, the
// second service in the fallback chain. The free tier only answers over
// plain HTTP and signals failure in-band via a status field.
package ipapicom

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/seohyun-park/nalssi/internal/geoloc"
	"github.com/seohyun-park/nalssi/internal/http"
)

const (
	APIEndpoint   = "http://ip-api.com/json/"
	LookupTimeout = time.Second * 5
	name          = "ip-api"
)

type Provider struct {
	name string
	http *http.Client
}

// APIResult mirrors the ip-api.com payload for the requested field set.
// Status is "success" on a usable answer and "fail" otherwise, in which
// case Message carries the reason.
type APIResult struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Country string  `json:"country"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Query   string  `json:"query"`
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

// Locate queries the service once. Only responses with status "success"
// are accepted.
func (p *Provider) Locate(ctx context.Context) (geoloc.Location, error) {
	query := url.Values{}
	query.Add("fields", "status,message,country,city,lat,lon,query")

	result := new(APIResult)
	code, err := p.http.GetWithTimeout(ctx, APIEndpoint, result, query, nil, LookupTimeout)
	if err != nil {
		return geoloc.Location{}, fmt.Errorf("failed to get geolocation data from ip-api.com: %w", err)
	}
	if code < 200 || code > 299 {
		return geoloc.Location{}, fmt.Errorf("ip-api.com returned non-positive response code: %d", code)
	}
	if result.Status != "success" {
		return geoloc.Location{}, fmt.Errorf("ip-api.com lookup failed: %s", result.Message)
	}

	return geoloc.Location{
		Coordinate: geoloc.Coordinate{Lat: result.Lat, Lon: result.Lon},
		Name:       result.City,
		Country:    result.Country,
		IP:         result.Query,
		Source:     geoloc.IPSource(p.name),
	}, nil
}
