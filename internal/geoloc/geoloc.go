// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

// Package geoloc resolves ambiguous location input (typed city names, browser
// GPS fixes, IP-derived coordinates) into one canonical location.
package geoloc

import "errors"

const (
	// SourceTypedName tags locations resolved from a typed city name.
	SourceTypedName = "typed-name"
	// SourceGPS tags locations delivered by the browser's geolocation API.
	SourceGPS = "gps"

	ipSourcePrefix = "ip:"
)

var (
	// ErrIPLocationUnavailable is returned after every service in the IP
	// fallback chain has been tried without success.
	ErrIPLocationUnavailable = errors.New("all IP geolocation services exhausted")
	// ErrInvalidCoordinate is returned for coordinates outside the legal
	// latitude/longitude ranges.
	ErrInvalidCoordinate = errors.New("coordinate out of range")
)

// IPSource returns the source tag for an IP geolocation service.
func IPSource(service string) string {
	return ipSourcePrefix + service
}

// Location is the canonical output of every acquisition path. It is
// constructed fresh per request and never mutated afterwards.
type Location struct {
	Coordinate

	// Name is a human-readable place label.
	Name string `json:"name"`
	// Country is an optional country code or name.
	Country string `json:"country,omitempty"`
	// AccuracyMeters is only set for GPS-sourced locations.
	AccuracyMeters float64 `json:"accuracy_meters,omitempty"`
	// IP is only set for IP-sourced locations.
	IP string `json:"ip,omitempty"`
	// Source identifies the acquisition method that produced the location:
	// "typed-name", "gps" or "ip:<service>".
	Source string `json:"source"`
}
