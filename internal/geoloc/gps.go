// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

package geoloc

import "fmt"

// FixMessageType is the type tag of the one-shot message a browser posts
// after navigator.geolocation delivers a position.
const FixMessageType = "gps_location"

// Fix is the message body. The fix may never arrive (permission denied,
// view closed, device timeout); nothing on the server waits for it.
type Fix struct {
	Type     string  `json:"type"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Accuracy float64 `json:"accuracy"`
}

// Location validates the fix and converts it into a GPS-sourced Location.
func (f Fix) Location() (Location, error) {
	if f.Type != FixMessageType {
		return Location{}, fmt.Errorf("unexpected message type: %q", f.Type)
	}
	coord := Coordinate{Lat: f.Lat, Lon: f.Lon}
	if !coord.Valid() {
		return Location{}, fmt.Errorf("%w: lat %f, lon %f", ErrInvalidCoordinate, f.Lat, f.Lon)
	}
	return Location{
		Coordinate:     coord,
		AccuracyMeters: f.Accuracy,
		Source:         SourceGPS,
	}, nil
}

// GPSErrorKind is the four-way classification of browser geolocation
// failures. The numeric codes follow the W3C Geolocation API.
type GPSErrorKind int

const (
	GPSUnknown GPSErrorKind = iota
	GPSPermissionDenied
	GPSPositionUnavailable
	GPSTimeout
)

// ClassifyGPSError maps a W3C GeolocationPositionError code to its kind.
// Codes outside 1..3 classify as unknown.
func ClassifyGPSError(code int) GPSErrorKind {
	switch code {
	case 1:
		return GPSPermissionDenied
	case 2:
		return GPSPositionUnavailable
	case 3:
		return GPSTimeout
	}
	return GPSUnknown
}

// MessageID returns the message catalog key for the kind-specific
// remediation text.
func (k GPSErrorKind) MessageID() string {
	switch k {
	case GPSPermissionDenied:
		return "Location permission was denied. Allow location access in your browser settings."
	case GPSPositionUnavailable:
		return "Position unavailable. GPS may be switched off or you may be indoors."
	case GPSTimeout:
		return "The location request timed out. Please try again."
	}
	return "An unknown error occurred while reading your location."
}

func (k GPSErrorKind) String() string {
	switch k {
	case GPSPermissionDenied:
		return "permission-denied"
	case GPSPositionUnavailable:
		return "position-unavailable"
	case GPSTimeout:
		return "timeout"
	}
	return "unknown"
}
