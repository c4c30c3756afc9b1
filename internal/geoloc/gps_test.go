// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

package geoloc

import (
	"errors"
	"testing"
)

func TestFix_Location(t *testing.T) {
	t.Run("valid fix converts to GPS location", func(t *testing.T) {
		fix := Fix{Type: FixMessageType, Lat: 37.5665, Lon: 126.978, Accuracy: 12.5}
		location, err := fix.Location()
		if err != nil {
			t.Fatalf("failed to convert fix: %s", err)
		}
		if location.Lat != 37.5665 || location.Lon != 126.978 {
			t.Errorf("expected coordinates 37.5665/126.978, got %f/%f", location.Lat, location.Lon)
		}
		if location.AccuracyMeters != 12.5 {
			t.Errorf("expected accuracy 12.5, got %f", location.AccuracyMeters)
		}
		if location.Source != SourceGPS {
			t.Errorf("expected source %s, got %s", SourceGPS, location.Source)
		}
	})
	t.Run("wrong message type fails", func(t *testing.T) {
		fix := Fix{Type: "telemetry", Lat: 37.5665, Lon: 126.978}
		if _, err := fix.Location(); err == nil {
			t.Error("expected conversion to fail")
		}
	})
	t.Run("out of range coordinates fail", func(t *testing.T) {
		fix := Fix{Type: FixMessageType, Lat: 95, Lon: 126.978}
		_, err := fix.Location()
		if err == nil {
			t.Fatal("expected conversion to fail")
		}
		if !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("expected ErrInvalidCoordinate, got %s", err)
		}
	})
}

func TestClassifyGPSError(t *testing.T) {
	tests := []struct {
		name string
		code int
		want GPSErrorKind
	}{
		{name: "permission denied", code: 1, want: GPSPermissionDenied},
		{name: "position unavailable", code: 2, want: GPSPositionUnavailable},
		{name: "timeout", code: 3, want: GPSTimeout},
		{name: "zero is unknown", code: 0, want: GPSUnknown},
		{name: "out of range is unknown", code: 7, want: GPSUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyGPSError(tc.code); got != tc.want {
				t.Errorf("expected kind %s, got %s", tc.want, got)
			}
		})
	}
}

func TestGPSErrorKind_MessageID(t *testing.T) {
	kinds := []GPSErrorKind{GPSUnknown, GPSPermissionDenied, GPSPositionUnavailable, GPSTimeout}
	seen := make(map[string]GPSErrorKind, len(kinds))
	for _, kind := range kinds {
		id := kind.MessageID()
		if id == "" {
			t.Errorf("expected non-empty message id for kind %s", kind)
		}
		if prev, ok := seen[id]; ok {
			t.Errorf("kinds %s and %s share message id %q", prev, kind, id)
		}
		seen[id] = kind
	}
}
