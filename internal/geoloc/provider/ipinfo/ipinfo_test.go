// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

package ipinfo

import (
	"log/slog"
	stdhttp "net/http"
	"os"
	"strings"
	"testing"

	"github.com/seohyun-park/nalssi/internal/http"
	"github.com/seohyun-park/nalssi/internal/logger"
	"github.com/seohyun-park/nalssi/internal/testhelper"
)

func TestNew(t *testing.T) {
	t.Run("new ipinfo provider succeeds", func(t *testing.T) {
		provider, err := New(http.New(logger.New(slog.LevelInfo)))
		if err != nil {
			t.Fatalf("failed to create ipinfo provider: %s", err)
		}
		if provider == nil {
			t.Fatal("expected provider to be non-nil")
		}
	})
	t.Run("ipinfo without http client fails", func(t *testing.T) {
		provider, err := New(nil)
		if err == nil {
			t.Fatal("expected provider to fail")
		}
		if provider != nil {
			t.Fatal("expected provider to be nil")
		}
	})
}

func TestProvider_Name(t *testing.T) {
	provider, err := New(http.New(logger.New(slog.LevelInfo)))
	if err != nil {
		t.Fatalf("failed to create ipinfo provider: %s", err)
	}
	if !strings.EqualFold(provider.Name(), name) {
		t.Errorf("expected provider name to be %s, got %s", name, provider.Name())
	}
}

func TestProvider_Locate(t *testing.T) {
	t.Run("locate succeeds on combined coordinate string", func(t *testing.T) {
		provider, err := New(clientWithFixture(t, "../../../../testdata/ipinfo.json"))
		if err != nil {
			t.Fatalf("failed to create ipinfo provider: %s", err)
		}
		location, err := provider.Locate(t.Context())
		if err != nil {
			t.Fatalf("failed to locate: %s", err)
		}
		if location.Lat != 37.4563 || location.Lon != 126.7052 {
			t.Errorf("expected coordinates 37.4563/126.7052, got %f/%f", location.Lat, location.Lon)
		}
		if location.Name != "Incheon" {
			t.Errorf("expected location name to be Incheon, got %s", location.Name)
		}
	})
	t.Run("locate fails on malformed loc field", func(t *testing.T) {
		provider, err := New(clientWithFixture(t, "../../../../testdata/ipinfo_badloc.json"))
		if err != nil {
			t.Fatalf("failed to create ipinfo provider: %s", err)
		}
		if _, err = provider.Locate(t.Context()); err == nil {
			t.Error("expected locate to fail")
		}
	})
}

func TestParseLoc(t *testing.T) {
	tests := []struct {
		name    string
		loc     string
		wantErr bool
	}{
		{name: "valid pair", loc: "37.5665,126.9780"},
		{name: "whitespace padding", loc: " 37.5665 , 126.9780 "},
		{name: "empty string", loc: "", wantErr: true},
		{name: "single value", loc: "37.5665", wantErr: true},
		{name: "three values", loc: "37.5,126.9,1.0", wantErr: true},
		{name: "non-numeric latitude", loc: "north,126.9780", wantErr: true},
		{name: "non-numeric longitude", loc: "37.5665,east", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseLoc(tc.loc)
			if tc.wantErr && err == nil {
				t.Error("expected parseLoc to fail")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("failed to parse loc string: %s", err)
			}
		})
	}
}

func clientWithFixture(t *testing.T, file string) *http.Client {
	t.Helper()
	rtFn := func(req *stdhttp.Request) (*stdhttp.Response, error) {
		data, err := os.Open(file)
		if err != nil {
			t.Fatalf("failed to open JSON response file: %s", err)
		}

		return &stdhttp.Response{
			StatusCode: 200,
			Body:       data,
			Header:     make(stdhttp.Header),
		}, nil
	}
	client := http.New(logger.New(slog.LevelInfo))
	client.Transport = testhelper.MockRoundTripper{Fn: rtFn}
	return client
}
