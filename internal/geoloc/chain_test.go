// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

package geoloc

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/seohyun-park/nalssi/internal/logger"
	"github.com/seohyun-park/nalssi/internal/observability"
)

type stubProvider struct {
	name     string
	location Location
	err      error
	calls    int
}

func (s *stubProvider) Name() string {
	return s.name
}

func (s *stubProvider) Locate(_ context.Context) (Location, error) {
	s.calls++
	if s.err != nil {
		return Location{}, s.err
	}
	return s.location, nil
}

func TestChain_Resolve(t *testing.T) {
	seoul := Location{
		Coordinate: Coordinate{Lat: 37.5665, Lon: 126.978},
		Name:       "Seoul",
		Source:     IPSource("first"),
	}
	busan := Location{
		Coordinate: Coordinate{Lat: 35.1796, Lon: 129.0756},
		Name:       "Busan",
		Source:     IPSource("second"),
	}

	t.Run("first success wins and stops the chain", func(t *testing.T) {
		first := &stubProvider{name: "first", location: seoul}
		second := &stubProvider{name: "second", location: busan}
		chain := NewChain([]Provider{first, second}, logger.New(slog.LevelInfo),
			observability.NewMetricsForTesting())

		location, err := chain.Resolve(t.Context())
		if err != nil {
			t.Fatalf("failed to resolve location: %s", err)
		}
		if location.Name != "Seoul" {
			t.Errorf("expected location name to be Seoul, got %s", location.Name)
		}
		if second.calls != 0 {
			t.Errorf("expected second provider to be skipped, got %d calls", second.calls)
		}
	})
	t.Run("failed service falls back to the next in order", func(t *testing.T) {
		first := &stubProvider{name: "first", err: errors.New("malformed payload")}
		second := &stubProvider{name: "second", err: errors.New("status fail")}
		third := &stubProvider{name: "third", location: busan}
		chain := NewChain([]Provider{first, second, third}, logger.New(slog.LevelInfo),
			observability.NewMetricsForTesting())

		location, err := chain.Resolve(t.Context())
		if err != nil {
			t.Fatalf("failed to resolve location: %s", err)
		}
		if location.Name != "Busan" {
			t.Errorf("expected location name to be Busan, got %s", location.Name)
		}
		if first.calls != 1 || second.calls != 1 || third.calls != 1 {
			t.Errorf("expected each provider to be tried once, got %d/%d/%d",
				first.calls, second.calls, third.calls)
		}
	})
	t.Run("exhausted chain returns a definitive error", func(t *testing.T) {
		first := &stubProvider{name: "first", err: errors.New("timeout")}
		second := &stubProvider{name: "second", err: errors.New("connection refused")}
		third := &stubProvider{name: "third", err: errors.New("too many coordinate parts")}
		chain := NewChain([]Provider{first, second, third}, logger.New(slog.LevelInfo),
			observability.NewMetricsForTesting())

		_, err := chain.Resolve(t.Context())
		if err == nil {
			t.Fatal("expected resolve to fail")
		}
		if !errors.Is(err, ErrIPLocationUnavailable) {
			t.Errorf("expected ErrIPLocationUnavailable, got %s", err)
		}
	})
	t.Run("empty chain is immediately exhausted", func(t *testing.T) {
		chain := NewChain(nil, logger.New(slog.LevelInfo), observability.NewMetricsForTesting())
		if _, err := chain.Resolve(t.Context()); !errors.Is(err, ErrIPLocationUnavailable) {
			t.Errorf("expected ErrIPLocationUnavailable, got %s", err)
		}
	})
}
