// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

package geoloc

import (
	"context"
	"log/slog"

	"github.com/seohyun-park/nalssi/internal/logger"
	"github.com/seohyun-park/nalssi/internal/observability"
)

// Provider is implemented by each IP geolocation service.
type Provider interface {
	Name() string
	Locate(ctx context.Context) (Location, error)
}

// Chain tries a fixed, ordered list of IP geolocation services. Each
// service is attempted exactly once per resolution; the first success wins
// and partial results from different services are never merged.
type Chain struct {
	providers []Provider
	logger    *logger.Logger
	metrics   *observability.Metrics
}

// NewChain returns a Chain over the given providers, in order.
func NewChain(providers []Provider, log *logger.Logger, metrics *observability.Metrics) *Chain {
	return &Chain{
		providers: providers,
		logger:    log,
		metrics:   metrics,
	}
}

// Resolve walks the chain sequentially and returns the first successful
// location. Timeouts, connection errors, non-2xx statuses and malformed
// payloads are all equivalent failures; after the last service fails the
// chain returns ErrIPLocationUnavailable as a definitive result.
func (c *Chain) Resolve(ctx context.Context) (Location, error) {
	for _, p := range c.providers {
		loc, err := p.Locate(ctx)
		if err != nil {
			c.metrics.IPLookupAttempts.WithLabelValues(p.Name(), "failure").Inc()
			c.logger.Debug("IP geolocation service failed, falling back",
				slog.String("service", p.Name()), logger.Err(err))
			continue
		}
		c.metrics.IPLookupAttempts.WithLabelValues(p.Name(), "success").Inc()
		c.logger.Debug("IP geolocation resolved",
			slog.String("service", p.Name()),
			slog.Float64("lat", loc.Lat), slog.Float64("lon", loc.Lon))
		return loc, nil
	}
	c.metrics.IPLookupExhausted.Inc()
	return Location{}, ErrIPLocationUnavailable
}
