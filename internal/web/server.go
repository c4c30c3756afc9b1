// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

// Package web serves the lookup page and the JSON API behind it.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vorlif/spreak"

	"github.com/seohyun-park/nalssi/internal/config"
	"github.com/seohyun-park/nalssi/internal/geoloc"
	"github.com/seohyun-park/nalssi/internal/logger"
	"github.com/seohyun-park/nalssi/internal/service"
)

//go:embed templates/*
var templateFS embed.FS

// WeatherService is the service surface the handlers consume.
type WeatherService interface {
	SearchByName(ctx context.Context, name string) (*service.Snapshot, error)
	WeatherAt(ctx context.Context, location geoloc.Location) (*service.Snapshot, error)
	LocateByIP(ctx context.Context) (geoloc.Location, error)
}

type Server struct {
	config    *config.Config
	logger    *logger.Logger
	localizer *spreak.Localizer
	presenter *Presenter
	sessions  *SessionStore
	service   WeatherService

	router    *mux.Router
	templates *template.Template
}

func New(conf *config.Config, log *logger.Logger, localizer *spreak.Localizer,
	svc WeatherService,
) (*Server, error) {
	presenter, err := NewPresenter(localizer)
	if err != nil {
		return nil, err
	}

	tpls, err := template.New("").Funcs(template.FuncMap{
		"loc": localizer.Get,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	server := &Server{
		config:    conf,
		logger:    log,
		localizer: localizer,
		presenter: presenter,
		sessions:  NewSessionStore(),
		service:   svc,
		router:    mux.NewRouter(),
		templates: tpls,
	}
	server.routes()
	return server, nil
}

func (s *Server) routes() {
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/api/weather", s.handleWeather).Methods(http.MethodGet)
	s.router.HandleFunc("/api/iplocate", s.handleIPLocate).Methods(http.MethodPost)
	s.router.HandleFunc("/api/gps", s.handleGPS).Methods(http.MethodPost)
	s.router.HandleFunc("/api/gps/error", s.handleGPSError).Methods(http.MethodPost)
	s.router.HandleFunc("/api/mode", s.handleMode).Methods(http.MethodPost)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.config.Server.Listen,
		Handler:      s.router,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("web server listening", "address", s.config.Server.Listen)
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("web server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.WriteTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("web server shutdown failed: %w", err)
		}
		return nil
	}
}
