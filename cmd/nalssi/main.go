// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

// Package main implements the nalssi weather lookup service.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/seohyun-park/nalssi/internal/config"
	"github.com/seohyun-park/nalssi/internal/i18n"
	"github.com/seohyun-park/nalssi/internal/logger"
	"github.com/seohyun-park/nalssi/internal/observability"
	"github.com/seohyun-park/nalssi/internal/service"
	"github.com/seohyun-park/nalssi/internal/web"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGABRT,
		os.Interrupt)
	defer cancel()

	// Initialize Logger
	log := logger.New(slog.LevelError)

	// Read config
	confRead := false
	confPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	// Read default config
	conf, err := config.New()
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}

	// If config file was specified, read it
	if *confPath != "" {
		file := filepath.Base(*confPath)
		path := filepath.Dir(*confPath)
		conf, err = config.NewFromFile(path, file)
		if err != nil {
			log.Error("failed to load config from file", logger.Err(err))
			os.Exit(1)
		}
		confRead = true
	}

	// Check if we have a config file in the default location
	if path, file := findConfigFile(); !confRead && (path != "" && file != "") {
		conf, err = config.NewFromFile(path, file)
		if err != nil {
			log.Error("failed to load config from file", logger.Err(err))
			os.Exit(1)
		}
	}

	log = logger.New(conf.LogLevel)
	t, err := i18n.New(conf.Locale)
	if err != nil {
		log.Error("failed to initialize localizer", logger.Err(err))
		os.Exit(1)
	}

	// Initialize the lookup service and the web surface
	metrics := observability.NewMetrics()
	svc, err := service.New(conf, log, metrics)
	if err != nil {
		log.Error("failed to initialize nalssi service", logger.Err(err))
		os.Exit(1)
	}
	server, err := web.New(conf, log, t, svc)
	if err != nil {
		log.Error("failed to initialize web server", logger.Err(err))
		os.Exit(1)
	}

	log.Info("starting nalssi service", slog.String("version", version),
		slog.String("commit", commit), slog.String("date", date))
	if err = server.Run(ctx); err != nil {
		log.Error("failed to run nalssi service", logger.Err(err))
		os.Exit(1)
	}
	log.Info("shutting down nalssi service")
}

func findConfigFile() (string, string) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	exts := []string{"toml", "yaml", "yml", "json"}
	for _, ext := range exts {
		path := filepath.Join(homedir, ".config", "nalssi", "config."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}
