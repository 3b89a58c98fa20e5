// Command ttrplan serves route, bundle and card planning for a two-network
// Ticket to Ride game over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/ttrplan/config"
	"github.com/katalvlaran/ttrplan/network"
	"github.com/katalvlaran/ttrplan/railmap"
	"github.com/katalvlaran/ttrplan/server"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (empty = built-in defaults)")
	addr := flag.String("addr", "", "HTTP listen address (overrides server.addr)")
	mapPath := flag.String("map", "", "Path to a map dataset (overrides map)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// ── Load config ──────────────────────────────────────────────────────────
	var loader *config.Loader
	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		loader, err = config.NewLoader(*cfgPath)
		if err != nil {
			slog.Error("failed to load config", "err", err)
			os.Exit(1)
		}
		cfg = *loader.Config()
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *mapPath != "" {
		cfg.Map = *mapPath
	}
	if err := config.Validate(&cfg); err != nil {
		slog.Error("config validation failed", "err", err)
		os.Exit(1)
	}

	// ── Map and game ─────────────────────────────────────────────────────────
	m, err := loadMap(cfg.Map)
	if err != nil {
		slog.Error("failed to load map", "path", cfg.Map, "err", err)
		os.Exit(1)
	}
	game, err := network.NewGame(m,
		network.WithPointImportance(cfg.Planner.PointImportance),
		network.WithTrains(cfg.Planner.Trains),
		network.WithMaxWaypoints(cfg.Planner.MaxWaypoints),
		network.WithMaxDualColor(cfg.Planner.MaxDualColor),
	)
	if err != nil {
		slog.Error("failed to build game", "err", err)
		os.Exit(1)
	}
	slog.Info("map loaded", "cities", len(m.Cities()), "connections", m.Len(), "tickets", len(m.Tickets()))

	// ── Hot-reload watcher ────────────────────────────────────────────────────
	if loader != nil {
		loader.OnChange(func(newCfg *config.Config) {
			pi := newCfg.Planner.PointImportance
			if err := game.SetPointImportance(pi); err != nil {
				slog.Warn("hot-reload skipped: point importance rejected", "err", err)
				return
			}
			if newCfg.Map != cfg.Map || newCfg.Planner.Trains != cfg.Planner.Trains {
				slog.Warn("map and trains changes take effect on restart")
			}
			slog.Info("config hot-reloaded", "point_importance", pi)
		})
		loader.OnError(func(err error) {
			slog.Warn("hot-reload skipped: config invalid", "err", err)
		})
		stopWatch, err := loader.Watch()
		if err != nil {
			slog.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
		} else {
			defer stopWatch()
		}
	}

	// ── HTTP server ───────────────────────────────────────────────────────────
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.New(game, loader, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		slog.Error("shutdown", "err", err)
	}
	slog.Info("goodbye")
}

func loadMap(path string) (*railmap.Map, error) {
	if path == "" {
		return railmap.USA()
	}

	return railmap.LoadFile(path)
}
