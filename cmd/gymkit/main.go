package main

import (
	"context"
	"flag"
	"io/fs"
	"log/slog"
	"os"

	gymkit "github.com/claude/gymkit"
	"github.com/claude/gymkit/internal/catalog"
	"github.com/claude/gymkit/internal/config"
	"github.com/claude/gymkit/internal/mcp"
	"github.com/claude/gymkit/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("gymkit starting", "version", Version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Store.Path)
	if err != nil {
		log.Error("failed to open blob store", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	log.Info("blob store opened", "path", cfg.Store.Path)

	// Bundled data: config dir override, else the embedded copy.
	var data fs.FS
	if cfg.Data.Dir != "" {
		data = os.DirFS(cfg.Data.Dir)
	} else {
		data, err = fs.Sub(gymkit.DataFS, "data")
		if err != nil {
			log.Error("failed to load embedded data", "error", err)
			os.Exit(1)
		}
	}

	var assets fs.FS
	if cfg.Media.AssetsDir != "" {
		assets = os.DirFS(cfg.Media.AssetsDir)
	}

	svc := catalog.New(store, assets, cfg.Media.Extension, log)
	if err := svc.Load(context.Background(), data); err != nil {
		log.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	// stdout carries the MCP session; logs go to stderr.
	srv := mcp.New(svc, Version, log)
	if err := server.ServeStdio(srv); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
