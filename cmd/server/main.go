package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/codegod100/roc-syntax-mcp/internal/api"
	"github.com/codegod100/roc-syntax-mcp/internal/config"
	"github.com/codegod100/roc-syntax-mcp/internal/syntax"
)

func main() {
	cfg := config.Load()

	// Stdout carries the MCP wire in stdio mode, so all logging goes to
	// stderr regardless of transport.
	var lvl slog.Level
	switch cfg.LogLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	svc := syntax.New(cfg.ReferencePath, log)

	mcpSrv := mcp.NewServer(&mcp.Implementation{
		Name:    "roc-syntax",
		Version: "1.0.0",
	}, nil)
	api.RegisterMCP(mcpSrv, svc)

	if cfg.Transport == "http" {
		runHTTP(ctx, cfg, svc, mcpSrv, log)
		return
	}

	log.Info("roc syntax server ready", "transport", "stdio", "reference", svc.Path())
	if err := mcpSrv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

func runHTTP(ctx context.Context, cfg config.Config, svc *syntax.Service, mcpSrv *mcp.Server, log *slog.Logger) {
	srv := api.NewServer(svc, mcpSrv, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("roc syntax server ready", "transport", "http", "port", cfg.Port, "reference", svc.Path())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
