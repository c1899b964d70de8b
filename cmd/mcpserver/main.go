package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nguyentantai21042004/transcript-relay/internal/config"
	"github.com/nguyentantai21042004/transcript-relay/internal/logger"
	"github.com/nguyentantai21042004/transcript-relay/internal/mirror"
	"github.com/nguyentantai21042004/transcript-relay/internal/promptstore"
	"github.com/nguyentantai21042004/transcript-relay/internal/tools"
	"github.com/nguyentantai21042004/transcript-relay/internal/workspace"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to config.yaml")
	flag.Parse()

	if err := run(*configPath); err != nil {
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx := context.Background()

	// .env is optional; the environment wins when both are set
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return err
	}
	if err := cfg.Absolutize(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve paths: %v\n", err)
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer logger.Sync(log)

	if err := workspace.Ensure(cfg.ServerDirs()...); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		return err
	}
	log.Info(ctx, "Starting MCP server %s %s", cfg.Server.Name, cfg.Server.Version)
	log.Info(ctx, "Results: %s", cfg.Paths.Results)
	log.Info(ctx, "Processed: %s", cfg.Paths.Processed)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	mir, err := mirror.New(ctx, cfg.Mirror, log)
	if err != nil {
		log.Error(ctx, "Failed to init mirror: %v", err)
		return err
	}

	store := promptstore.New(cfg.Paths.Results, cfg.Paths.Processed, log)
	svc := tools.NewService(cfg.ServerDirs(), store, mir, log)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		cfg.Server.Version,
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
	)
	tools.Register(mcpServer, svc)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.NewStdioServer(mcpServer).Listen(ctx, os.Stdin, os.Stdout)
	}()

	log.Info(ctx, "Server connection established on stdio")

	select {
	case <-sigChan:
		log.Info(ctx, "Server stopped by user")
		cancel()
		return nil
	case err := <-errChan:
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
			log.Error(ctx, "Server error: %v", err)
			return err
		}
		log.Info(ctx, "Server stopped")
		return nil
	}
}
