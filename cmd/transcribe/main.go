package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/transcript-relay/internal/composer"
	"github.com/nguyentantai21042004/transcript-relay/internal/config"
	"github.com/nguyentantai21042004/transcript-relay/internal/langdetect"
	"github.com/nguyentantai21042004/transcript-relay/internal/logger"
	"github.com/nguyentantai21042004/transcript-relay/internal/mirror"
	"github.com/nguyentantai21042004/transcript-relay/internal/pipeline"
	"github.com/nguyentantai21042004/transcript-relay/internal/transcriber"
	"github.com/nguyentantai21042004/transcript-relay/internal/watcher"
	"github.com/nguyentantai21042004/transcript-relay/internal/workspace"
	"github.com/nguyentantai21042004/transcript-relay/pkg/executor"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to config.yaml")
	watch := flag.Bool("watch", false, "keep running and transcribe new audio files as they arrive")
	flag.Parse()

	if err := run(*configPath, *watch); err != nil {
		os.Exit(1)
	}
}

func run(configPath string, watch bool) error {
	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer logger.Sync(log)

	if err := workspace.Ensure(cfg.PipelineDirs()...); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			log.Info(ctx, "Shutdown signal received, finishing current file...")
			cancel()
		case <-ctx.Done():
		}
	}()

	tr, err := transcriber.New(cfg, executor.New(), log)
	if err != nil {
		log.Error(ctx, "Failed to create transcriber: %v", err)
		return err
	}

	mir, err := mirror.New(ctx, cfg.Mirror, log)
	if err != nil {
		log.Error(ctx, "Failed to init mirror: %v", err)
		return err
	}

	detector := langdetect.NewNop()
	if cfg.Transcriber.DetectLanguage {
		detector = langdetect.New()
	}

	p := pipeline.New(cfg, tr, composer.New(cfg.Paths.Template), detector, mir, log)

	log.Info(ctx, "Transcriber: %s", cfg.Transcriber.Backend)
	log.Info(ctx, "Videos: %s", cfg.Paths.Videos)
	log.Info(ctx, "Template: %s", cfg.Paths.Template)

	if _, err := p.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info(ctx, "Run interrupted")
			return nil
		}
		log.Error(ctx, "Run failed: %v", err)
		return err
	}

	if !watch {
		return nil
	}

	w, err := watcher.New(cfg.Paths.Videos, cfg.Transcriber.Extensions, func(ctx context.Context) error {
		_, err := p.Run(ctx)
		return err
	}, log, cfg.Watch.Debounce)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return err
	}
	defer w.Stop()

	log.Info(ctx, "Watching %s, press Ctrl+C to stop", cfg.Paths.Videos)

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "Watcher error: %v", err)
		return err
	}

	log.Info(ctx, "Transcriber stopped")
	return nil
}
