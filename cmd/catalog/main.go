package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"press-start/internal/cli"
	"press-start/internal/config"
	"press-start/internal/input"
	"press-start/internal/logger"
	"press-start/internal/repository"
	"press-start/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// interruptExitCode is the shell convention for a process ended by SIGINT
const interruptExitCode = 130

// watchSignals ends the process once ctx is cancelled by a signal. A prompt
// blocked on a terminal read cannot be interrupted, so the process exits
// instead of waiting for the menu loop to notice.
func watchSignals(ctx context.Context, done <-chan struct{}, logger *zap.Logger, exit func(code int)) {
	// Listen for the interrupt signal.
	select {
	case <-done:
		return
	case <-ctx.Done():
	}

	logger.Info("Interrupt received, leaving catalog")
	_ = logger.Sync()
	exit(interruptExitCode)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.App.Env,
		logger.WithLevel(cfg.Log.Level),
		logger.WithOutput(cfg.Log.Output),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log = log.With(zap.String("session_id", uuid.NewString()))

	encoding := cfg.Console.Encoding.Resolve()
	log.Info("Starting catalog session",
		zap.String("env", cfg.App.Env),
		zap.String("encoding", string(encoding)),
		zap.Stringer("locale", cfg.Catalog.Locale),
	)

	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Closed once the menu returns so the watcher exits
	done := make(chan struct{})
	go watchSignals(ctx, done, log, os.Exit)

	catalog := service.NewCatalogService(repository.NewInMemory(), log)
	if cfg.Catalog.Seed {
		if err := catalog.Seed(); err != nil {
			log.Fatal("Failed to seed catalog", zap.Error(err))
		}
	}

	out := input.NewWriter(os.Stdout, encoding)
	printer := cli.NewPrinter(out, cli.PrinterOptions{
		Color:          cfg.Console.Color,
		Locale:         cfg.Catalog.Locale,
		CurrencySymbol: cfg.Catalog.CurrencySymbol,
	})
	reader := input.NewReader(os.Stdin, out, encoding)

	menu := cli.NewMenu(catalog, reader, printer, log)
	err = menu.Run(ctx)
	close(done)
	if err != nil {
		log.Error("Menu stopped", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}

	log.Info("Catalog session ended", zap.Int("products", catalog.Count()))
}
