package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/circles/internal/audio"
	"github.com/tomz197/circles/internal/config"
	"github.com/tomz197/circles/internal/logging"
	"github.com/tomz197/circles/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "circles: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closeLog, err := logging.Open(settings.LogFile, settings.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	opts := loop.Options{
		Settings: settings,
		Logger:   logger,
	}
	if settings.Sound {
		// Non-fatal, the demo runs without sound
		sp, err := audio.NewSpeaker(config.FrameTime(settings.FPS))
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer sp.Close()
			opts.Sound = sp
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	return loop.RunScreen(ctx, screen, opts)
}
