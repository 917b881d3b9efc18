package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/circles/internal/audio"
	"github.com/tomz197/circles/internal/config"
	"github.com/tomz197/circles/internal/logging"
	"github.com/tomz197/circles/internal/loop"
	"golang.org/x/term"
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

	// Logs must not land on the terminal being drawn on
	logger, closeLog, err := logging.Open(settings.LogFile, settings.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := loop.Options{
		Settings: settings,
		Logger:   logger,
	}
	if settings.Sound {
		sp, err := audio.NewSpeaker(config.FrameTime(settings.FPS))
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer sp.Close()
			opts.Sound = sp
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(ctx, reader, os.Stdout, opts); err != nil {
		logger.Error("session failed", "err", err)
		return err
	}
	return nil
}
