package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/starstrike/internal/config"
	"github.com/tomz197/starstrike/internal/game"
	"github.com/tomz197/starstrike/internal/loop"
	"github.com/tomz197/starstrike/internal/score"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "starstrike: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal is the game surface, so logs go to a file or nowhere.
	logOut := io.Discard
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := settings.NewLogger(logOut)

	var g *game.Game
	g = game.New(game.Options{
		Variant: settings.Variant,
		Rand:    settings.Rand(),
		Logger:  logger,
		Store:   score.NewFileStore(settings.ScoreFile),
		OnShare: func(s int) {
			logger.Info("share", "text", game.ShareText(s, g.Session().Level))
		},
	})
	logger.Info("starting", "variant", settings.Variant.Name, "scoreFile", settings.ScoreFile)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(ctx, reader, os.Stdout, g, loop.Options{Logger: logger}); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}
