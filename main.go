package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		os.Exit(HandleExitError(os.Stderr, err))
	}

	InitLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	exitCode := HandleExitError(os.Stderr, RunApp(ctx, cfg))
	stop()
	os.Exit(exitCode)
}
