package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/ytpl/internal/shared"
)

func main() {
	logger := shared.WithLogger(shared.NewLogger(nil), "run", shared.GenerateID()[:8])

	runner := NewRunner(RunnerOpts{Logger: logger})
	app := rootCommand(runner)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		stop()
		logger.Fatalf("application error: %v", err)
	}
}
