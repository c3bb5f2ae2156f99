package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n\nThe server is configured with environment variables.\n\n%s\n",
			os.Args[0], config.Usage())
	}
	flag.Parse()

	config.SetLogLevel()

	// Setup app
	app := internal.SetupApp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server
	if err := app.Run(ctx); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
