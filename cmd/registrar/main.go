package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/odyssey-erp/registrar/cmd/registrar/cli"
	"github.com/odyssey-erp/registrar/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Default().Warn("load .env", slog.Any("error", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	rt, err := boot(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup", slog.Any("error", err))
		os.Exit(1)
	}

	root := cli.NewRoot(cli.Options{
		Executor: rt.logic,
		Prompter: rt.logic,
		Metrics:  rt.metrics,
	})
	runErr := root.ExecuteContext(ctx)
	if err := rt.Close(); err != nil {
		logger.Warn("close storage", slog.Any("error", err))
	}
	if runErr != nil {
		if !errors.Is(runErr, cli.ErrCommandFailed) {
			fmt.Fprintln(os.Stderr, runErr)
		}
		os.Exit(1)
	}
}
