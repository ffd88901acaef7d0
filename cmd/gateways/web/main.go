package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	config "github.com/xilidan/notes/config/notes"
	"github.com/xilidan/notes/gateways/web"
	"github.com/xilidan/notes/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		Output:     os.Stderr,
		AddSource:  true,
		JSONFormat: cfg.Log.JSON,
	})
	logger.SetDefault(log)

	log.Info("configuration loaded",
		slog.Int("port", cfg.Port),
		slog.String("static_dir", cfg.StaticDir),
		slog.String("chat_model", cfg.OpenAI.ChatModel),
		slog.String("transcription_model", cfg.OpenAI.TranscriptionModel))

	ctx := logger.WithContext(context.Background(), log)

	rootCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(rootCtx, cfg, log); err != nil {
		log.Error("failed to run()", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	srv, err := web.New(cfg, log)
	if err != nil {
		log.Error("failed to create server", slog.String("error", err.Error()))
		return err
	}

	return srv.Start(ctx)
}
