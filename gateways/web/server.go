package web

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	config "github.com/xilidan/notes/config/notes"
	"github.com/xilidan/notes/gateways/web/handler"
	"github.com/xilidan/notes/pkg/gen"
	"github.com/xilidan/notes/pkg/logger"
	openaiClient "github.com/xilidan/notes/services/notes/clients/openai"
	"github.com/xilidan/notes/services/notes/storage"
	"github.com/xilidan/notes/services/notes/usecase"
)

type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router http.Handler
}

func New(cfg *config.Config, log *slog.Logger) (*Server, error) {
	log.Debug("creating upload storage", slog.String("upload_dir", cfg.UploadDir))
	stg, err := storage.New(cfg.UploadDir, gen.UUID())
	if err != nil {
		return nil, fmt.Errorf("failed to create upload storage: %w", err)
	}

	client := openaiClient.New(openaiClient.Config{
		APIKey:             cfg.OpenAI.APIKey,
		BaseURL:            cfg.OpenAI.BaseURL,
		ChatModel:          cfg.OpenAI.ChatModel,
		TranscriptionModel: cfg.OpenAI.TranscriptionModel,
	}, log)

	usc := usecase.New(stg, client, client)

	var static fs.FS
	if cfg.StaticDir != "" {
		log.Info("serving static files", slog.String("static_dir", cfg.StaticDir))
		static = os.DirFS(cfg.StaticDir)
	}

	return &Server{
		cfg:    cfg,
		log:    log,
		router: NewRouter(handler.NewHandler(usc, static, log), log),
	}, nil
}

func NewRouter(h handler.Handler, log *slog.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logger.Middleware(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.GetHead)
	// Credentialed requests need the caller's origin echoed back, not "*".
	router.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  func(r *http.Request, origin string) bool { return true },
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/", h.Home)
	router.Get("/styles", h.Styles)
	router.Post("/generate", h.GenerateNotes)
	router.Post("/process", h.ProcessAudio)
	router.Get("/*", h.Static)

	return router
}

// Start serves until ctx is cancelled, then drains in-flight requests for at
// most cfg.ShutdownTimeout.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.log.Info("notes gateway started", slog.String("address", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.log.Info("closing server due to context cancellation")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Warn("forcing server close", slog.String("error", err.Error()))
			srv.Close()
			return fmt.Errorf("failed to gracefully shutdown server: %w", err)
		}
	}

	s.log.Info("server stopped cleanly")
	return nil
}
