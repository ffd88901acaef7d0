package handler

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/xilidan/notes/services/notes/usecase"
)

type handler struct {
	usecase usecase.Usecase
	static  fs.FS
}

type Handler interface {
	Home(w http.ResponseWriter, r *http.Request)
	Styles(w http.ResponseWriter, r *http.Request)
	GenerateNotes(w http.ResponseWriter, r *http.Request)
	ProcessAudio(w http.ResponseWriter, r *http.Request)
	Static(w http.ResponseWriter, r *http.Request)
}

// NewHandler serves files from static when it is non-nil.
func NewHandler(usecase usecase.Usecase, static fs.FS, log *slog.Logger) Handler {
	log.Debug("creating handler", slog.Bool("static_enabled", static != nil))
	return &handler{
		usecase: usecase,
		static:  static,
	}
}
