package handler

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/xilidan/notes/pkg/json"
	"github.com/xilidan/notes/services/notes/consts"
)

const indexFile = "index.html"

var errNotFound = errors.New("Not Found")

type messageResponse struct {
	Message string `json:"message"`
}

// Home serves index.html from the static directory, or a liveness message
// when there is none.
func (h *handler) Home(w http.ResponseWriter, r *http.Request) {
	if h.serveFile(w, r, indexFile) {
		return
	}
	json.WriteJSON(w, http.StatusOK, messageResponse{Message: consts.LivenessMessage})
}

func (h *handler) Static(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if !h.serveFile(w, r, name) {
		json.WriteError(w, http.StatusNotFound, errNotFound)
	}
}

// serveFile writes the named regular file and reports whether it did.
// Directories are never listed.
func (h *handler) serveFile(w http.ResponseWriter, r *http.Request, name string) bool {
	if h.static == nil || !fs.ValidPath(name) {
		return false
	}

	f, err := h.static.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	content, ok := f.(io.ReadSeeker)
	if !ok {
		return false
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), content)
	return true
}
