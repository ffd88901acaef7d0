package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/xilidan/notes/pkg/json"
	"github.com/xilidan/notes/pkg/logger"
	"github.com/xilidan/notes/services/notes/consts"
	"github.com/xilidan/notes/services/notes/entity"
	"github.com/xilidan/notes/services/notes/usecase"
)

var (
	errNoFile      = errors.New("No file provided")
	errNoAudioFile = errors.New("No audio file provided")
)

func (h *handler) Styles(w http.ResponseWriter, r *http.Request) {
	json.WriteJSON(w, http.StatusOK, h.usecase.Styles(r.Context()))
}

func (h *handler) GenerateNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	upload, err := readUpload(r, consts.FieldTextFile)
	if err != nil {
		logger.Warn(ctx, "text upload rejected", slog.String("error", err.Error()))
		json.WriteError(w, http.StatusBadRequest, errNoFile)
		return
	}

	resp, err := h.usecase.GenerateNotes(ctx, &entity.GenerateNotesRequest{
		Upload: upload,
		Style:  r.FormValue(consts.FieldPromptType),
	})
	if err != nil {
		h.writeError(w, r, err, errNoFile)
		return
	}

	json.WriteJSON(w, http.StatusOK, resp)
}

func (h *handler) ProcessAudio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	upload, err := readUpload(r, consts.FieldAudioFile)
	if err != nil {
		logger.Warn(ctx, "audio upload rejected", slog.String("error", err.Error()))
		json.WriteError(w, http.StatusBadRequest, errNoAudioFile)
		return
	}

	resp, err := h.usecase.ProcessAudio(ctx, &entity.ProcessAudioRequest{
		Upload: upload,
		Style:  r.FormValue(consts.FieldStyle),
	})
	if err != nil {
		h.writeError(w, r, err, errNoAudioFile)
		return
	}

	json.WriteJSON(w, http.StatusOK, resp)
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err, emptyUpload error) {
	ctx := r.Context()

	var stageErr *entity.StageError
	switch {
	case errors.Is(err, usecase.ErrEmptyUpload):
		logger.Warn(ctx, "empty upload")
		json.WriteError(w, http.StatusBadRequest, emptyUpload)
	case errors.As(err, &stageErr):
		logger.ErrorErr(ctx, "upstream call failed", err, slog.String("stage", string(stageErr.Stage)))
		json.WriteError(w, http.StatusInternalServerError, err)
	default:
		logger.ErrorErr(ctx, "request failed", err)
		json.WriteError(w, http.StatusInternalServerError, err)
	}
}

func readUpload(r *http.Request, field string) (entity.Upload, error) {
	if err := r.ParseMultipartForm(consts.MaxAudioSize); err != nil {
		return entity.Upload{}, err
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return entity.Upload{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return entity.Upload{}, err
	}

	return entity.Upload{
		Filename: header.Filename,
		Data:     data,
	}, nil
}
