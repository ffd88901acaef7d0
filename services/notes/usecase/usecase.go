package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/xilidan/notes/pkg/logger"
	"github.com/xilidan/notes/services/notes/entity"
	"github.com/xilidan/notes/services/notes/storage"
	"github.com/xilidan/notes/services/notes/templates"
)

var ErrEmptyUpload = errors.New("empty upload")

type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Usecase interface {
	GenerateNotes(ctx context.Context, req *entity.GenerateNotesRequest) (*entity.GenerateNotesResponse, error)
	ProcessAudio(ctx context.Context, req *entity.ProcessAudioRequest) (*entity.ProcessAudioResponse, error)
	Styles(ctx context.Context) *entity.StylesResponse
}

type usecase struct {
	storage     storage.Storage
	transcriber Transcriber
	completer   Completer
}

func New(storage storage.Storage, transcriber Transcriber, completer Completer) Usecase {
	return &usecase{
		storage:     storage,
		transcriber: transcriber,
		completer:   completer,
	}
}

func (u *usecase) GenerateNotes(ctx context.Context, req *entity.GenerateNotesRequest) (*entity.GenerateNotesResponse, error) {
	if len(req.Upload.Data) == 0 {
		return nil, ErrEmptyUpload
	}

	// Invalid UTF-8 is dropped rather than rejected.
	text := strings.ToValidUTF8(string(req.Upload.Data), "")
	tmpl := templates.Select(req.Style)

	logger.Info(ctx, "generating notes from text",
		slog.String("filename", req.Upload.Filename),
		slog.String("style", tmpl.Style),
		slog.Int("text_length", len(text)))

	notes, err := u.complete(ctx, tmpl, text)
	if err != nil {
		return nil, err
	}

	return &entity.GenerateNotesResponse{
		Notes: notes,
	}, nil
}

func (u *usecase) ProcessAudio(ctx context.Context, req *entity.ProcessAudioRequest) (*entity.ProcessAudioResponse, error) {
	if len(req.Upload.Data) == 0 {
		return nil, ErrEmptyUpload
	}

	path, err := u.storage.Save(ctx, req.Upload.Filename, req.Upload.Data)
	if err != nil {
		return nil, &entity.StageError{Stage: entity.StageTranscription, Err: err}
	}
	logger.Debug(ctx, "upload spooled", slog.String("path", path))
	defer func() {
		if err := u.storage.Remove(ctx, path); err != nil {
			logger.ErrorErr(ctx, "failed to remove upload", err, slog.String("path", path))
		}
	}()

	logger.Info(ctx, "transcribing audio",
		slog.String("filename", req.Upload.Filename),
		slog.Int("size", len(req.Upload.Data)))

	transcript, err := u.transcriber.Transcribe(ctx, path)
	if err != nil {
		return nil, &entity.StageError{Stage: entity.StageTranscription, Err: err}
	}

	tmpl := templates.Select(req.Style)
	logger.Info(ctx, "generating notes from transcript",
		slog.String("style", tmpl.Style),
		slog.Int("transcript_length", len(transcript)))

	notes, err := u.complete(ctx, tmpl, transcript)
	if err != nil {
		return nil, err
	}

	return &entity.ProcessAudioResponse{
		Notes:      notes,
		Transcript: transcript,
		Style:      tmpl.Style,
	}, nil
}

func (u *usecase) Styles(ctx context.Context) *entity.StylesResponse {
	return &entity.StylesResponse{
		Styles:  templates.Styles(),
		Default: templates.Normalize(""),
	}
}

func (u *usecase) complete(ctx context.Context, tmpl templates.Template, text string) (string, error) {
	notes, err := u.completer.Complete(ctx, tmpl.Assemble(text))
	if err != nil {
		return "", &entity.StageError{Stage: entity.StageCompletion, Err: err}
	}
	return notes, nil
}
