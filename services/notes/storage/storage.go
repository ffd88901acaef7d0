package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xilidan/notes/pkg/gen"
)

// Storage spools uploads to disk for the lifetime of a single request.
type Storage interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
	Remove(ctx context.Context, path string) error
}

type storage struct {
	dir  string
	uuid gen.UUIDGenerator
}

// New returns a Storage writing under dir, or the OS temp directory when dir
// is empty.
func New(dir string, uuid gen.UUIDGenerator) (Storage, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	return &storage{
		dir:  dir,
		uuid: uuid,
	}, nil
}

func (s *storage) Save(ctx context.Context, filename string, data []byte) (string, error) {
	path := filepath.Join(s.dir, s.uuid.Next().String()+"-"+safeBase(filename))

	if err := os.WriteFile(path, data, 0o600); err != nil {
		// The path is left out of the message since it reaches the caller.
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return path, nil
}

func (s *storage) Remove(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove upload: %w", err)
	}
	return nil
}

// safeBase strips directories from a client-supplied name. The extension is
// kept since the transcription API infers the audio format from it.
func safeBase(filename string) string {
	base := filepath.Base(filepath.Clean("/" + filename))
	if base == "/" || base == "." {
		return "upload"
	}
	return base
}
