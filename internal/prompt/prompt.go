package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var (
	// ErrUnavailable means the prompt file is missing or unreadable.
	ErrUnavailable = errors.New("system prompt unavailable")
	// ErrInvalidEncoding means the prompt file is not UTF-8 text.
	ErrInvalidEncoding = errors.New("system prompt is not valid UTF-8")
)

// Source yields the system prompt prepended to every completion.
type Source interface {
	Load(ctx context.Context) (string, error)
}

// FileSource reads the prompt from disk on every call; edits to the file
// take effect on the next request.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, s.path)
	}
	return string(data), nil
}
