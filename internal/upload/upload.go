package upload

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Store persists request uploads under a single directory. Every file gets a
// fresh UUID name so concurrent requests never share a path.
type Store struct {
	dir string
	log *slog.Logger
}

// File is an upload owned by exactly one request. Call Remove when the
// request finishes, whatever its outcome.
type File struct {
	Path string
	Size int64
	MIME string

	log *slog.Logger
}

func NewStore(dir string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Save copies src to a new file in the store. If the content sniffs as audio or
// video the file is renamed to carry that codec's extension; otherwise the
// extension of the client-supplied filename is kept. Transcription APIs reject
// files without a recognizable extension.
func (s *Store) Save(src io.Reader, filename string) (*File, error) {
	path := filepath.Join(s.dir, uuid.NewString())
	dst, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create upload: %w", err)
	}
	f := &File{Path: path, log: s.log}

	n, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		f.Remove()
		return nil, fmt.Errorf("write upload: %w", err)
	}
	f.Size = n

	ext := ""
	if m, err := mimetype.DetectFile(path); err == nil {
		f.MIME = m.String()
		if isMedia(m) {
			ext = m.Extension()
		}
	}
	if ext == "" {
		ext = cleanExt(filename)
	}
	if ext != "" {
		if err := os.Rename(path, path+ext); err != nil {
			f.Remove()
			return nil, fmt.Errorf("rename upload: %w", err)
		}
		f.Path = path + ext
	}
	return f, nil
}

// Remove deletes the file. Failures are logged, never returned; a file that is
// already gone is not a failure.
func (f *File) Remove() {
	if f == nil {
		return
	}
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		f.log.Error("failed to delete upload", "path", f.Path, "err", err)
	}
}

func isMedia(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		s := m.String()
		if strings.HasPrefix(s, "audio/") || strings.HasPrefix(s, "video/") {
			return true
		}
	}
	return false
}

// cleanExt returns filename's extension if it is short and alphanumeric.
func cleanExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) < 2 || len(ext) > 6 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
