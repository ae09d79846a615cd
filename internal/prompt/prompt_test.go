package prompt

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSourceReadsFreshEachCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system_prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("Be brief."), 0o644))
	src := NewFileSource(path)

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Be brief.", got)

	require.NoError(t, os.WriteFile(path, []byte("Answer in French. ¿Qué?"), 0o644))
	got, err = src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Answer in French. ¿Qué?", got)
}

func TestFileSourceErrors(t *testing.T) {
	dir := t.TempDir()
	badUTF8 := filepath.Join(dir, "latin1.txt")
	require.NoError(t, os.WriteFile(badUTF8, []byte{0x66, 0x6f, 0xff, 0xfe}, 0o644))

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"missing file", filepath.Join(dir, "nope.txt"), ErrUnavailable},
		{"directory", dir, ErrUnavailable},
		{"invalid utf-8", badUTF8, ErrInvalidEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileSource(tt.path).Load(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFileSourceCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource("unused").Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
