package transcribe

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seenUpload struct {
	model    string
	language string
	filename string
	content  string
}

func newFakeTranscriptions(t *testing.T, status int, body string, seen *seenUpload) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/transcriptions", r.URL.Path)
		if seen != nil && assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			seen.model = r.FormValue("model")
			seen.language = r.FormValue("language")
			file, header, err := r.FormFile("file")
			if assert.NoError(t, err) {
				data, _ := io.ReadAll(file)
				seen.filename = header.Filename
				seen.content = string(data)
				file.Close()
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeAudio(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestTranscribeSendsFileAndParameters(t *testing.T) {
	var seen seenUpload
	srv := newFakeTranscriptions(t, http.StatusOK, `{"text":"hello world"}`, &seen)

	c, err := NewGroqClient("gsk_test", srv.URL+"/", "", "", time.Second)
	require.NoError(t, err)

	path := writeAudio(t, "clip.webm", "fake-audio")
	got, err := c.Transcribe(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "hello world", got)
	assert.Equal(t, DefaultModel, seen.model)
	assert.Equal(t, DefaultLanguage, seen.language)
	assert.Equal(t, "clip.webm", seen.filename)
	assert.Equal(t, "fake-audio", seen.content)
}

func TestTranscribeErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		c, err := NewGroqClient("gsk_test", "http://127.0.0.1:0/", "", "", time.Second)
		require.NoError(t, err)
		_, err = c.Transcribe(context.Background(), filepath.Join(t.TempDir(), "gone.wav"))
		assert.Error(t, err)
	})

	t.Run("api error", func(t *testing.T) {
		srv := newFakeTranscriptions(t, http.StatusBadRequest, `{"error":{"message":"file must be one of flac mp3 mp4"}}`, nil)
		c, err := NewGroqClient("gsk_test", srv.URL+"/", "whisper-large-v3-turbo", "de", time.Second)
		require.NoError(t, err)
		_, err = c.Transcribe(context.Background(), writeAudio(t, "clip", "x"))
		assert.Error(t, err)
	})
}

func TestNewGroqClientRequiresKey(t *testing.T) {
	_, err := NewGroqClient("", "", "", "", 0)
	assert.Error(t, err)
}
