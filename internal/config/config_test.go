package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "ALLOWED_ORIGIN", "GROQ_BASE_URL", "CHAT_MODEL",
		"TRANSCRIPTION_MODEL", "TRANSCRIPTION_LANGUAGE", "SYSTEM_PROMPT_PATH", "UPLOAD_DIR",
		"MAX_UPLOAD_SIZE", "EVENTS_PROVIDER", "COMPLETION_TIMEOUT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"Port", cfg.Port, 4000},
		{"LogLevel", cfg.LogLevel, "info"},
		{"LogFormat", cfg.LogFormat, "json"},
		{"AllowedOrigin", cfg.AllowedOrigin, "http://localhost:3000"},
		{"GroqBaseURL", cfg.GroqBaseURL, "https://api.groq.com/openai/v1/"},
		{"ChatModel", cfg.ChatModel, "llama3-8b-8192"},
		{"TranscriptionModel", cfg.TranscriptionModel, "whisper-large-v3"},
		{"TranscriptionLanguage", cfg.TranscriptionLanguage, "en"},
		{"SystemPromptPath", cfg.SystemPromptPath, "system_prompt.txt"},
		{"UploadDir", cfg.UploadDir, "uploads"},
		{"MaxUploadSize", cfg.MaxUploadSize, int64(25 << 20)},
		{"EventsProvider", cfg.EventsProvider, "none"},
		{"CompletionTimeout", cfg.CompletionTimeout, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("ALLOWED_ORIGIN", "https://app.example.com")
	t.Setenv("TRANSCRIPTION_TIMEOUT", "5s")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "gsk_test", cfg.GroqAPIKey)
	assert.Equal(t, "https://app.example.com", cfg.AllowedOrigin)
	assert.Equal(t, 5*time.Second, cfg.TranscriptionTimeout)
}

func TestLoadProviderOverrides(t *testing.T) {
	t.Setenv("EVENTS_PROVIDER", "nats")
	t.Setenv("EVENTS_URL", "nats://localhost:4222")

	cfg := Load()

	assert.Equal(t, "nats", cfg.EventsProvider)
	assert.Equal(t, "nats://localhost:4222", cfg.EventsURL)
}
