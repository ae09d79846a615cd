package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the relay's runtime configuration.
type Config struct {
	// Server
	Port           int           `env:"PORT" envDefault:"4000"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"json"` // "json" or "text"
	AllowedOrigin  string        `env:"ALLOWED_ORIGIN" envDefault:"http://localhost:3000"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"120s"`

	// Groq (OpenAI-compatible API)
	GroqAPIKey            string        `env:"GROQ_API_KEY"`
	GroqBaseURL           string        `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1/"`
	ChatModel             string        `env:"CHAT_MODEL" envDefault:"llama3-8b-8192"`
	TranscriptionModel    string        `env:"TRANSCRIPTION_MODEL" envDefault:"whisper-large-v3"`
	TranscriptionLanguage string        `env:"TRANSCRIPTION_LANGUAGE" envDefault:"en"`
	CompletionTimeout     time.Duration `env:"COMPLETION_TIMEOUT" envDefault:"60s"`
	TranscriptionTimeout  time.Duration `env:"TRANSCRIPTION_TIMEOUT" envDefault:"90s"`

	// Prompt and uploads
	SystemPromptPath string `env:"SYSTEM_PROMPT_PATH" envDefault:"system_prompt.txt"`
	UploadDir        string `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxUploadSize    int64  `env:"MAX_UPLOAD_SIZE" envDefault:"26214400"` // 25MB in bytes

	// Exchange notifications
	EventsProvider string `env:"EVENTS_PROVIDER" envDefault:"none"` // "none" or "nats"
	EventsURL      string `env:"EVENTS_URL"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
