package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/openai/openai-go/v3"

	"groq-relay/internal/config"
	"groq-relay/internal/events"
	"groq-relay/internal/llm"
	"groq-relay/internal/logger"
	"groq-relay/internal/prompt"
	"groq-relay/internal/relay"
	"groq-relay/internal/transcribe"
	"groq-relay/internal/upload"
)

// Deps bundles the runtime dependencies handed to the HTTP handlers.
type Deps struct {
	Config  config.Config
	Log     *slog.Logger
	Relay   *relay.Service
	Uploads *upload.Store
	Events  events.Publisher
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Deps{}, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	llmClient, err := buildLLM(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM: %w", err)
	}
	stt, err := buildTranscriber(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize transcriber: %w", err)
	}
	uploads, err := upload.NewStore(cfg.UploadDir, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize upload store: %w", err)
	}
	pub, err := buildEvents(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize events: %w", err)
	}
	return Deps{
		Config:  cfg,
		Log:     log,
		Relay:   relay.NewService(prompt.NewFileSource(cfg.SystemPromptPath), llmClient, stt, log),
		Uploads: uploads,
		Events:  pub,
	}, nil
}

func buildLLM(cfg config.Config, log *slog.Logger) (llm.Client, error) {
	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}
	client, err := llm.NewOpenAIClient(cfg.GroqAPIKey, cfg.GroqBaseURL, openai.ChatModel(cfg.ChatModel), cfg.CompletionTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize chat client: %w", err)
	}
	log.Info("using Groq chat model", "model", cfg.ChatModel, "base_url", cfg.GroqBaseURL)
	return client, nil
}

func buildTranscriber(cfg config.Config, log *slog.Logger) (transcribe.Client, error) {
	client, err := transcribe.NewGroqClient(cfg.GroqAPIKey, cfg.GroqBaseURL,
		openai.AudioModel(cfg.TranscriptionModel), cfg.TranscriptionLanguage, cfg.TranscriptionTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize transcription client: %w", err)
	}
	log.Info("using Groq transcription model", "model", cfg.TranscriptionModel, "language", cfg.TranscriptionLanguage)
	return client, nil
}

func buildEvents(cfg config.Config, log *slog.Logger) (events.Publisher, error) {
	switch cfg.EventsProvider {
	case "", "none":
		return events.Noop{}, nil
	case "nats":
		if cfg.EventsURL == "" {
			return nil, fmt.Errorf("EVENTS_URL is required when EVENTS_PROVIDER=nats")
		}
		nc, err := nats.Connect(cfg.EventsURL, nats.Name("groq-relay"))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		log.Info("publishing exchanges to NATS", "url", cfg.EventsURL)
		return events.NewNATS(log, nc), nil
	default:
		return nil, fmt.Errorf("invalid EVENTS_PROVIDER: %s (valid options: none, nats)", cfg.EventsProvider)
	}
}
