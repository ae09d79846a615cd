package relay

import (
	"context"
	"log/slog"
	"time"

	"groq-relay/internal/llm"
	"groq-relay/internal/metrics"
	"groq-relay/internal/prompt"
	"groq-relay/internal/transcribe"
)

// Service composes the prompt source, chat model and transcriber into the two
// relay operations. It never substitutes fallback text; callers decide how to
// present failures.
type Service struct {
	prompts prompt.Source
	llm     llm.Client
	stt     transcribe.Client
	log     *slog.Logger
}

func NewService(prompts prompt.Source, llmClient llm.Client, stt transcribe.Client, log *slog.Logger) *Service {
	return &Service{prompts: prompts, llm: llmClient, stt: stt, log: log}
}

// Complete answers question under the current system prompt.
func (s *Service) Complete(ctx context.Context, question string) (string, error) {
	start := time.Now()
	defer func() { metrics.CompletionTime.Observe(time.Since(start).Seconds()) }()

	s.log.Debug("fetching completion", "question", question)
	system, err := s.prompts.Load(ctx)
	if err != nil {
		return "", s.fail("completion", newError(KindIO, "load system prompt", err))
	}
	answer, err := s.llm.Complete(ctx, system, question)
	if err != nil {
		return "", s.fail("completion", newError(KindRemote, "chat completion", err))
	}
	s.log.Debug("completion received", "response", answer)
	return answer, nil
}

// Transcribe converts the audio file at path into text.
func (s *Service) Transcribe(ctx context.Context, path string) (string, error) {
	start := time.Now()
	defer func() { metrics.TranscriptionTime.Observe(time.Since(start).Seconds()) }()

	text, err := s.stt.Transcribe(ctx, path)
	if err != nil {
		return "", s.fail("transcription", newError(KindRemote, "transcribe audio", err))
	}
	s.log.Debug("transcription received", "path", path, "transcription", text)
	return text, nil
}

// fail counts err; logging is left to the caller that decides the response.
func (s *Service) fail(stage string, err *Error) error {
	metrics.Errors.WithLabelValues(stage, string(err.Kind)).Inc()
	return err
}
