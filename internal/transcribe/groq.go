package transcribe

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	DefaultModel             = "whisper-large-v3"
	DefaultLanguage          = "en"
	defaultTranscribeTimeout = 90 * time.Second
)

// GroqClient calls the OpenAI-compatible audio transcription endpoint.
// Decoding is deterministic (temperature 0).
type GroqClient struct {
	model    openai.AudioModel
	language string
	timeout  time.Duration
	client   *openai.Client
}

func NewGroqClient(apiKey, baseURL string, model openai.AudioModel, language string, timeout time.Duration) (*GroqClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = DefaultModel
	}
	if language == "" {
		language = DefaultLanguage
	}
	if timeout <= 0 {
		timeout = defaultTranscribeTimeout
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	cli := openai.NewClient(opts...)
	return &GroqClient{
		model:    model,
		language: language,
		timeout:  timeout,
		client:   &cli,
	}, nil
}

// Transcribe streams the file at path to the API. The multipart filename is
// taken from path, so the file must already carry a recognizable extension.
func (c *GroqClient) Transcribe(ctx context.Context, path string) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil transcription client")
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Audio.Transcriptions.New(reqCtx, openai.AudioTranscriptionNewParams{
		File:        f,
		Model:       c.model,
		Language:    openai.String(c.language),
		Temperature: openai.Float(0),
	})
	if err != nil {
		return "", fmt.Errorf("audio transcription: %w", err)
	}
	return resp.Text, nil
}
