package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"groq-relay/internal/retry"
)

// Endpoint names the relay route an exchange was served on.
type Endpoint string

const (
	EndpointGroq    Endpoint = "groq"
	EndpointWhisper Endpoint = "whisper"
)

// Exchange describes one served request. It is a notification only; the relay
// never reads exchanges back.
type Exchange struct {
	ID            uuid.UUID `json:"id"`
	Endpoint      Endpoint  `json:"endpoint"`
	Question      string    `json:"question,omitempty"`
	Transcription string    `json:"transcription,omitempty"`
	Response      string    `json:"response,omitempty"`
	Outcome       string    `json:"outcome"`
	DurationMS    int64     `json:"duration_ms"`
	At            time.Time `json:"at"`
}

// Publisher emits exchange notifications.
type Publisher interface {
	Publish(ctx context.Context, ex Exchange) error
	Close() error
}

// PublishWithRetry attempts to publish with retries and exponential backoff.
func PublishWithRetry(ctx context.Context, p Publisher, ex Exchange, attempts int, base time.Duration) error {
	if attempts <= 0 {
		attempts = 1
	}
	if ex.ID == uuid.Nil {
		ex.ID = uuid.New()
	}
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = p.Publish(ctx, ex); err == nil {
			return nil
		}
		if attempt == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retry.ExponentialBackoff(attempt, base, 2*time.Second)):
		}
	}
	return err
}
