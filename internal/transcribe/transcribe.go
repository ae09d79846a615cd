package transcribe

import "context"

// Client converts a stored audio file into text.
type Client interface {
	Transcribe(ctx context.Context, path string) (string, error)
}
