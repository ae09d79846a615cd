package llm

import "context"

// Client sends a system+user exchange to a chat model and returns its reply.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
