package events

import "context"

// Noop drops every exchange. Used when EVENTS_PROVIDER=none.
type Noop struct{}

func (Noop) Publish(context.Context, Exchange) error { return nil }

func (Noop) Close() error { return nil }
