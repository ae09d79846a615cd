package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/nats-io/nats.go"
)

const subjectPrefix = "relay.exchanges."

// NATSPublisher publishes exchanges as JSON on relay.exchanges.<endpoint>.
type NATSPublisher struct {
	log *slog.Logger
	nc  *nats.Conn
}

func NewNATS(log *slog.Logger, nc *nats.Conn) *NATSPublisher {
	return &NATSPublisher{log: log, nc: nc}
}

func (p *NATSPublisher) Publish(_ context.Context, ex Exchange) error {
	if ex.Endpoint == "" {
		return errors.New("exchange endpoint required")
	}
	body, err := json.Marshal(ex)
	if err != nil {
		return err
	}
	return p.nc.Publish(Subject(ex.Endpoint), body)
}

func (p *NATSPublisher) Close() error {
	if err := p.nc.Drain(); err != nil {
		p.log.Warn("nats drain failed", "err", err)
		p.nc.Close()
		return err
	}
	return nil
}

// Subject returns the NATS subject exchanges for endpoint are published on.
func Subject(endpoint Endpoint) string {
	return subjectPrefix + string(endpoint)
}
