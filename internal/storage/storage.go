// Package storage defines the persistence contracts for loads, negotiation
// events, and call logs.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/mapauhernandez/happy-robot-acme-demo/internal/board"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// NegotiationEvent is one stored negotiation outcome.
type NegotiationEvent struct {
	ID                int64     `json:"id"`
	LoadAccepted      bool      `json:"load_accepted"`
	PostedPrice       float64   `json:"posted_price"`
	FinalPrice        float64   `json:"final_price"`
	TotalNegotiations int       `json:"total_negotiations"`
	CallSentiment     string    `json:"call_sentiment"`
	Commodity         string    `json:"commodity"`
	CreatedAt         time.Time `json:"created_at"`
}

// CallRecord is one raw call payload captured for later analysis.
type CallRecord struct {
	ID         string          `json:"id"`
	Payload    json.RawMessage `json:"payload"`
	ReceivedAt time.Time       `json:"received_at"`
}

// LoadStore persists the load board rows.
type LoadStore interface {
	// SeedLoads replaces the stored loads when their IDs drift from the
	// given seed set. A matching store is left untouched.
	SeedLoads(ctx context.Context, loads []board.Load) error
	ListLoads(ctx context.Context) ([]board.Load, error)
}

// NegotiationStore persists negotiation outcomes.
type NegotiationStore interface {
	InsertNegotiation(ctx context.Context, event NegotiationEvent) (int64, error)
	// ListNegotiations returns every event, newest first.
	ListNegotiations(ctx context.Context) ([]NegotiationEvent, error)
}

// CallStore persists raw call payloads.
type CallStore interface {
	InsertCall(ctx context.Context, record CallRecord) error
	ListCalls(ctx context.Context) ([]CallRecord, error)
}

// Store aggregates every persistence concern the service needs.
type Store interface {
	LoadStore
	NegotiationStore
	CallStore
	Close() error
}
