// Package event publishes domain events of the booking flow.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type Type string

const (
	TypeSearchSubmitted   Type = "search.submitted"
	TypeItinerarySelected Type = "itinerary.selected"
	TypeUserRegistered    Type = "user.registered"
)

type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	ClientID   string    `json:"client_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// Key is the partition key. Events of one client stay ordered.
func (e Event) Key() []byte {
	return []byte(e.ClientID)
}

func (e Event) Encode() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode event %s: %w", e.Type, err)
	}
	return data, nil
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }

func (Noop) Close() error { return nil }
