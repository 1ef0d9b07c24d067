// Package events publishes household events after a change has committed.
//
// Publishing is best effort: the change is already durable, so a failed
// publish is logged and dropped. Chore rotations are never published.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type names a household event.
type Type string

const (
	MemberJoined  Type = "member.joined"
	MemberLeft    Type = "member.left"
	RoomDissolved Type = "room.dissolved"
	PeriodClosed  Type = "period.closed"
)

// Event is the message body sent to subscribers.
type Event struct {
	ID         string          `json:"id"`
	Type       Type            `json:"type"`
	RoomID     int64           `json:"room_id"`
	PersonID   int64           `json:"person_id,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// New builds an event with a fresh ID. payload may be nil.
func New(typ Type, roomID, personID int64, payload any) (*Event, error) {
	e := &Event{
		ID:         uuid.NewString(),
		Type:       typ,
		RoomID:     roomID,
		PersonID:   personID,
		OccurredAt: time.Now().UTC(),
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		e.Payload = raw
	}
	return e, nil
}

// ToJSON converts the event to JSON bytes.
func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON parses an event from JSON bytes.
func FromJSON(data []byte) (*Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Publisher delivers events.
type Publisher interface {
	Publish(ctx context.Context, e *Event) error
	Close() error
}

// Emit builds and publishes an event, logging instead of returning failures.
func Emit(ctx context.Context, p Publisher, typ Type, roomID, personID int64, payload any) {
	e, err := New(typ, roomID, personID, payload)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to build event", "type", typ, "error", err)
		return
	}
	if err := p.Publish(ctx, e); err != nil {
		slog.WarnContext(ctx, "Failed to publish event",
			"id", e.ID,
			"type", typ,
			"room_id", roomID,
			"error", err)
	}
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, *Event) error { return nil }
func (Nop) Close() error                          { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []*Event
}

func (r *Recorder) Publish(_ context.Context, e *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *Recorder) Close() error { return nil }

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []*Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.events)
}

// Types returns the type of every recorded event, in order.
func (r *Recorder) Types() []Type {
	events := r.Events()
	types := make([]Type, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}
