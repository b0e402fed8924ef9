// Package protocol defines the JSON messages streamed to monitor clients.
package protocol

import (
	"encoding/json"

	"github.com/pkg/errors"

	"devicequery"
	"devicequery/internal/watch"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	// TypeSnapshot carries the full device state. It is the first message on
	// every connection.
	TypeSnapshot MessageType = "snapshot"

	// TypeEvents carries the changes of one poll.
	TypeEvents MessageType = "events"

	// TypePing can be sent by clients as an application-level heartbeat; the
	// server answers with a ping.
	TypePing MessageType = "ping"
)

// Message is the generic container for all WebSocket messages
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// SnapshotPayload is the payload for TypeSnapshot
type SnapshotPayload struct {
	Mouse     devicequery.MouseState `json:"mouse"`
	Keys      []devicequery.Keycode  `json:"keys"`
	Timestamp int64                  `json:"ts"` // Unix ms
}

// EventsPayload is the payload for TypeEvents
type EventsPayload struct {
	Events []watch.Event `json:"events"`
}

// NewSnapshot wraps a snapshot in a message.
func NewSnapshot(s watch.Snapshot) Message {
	keys := s.Keys
	if keys == nil {
		keys = []devicequery.Keycode{}
	}
	return Message{
		Type: TypeSnapshot,
		Payload: SnapshotPayload{
			Mouse:     s.Mouse,
			Keys:      keys,
			Timestamp: s.Time.UnixMilli(),
		},
	}
}

// NewEvents wraps the events of one poll in a message.
func NewEvents(events []watch.Event) Message {
	return Message{Type: TypeEvents, Payload: EventsPayload{Events: events}}
}

// Decode parses a message and its payload into the payload type that belongs
// to the message type.
func Decode(data []byte) (Message, error) {
	var raw struct {
		Type    MessageType     `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Message{}, errors.Wrap(err, "invalid message")
	}

	msg := Message{Type: raw.Type}
	switch raw.Type {
	case TypeSnapshot:
		var p SnapshotPayload
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return Message{}, errors.Wrap(err, "invalid snapshot payload")
		}
		msg.Payload = p
	case TypeEvents:
		var p EventsPayload
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return Message{}, errors.Wrap(err, "invalid events payload")
		}
		msg.Payload = p
	case TypePing:
	default:
		return Message{}, errors.Errorf("unknown message type %q", raw.Type)
	}
	return msg, nil
}
