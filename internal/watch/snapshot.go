// Package watch polls a DeviceQuery and turns consecutive snapshots into
// change events.
package watch

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/pkg/errors"

	"devicequery"
)

// Event types.
const (
	EventMouseMove   = "mouse_move"
	EventMouseButton = "mouse_btn"
	EventKey         = "key"
)

// Snapshot is one poll of the mouse and keyboard.
type Snapshot struct {
	Mouse devicequery.MouseState `json:"mouse"`
	Keys  []devicequery.Keycode  `json:"keys"`
	Time  time.Time              `json:"time"`
}

// Event describes one change between two snapshots. Only the fields that
// belong to the event type are encoded.
type Event struct {
	Type      string // "mouse_move", "mouse_btn", "key"
	X, Y      int32
	Button    devicequery.MouseButton
	Key       devicequery.Keycode
	Pressed   bool
	Timestamp int64 // Unix ms timestamp
}

type eventJSON struct {
	Type      string                   `json:"type"`
	X         *int32                   `json:"x,omitempty"`
	Y         *int32                   `json:"y,omitempty"`
	Button    *devicequery.MouseButton `json:"btn,omitempty"`
	Key       *devicequery.Keycode     `json:"key,omitempty"`
	Pressed   *bool                    `json:"pressed,omitempty"`
	Timestamp int64                    `json:"ts"`
}

// MarshalJSON implements json.Marshaler.
func (e Event) MarshalJSON() ([]byte, error) {
	w := eventJSON{Type: e.Type, Timestamp: e.Timestamp}
	switch e.Type {
	case EventMouseMove:
		w.X, w.Y = &e.X, &e.Y
	case EventMouseButton:
		w.X, w.Y, w.Button, w.Pressed = &e.X, &e.Y, &e.Button, &e.Pressed
	case EventKey:
		w.Key, w.Pressed = &e.Key, &e.Pressed
	default:
		return nil, errors.Errorf("unknown event type %q", e.Type)
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Event) UnmarshalJSON(data []byte) error {
	var w eventJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*e = Event{Type: w.Type, Timestamp: w.Timestamp}
	if w.X != nil {
		e.X = *w.X
	}
	if w.Y != nil {
		e.Y = *w.Y
	}
	if w.Button != nil {
		e.Button = *w.Button
	}
	if w.Key != nil {
		e.Key = *w.Key
	}
	if w.Pressed != nil {
		e.Pressed = *w.Pressed
	}
	return nil
}

// Take queries q once. Keys is never nil.
func Take(q devicequery.DeviceQuery) Snapshot {
	mouse := q.GetMouse()
	keys := q.GetKeys()
	if keys == nil {
		keys = []devicequery.Keycode{}
	}
	return Snapshot{
		Mouse: mouse,
		Keys:  keys,
		Time:  time.Now(),
	}
}

// Diff lists what changed from prev to cur: a move if the cursor moved, then
// button transitions in slot order, then key releases and key presses, each in
// ascending Keycode order. Key changes compare sets, so a key reported twice
// counts once.
func Diff(prev, cur Snapshot) []Event {
	ts := cur.Time.UnixMilli()
	var events []Event

	if prev.Mouse.Coordinates != cur.Mouse.Coordinates {
		events = append(events, Event{
			Type:      EventMouseMove,
			X:         cur.Mouse.Coordinates.X,
			Y:         cur.Mouse.Coordinates.Y,
			Timestamp: ts,
		})
	}

	for i := range cur.Mouse.Buttons {
		if prev.Mouse.Buttons[i] == cur.Mouse.Buttons[i] {
			continue
		}
		events = append(events, Event{
			Type:      EventMouseButton,
			X:         cur.Mouse.Coordinates.X,
			Y:         cur.Mouse.Coordinates.Y,
			Button:    devicequery.MouseButton(i),
			Pressed:   cur.Mouse.Buttons[i],
			Timestamp: ts,
		})
	}

	before, after := keySet(prev.Keys), keySet(cur.Keys)
	for _, k := range sortedKeys(before) {
		if !after[k] {
			events = append(events, Event{Type: EventKey, Key: k, Timestamp: ts})
		}
	}
	for _, k := range sortedKeys(after) {
		if !before[k] {
			events = append(events, Event{Type: EventKey, Key: k, Pressed: true, Timestamp: ts})
		}
	}
	return events
}

func keySet(keys []devicequery.Keycode) map[devicequery.Keycode]bool {
	set := make(map[devicequery.Keycode]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

func sortedKeys(set map[devicequery.Keycode]bool) []devicequery.Keycode {
	keys := make([]devicequery.Keycode, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
