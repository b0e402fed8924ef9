package protocol

import (
	"encoding/json"
	"testing"
	"time"

	"go.viam.com/test"

	"devicequery"
	"devicequery/internal/watch"
)

func TestSnapshotMessage(t *testing.T) {
	snap := watch.Snapshot{
		Mouse: devicequery.MouseState{Coordinates: devicequery.Point{X: 5, Y: 6}},
		Time:  time.UnixMilli(1234),
	}
	data, err := json.Marshal(NewSnapshot(snap))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldEqual,
		`{"type":"snapshot","payload":{"mouse":{"coordinates":{"x":5,"y":6},"buttons":[false,false,false,false,false]},"keys":[],"ts":1234}}`)

	msg, err := Decode(data)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, msg.Type, test.ShouldEqual, TypeSnapshot)
	payload, ok := msg.Payload.(SnapshotPayload)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, payload.Mouse, test.ShouldResemble, snap.Mouse)
	test.That(t, payload.Timestamp, test.ShouldEqual, int64(1234))
}

func TestEventsMessage(t *testing.T) {
	events := []watch.Event{
		{Type: watch.EventKey, Key: devicequery.KeyEscape, Pressed: true, Timestamp: 9},
	}
	data, err := json.Marshal(NewEvents(events))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldEqual,
		`{"type":"events","payload":{"events":[{"type":"key","key":"Escape","pressed":true,"ts":9}]}}`)

	msg, err := Decode(data)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, msg.Payload, test.ShouldResemble, EventsPayload{Events: events})
}

func TestDecodeErrors(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"ping"}`))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, msg.Type, test.ShouldEqual, TypePing)

	for _, bad := range []string{`{`, `{"type":"switch"}`, `{"type":"events","payload":{"events":3}}`} {
		_, err := Decode([]byte(bad))
		test.That(t, err, test.ShouldNotBeNil)
	}
}
