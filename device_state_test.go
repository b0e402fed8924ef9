package devicequery

import (
	"testing"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.viam.com/test"
)

type fakeBackend struct {
	mouse  MouseState
	keys   []Keycode
	closes int
	err    error
}

func (f *fakeBackend) queryMouse() MouseState { return f.mouse }
func (f *fakeBackend) queryKeys() []Keycode   { return append([]Keycode{}, f.keys...) }
func (f *fakeBackend) close() error {
	f.closes++
	return f.err
}

func newFakeState(t *testing.T, fake *fakeBackend) *DeviceState {
	t.Helper()
	return &DeviceState{backend: fake, logger: golog.NewTestLogger(t)}
}

func TestDeviceStateQueries(t *testing.T) {
	fake := &fakeBackend{
		mouse: MouseState{Coordinates: Point{X: 640, Y: -12}, Buttons: [numButtons]bool{false, true}},
		keys:  []Keycode{KeyLControl, KeyQ},
	}
	state := newFakeState(t, fake)

	first := state.GetMouse()
	second := state.GetMouse()
	test.That(t, first, test.ShouldResemble, second)
	test.That(t, first.Coordinates, test.ShouldResemble, Point{X: 640, Y: -12})
	test.That(t, first.GetButtons(), test.ShouldResemble, []MouseButton{ButtonLeft})

	test.That(t, state.GetKeys(), test.ShouldResemble, []Keycode{KeyLControl, KeyQ})
}

func TestDeviceStateCloseIsIdempotent(t *testing.T) {
	fake := &fakeBackend{
		mouse: MouseState{Coordinates: Point{X: 1, Y: 2}},
		keys:  []Keycode{KeyA},
	}
	state := newFakeState(t, fake)

	test.That(t, state.Close(), test.ShouldBeNil)
	test.That(t, state.Close(), test.ShouldBeNil)
	test.That(t, fake.closes, test.ShouldEqual, 1)

	test.That(t, state.GetMouse(), test.ShouldResemble, MouseState{})
	keys := state.GetKeys()
	test.That(t, keys, test.ShouldNotBeNil)
	test.That(t, keys, test.ShouldBeEmpty)
}

func TestDeviceStateCloseError(t *testing.T) {
	fake := &fakeBackend{err: errors.New("connection reset")}
	state := newFakeState(t, fake)

	err := state.Close()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "connection reset")
	test.That(t, state.Close(), test.ShouldBeNil)
	test.That(t, fake.closes, test.ShouldEqual, 1)
}

func TestClosedBackend(t *testing.T) {
	var b closedBackend
	test.That(t, b.queryMouse(), test.ShouldResemble, MouseState{})
	test.That(t, b.queryKeys(), test.ShouldNotBeNil)
	test.That(t, b.queryKeys(), test.ShouldBeEmpty)
	test.That(t, b.close(), test.ShouldBeNil)
}

func TestOptions(t *testing.T) {
	logger := golog.NewTestLogger(t)
	o := options{}
	for _, opt := range []Option{WithLogger(logger), WithDisplay(":1")} {
		opt(&o)
	}
	test.That(t, o.logger, test.ShouldEqual, logger)
	test.That(t, o.display, test.ShouldEqual, ":1")
}
