// Package devicequery queries the global mouse and keyboard state without
// requiring a focused window. Linux and the BSDs are served through X11,
// Windows through user32 and macOS through CoreGraphics.
//
//	state := devicequery.New()
//	defer state.Close()
//
//	mouse := state.GetMouse()
//	fmt.Println(mouse.Coordinates)
//
//	keys := state.GetKeys()
//	fmt.Println(slices.Contains(keys, devicequery.KeyA))
//
// Queries never fail: when the platform cannot answer, GetMouse reports the
// origin with no buttons pressed and GetKeys reports no keys.
package devicequery

import (
	"sync"

	"github.com/edaniels/golog"
)

// DeviceQuery fetches mouse and keyboard snapshots.
type DeviceQuery interface {
	// GetMouse returns the current cursor position and button state.
	GetMouse() MouseState

	// GetKeys returns every key that is currently held, in ascending native
	// code order.
	GetKeys() []Keycode
}

// backend is implemented once per platform and selected at build time.
type backend interface {
	queryMouse() MouseState
	queryKeys() []Keycode
	close() error
}

// Option configures New.
type Option func(*options)

type options struct {
	logger  golog.Logger
	display string
}

// WithLogger sets the logger used to report degraded queries.
func WithLogger(logger golog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDisplay selects the X11 display to connect to. An empty name means
// $DISPLAY. Other platforms ignore it.
func WithDisplay(name string) Option {
	return func(o *options) {
		o.display = name
	}
}

// DeviceState holds the platform resource used by the queries. It is safe
// for concurrent queries; Close must not be called while a query is running.
type DeviceState struct {
	backend   backend
	logger    golog.Logger
	closeOnce sync.Once
}

var _ DeviceQuery = (*DeviceState)(nil)

// New acquires the platform resource. It never fails: when the resource cannot
// be acquired a warning is logged and the returned state answers every query
// with empty results.
func New(opts ...Option) *DeviceState {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = golog.Global().Named("devicequery")
	}
	return &DeviceState{
		backend: newBackend(o),
		logger:  o.logger,
	}
}

// Default is New without options.
func Default() *DeviceState {
	return New()
}

// GetMouse queries the cursor position and the five standard buttons.
func (s *DeviceState) GetMouse() MouseState {
	return s.backend.queryMouse()
}

// GetKeys queries every pressed key.
func (s *DeviceState) GetKeys() []Keycode {
	return s.backend.queryKeys()
}

// Close releases the platform resource. Later queries return empty results.
func (s *DeviceState) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.backend.close()
		s.backend = closedBackend{}
	})
	return err
}

// closedBackend answers for a released or never acquired resource.
type closedBackend struct{}

func (closedBackend) queryMouse() MouseState { return MouseState{} }
func (closedBackend) queryKeys() []Keycode   { return []Keycode{} }
func (closedBackend) close() error           { return nil }
