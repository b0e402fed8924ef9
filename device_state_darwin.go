//go:build darwin

package devicequery

import (
	"github.com/edaniels/golog"

	"devicequery/internal/quartz"
)

// darwinBackend reads the combined session state; CoreGraphics needs no
// handle, so there is nothing to release.
type darwinBackend struct {
	logger golog.Logger
}

func newBackend(o options) backend {
	return &darwinBackend{logger: o.logger}
}

func (b *darwinBackend) queryMouse() MouseState {
	var state MouseState
	if x, y, ok := quartz.CursorLocation(); ok {
		state.Coordinates = Point{X: x, Y: y}
	} else {
		b.logger.Debugw("CGEventCreate failed, reporting origin")
	}

	var mask uint32
	for i := 0; i < quartz.NumButtons; i++ {
		if quartz.ButtonDown(i) {
			mask |= 1 << i
		}
	}
	state.Buttons = decodeButtons(mask, slotMasks)
	return state
}

func (b *darwinBackend) queryKeys() []Keycode {
	return pollKeys(macKeyCount, quartz.KeyDown, MacKeyToKeycode)
}

func (b *darwinBackend) close() error {
	return nil
}
