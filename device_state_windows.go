//go:build windows

package devicequery

import (
	"github.com/edaniels/golog"

	"devicequery/internal/winuser"
)

// windowsBackend polls user32. The procedures are process wide, so there is
// nothing to own or release.
type windowsBackend struct {
	logger golog.Logger
}

func newBackend(o options) backend {
	if err := winuser.Load(); err != nil {
		o.logger.Warnw("user32 unavailable, queries will return empty state", "error", err)
		return closedBackend{}
	}
	return &windowsBackend{logger: o.logger}
}

func (b *windowsBackend) queryMouse() MouseState {
	var state MouseState
	if x, y, ok := winuser.CursorPos(); ok {
		state.Coordinates = Point{X: x, Y: y}
	} else {
		b.logger.Debugw("GetCursorPos failed, reporting origin")
	}

	var mask uint32
	for i, vk := range mouseVirtualKeys {
		if winuser.KeyDown(vk) {
			mask |= 1 << i
		}
	}
	state.Buttons = decodeButtons(mask, slotMasks)
	return state
}

func (b *windowsBackend) queryKeys() []Keycode {
	return pollKeys(virtualKeyCount, winuser.KeyDown, VirtualKeyToKeycode)
}

func (b *windowsBackend) close() error {
	return nil
}
