//go:build linux || freebsd || netbsd || openbsd || dragonfly

package devicequery

import (
	"github.com/edaniels/golog"

	"devicequery/internal/x11"
)

var x11ButtonMasks = [numButtons]uint32{
	x11.Button1Mask,
	x11.Button2Mask,
	x11.Button3Mask,
	x11.Button4Mask,
	x11.Button5Mask,
}

// x11Backend queries the X server. A nil display means it could not be opened.
type x11Backend struct {
	display *x11.Display
	logger  golog.Logger
}

func newBackend(o options) backend {
	display, err := x11.Open(o.display)
	if err != nil {
		o.logger.Warnw("X11 display unavailable, queries will return empty state", "error", err)
		return closedBackend{}
	}
	return &x11Backend{display: display, logger: o.logger}
}

func (b *x11Backend) queryMouse() MouseState {
	pointer, err := b.display.QueryPointer()
	if err != nil {
		b.logger.Debugw("mouse query failed", "error", err)
		return MouseState{}
	}
	return MouseState{
		Coordinates: Point{X: int32(pointer.X), Y: int32(pointer.Y)},
		Buttons:     decodeButtons(uint32(pointer.Mask), x11ButtonMasks),
	}
}

func (b *x11Backend) queryKeys() []Keycode {
	bitmap, err := b.display.QueryKeymap()
	if err != nil {
		b.logger.Debugw("keymap query failed", "error", err)
		return []Keycode{}
	}
	if !anyBitSet(bitmap) {
		return []Keycode{}
	}

	mapping, err := b.display.KeyboardMapping()
	if err != nil {
		b.logger.Debugw("keyboard mapping query failed", "error", err)
		return []Keycode{}
	}
	return scanKeymap(bitmap, func(code int) []Keycode {
		return resolveKeysyms(mapping.Keysyms(code))
	})
}

func (b *x11Backend) close() error {
	b.display.Close()
	return nil
}

func anyBitSet(bitmap []byte) bool {
	for _, b := range bitmap {
		if b != 0 {
			return true
		}
	}
	return false
}
