// Package x11 wraps the X11 requests needed to read the pointer and keyboard
// state over a single xgb connection.
package x11

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"
)

// Button masks of the pointer state, as in X.h (Button1Mask..Button5Mask).
const (
	Button1Mask = xproto.KeyButMaskButton1
	Button2Mask = xproto.KeyButMaskButton2
	Button3Mask = xproto.KeyButMaskButton3
	Button4Mask = xproto.KeyButMaskButton4
	Button5Mask = xproto.KeyButMaskButton5
)

// KeymapSize is the length in bytes of the QueryKeymap bitmap.
const KeymapSize = 32

// Display is an open connection with the root window of the default screen.
// xgb connections are safe for concurrent use.
type Display struct {
	conn       *xgb.Conn
	root       xproto.Window
	minKeycode xproto.Keycode
	maxKeycode xproto.Keycode
}

// Pointer is the QueryPointer answer relative to the root window.
type Pointer struct {
	X, Y int16
	Mask uint16
}

// Open connects to the named display; an empty name means $DISPLAY.
func Open(name string) (*Display, error) {
	conn, err := xgb.NewConnDisplay(name)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open display %q", name)
	}

	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)
	if screen == nil {
		conn.Close()
		return nil, errors.Errorf("display %q has no default screen", name)
	}

	return &Display{
		conn:       conn,
		root:       screen.Root,
		minKeycode: setup.MinKeycode,
		maxKeycode: setup.MaxKeycode,
	}, nil
}

// QueryPointer reads the pointer position on the root window and the button
// and modifier mask.
func (d *Display) QueryPointer() (Pointer, error) {
	reply, err := xproto.QueryPointer(d.conn, d.root).Reply()
	if err != nil {
		return Pointer{}, errors.Wrap(err, "QueryPointer failed")
	}
	return Pointer{X: reply.RootX, Y: reply.RootY, Mask: reply.Mask}, nil
}

// QueryKeymap reads the bitmap of held keycodes. Bit j of byte i is keycode
// i*8+j.
func (d *Display) QueryKeymap() ([]byte, error) {
	reply, err := xproto.QueryKeymap(d.conn).Reply()
	if err != nil {
		return nil, errors.Wrap(err, "QueryKeymap failed")
	}
	if len(reply.Keys) != KeymapSize {
		return nil, errors.Errorf("QueryKeymap returned %d bytes", len(reply.Keys))
	}
	return reply.Keys, nil
}

// KeyboardMapping fetches the keysym table of every keycode the server uses.
func (d *Display) KeyboardMapping() (*Mapping, error) {
	count := int(d.maxKeycode) - int(d.minKeycode) + 1
	if count <= 0 {
		return nil, errors.Errorf("empty keycode range %d-%d", d.minKeycode, d.maxKeycode)
	}

	reply, err := xproto.GetKeyboardMapping(d.conn, d.minKeycode, byte(count)).Reply()
	if err != nil {
		return nil, errors.Wrap(err, "GetKeyboardMapping failed")
	}

	syms := make([]uint32, len(reply.Keysyms))
	for i, sym := range reply.Keysyms {
		syms[i] = uint32(sym)
	}
	return NewMapping(int(d.minKeycode), int(reply.KeysymsPerKeycode), syms), nil
}

// Close closes the connection.
func (d *Display) Close() {
	d.conn.Close()
}
