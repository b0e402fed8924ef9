//go:build windows

package winuser

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
	procGetCursorPos     = user32.NewProc("GetCursorPos")
)

// keyDownMask is the high-order bit of GetAsyncKeyState.
const keyDownMask = 0x8000

// POINT mirrors the Win32 structure.
type POINT struct {
	X, Y int32
}

// Load resolves the procedures. Queries made after a failed Load report
// nothing held and the cursor at the origin.
func Load() error {
	for _, p := range []*windows.LazyProc{procGetAsyncKeyState, procGetCursorPos} {
		if err := p.Find(); err != nil {
			return errors.Wrapf(err, "missing procedure %q", p.Name)
		}
	}
	return nil
}

// KeyDown reports whether the virtual key is held right now.
func KeyDown(vk int) bool {
	if procGetAsyncKeyState.Find() != nil {
		return false
	}
	state, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return state&keyDownMask != 0
}

// CursorPos returns the cursor position in screen coordinates. ok is false
// when GetCursorPos fails, e.g. on a secure desktop.
func CursorPos() (x, y int32, ok bool) {
	if procGetCursorPos.Find() != nil {
		return 0, 0, false
	}
	var pt POINT
	ret, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return 0, 0, false
	}
	return pt.X, pt.Y, true
}
