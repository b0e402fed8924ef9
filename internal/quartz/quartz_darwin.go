//go:build darwin

package quartz

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <stdbool.h>

static bool cursorLocation(double *x, double *y) {
    CGEventRef event = CGEventCreate(NULL);
    if (event == NULL) {
        return false;
    }
    CGPoint loc = CGEventGetLocation(event);
    CFRelease(event);
    *x = loc.x;
    *y = loc.y;
    return true;
}

static bool keyDown(int code) {
    return CGEventSourceKeyState(kCGEventSourceStateCombinedSessionState, (CGKeyCode)code);
}

static bool buttonDown(int button) {
    return CGEventSourceButtonState(kCGEventSourceStateCombinedSessionState, (CGMouseButton)button);
}
*/
import "C"

// NumButtons is the number of mouse buttons polled, numbered from 0 (left).
const NumButtons = 5

// CursorLocation returns the cursor position in global display coordinates,
// truncated to whole points. ok is false when no event could be created.
func CursorLocation() (x, y int32, ok bool) {
	var cx, cy C.double
	if !C.cursorLocation(&cx, &cy) {
		return 0, 0, false
	}
	return int32(cx), int32(cy), true
}

// KeyDown reports whether the virtual key is held.
func KeyDown(code int) bool {
	return bool(C.keyDown(C.int(code)))
}

// ButtonDown reports whether the mouse button is held.
func ButtonDown(button int) bool {
	return bool(C.buttonDown(C.int(button)))
}
