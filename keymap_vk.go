package devicequery

// Windows virtual-key codes, from WinUser.h.
const (
	vkLButton  = 0x01
	vkRButton  = 0x02
	vkMButton  = 0x04
	vkXButton1 = 0x05
	vkXButton2 = 0x06

	vkBack    = 0x08
	vkTab     = 0x09
	vkReturn  = 0x0D
	vkCapital = 0x14
	vkEscape  = 0x1B
	vkSpace   = 0x20
	vkPrior   = 0x21
	vkNext    = 0x22
	vkEnd     = 0x23
	vkHome    = 0x24
	vkLeft    = 0x25
	vkUp      = 0x26
	vkRight   = 0x27
	vkDown    = 0x28
	vkInsert  = 0x2D
	vkDelete  = 0x2E

	vkNumpad0  = 0x60
	vkNumpad1  = 0x61
	vkNumpad2  = 0x62
	vkNumpad3  = 0x63
	vkNumpad4  = 0x64
	vkNumpad5  = 0x65
	vkNumpad6  = 0x66
	vkNumpad7  = 0x67
	vkNumpad8  = 0x68
	vkNumpad9  = 0x69
	vkMultiply = 0x6A
	vkAdd      = 0x6B
	vkSubtract = 0x6D
	vkDecimal  = 0x6E
	vkDivide   = 0x6F

	vkF1  = 0x70
	vkF2  = 0x71
	vkF3  = 0x72
	vkF4  = 0x73
	vkF5  = 0x74
	vkF6  = 0x75
	vkF7  = 0x76
	vkF8  = 0x77
	vkF9  = 0x78
	vkF10 = 0x79
	vkF11 = 0x7A
	vkF12 = 0x7B
	vkF13 = 0x7C
	vkF14 = 0x7D
	vkF15 = 0x7E
	vkF16 = 0x7F
	vkF17 = 0x80
	vkF18 = 0x81
	vkF19 = 0x82
	vkF20 = 0x83
	vkF21 = 0x84
	vkF22 = 0x85
	vkF23 = 0x86
	vkF24 = 0x87

	vkNumLock  = 0x90
	vkLShift   = 0xA0
	vkRShift   = 0xA1
	vkLControl = 0xA2
	vkRControl = 0xA3
	vkLMenu    = 0xA4
	vkRMenu    = 0xA5

	// virtualKeyCount is the size of the virtual-key space.
	virtualKeyCount = 256
)

// mouseVirtualKeys are polled for the five button slots, in slot order.
var mouseVirtualKeys = [numButtons]int{vkLButton, vkRButton, vkMButton, vkXButton1, vkXButton2}

// VirtualKeyToKeycode resolves a Windows virtual-key code in two stages: the
// control, function and numpad constants first, then the code read as an
// ASCII character. The letters and digits share their numeric range with the
// characters '0'-'9' and 'A'-'Z', which is what the second stage relies on.
func VirtualKeyToKeycode(vk int) (Keycode, bool) {
	if k, ok := virtualKeyControl(vk); ok {
		return k, true
	}
	if vk < 0 || vk > 0xFF {
		return 0, false
	}
	return virtualKeyChar(byte(vk))
}

// virtualKeyControl is the first stage of VirtualKeyToKeycode.
func virtualKeyControl(vk int) (Keycode, bool) {
	switch vk {
	// Function keys
	case vkF1:
		return KeyF1, true
	case vkF2:
		return KeyF2, true
	case vkF3:
		return KeyF3, true
	case vkF4:
		return KeyF4, true
	case vkF5:
		return KeyF5, true
	case vkF6:
		return KeyF6, true
	case vkF7:
		return KeyF7, true
	case vkF8:
		return KeyF8, true
	case vkF9:
		return KeyF9, true
	case vkF10:
		return KeyF10, true
	case vkF11:
		return KeyF11, true
	case vkF12:
		return KeyF12, true
	case vkF13:
		return KeyF13, true
	case vkF14:
		return KeyF14, true
	case vkF15:
		return KeyF15, true
	case vkF16:
		return KeyF16, true
	case vkF17:
		return KeyF17, true
	case vkF18:
		return KeyF18, true
	case vkF19:
		return KeyF19, true
	case vkF20:
		return KeyF20, true
	case vkF21:
		return KeyF21, true
	case vkF22:
		return KeyF22, true
	case vkF23:
		return KeyF23, true
	case vkF24:
		return KeyF24, true

	// Control and modifier keys
	case vkSpace:
		return KeySpace, true
	case vkLControl:
		return KeyLControl, true
	case vkRControl:
		return KeyRControl, true
	case vkLShift:
		return KeyLShift, true
	case vkRShift:
		return KeyRShift, true
	case vkLMenu:
		return KeyLAlt, true
	case vkRMenu:
		return KeyRAlt, true
	case vkReturn:
		return KeyEnter, true
	case vkEscape:
		return KeyEscape, true

	// Navigation and editing keys
	case vkUp:
		return KeyUp, true
	case vkDown:
		return KeyDown, true
	case vkLeft:
		return KeyLeft, true
	case vkRight:
		return KeyRight, true
	case vkBack:
		return KeyBackspace, true
	case vkCapital:
		return KeyCapsLock, true
	case vkTab:
		return KeyTab, true
	case vkHome:
		return KeyHome, true
	case vkEnd:
		return KeyEnd, true
	case vkPrior:
		return KeyPageUp, true
	case vkNext:
		return KeyPageDown, true
	case vkInsert:
		return KeyInsert, true
	case vkDelete:
		return KeyDelete, true

	// Numpad keys
	case vkNumLock:
		return KeyNumLock, true
	case vkNumpad0:
		return KeyNumpad0, true
	case vkNumpad1:
		return KeyNumpad1, true
	case vkNumpad2:
		return KeyNumpad2, true
	case vkNumpad3:
		return KeyNumpad3, true
	case vkNumpad4:
		return KeyNumpad4, true
	case vkNumpad5:
		return KeyNumpad5, true
	case vkNumpad6:
		return KeyNumpad6, true
	case vkNumpad7:
		return KeyNumpad7, true
	case vkNumpad8:
		return KeyNumpad8, true
	case vkNumpad9:
		return KeyNumpad9, true

	// Arithmetic keys
	case vkAdd:
		return KeyAdd, true
	case vkDecimal:
		return KeyDecimal, true
	case vkDivide:
		return KeyDivide, true
	case vkMultiply:
		return KeyMultiply, true
	case vkSubtract:
		return KeySubtract, true
	}

	return 0, false
}

// virtualKeyChar is the second stage of VirtualKeyToKeycode.
func virtualKeyChar(c byte) (Keycode, bool) {
	switch {
	case c >= '0' && c <= '9':
		return Key0 + Keycode(c-'0'), true
	case c >= 'A' && c <= 'Z':
		return KeyA + Keycode(c-'A'), true
	}
	return 0, false
}
