package devicequery

// macOS virtual key codes (kVK_* in HIToolbox/Events.h). They follow the ANSI
// key positions, not characters.
const (
	kvkA            = 0x00
	kvkS            = 0x01
	kvkD            = 0x02
	kvkF            = 0x03
	kvkH            = 0x04
	kvkG            = 0x05
	kvkZ            = 0x06
	kvkX            = 0x07
	kvkC            = 0x08
	kvkV            = 0x09
	kvkB            = 0x0B
	kvkQ            = 0x0C
	kvkW            = 0x0D
	kvkE            = 0x0E
	kvkR            = 0x0F
	kvkY            = 0x10
	kvkT            = 0x11
	kvk1            = 0x12
	kvk2            = 0x13
	kvk3            = 0x14
	kvk4            = 0x15
	kvk6            = 0x16
	kvk5            = 0x17
	kvk9            = 0x19
	kvk7            = 0x1A
	kvk8            = 0x1C
	kvk0            = 0x1D
	kvkO            = 0x1F
	kvkU            = 0x20
	kvkI            = 0x22
	kvkP            = 0x23
	kvkReturn       = 0x24
	kvkL            = 0x25
	kvkJ            = 0x26
	kvkK            = 0x28
	kvkN            = 0x2D
	kvkM            = 0x2E
	kvkTab          = 0x30
	kvkSpace        = 0x31
	kvkDelete       = 0x33
	kvkEscape       = 0x35
	kvkShift        = 0x38
	kvkCapsLock     = 0x39
	kvkOption       = 0x3A
	kvkControl      = 0x3B
	kvkRightShift   = 0x3C
	kvkRightOption  = 0x3D
	kvkRightControl = 0x3E
	kvkF17          = 0x40
	kvkKeypadDot    = 0x41
	kvkKeypadMul    = 0x43
	kvkKeypadPlus   = 0x45
	kvkKeypadClear  = 0x47
	kvkKeypadDiv    = 0x4B
	kvkKeypadMinus  = 0x4E
	kvkF18          = 0x4F
	kvkF19          = 0x50
	kvkKeypad0      = 0x52
	kvkKeypad1      = 0x53
	kvkKeypad2      = 0x54
	kvkKeypad3      = 0x55
	kvkKeypad4      = 0x56
	kvkKeypad5      = 0x57
	kvkKeypad6      = 0x58
	kvkKeypad7      = 0x59
	kvkF20          = 0x5A
	kvkKeypad8      = 0x5B
	kvkKeypad9      = 0x5C
	kvkF5           = 0x60
	kvkF6           = 0x61
	kvkF7           = 0x62
	kvkF3           = 0x63
	kvkF8           = 0x64
	kvkF9           = 0x65
	kvkF11          = 0x67
	kvkF13          = 0x69
	kvkF16          = 0x6A
	kvkF14          = 0x6B
	kvkF10          = 0x6D
	kvkF12          = 0x6F
	kvkF15          = 0x71
	kvkHelp         = 0x72
	kvkHome         = 0x73
	kvkPageUp       = 0x74
	kvkForwardDel   = 0x75
	kvkF4           = 0x76
	kvkEnd          = 0x77
	kvkF2           = 0x78
	kvkPageDown     = 0x79
	kvkF1           = 0x7A
	kvkLeftArrow    = 0x7B
	kvkRightArrow   = 0x7C
	kvkDownArrow    = 0x7D
	kvkUpArrow      = 0x7E

	// macKeyCount bounds the virtual keys polled on macOS.
	macKeyCount = 128
)

// MacKeyToKeycode resolves a macOS virtual key code. The Help key sits where
// Insert is on PC keyboards and Keypad Clear where Num Lock is.
func MacKeyToKeycode(code int) (Keycode, bool) {
	switch code {
	case kvk0:
		return Key0, true
	case kvk1:
		return Key1, true
	case kvk2:
		return Key2, true
	case kvk3:
		return Key3, true
	case kvk4:
		return Key4, true
	case kvk5:
		return Key5, true
	case kvk6:
		return Key6, true
	case kvk7:
		return Key7, true
	case kvk8:
		return Key8, true
	case kvk9:
		return Key9, true

	case kvkA:
		return KeyA, true
	case kvkB:
		return KeyB, true
	case kvkC:
		return KeyC, true
	case kvkD:
		return KeyD, true
	case kvkE:
		return KeyE, true
	case kvkF:
		return KeyF, true
	case kvkG:
		return KeyG, true
	case kvkH:
		return KeyH, true
	case kvkI:
		return KeyI, true
	case kvkJ:
		return KeyJ, true
	case kvkK:
		return KeyK, true
	case kvkL:
		return KeyL, true
	case kvkM:
		return KeyM, true
	case kvkN:
		return KeyN, true
	case kvkO:
		return KeyO, true
	case kvkP:
		return KeyP, true
	case kvkQ:
		return KeyQ, true
	case kvkR:
		return KeyR, true
	case kvkS:
		return KeyS, true
	case kvkT:
		return KeyT, true
	case kvkU:
		return KeyU, true
	case kvkV:
		return KeyV, true
	case kvkW:
		return KeyW, true
	case kvkX:
		return KeyX, true
	case kvkY:
		return KeyY, true
	case kvkZ:
		return KeyZ, true

	case kvkF1:
		return KeyF1, true
	case kvkF2:
		return KeyF2, true
	case kvkF3:
		return KeyF3, true
	case kvkF4:
		return KeyF4, true
	case kvkF5:
		return KeyF5, true
	case kvkF6:
		return KeyF6, true
	case kvkF7:
		return KeyF7, true
	case kvkF8:
		return KeyF8, true
	case kvkF9:
		return KeyF9, true
	case kvkF10:
		return KeyF10, true
	case kvkF11:
		return KeyF11, true
	case kvkF12:
		return KeyF12, true
	case kvkF13:
		return KeyF13, true
	case kvkF14:
		return KeyF14, true
	case kvkF15:
		return KeyF15, true
	case kvkF16:
		return KeyF16, true
	case kvkF17:
		return KeyF17, true
	case kvkF18:
		return KeyF18, true
	case kvkF19:
		return KeyF19, true
	case kvkF20:
		return KeyF20, true

	case kvkEscape:
		return KeyEscape, true
	case kvkSpace:
		return KeySpace, true
	case kvkControl:
		return KeyLControl, true
	case kvkRightControl:
		return KeyRControl, true
	case kvkShift:
		return KeyLShift, true
	case kvkRightShift:
		return KeyRShift, true
	case kvkOption:
		return KeyLAlt, true
	case kvkRightOption:
		return KeyRAlt, true
	case kvkReturn:
		return KeyEnter, true

	case kvkUpArrow:
		return KeyUp, true
	case kvkDownArrow:
		return KeyDown, true
	case kvkLeftArrow:
		return KeyLeft, true
	case kvkRightArrow:
		return KeyRight, true
	case kvkDelete:
		return KeyBackspace, true
	case kvkCapsLock:
		return KeyCapsLock, true
	case kvkTab:
		return KeyTab, true
	case kvkHome:
		return KeyHome, true
	case kvkEnd:
		return KeyEnd, true
	case kvkPageUp:
		return KeyPageUp, true
	case kvkPageDown:
		return KeyPageDown, true
	case kvkHelp:
		return KeyInsert, true
	case kvkForwardDel:
		return KeyDelete, true

	case kvkKeypadClear:
		return KeyNumLock, true
	case kvkKeypad0:
		return KeyNumpad0, true
	case kvkKeypad1:
		return KeyNumpad1, true
	case kvkKeypad2:
		return KeyNumpad2, true
	case kvkKeypad3:
		return KeyNumpad3, true
	case kvkKeypad4:
		return KeyNumpad4, true
	case kvkKeypad5:
		return KeyNumpad5, true
	case kvkKeypad6:
		return KeyNumpad6, true
	case kvkKeypad7:
		return KeyNumpad7, true
	case kvkKeypad8:
		return KeyNumpad8, true
	case kvkKeypad9:
		return KeyNumpad9, true

	case kvkKeypadPlus:
		return KeyAdd, true
	case kvkKeypadDot:
		return KeyDecimal, true
	case kvkKeypadDiv:
		return KeyDivide, true
	case kvkKeypadMul:
		return KeyMultiply, true
	case kvkKeypadMinus:
		return KeySubtract, true
	}

	return 0, false
}
