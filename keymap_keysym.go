package devicequery

// X11 keysyms, from X11/keysymdef.h.
const (
	xkSpace = 0x0020

	xk0 = 0x0030
	xk1 = 0x0031
	xk2 = 0x0032
	xk3 = 0x0033
	xk4 = 0x0034
	xk5 = 0x0035
	xk6 = 0x0036
	xk7 = 0x0037
	xk8 = 0x0038
	xk9 = 0x0039

	xkA = 0x0041
	xkZ = 0x005a
	xka = 0x0061
	xkz = 0x007a

	xkBackSpace = 0xff08
	xkTab       = 0xff09
	xkReturn    = 0xff0d
	xkEscape    = 0xff1b
	xkHome      = 0xff50
	xkLeft      = 0xff51
	xkUp        = 0xff52
	xkRight     = 0xff53
	xkDown      = 0xff54
	xkPageUp    = 0xff55
	xkPageDown  = 0xff56
	xkEnd       = 0xff57
	xkInsert    = 0xff63
	xkNumLock   = 0xff7f

	xkKPMultiply = 0xffaa
	xkKPAdd      = 0xffab
	xkKPSubtract = 0xffad
	xkKPDecimal  = 0xffae
	xkKPDivide   = 0xffaf
	xkKP0        = 0xffb0
	xkKP1        = 0xffb1
	xkKP2        = 0xffb2
	xkKP3        = 0xffb3
	xkKP4        = 0xffb4
	xkKP5        = 0xffb5
	xkKP6        = 0xffb6
	xkKP7        = 0xffb7
	xkKP8        = 0xffb8
	xkKP9        = 0xffb9

	xkF1  = 0xffbe
	xkF2  = 0xffbf
	xkF3  = 0xffc0
	xkF4  = 0xffc1
	xkF5  = 0xffc2
	xkF6  = 0xffc3
	xkF7  = 0xffc4
	xkF8  = 0xffc5
	xkF9  = 0xffc6
	xkF10 = 0xffc7
	xkF11 = 0xffc8
	xkF12 = 0xffc9
	xkF13 = 0xffca
	xkF14 = 0xffcb
	xkF15 = 0xffcc
	xkF16 = 0xffcd
	xkF17 = 0xffce
	xkF18 = 0xffcf
	xkF19 = 0xffd0
	xkF20 = 0xffd1
	xkF21 = 0xffd2
	xkF22 = 0xffd3
	xkF23 = 0xffd4
	xkF24 = 0xffd5

	xkShiftL   = 0xffe1
	xkShiftR   = 0xffe2
	xkControlL = 0xffe3
	xkControlR = 0xffe4
	xkCapsLock = 0xffe5
	xkAltL     = 0xffe9
	xkAltR     = 0xffea
	xkDelete   = 0xffff
)

// KeysymToKeycode resolves an X11 keysym. Both cases of a Latin letter map to
// the letter key, so a keycode carrying "a" and "A" resolves twice to KeyA.
func KeysymToKeycode(sym uint32) (Keycode, bool) {
	switch {
	case sym >= xkA && sym <= xkZ:
		return KeyA + Keycode(sym-xkA), true
	case sym >= xka && sym <= xkz:
		return KeyA + Keycode(sym-xka), true
	}

	switch sym {
	// Numeric keys
	case xk0:
		return Key0, true
	case xk1:
		return Key1, true
	case xk2:
		return Key2, true
	case xk3:
		return Key3, true
	case xk4:
		return Key4, true
	case xk5:
		return Key5, true
	case xk6:
		return Key6, true
	case xk7:
		return Key7, true
	case xk8:
		return Key8, true
	case xk9:
		return Key9, true

	// Function keys
	case xkF1:
		return KeyF1, true
	case xkF2:
		return KeyF2, true
	case xkF3:
		return KeyF3, true
	case xkF4:
		return KeyF4, true
	case xkF5:
		return KeyF5, true
	case xkF6:
		return KeyF6, true
	case xkF7:
		return KeyF7, true
	case xkF8:
		return KeyF8, true
	case xkF9:
		return KeyF9, true
	case xkF10:
		return KeyF10, true
	case xkF11:
		return KeyF11, true
	case xkF12:
		return KeyF12, true
	case xkF13:
		return KeyF13, true
	case xkF14:
		return KeyF14, true
	case xkF15:
		return KeyF15, true
	case xkF16:
		return KeyF16, true
	case xkF17:
		return KeyF17, true
	case xkF18:
		return KeyF18, true
	case xkF19:
		return KeyF19, true
	case xkF20:
		return KeyF20, true
	case xkF21:
		return KeyF21, true
	case xkF22:
		return KeyF22, true
	case xkF23:
		return KeyF23, true
	case xkF24:
		return KeyF24, true

	// Control and modifier keys
	case xkEscape:
		return KeyEscape, true
	case xkSpace:
		return KeySpace, true
	case xkControlL:
		return KeyLControl, true
	case xkControlR:
		return KeyRControl, true
	case xkShiftL:
		return KeyLShift, true
	case xkShiftR:
		return KeyRShift, true
	case xkAltL:
		return KeyLAlt, true
	case xkAltR:
		return KeyRAlt, true
	case xkReturn:
		return KeyEnter, true

	// Navigation and editing keys
	case xkUp:
		return KeyUp, true
	case xkDown:
		return KeyDown, true
	case xkLeft:
		return KeyLeft, true
	case xkRight:
		return KeyRight, true
	case xkBackSpace:
		return KeyBackspace, true
	case xkCapsLock:
		return KeyCapsLock, true
	case xkTab:
		return KeyTab, true
	case xkHome:
		return KeyHome, true
	case xkEnd:
		return KeyEnd, true
	case xkPageUp:
		return KeyPageUp, true
	case xkPageDown:
		return KeyPageDown, true
	case xkInsert:
		return KeyInsert, true
	case xkDelete:
		return KeyDelete, true

	// Numpad keys
	case xkNumLock:
		return KeyNumLock, true
	case xkKP0:
		return KeyNumpad0, true
	case xkKP1:
		return KeyNumpad1, true
	case xkKP2:
		return KeyNumpad2, true
	case xkKP3:
		return KeyNumpad3, true
	case xkKP4:
		return KeyNumpad4, true
	case xkKP5:
		return KeyNumpad5, true
	case xkKP6:
		return KeyNumpad6, true
	case xkKP7:
		return KeyNumpad7, true
	case xkKP8:
		return KeyNumpad8, true
	case xkKP9:
		return KeyNumpad9, true

	// Arithmetic keys
	case xkKPAdd:
		return KeyAdd, true
	case xkKPDecimal:
		return KeyDecimal, true
	case xkKPDivide:
		return KeyDivide, true
	case xkKPMultiply:
		return KeyMultiply, true
	case xkKPSubtract:
		return KeySubtract, true
	}

	return 0, false
}

// resolveKeysyms resolves every keysym column of one keycode, keeping the hits
// in column order.
func resolveKeysyms(syms []uint32) []Keycode {
	var keys []Keycode
	for _, sym := range syms {
		if k, ok := KeysymToKeycode(sym); ok {
			keys = append(keys, k)
		}
	}
	return keys
}
