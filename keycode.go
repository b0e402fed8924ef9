package devicequery

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Keycode is a platform independent key identifier. Outside of modifier and
// navigation keys only the English layout is supported.
type Keycode int

// Keys that can be reported by a keyboard query.
const (
	// Numeric keys
	Key0 Keycode = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Letter keys
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	// Control and modifier keys
	KeyEscape
	KeySpace
	KeyLControl
	KeyRControl
	KeyLShift
	KeyRShift
	KeyLAlt
	KeyRAlt
	KeyEnter

	// Navigation and editing keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyBackspace
	KeyCapsLock
	KeyTab
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete

	// Numpad keys
	KeyNumLock
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9

	// Arithmetic keys
	KeyAdd
	KeyDecimal
	KeyDivide
	KeyMultiply
	KeySubtract

	keycodeCount
)

var keycodeNames = [keycodeCount]string{
	Key0: "Key0", Key1: "Key1", Key2: "Key2", Key3: "Key3", Key4: "Key4",
	Key5: "Key5", Key6: "Key6", Key7: "Key7", Key8: "Key8", Key9: "Key9",

	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16", KeyF17: "F17", KeyF18: "F18",
	KeyF19: "F19", KeyF20: "F20", KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24",

	KeyEscape:   "Escape",
	KeySpace:    "Space",
	KeyLControl: "LControl",
	KeyRControl: "RControl",
	KeyLShift:   "LShift",
	KeyRShift:   "RShift",
	KeyLAlt:     "LAlt",
	KeyRAlt:     "RAlt",
	KeyEnter:    "Enter",

	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyBackspace: "Backspace",
	KeyCapsLock:  "CapsLock",
	KeyTab:       "Tab",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyInsert:    "Insert",
	KeyDelete:    "Delete",

	KeyNumLock: "NumLock",
	KeyNumpad0: "Numpad0", KeyNumpad1: "Numpad1", KeyNumpad2: "Numpad2", KeyNumpad3: "Numpad3",
	KeyNumpad4: "Numpad4", KeyNumpad5: "Numpad5", KeyNumpad6: "Numpad6", KeyNumpad7: "Numpad7",
	KeyNumpad8: "Numpad8", KeyNumpad9: "Numpad9",

	KeyAdd:      "Add",
	KeyDecimal:  "Decimal",
	KeyDivide:   "Divide",
	KeyMultiply: "Multiply",
	KeySubtract: "Subtract",
}

var keycodesByName = func() map[string]Keycode {
	m := make(map[string]Keycode, keycodeCount)
	for k, name := range keycodeNames {
		m[strings.ToLower(name)] = Keycode(k)
	}
	return m
}()

// String returns the canonical name of the key, e.g. "A", "Key1" or "LControl".
func (k Keycode) String() string {
	if k < 0 || k >= keycodeCount {
		return fmt.Sprintf("Keycode(%d)", int(k))
	}
	return keycodeNames[k]
}

// Valid reports whether k is a member of the enumeration.
func (k Keycode) Valid() bool {
	return k >= 0 && k < keycodeCount
}

// MarshalText encodes the key by name.
func (k Keycode) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.Errorf("invalid keycode %d", int(k))
	}
	return []byte(keycodeNames[k]), nil
}

// UnmarshalText decodes a key name as accepted by ParseKeycode.
func (k *Keycode) UnmarshalText(text []byte) error {
	parsed, ok := ParseKeycode(string(text))
	if !ok {
		return errors.Errorf("unknown key name %q", string(text))
	}
	*k = parsed
	return nil
}

// ParseKeycode looks a key up by its canonical name, ignoring case. Single
// digits ("1") are accepted as aliases of the numeric keys ("Key1").
func ParseKeycode(name string) (Keycode, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		return Key0 + Keycode(name[0]-'0'), true
	}
	k, ok := keycodesByName[name]
	return k, ok
}

// Keycodes returns every key in declaration order.
func Keycodes() []Keycode {
	all := make([]Keycode, keycodeCount)
	for i := range all {
		all[i] = Keycode(i)
	}
	return all
}
