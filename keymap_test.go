package devicequery

import (
	"testing"

	"go.viam.com/test"
)

func TestKeysymTable(t *testing.T) {
	table := map[uint32]Keycode{
		xk0: Key0, xk9: Key9,
		xkA: KeyA, xka: KeyA, xkZ: KeyZ, xkz: KeyZ, 0x004d: KeyM, 0x006d: KeyM,
		xkF1: KeyF1, xkF12: KeyF12, xkF13: KeyF13, xkF24: KeyF24,
		xkEscape: KeyEscape, xkSpace: KeySpace, xkReturn: KeyEnter,
		xkControlL: KeyLControl, xkControlR: KeyRControl,
		xkShiftL: KeyLShift, xkShiftR: KeyRShift,
		xkAltL: KeyLAlt, xkAltR: KeyRAlt,
		xkUp: KeyUp, xkDown: KeyDown, xkLeft: KeyLeft, xkRight: KeyRight,
		xkBackSpace: KeyBackspace, xkCapsLock: KeyCapsLock, xkTab: KeyTab,
		xkHome: KeyHome, xkEnd: KeyEnd, xkPageUp: KeyPageUp, xkPageDown: KeyPageDown,
		xkInsert: KeyInsert, xkDelete: KeyDelete,
		xkNumLock: KeyNumLock, xkKP0: KeyNumpad0, xkKP5: KeyNumpad5, xkKP9: KeyNumpad9,
		xkKPAdd: KeyAdd, xkKPDecimal: KeyDecimal, xkKPDivide: KeyDivide,
		xkKPMultiply: KeyMultiply, xkKPSubtract: KeySubtract,
	}
	for sym, want := range table {
		got, ok := KeysymToKeycode(sym)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, got, test.ShouldEqual, want)
	}

	// exclam, KP_Enter, ISO_Level3_Shift, Super_L, NoSymbol
	for _, sym := range []uint32{0x0021, 0xff8d, 0xfe03, 0xffeb, 0} {
		_, ok := KeysymToKeycode(sym)
		test.That(t, ok, test.ShouldBeFalse)
	}
}

func TestKeysymTableCoversEveryKey(t *testing.T) {
	covered := map[Keycode]bool{}
	for sym := uint32(0); sym <= 0xffff; sym++ {
		if k, ok := KeysymToKeycode(sym); ok {
			covered[k] = true
		}
	}
	test.That(t, len(covered), test.ShouldEqual, len(Keycodes()))
}

func TestResolveKeysyms(t *testing.T) {
	test.That(t, resolveKeysyms([]uint32{xka, xkA}), test.ShouldResemble, []Keycode{KeyA, KeyA})
	test.That(t, resolveKeysyms([]uint32{xkKP0, 0xff9e}), test.ShouldResemble, []Keycode{KeyNumpad0})
	test.That(t, resolveKeysyms(nil), test.ShouldBeEmpty)
}

func TestVirtualKeyControlStage(t *testing.T) {
	table := map[int]Keycode{
		vkF1: KeyF1, vkF12: KeyF12, vkF24: KeyF24,
		vkSpace: KeySpace, vkReturn: KeyEnter, vkEscape: KeyEscape,
		vkLControl: KeyLControl, vkRControl: KeyRControl,
		vkLShift: KeyLShift, vkRShift: KeyRShift,
		vkLMenu: KeyLAlt, vkRMenu: KeyRAlt,
		vkCapital: KeyCapsLock, vkDelete: KeyDelete, vkInsert: KeyInsert, vkTab: KeyTab,
		vkBack: KeyBackspace, vkUp: KeyUp, vkDown: KeyDown, vkLeft: KeyLeft, vkRight: KeyRight,
		vkHome: KeyHome, vkEnd: KeyEnd, vkPrior: KeyPageUp, vkNext: KeyPageDown,
		vkNumLock: KeyNumLock, vkNumpad0: KeyNumpad0, vkNumpad9: KeyNumpad9,
		vkAdd: KeyAdd, vkDecimal: KeyDecimal, vkDivide: KeyDivide,
		vkMultiply: KeyMultiply, vkSubtract: KeySubtract,
	}
	for vk, want := range table {
		got, ok := virtualKeyControl(vk)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, got, test.ShouldEqual, want)

		got, ok = VirtualKeyToKeycode(vk)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, got, test.ShouldEqual, want)
	}
}

func TestVirtualKeyCharStage(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		got, ok := VirtualKeyToKeycode(int(c))
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, got, test.ShouldEqual, Key0+Keycode(c-'0'))
	}
	for c := byte('A'); c <= 'Z'; c++ {
		got, ok := VirtualKeyToKeycode(int(c))
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, got, test.ShouldEqual, KeyA+Keycode(c-'A'))

		_, ok = virtualKeyControl(int(c))
		test.That(t, ok, test.ShouldBeFalse)
	}
}

func TestVirtualKeyStageOrder(t *testing.T) {
	// VK_F1 is 'p' and VK_NUMPAD1 is 'a': the control stage must win and the
	// character stage must not see lower case.
	got, ok := VirtualKeyToKeycode(vkF1)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, got, test.ShouldEqual, KeyF1)

	got, ok = VirtualKeyToKeycode(vkNumpad1)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, got, test.ShouldEqual, KeyNumpad1)

	_, ok = virtualKeyChar('p')
	test.That(t, ok, test.ShouldBeFalse)
}

func TestVirtualKeyUnmapped(t *testing.T) {
	for _, vk := range []int{-1, 0, vkLButton, vkRButton, vkMButton, vkXButton1, vkXButton2, 0x10, 0x11, 0x12, 0x5B, 0xBA, 0xFF, 0x141} {
		_, ok := VirtualKeyToKeycode(vk)
		test.That(t, ok, test.ShouldBeFalse)
	}
}

func TestMacKeyTable(t *testing.T) {
	table := map[int]Keycode{
		kvkA: KeyA, kvkS: KeyS, kvkZ: KeyZ, kvkQ: KeyQ,
		kvk0: Key0, kvk5: Key5, kvk9: Key9,
		kvkF1: KeyF1, kvkF12: KeyF12, kvkF20: KeyF20,
		kvkReturn: KeyEnter, kvkEscape: KeyEscape, kvkSpace: KeySpace,
		kvkControl: KeyLControl, kvkRightControl: KeyRControl,
		kvkShift: KeyLShift, kvkRightShift: KeyRShift,
		kvkOption: KeyLAlt, kvkRightOption: KeyRAlt,
		kvkDelete: KeyBackspace, kvkForwardDel: KeyDelete, kvkHelp: KeyInsert,
		kvkUpArrow: KeyUp, kvkLeftArrow: KeyLeft,
		kvkKeypadClear: KeyNumLock, kvkKeypad0: KeyNumpad0, kvkKeypad9: KeyNumpad9,
		kvkKeypadPlus: KeyAdd, kvkKeypadMinus: KeySubtract,
	}
	for code, want := range table {
		got, ok := MacKeyToKeycode(code)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, got, test.ShouldEqual, want)
	}

	// Command, right Command, Function, keypad Enter
	for _, code := range []int{0x37, 0x36, 0x3F, 0x4C, macKeyCount} {
		_, ok := MacKeyToKeycode(code)
		test.That(t, ok, test.ShouldBeFalse)
	}
}

func TestMacKeyTableIsInjective(t *testing.T) {
	seen := map[Keycode]int{}
	for code := 0; code < macKeyCount; code++ {
		k, ok := MacKeyToKeycode(code)
		if !ok {
			continue
		}
		_, dup := seen[k]
		test.That(t, dup, test.ShouldBeFalse)
		seen[k] = code
	}
}
