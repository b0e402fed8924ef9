package devicequery

// slotMasks assigns bit i to slot i, for platforms that poll each button
// separately and fold the answers into one mask.
var slotMasks = [numButtons]uint32{1 << 0, 1 << 1, 1 << 2, 1 << 3, 1 << 4}

// decodeButtons tests exactly the five flags in slot order. Bits outside the
// flags are ignored, as are buttons the device does not have.
func decodeButtons(mask uint32, flags [numButtons]uint32) [numButtons]bool {
	var buttons [numButtons]bool
	for i, flag := range flags {
		buttons[i] = mask&flag != 0
	}
	return buttons
}

// scanKeymap walks a keyboard bitmap in ascending code order (byte i, bit j is
// code i*8+j) and resolves every set bit. A code may resolve to several keys.
func scanKeymap(bitmap []byte, resolve func(code int) []Keycode) []Keycode {
	keys := make([]Keycode, 0, 8)
	for i, b := range bitmap {
		if b == 0 {
			continue
		}
		for bit := 0; bit < 8; bit++ {
			if b&(1<<bit) == 0 {
				continue
			}
			keys = append(keys, resolve(i*8+bit)...)
		}
	}
	return dedupConsecutive(keys)
}

// pollKeys asks down for every code in [0, n) and resolves the ones held.
func pollKeys(n int, down func(code int) bool, resolve func(code int) (Keycode, bool)) []Keycode {
	keys := make([]Keycode, 0, 8)
	for code := 0; code < n; code++ {
		if !down(code) {
			continue
		}
		if k, ok := resolve(code); ok {
			keys = append(keys, k)
		}
	}
	return dedupConsecutive(keys)
}

// dedupConsecutive drops elements equal to their predecessor, in place.
// Repeats that are not adjacent are kept.
func dedupConsecutive(keys []Keycode) []Keycode {
	if len(keys) < 2 {
		return keys
	}
	out := keys[:1]
	for _, k := range keys[1:] {
		if k != out[len(out)-1] {
			out = append(out, k)
		}
	}
	return out
}
