package x11

// noSymbol marks an empty column in a keyboard mapping.
const noSymbol = 0

// Mapping is a GetKeyboardMapping table: perKeycode keysym columns for every
// keycode starting at first.
type Mapping struct {
	first      int
	perKeycode int
	syms       []uint32
}

// NewMapping builds a Mapping from the flattened keysym list of a reply.
func NewMapping(first, perKeycode int, syms []uint32) *Mapping {
	return &Mapping{first: first, perKeycode: perKeycode, syms: syms}
}

// Keysyms returns the non-empty keysym columns of keycode, in column order.
// Keycodes outside the table have none.
func (m *Mapping) Keysyms(keycode int) []uint32 {
	if m == nil || m.perKeycode <= 0 || keycode < m.first {
		return nil
	}
	start := (keycode - m.first) * m.perKeycode
	end := start + m.perKeycode
	if end > len(m.syms) {
		return nil
	}

	out := make([]uint32, 0, m.perKeycode)
	for _, sym := range m.syms[start:end] {
		if sym != noSymbol {
			out = append(out, sym)
		}
	}
	return out
}
