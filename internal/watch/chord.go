package watch

import (
	"slices"
	"strings"

	"github.com/pkg/errors"

	"devicequery"
)

// Chord is a set of keys that must all be held, e.g. "LControl+Q".
type Chord []devicequery.Keycode

// ParseChord parses key names joined by "+". Names are matched the way
// devicequery.ParseKeycode matches them and repeats are dropped. The empty
// string is the empty chord, which never matches.
func ParseChord(s string) (Chord, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var chord Chord
	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, errors.Errorf("empty key in chord %q", s)
		}
		k, ok := devicequery.ParseKeycode(part)
		if !ok {
			return nil, errors.Errorf("unknown key %q in chord %q", part, s)
		}
		if !slices.Contains(chord, k) {
			chord = append(chord, k)
		}
	}
	return chord, nil
}

// Matches reports whether every key of the chord is in keys.
func (c Chord) Matches(keys []devicequery.Keycode) bool {
	if len(c) == 0 {
		return false
	}
	for _, k := range c {
		if !slices.Contains(keys, k) {
			return false
		}
	}
	return true
}

// Pressed reports whether the chord became held between prev and cur.
func (c Chord) Pressed(prev, cur Snapshot) bool {
	return !c.Matches(prev.Keys) && c.Matches(cur.Keys)
}

func (c Chord) String() string {
	names := make([]string, len(c))
	for i, k := range c {
		names[i] = k.String()
	}
	return strings.Join(names, "+")
}
