package devicequery

import (
	"fmt"

	"github.com/pkg/errors"
)

// MouseButton names one of the five button slots of a MouseState.
//
// The names are ordinal labels: slot 0 holds the platform's first native
// button (X11 Button1, Windows VK_LBUTTON, macOS button 0) and so on, so the
// physical button behind a name follows the platform's own numbering.
type MouseButton int

// The five button slots, in ordinal order.
const (
	ButtonRight MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonFour
	ButtonFive
)

// numButtons is the number of buttons every platform query reports.
const numButtons = 5

var mouseButtonNames = [numButtons]string{"Right", "Left", "Middle", "Four", "Five"}

func (b MouseButton) String() string {
	if b < 0 || b >= numButtons {
		return fmt.Sprintf("MouseButton(%d)", int(b))
	}
	return mouseButtonNames[b]
}

// MarshalText encodes the button by name.
func (b MouseButton) MarshalText() ([]byte, error) {
	if b < 0 || b >= numButtons {
		return nil, errors.Errorf("invalid mouse button %d", int(b))
	}
	return []byte(mouseButtonNames[b]), nil
}

// UnmarshalText decodes a button name written by MarshalText.
func (b *MouseButton) UnmarshalText(text []byte) error {
	for i, name := range mouseButtonNames {
		if name == string(text) {
			*b = MouseButton(i)
			return nil
		}
	}
	return errors.Errorf("unknown mouse button %q", text)
}

// Point is a position in the root window / desktop coordinate space.
type Point struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// MouseState is a snapshot of the cursor position and the five standard
// mouse buttons. A new value is produced by every query.
type MouseState struct {
	// Coordinates of the cursor.
	Coordinates Point `json:"coordinates"`

	// Buttons holds the pressed state of each slot; index with a MouseButton.
	Buttons [numButtons]bool `json:"buttons"`
}

// GetButton reports whether the named button is pressed.
func (m MouseState) GetButton(b MouseButton) bool {
	if b < 0 || b >= numButtons {
		return false
	}
	return m.Buttons[b]
}

// GetButtons lists the pressed buttons in slot order.
func (m MouseState) GetButtons() []MouseButton {
	pressed := make([]MouseButton, 0, numButtons)
	for i, down := range m.Buttons {
		if down {
			pressed = append(pressed, MouseButton(i))
		}
	}
	return pressed
}
