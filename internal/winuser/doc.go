// Package winuser binds the user32 state queries used for polling the mouse
// and keyboard. It is empty on every platform but Windows.
package winuser
