// Package tray shows the live device state in the system tray using
// getlantern/systray.
package tray

import (
	"fmt"
	"strings"
	"sync"

	"github.com/getlantern/systray"

	"devicequery/internal/watch"
)

const maxKeysShown = 8

// Tray manages the system tray icon and menu
type Tray struct {
	tooltip string
	onQuit  func()

	mu        sync.Mutex
	mouseItem *systray.MenuItem
	keysItem  *systray.MenuItem
	latest    *watch.Snapshot

	quitCh chan struct{}
}

// New creates a tray. onQuit runs when the Quit item is clicked.
func New(tooltip string, onQuit func()) *Tray {
	return &Tray{
		tooltip: tooltip,
		onQuit:  onQuit,
		quitCh:  make(chan struct{}),
	}
}

// Run starts the tray event loop and blocks until Stop. It must be called from
// the main goroutine on macOS.
func (t *Tray) Run() {
	systray.Run(t.setupMenu, func() { close(t.quitCh) })
}

// setupMenu is called when systray is ready
func (t *Tray) setupMenu() {
	systray.SetTitle("devicequery")
	systray.SetTooltip(t.tooltip)
	systray.SetIcon(getIcon())

	mouseItem := systray.AddMenuItem(MouseLine(watch.Snapshot{}), "Cursor position and buttons")
	mouseItem.Disable()
	keysItem := systray.AddMenuItem(KeysLine(watch.Snapshot{}), "Keys held")
	keysItem.Disable()
	systray.AddSeparator()
	quitItem := systray.AddMenuItem("Quit", "Stop devicequery")

	t.mu.Lock()
	t.mouseItem, t.keysItem = mouseItem, keysItem
	if t.latest != nil {
		t.apply(*t.latest)
	}
	t.mu.Unlock()

	go func() {
		select {
		case <-quitItem.ClickedCh:
			if t.onQuit != nil {
				t.onQuit()
			}
		case <-t.quitCh:
		}
	}()
}

// Update refreshes the menu lines. Snapshots sent before the menu exists are
// applied once it does.
func (t *Tray) Update(s watch.Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mouseItem == nil {
		t.latest = &s
		return
	}
	t.apply(s)
}

func (t *Tray) apply(s watch.Snapshot) {
	t.mouseItem.SetTitle(MouseLine(s))
	t.keysItem.SetTitle(KeysLine(s))
}

// Stop stops the tray
func (t *Tray) Stop() {
	systray.Quit()
}

// MouseLine renders the mouse menu line, e.g. "Mouse 120,48 [Left]".
func MouseLine(s watch.Snapshot) string {
	pos := s.Mouse.Coordinates
	names := make([]string, 0, 5)
	for _, b := range s.Mouse.GetButtons() {
		names = append(names, b.String())
	}
	return fmt.Sprintf("Mouse %d,%d [%s]", pos.X, pos.Y, strings.Join(names, " "))
}

// KeysLine renders the keys menu line, e.g. "Keys LControl+Q".
func KeysLine(s watch.Snapshot) string {
	if len(s.Keys) == 0 {
		return "Keys (none)"
	}
	shown := s.Keys
	if len(shown) > maxKeysShown {
		shown = shown[:maxKeysShown]
	}
	names := make([]string, len(shown))
	for i, k := range shown {
		names[i] = k.String()
	}
	line := "Keys " + strings.Join(names, "+")
	if extra := len(s.Keys) - len(shown); extra > 0 {
		line += fmt.Sprintf(" (+%d)", extra)
	}
	return line
}
