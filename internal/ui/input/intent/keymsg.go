package intent

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FromKeyMsg translates a bubbletea key message into a Key.
// Keys without a navigation meaning keep their bubbletea name so Map
// reports None for them. Alt is ignored like any modifier other than shift.
func FromKeyMsg(msg tea.KeyMsg) Key {
	msg.Alt = false
	switch msg.String() {
	case "down", "j":
		return Key{Name: KeyArrowDown}
	case "shift+down":
		return Key{Name: KeyArrowDown, Shift: true}
	case "up", "k":
		return Key{Name: KeyArrowUp}
	case "shift+up":
		return Key{Name: KeyArrowUp, Shift: true}
	case "home", "g":
		return Key{Name: KeyHome}
	case "shift+home":
		return Key{Name: KeyHome, Shift: true}
	case "end", "G":
		return Key{Name: KeyEnd}
	case "shift+end":
		return Key{Name: KeyEnd, Shift: true}
	case "tab":
		return Key{Name: KeyTab}
	case "shift+tab":
		return Key{Name: KeyTab, Shift: true}
	}
	return Key{Name: msg.String()}
}

// FromKeyMsgIntent is Map(FromKeyMsg(msg)).
func FromKeyMsgIntent(msg tea.KeyMsg) Intent {
	return Map(FromKeyMsg(msg))
}
