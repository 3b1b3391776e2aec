// Package intent classifies keyboard input into tree navigation intents.
package intent

// Key names understood by Map.
const (
	KeyArrowDown = "ArrowDown"
	KeyArrowUp   = "ArrowUp"
	KeyHome      = "Home"
	KeyEnd       = "End"
	KeyTab       = "Tab"
)

// Key is the minimal description of a keystroke needed to pick an intent.
type Key struct {
	Name  string
	Shift bool
}

// Intent is a navigation directive not yet resolved to a row.
type Intent int

const (
	None Intent = iota
	Next
	Previous
	First
	Last
)

func (i Intent) String() string {
	switch i {
	case Next:
		return "next"
	case Previous:
		return "previous"
	case First:
		return "first"
	case Last:
		return "last"
	default:
		return "none"
	}
}

// Map returns the intent for k, or None when the key does not navigate.
// Only the key name and shift are consulted; ctrl/alt/meta are not part of
// Key yet.
func Map(k Key) Intent {
	switch k.Name {
	case KeyArrowDown:
		if k.Shift {
			return Last
		}
		return Next
	case KeyArrowUp:
		if k.Shift {
			return First
		}
		return Previous
	case KeyHome:
		return First
	case KeyEnd:
		return Last
	case KeyTab:
		if k.Shift {
			return Previous
		}
		return Next
	}
	return None
}
