package intent

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	tests := []struct {
		key  Key
		want Intent
	}{
		{Key{KeyArrowDown, true}, Last},
		{Key{KeyArrowDown, false}, Next},
		{Key{KeyArrowUp, true}, First},
		{Key{KeyArrowUp, false}, Previous},
		{Key{KeyHome, false}, First},
		{Key{KeyHome, true}, First},
		{Key{KeyEnd, false}, Last},
		{Key{KeyEnd, true}, Last},
		{Key{KeyTab, true}, Previous},
		{Key{KeyTab, false}, Next},
	}

	for _, tt := range tests {
		t.Run(tt.key.Name, func(t *testing.T) {
			assert.Equal(t, tt.want, Map(tt.key), "shift=%v", tt.key.Shift)
		})
	}
}

func TestMapUnknownKeys(t *testing.T) {
	for _, name := range []string{"", "a", "Enter", "Escape", "ArrowLeft", "ArrowRight", "PageDown", "arrowdown", "tab"} {
		for _, shift := range []bool{false, true} {
			assert.Equal(t, None, Map(Key{Name: name, Shift: shift}), "key %q shift=%v", name, shift)
		}
	}
}

func TestMapIsDeterministic(t *testing.T) {
	k := Key{Name: KeyTab, Shift: true}
	first := Map(k)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Map(k))
	}
}

func TestFromKeyMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Key
	}{
		{"down", tea.KeyMsg{Type: tea.KeyDown}, Key{Name: KeyArrowDown}},
		{"shift+down", tea.KeyMsg{Type: tea.KeyShiftDown}, Key{Name: KeyArrowDown, Shift: true}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, Key{Name: KeyArrowUp}},
		{"shift+up", tea.KeyMsg{Type: tea.KeyShiftUp}, Key{Name: KeyArrowUp, Shift: true}},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, Key{Name: KeyHome}},
		{"shift+home", tea.KeyMsg{Type: tea.KeyShiftHome}, Key{Name: KeyHome, Shift: true}},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, Key{Name: KeyEnd}},
		{"shift+end", tea.KeyMsg{Type: tea.KeyShiftEnd}, Key{Name: KeyEnd, Shift: true}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, Key{Name: KeyTab}},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, Key{Name: KeyTab, Shift: true}},
		{"j", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, Key{Name: KeyArrowDown}},
		{"k", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, Key{Name: KeyArrowUp}},
		{"G", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")}, Key{Name: KeyEnd}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, Key{Name: "enter"}},
		{"alt+down", tea.KeyMsg{Type: tea.KeyDown, Alt: true}, Key{Name: KeyArrowDown}},
		{"alt+shift+down", tea.KeyMsg{Type: tea.KeyShiftDown, Alt: true}, Key{Name: KeyArrowDown, Shift: true}},
		{"alt+tab", tea.KeyMsg{Type: tea.KeyTab, Alt: true}, Key{Name: KeyTab}},
		{"alt+shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab, Alt: true}, Key{Name: KeyTab, Shift: true}},
		{"alt+end", tea.KeyMsg{Type: tea.KeyEnd, Alt: true}, Key{Name: KeyEnd}},
		{"alt+enter", tea.KeyMsg{Type: tea.KeyEnter, Alt: true}, Key{Name: "enter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromKeyMsg(tt.msg))
		})
	}
}

func TestFromKeyMsgIntent(t *testing.T) {
	assert.Equal(t, Next, FromKeyMsgIntent(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, Last, FromKeyMsgIntent(tea.KeyMsg{Type: tea.KeyShiftDown}))
	assert.Equal(t, Previous, FromKeyMsgIntent(tea.KeyMsg{Type: tea.KeyShiftTab}))
	assert.Equal(t, None, FromKeyMsgIntent(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}))
	assert.Equal(t, None, FromKeyMsgIntent(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.Equal(t, Next, FromKeyMsgIntent(tea.KeyMsg{Type: tea.KeyDown, Alt: true}))
}
