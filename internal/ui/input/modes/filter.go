package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"treefocus/internal/ui/input/intent"
	"treefocus/internal/ui/input/types"
)

// FilterMode edits the tree filter in the shared text input.
type FilterMode struct {
	textInput *textinput.Model
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{textInput: ti}
}

func (m *FilterMode) Name() string {
	return "filter"
}

func (m *FilterMode) Enter(ctx types.Context) []types.Action {
	m.textInput.Reset()
	m.textInput.Focus()
	m.textInput.Prompt = "" // drawn by the view
	return nil
}

func (m *FilterMode) Exit(ctx types.Context) []types.Action {
	m.textInput.Blur()
	return nil
}

// HandleKey lets arrow keys and tab move focus through the filtered rows
// while typing. Unconsumed keys go to the text input.
func (m *FilterMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type != tea.KeyRunes {
		if in := intent.FromKeyMsgIntent(msg); in != intent.None {
			return []types.Action{types.NavigateAction{Intent: in}}, true
		}
	}

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "enter":
		return []types.Action{
			types.SubmitTextAction{Text: m.textInput.Value(), Mode: types.ModeFilter},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return nil, false
}
