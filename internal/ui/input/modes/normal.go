package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"treefocus/internal/ui/input/intent"
	"treefocus/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Navigation keys first: they never reach the keymap.
	if in := intent.FromKeyMsgIntent(msg); in != intent.None {
		return []types.Action{types.NavigateAction{Intent: in}}, true
	}

	switch {
	case msg.Type == tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, m.keys.Toggle):
		if ctx.FocusedIsDir() {
			return []types.Action{types.ToggleNodeAction{}}, true
		}
		return []types.Action{types.OpenPreviewAction{}}, true

	case key.Matches(msg, m.keys.Expand):
		return []types.Action{types.ExpandNodeAction{}}, true

	case key.Matches(msg, m.keys.Collapse):
		return []types.Action{types.CollapseNodeAction{}}, true

	case key.Matches(msg, m.keys.ExpandAll):
		return []types.Action{types.ExpandAllAction{}}, true

	case key.Matches(msg, m.keys.CollapseAll):
		return []types.Action{types.CollapseAllAction{}}, true

	case key.Matches(msg, m.keys.Filter):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true

	case key.Matches(msg, m.keys.Preview):
		if ctx.CurrentIndex() < 0 || ctx.FocusedIsDir() {
			return nil, true
		}
		return []types.Action{types.OpenPreviewAction{}}, true

	case key.Matches(msg, m.keys.Rescan):
		return []types.Action{types.RescanAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case msg.Type == tea.KeyEsc:
		// Esc clears an applied filter
		if ctx.FilterQuery() != "" {
			return []types.Action{types.SubmitTextAction{Text: "", Mode: types.ModeFilter}}, true
		}
		return nil, false
	}

	return nil, false
}
