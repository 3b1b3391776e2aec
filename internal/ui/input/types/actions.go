package types

import "treefocus/internal/ui/input/intent"

// Navigation actions
type NavigateAction struct {
	Intent intent.Intent
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Tree shape actions
type ToggleNodeAction struct{}

func (a ToggleNodeAction) Type() string { return "toggle_node" }

type ExpandNodeAction struct{}

func (a ExpandNodeAction) Type() string { return "expand_node" }

// CollapseNodeAction collapses the focused node, or focuses its parent
// when it is already collapsed.
type CollapseNodeAction struct{}

func (a CollapseNodeAction) Type() string { return "collapse_node" }

type ExpandAllAction struct{}

func (a ExpandAllAction) Type() string { return "expand_all" }

type CollapseAllAction struct{}

func (a CollapseAllAction) Type() string { return "collapse_all" }

// Command actions
type RescanAction struct{}

func (a RescanAction) Type() string { return "rescan" }

type OpenPreviewAction struct{}

func (a OpenPreviewAction) Type() string { return "open_preview" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
