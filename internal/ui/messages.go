package ui

import (
	"treefocus/internal/eventbus"
	"treefocus/internal/tree"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// scanCompletedMsg carries the result of a directory scan
type scanCompletedMsg struct {
	tree *tree.Tree
	err  error
}

// previewClosedMsg is sent when the pager exits
type previewClosedMsg struct {
	path string
	err  error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
