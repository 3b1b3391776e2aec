package navigation

import (
	"treefocus/internal/eventbus"
	"treefocus/internal/roving"
	"treefocus/internal/tree"
	"treefocus/internal/ui/input/intent"
)

// Service resolves navigation intents against the visible-node sequence and
// feeds the result through the roving reducer. It also keeps the viewport
// offset so the focused row stays on screen.
type Service struct {
	state          roving.State[*tree.Node]
	viewportOffset int
	viewportHeight int
	bus            eventbus.EventBus
}

// NewService creates a new navigation service
func NewService(bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		viewportHeight: 20, // updated on first resize
		bus:            bus,
	}
}

// State returns the current roving state
func (s *Service) State() roving.State[*tree.Node] {
	return s.state
}

// Focused returns the focused node, or nil
func (s *Service) Focused() *tree.Node {
	return s.state.Node
}

// Index returns the focused index, or -1 when nothing is focused
func (s *Service) Index() int {
	return s.state.IndexOr(-1)
}

// Offset returns the first row drawn in the viewport
func (s *Service) Offset() int {
	return s.viewportOffset
}

// ViewportHeight returns the number of rows the viewport can show
func (s *Service) ViewportHeight() int {
	return s.viewportHeight
}

// SetViewportHeight updates viewport height
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.viewportHeight = height
	s.ensureVisible()
}

// Reset re-initializes focus after the visible sequence was rebuilt.
// Focus stays on the same node when it is still visible, or on a node with
// the same path after a rescan. Otherwise the old index is clamped into the
// new range.
func (s *Service) Reset(visible []*tree.Node) {
	old := s.Index()
	act := roving.Initialize[*tree.Node]{Items: roving.Int(len(visible))}

	if len(visible) > 0 {
		idx := tree.IndexOf(visible, s.state.Node)
		if idx < 0 {
			idx = indexOfPath(visible, s.state.Node)
		}
		if idx < 0 {
			idx = clamp(old, len(visible))
		}
		act.Index = roving.Int(idx)
		act.Node = visible[idx]
	}

	s.dispatch(act, old)
}

// Apply moves focus according to in. It reports whether the focused index
// changed. Movement clamps at both ends; it never wraps.
func (s *Service) Apply(in intent.Intent, visible []*tree.Node) bool {
	target, ok := s.resolve(in, len(visible))
	if !ok {
		return false
	}
	return s.FocusIndex(target, visible)
}

// FocusIndex focuses the row at index, e.g. for a mouse click.
// Indexes outside the visible sequence are ignored.
func (s *Service) FocusIndex(index int, visible []*tree.Node) bool {
	if index < 0 || index >= len(visible) {
		return false
	}
	old := s.Index()
	s.dispatch(roving.SetIndex[*tree.Node]{Index: roving.Int(index), Node: visible[index]}, old)
	return old != index
}

func (s *Service) resolve(in intent.Intent, count int) (int, bool) {
	if count == 0 {
		return 0, false
	}
	last := count - 1

	if !s.state.Focused() {
		switch in {
		case intent.Next, intent.First:
			return 0, true
		case intent.Previous, intent.Last:
			return last, true
		}
		return 0, false
	}

	cur := clamp(*s.state.Index, count)
	switch in {
	case intent.Next:
		if cur < last {
			cur++
		}
		return cur, true
	case intent.Previous:
		if cur > 0 {
			cur--
		}
		return cur, true
	case intent.First:
		return 0, true
	case intent.Last:
		return last, true
	}
	return 0, false
}

func (s *Service) dispatch(act roving.Action[*tree.Node], old int) {
	s.state = roving.Reduce(s.state, act)
	s.ensureVisible()

	if idx := s.Index(); idx != old {
		path := ""
		if s.state.Node != nil {
			path = s.state.Node.Path
		}
		s.bus.Publish(eventbus.FocusChangedEvent{
			OldIndex: old,
			NewIndex: idx,
			Path:     path,
		})
	}
}

func (s *Service) ensureVisible() {
	idx := s.Index()
	if idx < 0 {
		s.viewportOffset = 0
		return
	}
	if idx < s.viewportOffset {
		s.viewportOffset = idx
	} else if idx >= s.viewportOffset+s.viewportHeight {
		s.viewportOffset = idx - s.viewportHeight + 1
	}

	// Don't leave empty rows at the bottom after the sequence shrank.
	if items := s.state.ItemsOr(0); items > 0 {
		maxOffset := items - s.viewportHeight
		if maxOffset < 0 {
			maxOffset = 0
		}
		if s.viewportOffset > maxOffset {
			s.viewportOffset = maxOffset
		}
	}
}

// indexOfPath finds a node with n's path, for trees rebuilt by a rescan.
func indexOfPath(visible []*tree.Node, n *tree.Node) int {
	if n == nil || n.Path == "" {
		return -1
	}
	for i, v := range visible {
		if v.Path == n.Path {
			return i
		}
	}
	return -1
}

func clamp(i, count int) int {
	if i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}
