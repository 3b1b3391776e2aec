// Package roving tracks which visible row of a tree holds keyboard focus.
//
// State is plain bookkeeping: the focused position, the row count seen at the
// last reset, and a handle to the focused node. Reduce is the only way to
// move between states.
package roving

import "fmt"

// State holds the focus bookkeeping for one tree instance.
// Index and Node are either both set or both absent. A nil pointer means
// absent; for Node the zero value of N means absent.
type State[N any] struct {
	Index *int
	Items *int
	Node  N
}

// Action is one of Initialize or SetIndex.
type Action[N any] interface {
	isAction()
}

// Initialize replaces the whole state. Used whenever the visible sequence is
// rebuilt (expand, collapse, filter, rescan).
type Initialize[N any] struct {
	Index *int
	Items *int
	Node  N
}

// SetIndex moves focus and leaves Items untouched.
type SetIndex[N any] struct {
	Index *int
	Node  N
}

func (Initialize[N]) isAction() {}
func (SetIndex[N]) isAction()   {}

// Reduce returns the state that follows s after applying a.
//
// No bounds checking happens here: an index outside [0, Items) is stored
// as given. Keeping it in range is up to the caller.
// Reduce panics on any action it does not know, which can only be a nil
// Action since the interface is sealed.
func Reduce[N any](s State[N], a Action[N]) State[N] {
	switch act := a.(type) {
	case Initialize[N]:
		return State[N]{
			Index: clone(act.Index),
			Items: clone(act.Items),
			Node:  act.Node,
		}
	case SetIndex[N]:
		return State[N]{
			Index: clone(act.Index),
			Items: clone(s.Items),
			Node:  act.Node,
		}
	default:
		panic(fmt.Sprintf("roving: unknown action %T", a))
	}
}

// Int returns a pointer to v, for building actions inline.
func Int(v int) *int {
	return &v
}

// Focused reports whether the state has a focused row.
func (s State[N]) Focused() bool {
	return s.Index != nil
}

// IndexOr returns the focused index, or def when nothing is focused.
func (s State[N]) IndexOr(def int) int {
	if s.Index == nil {
		return def
	}
	return *s.Index
}

// ItemsOr returns the cached row count, or def when it was never set.
func (s State[N]) ItemsOr(def int) int {
	if s.Items == nil {
		return def
	}
	return *s.Items
}

// clone copies the pointed-to value so states never share storage.
func clone(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
