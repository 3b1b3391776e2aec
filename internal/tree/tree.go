package tree

import (
	"sort"
	"strings"
)

// Node is one entry of the browsed hierarchy.
type Node struct {
	Name     string
	Path     string
	IsDir    bool
	Depth    int
	Expanded bool
	Parent   *Node
	Children []*Node
}

// Add appends child under n and fixes up its parent and depth.
func (n *Node) Add(child *Node) {
	child.Parent = n
	child.Depth = n.Depth + 1
	n.Children = append(n.Children, child)
}

// HasChildren reports whether n can be expanded.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// SortChildren orders children directories first, then by name, recursively.
func (n *Node) SortChildren() {
	sort.SliceStable(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
	for _, c := range n.Children {
		c.SortChildren()
	}
}

// Tree holds the roots and the current filter. It answers which nodes are
// visible; it does not know about focus.
type Tree struct {
	roots  []*Node
	filter string
}

// New creates a tree over the given roots.
func New(roots ...*Node) *Tree {
	for _, r := range roots {
		r.Parent = nil
		setDepth(r, 0)
	}
	return &Tree{roots: roots}
}

func setDepth(n *Node, depth int) {
	n.Depth = depth
	for _, c := range n.Children {
		c.Parent = n
		setDepth(c, depth+1)
	}
}

// Roots returns the top-level nodes.
func (t *Tree) Roots() []*Node {
	return t.roots
}

// Filter returns the active filter, "" when none.
func (t *Tree) Filter() string {
	return t.filter
}

// SetFilter sets a case-insensitive name filter. An empty string clears it.
func (t *Tree) SetFilter(query string) {
	t.filter = strings.TrimSpace(query)
}

// Visible returns the ordered sequence of navigable rows.
//
// Without a filter, children of collapsed nodes are hidden. With a filter, a
// node is shown when its name matches or a descendant matches; ancestors of
// matches are walked into regardless of their expanded flag.
func (t *Tree) Visible() []*Node {
	var out []*Node
	if t.filter == "" {
		for _, r := range t.roots {
			out = appendExpanded(out, r)
		}
		return out
	}

	q := strings.ToLower(t.filter)
	for _, r := range t.roots {
		out = appendMatching(out, r, q)
	}
	return out
}

func appendExpanded(out []*Node, n *Node) []*Node {
	out = append(out, n)
	if !n.Expanded {
		return out
	}
	for _, c := range n.Children {
		out = appendExpanded(out, c)
	}
	return out
}

func appendMatching(out []*Node, n *Node, q string) []*Node {
	if !subtreeMatches(n, q) {
		return out
	}
	out = append(out, n)
	for _, c := range n.Children {
		out = appendMatching(out, c, q)
	}
	return out
}

func subtreeMatches(n *Node, q string) bool {
	if strings.Contains(strings.ToLower(n.Name), q) {
		return true
	}
	for _, c := range n.Children {
		if subtreeMatches(c, q) {
			return true
		}
	}
	return false
}

// Count returns len(Visible()).
func (t *Tree) Count() int {
	return len(t.Visible())
}

// IndexOf returns the position of n in visible, or -1.
func IndexOf(visible []*Node, n *Node) int {
	if n == nil {
		return -1
	}
	for i, v := range visible {
		if v == n {
			return i
		}
	}
	return -1
}

// Toggle flips the expanded flag of n. Leaves are left alone.
// It reports whether anything changed.
func (t *Tree) Toggle(n *Node) bool {
	if n == nil || !n.HasChildren() {
		return false
	}
	n.Expanded = !n.Expanded
	return true
}

// SetExpanded sets the expanded flag of n and reports whether it changed.
func (t *Tree) SetExpanded(n *Node, expanded bool) bool {
	if n == nil || !n.HasChildren() || n.Expanded == expanded {
		return false
	}
	n.Expanded = expanded
	return true
}

// ExpandAll expands every node with children.
func (t *Tree) ExpandAll() {
	t.Walk(func(n *Node) {
		if n.HasChildren() {
			n.Expanded = true
		}
	})
}

// CollapseAll collapses every node.
func (t *Tree) CollapseAll() {
	t.Walk(func(n *Node) {
		n.Expanded = false
	})
}

// Walk visits every node depth-first, hidden or not.
func (t *Tree) Walk(fn func(*Node)) {
	var walk func(*Node)
	walk = func(n *Node) {
		fn(n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, r := range t.roots {
		walk(r)
	}
}

// ExpandedPaths returns the paths of all expanded nodes in walk order.
func (t *Tree) ExpandedPaths() []string {
	var paths []string
	t.Walk(func(n *Node) {
		if n.Expanded && n.HasChildren() {
			paths = append(paths, n.Path)
		}
	})
	return paths
}

// ApplyExpanded expands exactly the nodes whose path is listed.
func (t *Tree) ApplyExpanded(paths []string) {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	t.Walk(func(n *Node) {
		n.Expanded = set[n.Path] && n.HasChildren()
	})
}

// Find returns the node with the given path, or nil.
func (t *Tree) Find(path string) *Node {
	var found *Node
	t.Walk(func(n *Node) {
		if found == nil && n.Path == path {
			found = n
		}
	})
	return found
}
