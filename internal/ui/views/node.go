package views

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"treefocus/internal/tree"
)

// NodeRenderer renders a single tree row
type NodeRenderer struct {
	styles *Styles
}

// NewNodeRenderer creates a new node renderer
func NewNodeRenderer(styles *Styles) *NodeRenderer {
	return &NodeRenderer{styles: styles}
}

// RenderRow renders n with indentation and an expand marker. The focused
// row is padded to width so its background spans the line.
func (r *NodeRenderer) RenderRow(n *tree.Node, focused bool, filter string, width int) string {
	indent := strings.Repeat("  ", n.Depth)

	marker := "  "
	if n.HasChildren() {
		if n.Expanded || filter != "" {
			marker = "▼ "
		} else {
			marker = "▶ "
		}
	}

	style := r.styles.File
	name := n.Name
	if n.IsDir {
		style = r.styles.Dir
		name += "/"
	}

	label := style.Render(name)
	if filter != "" {
		label = r.highlightMatch(name, filter, r.styles.Highlight, style)
	}

	line := indent + marker + label
	if !focused {
		return line
	}

	if width > 0 {
		if lineLen := lipgloss.Width(line); lineLen < width {
			line += strings.Repeat(" ", width-lineLen)
		}
	}
	return r.styles.Focused.Render(line)
}

// highlightMatch highlights the first case-insensitive occurrence of query.
// Offsets come from text itself since lowercasing may change byte lengths.
func (r *NodeRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	start, end := matchRange(text, query)
	if start < 0 {
		return normalStyle.Render(text)
	}

	before := text[:start]
	match := text[start:end]
	after := text[end:]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

// matchRange returns the byte range in text of the first window that
// case-folds equal to query, or -1, -1.
func matchRange(text, query string) (int, int) {
	n := utf8.RuneCountInString(query)
	if n == 0 {
		return -1, -1
	}

	var starts []int
	for i := range text {
		starts = append(starts, i)
	}
	starts = append(starts, len(text))

	for i := 0; i+n < len(starts); i++ {
		if strings.EqualFold(text[starts[i]:starts[i+n]], query) {
			return starts[i], starts[i+n]
		}
	}
	return -1, -1
}
