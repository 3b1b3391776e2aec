package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"treefocus/internal/tree"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Root           string
	Visible        []*tree.Node
	FocusIndex     int // -1 when nothing is focused
	ViewportOffset int
	ViewportHeight int
	FilterQuery    string
	Filtering      bool   // filter input is open
	TextInput      string // rendered text input
	Scanning       bool
	StatusMessage  string
	StatusIsError  bool
	ShowHelp       bool
	HelpModel      help.Model
	Keys           help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	nodeRender *NodeRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		nodeRender: NewNodeRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")
	content.WriteString(r.RenderRows(state))

	content.WriteString(r.renderStatus(state))

	if state.Filtering {
		content.WriteString("\n")
		content.WriteString(r.styles.Filter.Render("Filter: "))
		content.WriteString(state.TextInput)
	}

	if state.ShowHelp && state.Keys != nil {
		content.WriteString("\n")
		content.WriteString(state.HelpModel.View(state.Keys))
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("treefocus")

	var right []string
	if state.Scanning {
		right = append(right, r.styles.Dim.Render("scanning…"))
	}
	if state.FilterQuery != "" {
		right = append(right, r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery)))
	}
	if len(right) == 0 {
		return logo
	}

	rightContent := strings.Join(right, "  ")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	paddingWidth := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + rightContent
}

// RenderRows draws the rows inside the viewport window plus scroll
// indicators. Rows outside the window are never rendered.
func (r *Renderer) RenderRows(state ViewState) string {
	b := &strings.Builder{}
	total := len(state.Visible)

	if total == 0 {
		if state.FilterQuery != "" {
			b.WriteString(r.styles.Dim.Render("No matches"))
		} else {
			b.WriteString(r.styles.Dim.Render("Empty"))
		}
		b.WriteString("\n")
		return b.String()
	}

	height := state.ViewportHeight
	if height <= 0 {
		height = total
	}
	start := state.ViewportOffset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + height
	if end > total {
		end = total
	}

	if start > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
		b.WriteString("\n")
	}

	rowWidth := state.Width - 4
	for i := start; i < end; i++ {
		b.WriteString(r.nodeRender.RenderRow(state.Visible[i], i == state.FocusIndex, state.FilterQuery, rowWidth))
		b.WriteString("\n")
	}

	if end < total {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", total-end)))
		b.WriteString("\n")
	}

	return b.String()
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage != "" {
		if state.StatusIsError {
			return r.styles.StatusError.Render(state.StatusMessage)
		}
		return r.styles.Status.Render(state.StatusMessage)
	}

	position := "-"
	path := state.Root
	if state.FocusIndex >= 0 && state.FocusIndex < len(state.Visible) {
		position = fmt.Sprintf("%d", state.FocusIndex+1)
		path = state.Visible[state.FocusIndex].Path
	}
	return r.styles.Status.Render(fmt.Sprintf("%s/%d  %s", position, len(state.Visible), path))
}
