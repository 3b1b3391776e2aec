package views

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"treefocus/internal/tree"
)

func flatRows(n int) []*tree.Node {
	out := make([]*tree.Node, n)
	for i := range out {
		out[i] = &tree.Node{Name: fmt.Sprintf("file-%02d", i), Path: fmt.Sprintf("/file-%02d", i)}
	}
	return out
}

func plain(s string) string {
	return ansi.Strip(s)
}

func TestRenderRowsOnlyDrawsViewport(t *testing.T) {
	r := NewRenderer()
	out := plain(r.RenderRows(ViewState{
		Visible:        flatRows(10),
		FocusIndex:     4,
		ViewportOffset: 3,
		ViewportHeight: 3,
	}))

	assert.Contains(t, out, "↑ 3 more")
	assert.Contains(t, out, "file-03")
	assert.Contains(t, out, "file-05")
	assert.NotContains(t, out, "file-02")
	assert.NotContains(t, out, "file-06")
	assert.Contains(t, out, "↓ 4 more")
}

func TestRenderRowsEmpty(t *testing.T) {
	r := NewRenderer()
	assert.Contains(t, plain(r.RenderRows(ViewState{FocusIndex: -1})), "Empty")
	assert.Contains(t, plain(r.RenderRows(ViewState{FocusIndex: -1, FilterQuery: "zz"})), "No matches")
}

func TestRenderRowIndentAndMarker(t *testing.T) {
	dir := &tree.Node{Name: "src", Path: "/src", IsDir: true}
	child := &tree.Node{Name: "main.go", Path: "/src/main.go"}
	dir.Add(child)

	r := NewNodeRenderer(NewStyles())
	assert.Equal(t, "▶ src/", plain(r.RenderRow(dir, false, "", 0)))

	dir.Expanded = true
	assert.Equal(t, "▼ src/", plain(r.RenderRow(dir, false, "", 0)))
	assert.Equal(t, "    main.go", plain(r.RenderRow(child, false, "", 0)))
}

func TestRenderRowFocusedPadsToWidth(t *testing.T) {
	n := &tree.Node{Name: "a.txt", Path: "/a.txt"}
	r := NewNodeRenderer(NewStyles())
	out := r.RenderRow(n, true, "", 20)
	assert.Equal(t, 20, lipgloss.Width(out))
	assert.True(t, strings.HasPrefix(plain(out), "  a.txt"))
}

func TestRenderStatusShowsPosition(t *testing.T) {
	r := NewRenderer()
	visible := flatRows(3)
	out := plain(r.Render(ViewState{Visible: visible, FocusIndex: 1, ViewportHeight: 10, Width: 80}))
	assert.Contains(t, out, "2/3  /file-01")
	assert.Contains(t, out, "treefocus")
}

func TestRenderRowHighlightNonASCII(t *testing.T) {
	r := NewNodeRenderer(NewStyles())

	tests := []struct {
		name   string
		filter string
	}{
		{"Ⱥb", "b"},
		{"Ⱥb", "ⱥ"},
		{"ⱥⱥⱥ.txt", "TXT"},
		{"Ärger.md", "ärg"},
		{"İstanbul", "stan"},
		{"日本語.go", "本"},
		{"plain.go", "zzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.filter, func(t *testing.T) {
			var out string
			assert.NotPanics(t, func() {
				out = r.RenderRow(&tree.Node{Name: tt.name}, false, tt.filter, 40)
			})
			assert.Contains(t, plain(out), tt.name)
		})
	}
}

func TestMatchRange(t *testing.T) {
	tests := []struct {
		text, query string
		start, end  int
	}{
		{"Ⱥb", "b", 2, 3},
		{"Ⱥb", "ⱥ", 0, 2},
		{"README.md", "read", 0, 4},
		{"main.go", "GO", 5, 7},
		{"main.go", "", -1, -1},
		{"main.go", "xyz", -1, -1},
		{"ab", "abc", -1, -1},
	}

	for _, tt := range tests {
		start, end := matchRange(tt.text, tt.query)
		assert.Equal(t, tt.start, start, "%q in %q", tt.query, tt.text)
		assert.Equal(t, tt.end, end, "%q in %q", tt.query, tt.text)
	}
}
