package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"treefocus/internal/config"
	"treefocus/internal/discovery"
	"treefocus/internal/eventbus"
	"treefocus/internal/tree"
	"treefocus/internal/ui/input"
	"treefocus/internal/ui/input/intent"
	inputtypes "treefocus/internal/ui/input/types"
	"treefocus/internal/ui/services/navigation"
	"treefocus/internal/ui/views"
)

// Layout rows outside the tree: padding, title, status, scroll indicators,
// filter input and help.
const (
	reservedRows = 10
	rowsTop      = 3 // first tree row on screen: padding + title + margin
)

// Model represents the UI state
type Model struct {
	ctx       context.Context
	bus       eventbus.EventBus
	config    *config.Config
	discovery discovery.DiscoveryService

	tree *tree.Tree
	nav  *navigation.Service

	width         int
	height        int
	help          help.Model
	scanning      bool
	statusMessage string
	statusIsError bool
	inPagerMode   bool

	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(ctx context.Context, cfg *config.Config, bus eventbus.EventBus, ds discovery.DiscoveryService) *Model {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	keys := inputtypes.DefaultKeyMap()

	return &Model{
		ctx:          ctx,
		bus:          bus,
		config:       cfg,
		discovery:    ds,
		nav:          navigation.NewService(bus),
		help:         help.New(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(keys),
		pager:        NewPagerOps(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init starts the first scan
func (m *Model) Init() tea.Cmd {
	m.scanning = true
	return m.scanCmd()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.nav.SetViewportHeight(msg.Height - reservedRows)
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, &modelContext{m: m})

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case scanCompletedMsg:
		m.scanning = false
		if msg.err != nil {
			log.Printf("Scan failed: %v", msg.err)
			m.setStatus(fmt.Sprintf("Scan failed: %v", msg.err), true)
			return m, nil
		}
		m.installTree(msg.tree)
		return m, nil

	case previewClosedMsg:
		if msg.err != nil {
			log.Printf("Preview of %s failed: %v", msg.path, msg.err)
			m.setStatus(msg.err.Error(), true)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case EventMsg:
		if ev, ok := msg.Event.(eventbus.ErrorEvent); ok {
			m.setStatus(ev.Message, true)
		}
		return m, nil
	}

	return m, m.inputHandler.Update(msg)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Root:           m.config.Root,
		Visible:        m.visible(),
		FocusIndex:     m.nav.Index(),
		ViewportOffset: m.nav.Offset(),
		ViewportHeight: m.nav.ViewportHeight(),
		FilterQuery:    m.filterQuery(),
		Scanning:       m.scanning,
		StatusMessage:  m.statusMessage,
		StatusIsError:  m.statusIsError,
		ShowHelp:       m.config.UISettings.ShowHelp || m.help.ShowAll,
		HelpModel:      m.help,
		Keys:           m.inputHandler.Keys(),
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		state.Filtering = true
		state.TextInput = ti.View()
	}
	return m.renderer.Render(state)
}

// Focused returns the node holding focus, or nil
func (m *Model) Focused() *tree.Node {
	return m.nav.Focused()
}

// FocusIndex returns the focused row, or -1
func (m *Model) FocusIndex() int {
	return m.nav.Index()
}

// Tree returns the tree being browsed, nil before the first scan completes
func (m *Model) Tree() *tree.Tree {
	return m.tree
}

func (m *Model) visible() []*tree.Node {
	if m.tree == nil {
		return nil
	}
	return m.tree.Visible()
}

func (m *Model) filterQuery() string {
	if m.tree == nil {
		return ""
	}
	return m.tree.Filter()
}

func (m *Model) setStatus(msg string, isError bool) {
	m.statusMessage = msg
	m.statusIsError = isError
}

// installTree swaps in a freshly scanned tree, keeping expansion and filter.
func (m *Model) installTree(t *tree.Tree) {
	filter := m.filterQuery()
	expanded := m.config.Expanded
	if m.tree != nil {
		expanded = m.tree.ExpandedPaths()
	}

	m.tree = t
	if len(expanded) > 0 {
		m.tree.ApplyExpanded(expanded)
	}
	m.tree.SetFilter(filter)
	m.setStatus("", false)
	m.reshape("scan")
}

// reshape re-initializes roving focus after the visible sequence changed.
func (m *Model) reshape(reason string) {
	visible := m.visible()
	m.nav.Reset(visible)
	m.bus.Publish(eventbus.TreeReshapedEvent{Reason: reason, Items: len(visible)})
}

func (m *Model) expansionChanged(reason string) {
	m.reshape(reason)
	m.bus.Publish(eventbus.ConfigChangedEvent{Expanded: m.tree.ExpandedPaths()})
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	if m.tree == nil {
		switch action.(type) {
		case inputtypes.QuitAction, inputtypes.RescanAction, inputtypes.ToggleHelpAction:
		default:
			return nil
		}
	}

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.nav.Apply(a.Intent, m.visible())

	case inputtypes.ToggleNodeAction:
		if m.tree.Toggle(m.nav.Focused()) {
			m.expansionChanged("toggle")
		}

	case inputtypes.ExpandNodeAction:
		n := m.nav.Focused()
		if m.tree.SetExpanded(n, true) {
			m.expansionChanged("toggle")
		} else if n != nil && n.HasChildren() {
			m.nav.FocusIndex(tree.IndexOf(m.visible(), n.Children[0]), m.visible())
		}

	case inputtypes.CollapseNodeAction:
		n := m.nav.Focused()
		if m.tree.SetExpanded(n, false) {
			m.expansionChanged("toggle")
		} else if n != nil && n.Parent != nil {
			m.nav.FocusIndex(tree.IndexOf(m.visible(), n.Parent), m.visible())
		}

	case inputtypes.ExpandAllAction:
		m.tree.ExpandAll()
		m.expansionChanged("expand_all")

	case inputtypes.CollapseAllAction:
		m.tree.CollapseAll()
		m.expansionChanged("collapse_all")

	case inputtypes.UpdateTextAction:
		m.applyFilter(a.Text)

	case inputtypes.SubmitTextAction:
		m.applyFilter(a.Text)

	case inputtypes.CancelTextAction:
		m.applyFilter("")

	case inputtypes.RescanAction:
		m.scanning = true
		return m.scanCmd()

	case inputtypes.OpenPreviewAction:
		return m.previewCmd()

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) applyFilter(query string) {
	if m.tree.Filter() == query {
		return
	}
	m.tree.SetFilter(query)
	m.reshape("filter")
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || m.tree == nil {
		return nil
	}

	visible := m.visible()
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.nav.Apply(intent.Previous, visible)
	case tea.MouseButtonWheelDown:
		m.nav.Apply(intent.Next, visible)
	case tea.MouseButtonLeft:
		row := msg.Y - rowsTop
		if m.nav.Offset() > 0 {
			row-- // "↑ N more" line
		}
		if row < 0 || row >= m.nav.ViewportHeight() {
			return nil
		}
		m.nav.FocusIndex(m.nav.Offset()+row, visible)
	}
	return nil
}

func (m *Model) scanCmd() tea.Cmd {
	ctx := m.ctx
	root := m.config.Root
	opts := discovery.Options{
		MaxDepth:   m.config.MaxDepth,
		ShowHidden: m.config.ShowHidden,
		Ignore:     m.config.Ignore,
	}
	ds := m.discovery
	return func() tea.Msg {
		t, err := ds.Scan(ctx, root, opts)
		return scanCompletedMsg{tree: t, err: err}
	}
}

// previewCmd returns a command that shows the focused file in the pager,
// pausing rendering while ov owns the terminal.
func (m *Model) previewCmd() tea.Cmd {
	n := m.nav.Focused()
	if n == nil || n.IsDir {
		return nil
	}
	if !m.config.UISettings.Preview {
		m.setStatus("Preview disabled in config", false)
		return nil
	}
	if m.program == nil {
		m.setStatus("Preview unavailable", true)
		return nil
	}

	path := n.Path
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.ShowFile(path)
		m.program.Send(resumeRenderingMsg{})
		return previewClosedMsg{path: path, err: err}
	}
}

// modelContext implements the input Context interface
type modelContext struct {
	m *Model
}

func (c *modelContext) CurrentIndex() int {
	return c.m.nav.Index()
}

func (c *modelContext) FocusedIsDir() bool {
	n := c.m.nav.Focused()
	return n != nil && n.IsDir
}

func (c *modelContext) FilterQuery() string {
	return c.m.filterQuery()
}
