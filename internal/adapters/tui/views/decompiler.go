package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jarscope/internal/adapters/tui/styles"
	"jarscope/internal/application"
)

// openDepth is how many directory levels start expanded
const openDepth = 2

// DecompilerKeyMap defines key bindings for the decompiler view
type DecompilerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Open     key.Binding
	Copy     key.Binding
	Export   key.Binding
	Edit     key.Binding
}

var DecompilerKeys = DecompilerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle/decompile"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("ctrl+u", "code up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("ctrl+d", "code down"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open file"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Export: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save .java"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "save & edit"),
	),
}

// DecompilerModel shows the archive tree next to the decompiled code
type DecompilerModel struct {
	ViewState

	prompt  *PathPrompt
	code    viewport.Model
	spinner spinner.Model

	input      string
	kind       application.InputKind
	tree       *application.PathTree
	expand     *application.ExpandState
	visible    []application.NodeID
	window     *ListWindow
	selected   string
	resultID   string
	hasResult  bool
	processing bool
}

// NewDecompilerModel creates a new decompiler view
func NewDecompilerModel() *DecompilerModel {
	return &DecompilerModel{
		prompt:  NewPathPrompt("Open file", "path/to/app.jar or Main.class"),
		code:    viewport.New(80, 20),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		window:  NewListWindow(20),
	}
}

// Init focuses the path prompt
func (m *DecompilerModel) Init() tea.Cmd {
	return m.prompt.Focus()
}

// Capturing reports whether key presses go to the path prompt
func (m *DecompilerModel) Capturing() bool {
	return m.prompt.Focused()
}

// SetState shows a new session snapshot. A new tree resets expansion and
// moves the cursor to the selected member.
func (m *DecompilerModel) SetState(st application.State, rendered string) {
	if st.Tree != m.tree {
		m.tree = st.Tree
		m.expand = nil
		if m.tree != nil {
			m.expand = application.NewExpandState(m.tree, openDepth)
		}
		m.SetSize(m.Width, m.Height)
	}
	m.input = st.Input
	m.kind = st.Kind
	m.selected = st.Selected
	m.refreshVisible()
	m.revealSelected()

	m.hasResult = st.Current != nil
	if st.Current != nil && st.Current.ID != m.resultID {
		m.resultID = st.Current.ID
		m.code.SetContent(rendered)
		m.code.GotoTop()
		return
	}
	m.code.SetContent(rendered)
}

// SetRendered replaces the code without moving the scroll position
func (m *DecompilerModel) SetRendered(rendered string) {
	m.code.SetContent(rendered)
}

// SetProcessing shows or hides the spinner
func (m *DecompilerModel) SetProcessing(on bool) tea.Cmd {
	m.processing = on
	if on {
		return m.spinner.Tick
	}
	return nil
}

// Processing reports whether the spinner is shown
func (m *DecompilerModel) Processing() bool {
	return m.processing
}

// SetSize lays out the tree and code panes
func (m *DecompilerModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)

	paneHeight := max(height-10, 3)
	codeWidth := max(width-6, 20)
	if m.tree != nil {
		codeWidth = max(width-m.treeWidth()-10, 20)
	}
	m.code.Width = codeWidth
	m.code.Height = paneHeight
	m.window.SetHeight(paneHeight)
	m.prompt.Input.Width = max(width-10, 20)
}

func (m *DecompilerModel) treeWidth() int {
	return min(max(m.Width/3, 24), 48)
}

// Update handles messages for the decompiler view
func (m *DecompilerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.processing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.prompt.Focused() {
			return m, m.updatePrompt(msg)
		}
		m.ClearNotice()
		return m, m.handleKey(msg)
	}

	if m.prompt.Focused() {
		_, _, cmd := m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *DecompilerModel) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	submitted, cancelled, cmd := m.prompt.Update(msg)
	switch {
	case submitted:
		path := m.prompt.Value()
		m.prompt.Blur()
		m.prompt.Input.SetValue("")
		return emit(OpenPathMsg{Path: path})
	case cancelled:
		m.prompt.Blur()
		return nil
	}
	return cmd
}

func (m *DecompilerModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	keys := DecompilerKeys

	switch {
	case key.Matches(msg, keys.Open):
		return m.prompt.Focus()

	case key.Matches(msg, keys.PageDown):
		m.code.HalfViewDown()
		return nil

	case key.Matches(msg, keys.PageUp):
		m.code.HalfViewUp()
		return nil

	case key.Matches(msg, keys.Copy):
		if m.hasResult {
			return emit(CopyMsg{})
		}
		return nil

	case key.Matches(msg, keys.Export):
		if m.hasResult {
			return emit(ExportMsg{})
		}
		return nil

	case key.Matches(msg, keys.Edit):
		if m.hasResult {
			return emit(ExportMsg{Edit: true})
		}
		return nil
	}

	if m.tree == nil {
		// without a tree the arrows scroll the code
		switch {
		case key.Matches(msg, keys.Up):
			m.code.LineUp(1)
		case key.Matches(msg, keys.Down):
			m.code.LineDown(1)
		}
		return nil
	}
	return m.handleTreeKey(msg)
}

func (m *DecompilerModel) handleTreeKey(msg tea.KeyMsg) tea.Cmd {
	keys := DecompilerKeys

	switch {
	case key.Matches(msg, keys.Up):
		m.window.Up()

	case key.Matches(msg, keys.Down):
		m.window.Down()

	case key.Matches(msg, keys.Left):
		id, ok := m.cursorNode()
		if !ok {
			return nil
		}
		node := m.tree.Node(id)
		if node.IsDirectory && m.expand.IsExpanded(id) {
			m.expand.Collapse(id)
			m.refreshVisible()
		} else if node.Parent != application.NoParent {
			m.moveCursorTo(node.Parent)
		}

	case key.Matches(msg, keys.Right):
		if id, ok := m.cursorNode(); ok && m.tree.Node(id).IsDirectory {
			m.expand.Expand(id)
			m.refreshVisible()
		}

	case key.Matches(msg, keys.Enter):
		id, ok := m.cursorNode()
		if !ok {
			return nil
		}
		node := m.tree.Node(id)
		if node.IsDirectory {
			m.expand.Toggle(id)
			m.refreshVisible()
			return nil
		}
		if node.Path == m.selected && m.hasResult {
			return nil
		}
		return emit(SelectMemberMsg{Path: node.Path})
	}
	return nil
}

func (m *DecompilerModel) cursorNode() (application.NodeID, bool) {
	c := m.window.Cursor()
	if c < 0 || c >= len(m.visible) {
		return 0, false
	}
	return m.visible[c], true
}

func (m *DecompilerModel) moveCursorTo(id application.NodeID) {
	for i, v := range m.visible {
		if v == id {
			m.window.SetCursor(i)
			return
		}
	}
}

func (m *DecompilerModel) refreshVisible() {
	if m.tree == nil {
		m.visible = nil
		m.window.SetTotal(0)
		return
	}
	m.visible = m.tree.Visible(m.expand.IsExpanded)
	m.window.SetTotal(len(m.visible))
}

// revealSelected expands the parents of the selected member and puts the
// cursor on it
func (m *DecompilerModel) revealSelected() {
	if m.tree == nil || m.selected == "" {
		return
	}
	id, ok := m.tree.Find(m.selected)
	if !ok {
		return
	}
	for p := m.tree.Node(id).Parent; p != application.NoParent; p = m.tree.Node(p).Parent {
		m.expand.Expand(p)
	}
	m.refreshVisible()
	m.moveCursorTo(id)
}

// View renders the decompiler view
func (m *DecompilerModel) View() string {
	v := NewViewBuilder()

	switch {
	case m.input != "":
		v.Line(styles.Subtitle.Render(fmt.Sprintf("%s (%s)", filepath.Base(m.input), m.kind)))
	default:
		v.Line(styles.Subtitle.Render("Simplified Java source view for .jar and .class files"))
	}
	v.BlankLine()

	if m.prompt.Focused() || !m.hasResult {
		v.Line(m.prompt.View()).BlankLine()
	}

	if m.hasResult {
		v.Line(m.renderPanes())
	}

	if m.processing {
		v.Line(m.spinner.View() + " Decompiling...")
	}
	v.Notice(&m.ViewState)

	if m.prompt.Focused() {
		return v.Help(PromptKeys.Submit, PromptKeys.Cancel).String()
	}
	bindings := []key.Binding{DecompilerKeys.Open}
	if m.tree != nil {
		bindings = append(bindings, DecompilerKeys.Up, DecompilerKeys.Down, DecompilerKeys.Enter)
	}
	if m.hasResult {
		bindings = append(bindings, DecompilerKeys.PageDown, DecompilerKeys.Copy, DecompilerKeys.Export, DecompilerKeys.Edit)
	}
	return v.Help(bindings...).String()
}

func (m *DecompilerModel) renderPanes() string {
	code := styles.PaneFocused.Render(m.code.View())
	if m.tree == nil {
		return code
	}

	width := m.treeWidth()
	var b strings.Builder
	start, end := m.window.Range()
	for i := start; i < end; i++ {
		b.WriteString(m.renderNode(m.visible[i], i == m.window.Cursor(), width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	tree := styles.Pane.Width(width).Height(m.code.Height).Render(b.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, tree, " ", code)
}

func (m *DecompilerModel) renderNode(id application.NodeID, atCursor bool, width int) string {
	node := m.tree.Node(id)
	indent := strings.Repeat("  ", m.tree.Depth(id))

	prefix := styles.TreeLeaf
	style := styles.NodeClass
	if node.IsDirectory {
		prefix = styles.TreeCollapsed
		if m.expand.IsExpanded(id) {
			prefix = styles.TreeExpanded
		}
		style = styles.NodeDirectory
	} else if node.Path == m.selected {
		style = styles.NodeCurrent
	}

	name := truncate(node.Name, width-len([]rune(indent))-4)
	if atCursor {
		style = styles.NodeSelected
	}
	return indent + styles.TreeBranch.Render(prefix) + style.Render(name)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n < 1 {
		n = 1
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
