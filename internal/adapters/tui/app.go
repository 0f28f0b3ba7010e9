package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"jarscope/internal/adapters/tui/styles"
	"jarscope/internal/adapters/tui/views"
	"jarscope/internal/application"
	"jarscope/internal/application/commands"
	"jarscope/internal/ports"
)

// Tab identifies one top-level view
type Tab int

const (
	TabDecompiler Tab = iota
	TabHistory
	TabSettings
	TabHelp
)

var tabNames = []string{"Decompiler", "History", "Settings", "Help"}

// header is the number of lines above the active view
const header = 4

// GlobalKeyMap defines keys handled regardless of the active tab
type GlobalKeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Tabs    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var GlobalKeys = GlobalKeyMap{
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous tab"),
	),
	Tabs: key.NewBinding(
		key.WithKeys("1", "2", "3", "4"),
		key.WithHelp("1-4", "switch tab"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Deps are the ports the TUI drives
type Deps struct {
	Session   *application.Session
	Source    ports.FileSource
	Archives  ports.ArchiveReader
	Clipboard ports.Clipboard
	Settings  ports.SettingsStore
	Editor    ports.EditorOpener // nil disables export+edit
}

// App is the main TUI application model
type App struct {
	deps   Deps
	ctx    context.Context
	active Tab

	decompiler *views.DecompilerModel
	history    *views.HistoryModel
	settings   *views.SettingsModel
	help       *views.HelpModel

	initialPath string
	width       int
	height      int
}

// NewApp creates a new TUI application. A non-empty initialPath is opened
// on start.
func NewApp(ctx context.Context, deps Deps, historySize int, initialPath string) *App {
	a := &App{
		deps:        deps,
		ctx:         ctx,
		active:      TabDecompiler,
		decompiler:  views.NewDecompilerModel(),
		history:     views.NewHistoryModel(historySize),
		settings:    views.NewSettingsModel(),
		help:        views.NewHelpModel(),
		initialPath: initialPath,
	}
	a.refresh()
	return a
}

// Active returns the shown tab
func (a *App) Active() Tab {
	return a.active
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	if a.initialPath != "" {
		return a.startOpen(a.initialPath)
	}
	return a.decompiler.Init()
}

// pipeline results, tagged with the ticket they ran under

type openedMsg struct {
	ticket application.Ticket
	opened *application.Opened
	err    error
}

type memberMsg struct {
	ticket application.Ticket
	out    *application.Decompiled
	err    error
}

type editorFinishedMsg struct{ err error }

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		h := max(msg.Height-header, 1)
		a.decompiler.SetSize(msg.Width, h)
		a.history.SetSize(msg.Width, h)
		a.settings.SetSize(msg.Width, h)
		a.help.SetSize(msg.Width, h)
		return a, nil

	case spinner.TickMsg:
		_, cmd := a.decompiler.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if cmd, handled := a.handleGlobalKey(msg); handled {
			return a, cmd
		}

	case views.OpenPathMsg:
		return a, a.startOpen(msg.Path)

	case views.SelectMemberMsg:
		return a, a.startMember(msg.Path)

	case openedMsg:
		a.finishOpen(msg)
		return a, nil

	case memberMsg:
		a.finishMember(msg)
		return a, nil

	case views.CopyMsg:
		a.copyCurrent()
		return a, nil

	case views.ExportMsg:
		return a, a.exportCurrent(msg.Edit)

	case views.LoadHistoryMsg:
		a.loadHistory(msg.ID)
		return a, nil

	case views.ClearHistoryMsg:
		a.deps.Session.ClearHistory()
		a.refresh()
		a.history.SetMessage("History cleared", false)
		return a, nil

	case views.ToggleSettingMsg:
		a.toggleSetting(msg.Key)
		return a, nil

	case editorFinishedMsg:
		if msg.err != nil {
			a.decompiler.SetMessage(fmt.Sprintf("Editor: %v", msg.err), true)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.active {
	case TabDecompiler:
		_, cmd = a.decompiler.Update(msg)
	case TabHistory:
		_, cmd = a.history.Update(msg)
	case TabSettings:
		_, cmd = a.settings.Update(msg)
	}
	return a, cmd
}

func (a *App) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit, true
	}
	if a.capturing() {
		return nil, false
	}

	switch {
	case key.Matches(msg, GlobalKeys.Quit):
		return tea.Quit, true
	case key.Matches(msg, GlobalKeys.NextTab):
		a.active = (a.active + 1) % Tab(len(tabNames))
		return nil, true
	case key.Matches(msg, GlobalKeys.PrevTab):
		a.active = (a.active + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		return nil, true
	case key.Matches(msg, GlobalKeys.Tabs):
		a.active = Tab(msg.Runes[0] - '1')
		return nil, true
	case key.Matches(msg, GlobalKeys.Help):
		a.active = TabHelp
		return nil, true
	}
	return nil, false
}

// capturing reports whether the active view wants every key press
func (a *App) capturing() bool {
	switch a.active {
	case TabDecompiler:
		return a.decompiler.Capturing()
	case TabHistory:
		return a.history.Capturing()
	}
	return false
}

func (a *App) startOpen(path string) tea.Cmd {
	ctx, ticket := a.deps.Session.Begin(a.ctx)
	open := commands.NewOpenFileCommand(a.deps.Source, a.deps.Archives, path)
	a.active = TabDecompiler

	return tea.Batch(a.decompiler.SetProcessing(true), func() tea.Msg {
		opened, err := open.Execute(ctx)
		return openedMsg{ticket: ticket, opened: opened, err: err}
	})
}

func (a *App) startMember(path string) tea.Cmd {
	ctx, ticket := a.deps.Session.Begin(a.ctx)
	member := commands.NewDecompileMemberCommand(a.deps.Archives, a.deps.Session.Archive(), path)

	return tea.Batch(a.decompiler.SetProcessing(true), func() tea.Msg {
		out, err := member.Execute(ctx)
		return memberMsg{ticket: ticket, out: out, err: err}
	})
}

func (a *App) finishOpen(msg openedMsg) {
	if !a.deps.Session.IsLatest(msg.ticket) {
		return
	}
	if msg.err != nil {
		a.fail(msg.ticket, msg.err)
		return
	}
	if result, ok := a.deps.Session.CommitOpen(msg.ticket, msg.opened); ok {
		a.done(result)
	}
}

func (a *App) finishMember(msg memberMsg) {
	if !a.deps.Session.IsLatest(msg.ticket) {
		return
	}
	if msg.err != nil {
		a.fail(msg.ticket, msg.err)
		return
	}
	if result, ok := a.deps.Session.CommitMember(msg.ticket, msg.out); ok {
		a.done(result)
	}
}

func (a *App) fail(t application.Ticket, err error) {
	a.deps.Session.Fail(t)
	a.decompiler.SetProcessing(false)
	a.refresh()
	a.decompiler.SetNotice(application.NoticeFor(err))
}

func (a *App) done(result application.Result) {
	a.decompiler.SetProcessing(false)
	a.refresh()
	a.decompiler.SetMessage(fmt.Sprintf("Decompiled %s (%s)", result.FileName, result.SizeLabel), false)
}

// refresh pushes the session state into every view
func (a *App) refresh() {
	st := a.deps.Session.State()
	a.decompiler.SetState(st, a.deps.Session.Rendered())

	currentID := ""
	if st.Current != nil {
		currentID = st.Current.ID
	}
	a.history.SetEntries(a.deps.Session.History(), currentID)
	a.settings.SetSettings(a.deps.Session.Settings())
}

func (a *App) copyCurrent() {
	st := a.deps.Session.State()
	err := commands.NewCopyCommand(a.deps.Clipboard, st.Current, a.deps.Session.Settings()).Execute()
	if err != nil {
		a.decompiler.SetNotice(application.NoticeFor(err))
		return
	}
	a.decompiler.SetMessage("Copied to clipboard", false)
}

func (a *App) exportCurrent(edit bool) tea.Cmd {
	st := a.deps.Session.State()
	path, err := commands.NewExportCommand(a.deps.Source, st.Current, a.deps.Session.Settings()).Execute()
	if err != nil {
		a.decompiler.SetNotice(application.NoticeFor(err))
		return nil
	}
	a.decompiler.SetMessage("Saved "+path, false)

	if !edit || a.deps.Editor == nil {
		return nil
	}
	cmd, err := a.deps.Editor.Command(path)
	if err != nil {
		a.decompiler.SetMessage(fmt.Sprintf("Saved %s, but %v", path, err), true)
		return nil
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (a *App) loadHistory(id string) {
	result, err := a.deps.Session.LoadHistory(id)
	if err != nil {
		a.history.SetNotice(application.NoticeFor(err))
		return
	}
	a.decompiler.SetProcessing(false)
	a.refresh()
	a.active = TabDecompiler
	a.decompiler.SetMessage("Loaded "+result.FileName+" from history", false)
}

func (a *App) toggleSetting(k application.SettingKey) {
	next, err := commands.NewToggleSettingCommand(a.deps.Settings, a.deps.Session.Settings(), string(k)).Execute()
	if err != nil {
		a.settings.SetNotice(application.NoticeFor(err))
		return
	}
	a.deps.Session.SetSettings(next)
	a.settings.SetSettings(next)
	a.decompiler.SetRendered(a.deps.Session.Rendered())
}

// View renders the tab bar and the active view
func (a *App) View() string {
	var body string
	switch a.active {
	case TabHistory:
		body = a.history.View()
	case TabSettings:
		body = a.settings.View()
	case TabHelp:
		body = a.help.View()
	default:
		body = a.decompiler.View()
	}

	top := styles.Title.Render("jarscope") + "  " + views.RenderTabs(tabNames, int(a.active))
	return styles.App.Render(top + "\n\n" + body)
}
