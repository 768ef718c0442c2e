// Package browser is the interactive problem browser: a searchable list of
// problems and a viewer for their solution files.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/lcv/internal/app"
	"github.com/Paintersrp/lcv/internal/display"
	"github.com/Paintersrp/lcv/internal/filter"
	"github.com/Paintersrp/lcv/internal/logging"
	"github.com/Paintersrp/lcv/internal/problems"
	"github.com/Paintersrp/lcv/internal/state"
	"github.com/Paintersrp/lcv/internal/viewer"
)

const statusLifetime = 3 * time.Second

// Source builds the collection and fetches file content.
type Source interface {
	Build(ctx context.Context) (problems.Collection, error)
	Fetch(ctx context.Context, address string) (string, error)
}

type Renderer interface {
	Code(content, language string, theme display.Theme, width int) (string, error)
}

// Preferences persists the theme between runs.
type Preferences interface {
	ThemeValue() display.Theme
	ToggleTheme() (display.Theme, error)
	Reload() error
}

type Options struct {
	Source    Source
	Renderer  Renderer
	Clipboard viewer.Clipboard
	Prefs     Preferences
	Watcher   *state.ConfigWatcher
	Status    func() string

	// Preloaded is published on start instead of running a build.
	Preloaded problems.Collection

	// Open names a problem to open once the collection is loaded.
	Open      string
	OpenIndex int
}

type collectionMsg struct {
	collection problems.Collection
	err        error
}

type contentMsg struct {
	result viewer.Result
}

type clearStatusMsg struct {
	id int
}

type Model struct {
	opts       Options
	ctx        context.Context
	app        app.State
	list       list.Model
	search     textinput.Model
	viewport   viewport.Model
	spinner    spinner.Model
	keys       *listKeyMap
	searchKeys *searchKeyMap
	viewerKeys *viewerKeyMap
	searching  bool
	status     string
	statusID   int
	width      int
	height     int
}

func New(opts Options) Model {
	theme := display.Light
	if opts.Prefs != nil {
		theme = opts.Prefs.ThemeValue()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = viewer.SystemClipboard{}
	}

	lkeys := newListKeyMap()

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = selectedItemStyle
	d.Styles.SelectedDesc = selectedItemStyle

	l := list.New(nil, d, 0, 0)
	l.Styles.Title = titleStyle
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{lkeys.search, lkeys.toggleSort, lkeys.open}
	}
	l.AdditionalFullHelpKeys = lkeys.fullHelp

	in := textinput.New()
	in.Placeholder = "Search problems"
	in.Prompt = "/ "

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		opts:       opts,
		ctx:        context.Background(),
		app:        app.New(theme).BeginLoad(),
		list:       l,
		search:     in,
		viewport:   viewport.New(0, 0),
		spinner:    sp,
		keys:       lkeys,
		searchKeys: newSearchKeyMap(),
		viewerKeys: newViewerKeyMap(),
	}
	m.list.Title = m.listTitle()
	return m
}

func (m Model) Init() tea.Cmd {
	load := m.loadCmd()
	if c := m.opts.Preloaded; c != nil {
		load = func() tea.Msg { return collectionMsg{collection: c} }
	}
	return tea.Batch(load, m.spinner.Tick, m.opts.Watcher.Start())
}

// load marks the collection as loading and starts a build.
func (m Model) load() (Model, tea.Cmd) {
	m.app = m.app.BeginLoad()
	return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) loadCmd() tea.Cmd {
	src := m.opts.Source
	ctx := m.ctx
	return func() tea.Msg {
		c, err := src.Build(ctx)
		return collectionMsg{collection: c, err: err}
	}
}

func (m Model) fetchCmd(req viewer.Request) tea.Cmd {
	src := m.opts.Source
	ctx := m.ctx
	return func() tea.Msg {
		content, err := src.Fetch(ctx, req.URL)
		return contentMsg{result: viewer.Result{ID: req.ID, Content: content, Err: err}}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case collectionMsg:
		return m.handleCollection(msg)

	case contentMsg:
		return m.handleContent(msg)

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case state.ConfigChangedMsg:
		return m.handleConfigChanged()

	case state.ConfigWatcherErrMsg:
		logging.Warn("config watcher error", logging.Err(msg.Err))
		return m, m.opts.Watcher.Start()

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		switch {
		case m.app.Viewer.IsOpen():
			return m.handleViewerKey(msg)
		case m.searching:
			return m.handleSearchKey(msg)
		default:
			return m.handleListKey(msg)
		}
	}

	var cmd tea.Cmd
	if m.app.Viewer.IsOpen() {
		m.viewport, cmd = m.viewport.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) handleCollection(msg collectionMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logging.Warn("failed to build collection", logging.Err(msg.err))
		m.app = m.app.LoadFailed()
		return m, nil
	}

	m.app = m.app.Loaded(msg.collection)
	cmd := m.syncList()

	if ref := m.opts.Open; ref != "" {
		m.opts.Open = ""
		p, ok := m.app.Collection.Find(ref)
		if !ok {
			return m, tea.Batch(cmd, m.setStatus(fmt.Sprintf("No problem matches %q", ref)))
		}
		var open tea.Cmd
		m, open = m.openProblem(p, m.opts.OpenIndex)
		return m, tea.Batch(cmd, open)
	}

	return m, cmd
}

func (m Model) handleContent(msg contentMsg) (tea.Model, tea.Cmd) {
	v, ok := m.app.Viewer.Resolve(msg.result)
	if !ok {
		logging.Debug("dropping stale content", logging.Int("request", int(msg.result.ID)))
		return m, nil
	}
	if msg.result.Err != nil {
		logging.Warn("failed to load file", logging.Err(msg.result.Err))
	}
	m.app = m.app.WithViewer(v)
	m.refreshViewport()
	m.viewport.GotoTop()
	return m, nil
}

func (m Model) handleConfigChanged() (tea.Model, tea.Cmd) {
	if m.opts.Prefs != nil {
		if err := m.opts.Prefs.Reload(); err != nil {
			logging.Warn("failed to reload config", logging.Err(err))
		} else if t := m.opts.Prefs.ThemeValue(); t != m.app.Theme {
			m.app = m.app.SetTheme(t)
			m.refreshViewport()
		}
	}
	return m, m.opts.Watcher.Start()
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.toggleSort):
		m.app = m.app.ToggleDirection()
		return m, m.syncList()

	case key.Matches(msg, m.keys.latest):
		m.app = m.app.SetDirection(filter.Latest)
		return m, m.syncList()

	case key.Matches(msg, m.keys.retry):
		if m.app.Loading {
			return m, nil
		}
		return m.load()

	case key.Matches(msg, m.keys.open):
		item, ok := m.list.SelectedItem().(ListItem)
		if !ok {
			return m, nil
		}
		return m.openProblem(item.problem, 0)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.searchKeys.leave) {
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.app.Query {
		m.app = m.app.SetQuery(q)
		return m, tea.Batch(cmd, m.syncList())
	}
	return m, cmd
}

func (m Model) handleViewerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.viewerKeys
	switch {
	case key.Matches(msg, k.close):
		m.app = m.app.WithViewer(m.app.Viewer.Close())
		m.viewport.SetContent("")
		return m, nil

	case key.Matches(msg, k.next):
		return m.switchFile(viewer.Next)

	case key.Matches(msg, k.prev):
		return m.switchFile(viewer.Prev)

	case key.Matches(msg, k.copy):
		copied, err := m.app.Viewer.Copy(m.opts.Clipboard)
		if err != nil {
			logging.Warn("copy failed", logging.Err(err))
			return m, m.setStatus("Copy failed")
		}
		if !copied {
			return m, nil
		}
		f, _ := m.app.Viewer.File()
		return m, m.setStatus("Copied " + f.Name + " to clipboard")

	case key.Matches(msg, k.fontUp):
		m.app = m.app.IncreaseFont()
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, k.fontDown):
		m.app = m.app.DecreaseFont()
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, k.fontReset):
		m.app = m.app.ResetFont()
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, k.theme):
		return m.toggleTheme()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) openProblem(p problems.Problem, index int) (Model, tea.Cmd) {
	v, req, err := m.app.Viewer.Open(p, index)
	if err != nil {
		logging.Warn("cannot open problem", logging.String("problem", p.Name), logging.Err(err))
		return m, m.setStatus("Nothing to show for " + p.DisplayName)
	}
	m.app = m.app.WithViewer(v)
	m.refreshViewport()
	return m, tea.Batch(m.fetchCmd(req), m.spinner.Tick)
}

func (m Model) switchFile(dir viewer.Direction) (tea.Model, tea.Cmd) {
	v, req, ok := m.app.Viewer.Switch(dir)
	if !ok {
		return m, nil
	}
	m.app = m.app.WithViewer(v)
	m.refreshViewport()
	return m, tea.Batch(m.fetchCmd(req), m.spinner.Tick)
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.opts.Prefs == nil {
		m.app = m.app.ToggleTheme()
		m.refreshViewport()
		return m, nil
	}

	t, err := m.opts.Prefs.ToggleTheme()
	if err != nil {
		logging.Warn("failed to save theme", logging.Err(err))
		m.app = m.app.ToggleTheme()
		m.refreshViewport()
		return m, m.setStatus("Theme changed but could not be saved")
	}
	m.app = m.app.SetTheme(t)
	m.refreshViewport()
	return m, nil
}

func (m *Model) syncList() tea.Cmd {
	m.list.Title = m.listTitle()
	return m.list.SetItems(toListItems(m.app.Visible))
}

func (m *Model) refreshViewport() {
	v := m.app.Viewer
	if v.Phase() != viewer.Loaded {
		m.viewport.SetContent(v.Display())
		return
	}

	content := v.Content()
	if m.opts.Renderer == nil {
		m.viewport.SetContent(content)
		return
	}

	f, _ := v.File()
	rendered, err := m.opts.Renderer.Code(content, f.Language, m.app.Theme, m.app.Font.WrapWidth(m.viewport.Width))
	if err != nil {
		logging.Debug("render failed", logging.String("file", f.Name), logging.Err(err))
	}
	m.viewport.SetContent(rendered)
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.statusID++
	m.status = s
	id := m.statusID
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	h, v := appStyle.GetFrameSize()
	// search box and footer
	chrome := 4
	m.list.SetSize(width-h, max(height-v-chrome, 1))

	// header, meta line and frame border
	m.viewport.Width = max(width-h-2, 1)
	m.viewport.Height = max(height-v-chrome-2, 1)
	m.refreshViewport()
}

func (m Model) busy() bool {
	return m.app.Loading || m.app.Viewer.Phase() == viewer.Loading
}

func (m Model) listTitle() string {
	return fmt.Sprintf("Problems (%s)", m.app.Direction)
}

// State exposes the application state.
func (m Model) State() app.State {
	return m.app
}

func Run(opts Options) error {
	if _, err := tea.NewProgram(New(opts), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
