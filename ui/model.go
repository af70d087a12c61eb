package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jesspatton/lazyfiles/config"
	"github.com/jesspatton/lazyfiles/explorer"
	"github.com/jesspatton/lazyfiles/filesystem"
	"github.com/jesspatton/lazyfiles/opener"
)

// Pane represents a distinct section of the UI.
type Pane int

const (
	// PaneTree is the file tree pane.
	PaneTree Pane = iota
	// PanePreview is the file preview pane.
	PanePreview
)

// Mode is the interaction mode of the tree pane.
type Mode int

const (
	// ModeTree is normal tree navigation.
	ModeTree Mode = iota
	// ModeSearch is workspace-wide filename search.
	ModeSearch
	// ModeUnhide is the hidden-folder selection list.
	ModeUnhide
)

const previewLimit = 32 * 1024
const searchLimit = 200

// Model represents the application state for the Bubbletea program.
type Model struct {
	// UI State
	activePane Pane
	mode       Mode
	width      int
	height     int
	ready      bool
	showHelp   bool
	cursor     int
	flash      string

	// Tree State
	rows     []Row
	expanded map[string]struct{}

	// Search State
	searchInput   textinput.Model
	searchTyping  bool
	searchResults []string
	searchCursor  int

	// Unhide State
	unhideChoices []string
	unhideCursor  int

	// Preview
	preview     viewport.Model
	previewPath string

	// Components
	keys KeyMap
	help help.Model

	// Data / Dependencies
	lister  *explorer.Lister
	store   *config.Store
	watcher *filesystem.Watcher
	log     zerolog.Logger
}

// Messages

// treeMsg carries freshly built rows after a refresh.
type treeMsg []Row

// watcherReadyMsg carries the initialized watcher.
type watcherReadyMsg struct{ watcher *filesystem.Watcher }

// watchEventMsg indicates a file system or settings change occurred.
type watchEventMsg string

// searchResultsMsg carries workspace search matches.
type searchResultsMsg []string

// previewMsg carries the head of the file under the cursor.
type previewMsg struct {
	path    string
	content string
}

// editorFinishedMsg indicates the external editor handed the terminal
// back.
type editorFinishedMsg struct{ err error }

// NewModel creates and initializes a new Model.
func NewModel(lister *explorer.Lister, store *config.Store, log zerolog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = "/"
	ti.CharLimit = 156
	ti.Width = 20

	return Model{
		activePane:  PaneTree,
		expanded:    make(map[string]struct{}),
		keys:        NewKeyMap(),
		help:        help.New(),
		searchInput: ti,
		lister:      lister,
		store:       store,
		log:         log,
	}
}

// Init initializes the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.refreshTree(),
		m.startWatcher,
	)
}

// Update handles incoming messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		paneWidth := (m.width / 2) - 4
		paneHeight := m.height - 5
		viewportHeight := paneHeight - 2

		if !m.ready {
			m.preview = viewport.New(paneWidth, viewportHeight)
			m.ready = true
		} else {
			m.preview.Width = paneWidth
			m.preview.Height = viewportHeight
		}
		return m, nil

	case treeMsg:
		m.rows = msg
		pruneExpansion(m.expanded, m.rows)
		if m.cursor >= len(m.rows) {
			m.cursor = len(m.rows) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, m.previewUnderCursor()

	case watcherReadyMsg:
		m.watcher = msg.watcher
		return m, m.waitForWatcher

	case watchEventMsg:
		return m, tea.Batch(m.refreshTree(), m.waitForWatcher)

	case searchResultsMsg:
		m.searchResults = msg
		m.searchCursor = 0
		return m, nil

	case previewMsg:
		m.previewPath = msg.path
		m.preview.SetContent(m.wrap(m.preview.Width, msg.content))
		m.preview.GotoTop()
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			m.flash = fmt.Sprintf("Editor failed: %v", msg.err)
		}
		return m, m.refreshTree()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Typing in the search field swallows everything except exit keys.
	if m.mode == ModeSearch && m.searchTyping {
		return m.handleSearchTyping(msg)
	}

	m.flash = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.watcher != nil {
			m.watcher.Close()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		if m.activePane == PaneTree {
			m.activePane = PanePreview
		} else {
			m.activePane = PaneTree
		}
		return m, nil
	}

	if m.activePane == PanePreview {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	switch m.mode {
	case ModeSearch:
		return m.handleSearchNav(msg)
	case ModeUnhide:
		return m.handleUnhide(msg)
	default:
		return m.handleTree(msg)
	}
}

func (m Model) handleTree(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, m.previewUnderCursor()

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, m.previewUnderCursor()

	case key.Matches(msg, m.keys.Enter):
		if m.cursor >= len(m.rows) {
			return m, nil
		}
		node := m.rows[m.cursor].Node
		if node.IsDir {
			if _, ok := m.expanded[node.LogicalPath]; ok {
				delete(m.expanded, node.LogicalPath)
			} else {
				m.expanded[node.LogicalPath] = struct{}{}
			}
			return m, m.refreshTree()
		}
		return m, m.openFile(node.StorageLocation)

	case key.Matches(msg, m.keys.Hide):
		if m.cursor >= len(m.rows) {
			return m, nil
		}
		node := m.rows[m.cursor].Node
		target := node.HideTarget()
		if !node.IsDir && node.OriginFolder == "" {
			m.flash = "Only folders can be hidden"
			return m, nil
		}
		if err := m.store.Hide(target); err != nil {
			m.log.Warn().Err(err).Str("path", target).Msg("hide failed")
			m.flash = "Could not save settings"
			return m, nil
		}
		m.flash = "Hidden: " + target
		return m, m.refreshTree()

	case key.Matches(msg, m.keys.Unhide):
		choices := m.store.HiddenPaths()
		if len(choices) == 0 {
			m.flash = "No hidden folders to unhide"
			return m, nil
		}
		m.mode = ModeUnhide
		m.unhideChoices = choices
		m.unhideCursor = 0
		return m, nil

	case key.Matches(msg, m.keys.UnhideAll):
		n, err := m.store.UnhideAll()
		if err != nil {
			m.log.Warn().Err(err).Msg("unhide all failed")
			m.flash = "Could not save settings"
			return m, nil
		}
		if n == 0 {
			m.flash = "No hidden folders to unhide"
			return m, nil
		}
		m.flash = fmt.Sprintf("Unhid %d folder(s)", n)
		return m, m.refreshTree()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshTree()

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		m.searchTyping = true
		m.searchResults = nil
		m.searchInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m Model) handleSearchTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		return m.exitSearch(), nil
	case key.Matches(msg, m.keys.Enter):
		m.searchTyping = false
		m.searchInput.Blur()
		return m, m.runSearch(m.searchInput.Value())
	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
}

func (m Model) handleSearchNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		return m.exitSearch(), nil
	case key.Matches(msg, m.keys.Search):
		m.searchTyping = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Up):
		if m.searchCursor > 0 {
			m.searchCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.searchCursor < len(m.searchResults)-1 {
			m.searchCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if m.searchCursor < len(m.searchResults) {
			rel := m.searchResults[m.searchCursor]
			abs := filepath.Join(m.lister.Root(), filepath.FromSlash(rel))
			return m, m.openFile(abs)
		}
	}
	return m, nil
}

func (m Model) exitSearch() Model {
	m.mode = ModeTree
	m.searchTyping = false
	m.searchInput.Blur()
	m.searchInput.Reset()
	m.searchResults = nil
	return m
}

func (m Model) handleUnhide(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeTree
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.unhideCursor > 0 {
			m.unhideCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.unhideCursor < len(m.unhideChoices)-1 {
			m.unhideCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if m.unhideCursor < len(m.unhideChoices) {
			rel := m.unhideChoices[m.unhideCursor]
			if err := m.store.Unhide(rel); err != nil {
				m.log.Warn().Err(err).Str("path", rel).Msg("unhide failed")
				m.flash = "Could not save settings"
			} else {
				m.flash = "Unhidden: " + rel
			}
		}
		m.mode = ModeTree
		return m, m.refreshTree()
	}
	return m, nil
}

// Commands

// refreshTree rebuilds the visible rows with a fresh settings
// snapshot. The expansion set is copied so the rebuild never races a
// toggle happening while it runs.
func (m Model) refreshTree() tea.Cmd {
	lister := m.lister
	store := m.store
	expanded := make(map[string]struct{}, len(m.expanded))
	for k := range m.expanded {
		expanded[k] = struct{}{}
	}
	return func() tea.Msg {
		snap := store.Snapshot()
		return treeMsg(buildRows(lister, snap, expanded))
	}
}

func (m Model) startWatcher() tea.Msg {
	w, err := filesystem.NewWatcher(m.lister.Root(), m.store.Path(), m.log)
	if err != nil {
		m.log.Warn().Err(err).Msg("watcher unavailable, falling back to manual refresh")
		return nil
	}
	return watcherReadyMsg{watcher: w}
}

func (m Model) waitForWatcher() tea.Msg {
	if m.watcher == nil {
		return nil
	}
	path, ok := <-m.watcher.Events
	if !ok {
		return nil
	}
	return watchEventMsg(path)
}

func (m Model) runSearch(query string) tea.Cmd {
	root := m.lister.Root()
	return func() tea.Msg {
		return searchResultsMsg(filesystem.FindMatches(root, query, searchLimit))
	}
}

func (m Model) openFile(path string) tea.Cmd {
	return tea.ExecProcess(opener.Open(path), func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// previewUnderCursor loads the head of the file under the cursor into
// the preview pane. Directories clear the preview.
func (m Model) previewUnderCursor() tea.Cmd {
	if m.cursor >= len(m.rows) {
		return nil
	}
	node := m.rows[m.cursor].Node
	if node.IsDir {
		return func() tea.Msg { return previewMsg{path: node.StorageLocation} }
	}
	path := node.StorageLocation
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return previewMsg{path: path, content: fmt.Sprintf("(unreadable: %v)", err)}
		}
		defer f.Close()
		buf := make([]byte, previewLimit)
		n, _ := f.Read(buf)
		return previewMsg{path: path, content: string(buf[:n])}
	}
}

func (m Model) wrap(width int, content string) string {
	if width <= 0 {
		return content
	}
	return lipgloss.NewStyle().Width(width).Render(content)
}
