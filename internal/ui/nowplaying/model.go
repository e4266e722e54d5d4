// Package nowplaying is the queue screen: a page header over a virtualized
// list of the displayed queue, with mouse and keyboard selection, drag
// reordering and double-click playback. All state changes go through the
// store.
package nowplaying

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/quaver/internal/artcache"
	"github.com/llehouerou/quaver/internal/keymap"
	"github.com/llehouerou/quaver/internal/playlist"
	"github.com/llehouerou/quaver/internal/search"
	"github.com/llehouerou/quaver/internal/state"
	"github.com/llehouerou/quaver/internal/store"
	"github.com/llehouerou/quaver/internal/ui"
	"github.com/llehouerou/quaver/internal/ui/action"
	"github.com/llehouerou/quaver/internal/ui/headerbar"
	"github.com/llehouerou/quaver/internal/ui/list"
)

// chromeLines is everything above the list body: the page header, the column
// header and its separator.
const chromeLines = headerbar.Height + 2

// headerRow is the line of the column header.
const headerRow = headerbar.Height

// Store is the part of the state container the page needs.
type Store interface {
	Dispatch(a action.Action) error
	Snapshot() store.Snapshot
}

// Deps are the page's collaborators. Art may be nil.
type Deps struct {
	Settings state.Settings
	Art      *artcache.Cache
	Logger   *zap.Logger
}

// pendingClick is a row click waiting out the double-click window.
type pendingClick struct {
	track playlist.Track
	ctrl  bool
	shift bool
}

// Model is the now playing page.
type Model struct {
	ui.Base
	deps     Deps
	store    Store
	keys     *keymap.Resolver
	search   *keymap.Resolver
	header   headerbar.Model
	list     list.Model[playlist.Track]
	snap     store.Snapshot
	source   search.Source
	position map[string]int // entry ID to base index
	cursorID string         // entry under the cursor, kept across refreshes

	clickVersion  int
	pending       *pendingClick
	pressed       playlist.Track // row under the last press, starts a drag
	scrollVersion int
	warming       bool
}

// New creates the page. It shows a loading placeholder until Load is called.
func New(deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return Model{
		deps:   deps,
		keys:   keymap.NewResolver(keymap.ByContext(keymap.ContextQueue)),
		search: keymap.NewResolver(keymap.ByContext(keymap.ContextSearch)),
		header: headerbar.New(),
		list:   list.New[playlist.Track](ui.ScrollMargin),
	}
}

// Load attaches the store once the queue is available. The returned command
// brings the playing entry into view when auto scroll is on.
func (m *Model) Load(s Store) tea.Cmd {
	m.store = s
	m.refresh()
	return tea.Batch(m.followPlaying(), m.warmVisible())
}

// Loaded reports whether the queue is available.
func (m Model) Loaded() bool {
	return m.store != nil
}

// SetSize sets the page dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.header.SetSize(width, headerbar.Height)
	m.list.SetSize(width, m.BodyHeight(chromeLines))
}

// SetArt attaches the album art cache. Pass nil to detach it.
func (m *Model) SetArt(c *artcache.Cache) {
	m.deps.Art = c
	m.warming = false
}

// SetFocused sets whether the page has keyboard focus.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	m.list.SetFocused(focused)
}

// Searching reports whether the search box owns the keyboard.
func (m Model) Searching() bool {
	return m.header.Searching()
}

// Query returns the active search text.
func (m Model) Query() string {
	return m.header.Query()
}

// Displayed returns the entries currently shown, in display order.
func (m Model) Displayed() []playlist.Track {
	return m.list.Items()
}

// Source returns which sequence the list shows.
func (m Model) Source() search.Source {
	return m.source
}

// ScrollTop returns the list scroll position in lines.
func (m Model) ScrollTop() int {
	return m.list.ScrollTop()
}

// CursorIndex returns the cursor row in the displayed list.
func (m Model) CursorIndex() int {
	return m.list.SelectedIndex()
}

// refresh re-reads the store and settings and rebuilds the displayed list.
// It returns true when the playing entry changed.
func (m *Model) refresh() bool {
	if m.store == nil {
		return false
	}
	prevIndex := -2
	if m.snap.Queue != nil {
		prevIndex = m.snap.Queue.CurrentIndex()
	}

	m.snap = m.store.Snapshot()
	m.header.SetAutoScroll(m.snap.ScrollWithCurrentSong)
	m.list.SetRowHeight(m.deps.Settings.RowHeight())

	base := m.snap.Queue.Tracks()
	m.position = make(map[string]int, len(base))
	for i, t := range base {
		m.position[t.ID] = i
	}

	tracks, source := search.Projection(m.snap.Queue, m.header.Query())
	m.source = source
	m.list.SetItems(tracks)
	m.restoreCursor()

	return prevIndex != -2 && prevIndex != m.snap.Queue.CurrentIndex()
}

// restoreCursor keeps the cursor on the same entry after the list changed.
func (m *Model) restoreCursor() {
	if m.cursorID != "" {
		for i, t := range m.list.Items() {
			if t.ID == m.cursorID {
				if i != m.list.SelectedIndex() {
					m.list.MoveTo(i)
				}
				return
			}
		}
	}
	m.rememberCursor()
}

func (m *Model) rememberCursor() {
	if t, ok := m.list.Selected(); ok {
		m.cursorID = t.ID
	} else {
		m.cursorID = ""
	}
}

// cursorTrack returns the entry under the cursor.
func (m Model) cursorTrack() (playlist.Track, bool) {
	return m.list.Selected()
}
