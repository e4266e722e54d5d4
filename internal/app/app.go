// Package app is the root model: it loads the saved queue, owns the store
// and routes input between the now playing page and the popups.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/quaver/internal/artcache"
	"github.com/llehouerou/quaver/internal/config"
	"github.com/llehouerou/quaver/internal/keymap"
	"github.com/llehouerou/quaver/internal/playback"
	"github.com/llehouerou/quaver/internal/state"
	"github.com/llehouerou/quaver/internal/store"
	"github.com/llehouerou/quaver/internal/ui/nowplaying"
	"github.com/llehouerou/quaver/internal/ui/popup"
)

// Deps are the collaborators handed to New.
type Deps struct {
	Config *config.Config
	State  state.Interface
	Logger *zap.Logger
	Paths  []string // files and directories appended to the saved queue
}

// Model is the root application model.
type Model struct {
	Page     nowplaying.Model
	Store    *store.Store
	StateMgr state.Interface
	Config   *config.Config
	Art      *artcache.Cache
	Logger   *zap.Logger
	Help     help.Model
	Popup    popup.Popup // nil when no popup is open
	ErrorMsg string
	Width    int
	Height   int

	paths       []string
	keys        *keymap.Resolver
	playbackSub *playback.Subscription
}

// New creates the application model. The queue is loaded by Init.
func New(deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Config == nil {
		deps.Config = &config.Config{}
	}

	page := nowplaying.New(nowplaying.Deps{
		Settings: deps.State,
		Logger:   deps.Logger,
	})
	page.SetFocused(true)

	return Model{
		Page:     page,
		StateMgr: deps.State,
		Config:   deps.Config,
		Logger:   deps.Logger,
		Help:     help.New(),
		paths:    deps.Paths,
		keys:     keymap.NewResolver(keymap.ByContext(keymap.ContextGlobal)),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return LoadQueueCmd(m.StateMgr, m.paths)
}

// pageHeight is the space left for the page above the hints and the footer.
func (m Model) pageHeight() int {
	return max(m.Height-hintHeight-footerHeight, 0)
}

// ResizeComponents propagates the window size to the children.
func (m *Model) ResizeComponents() {
	m.Page.SetSize(m.Width, m.pageHeight())
	m.Help.Width = m.Width
	if m.Popup != nil {
		m.Popup.SetSize(m.Width, m.Height)
	}
}

// Shutdown ends the store subscriptions and writes pending state.
func (m *Model) Shutdown() {
	if m.Store != nil {
		m.ScheduleQueueSave()
		m.Store.Close()
	}
	if err := m.StateMgr.Flush(); err != nil {
		m.Logger.Error("flush state", zap.Error(err))
	}
}
