package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/quaver/internal/artcache"
	"github.com/llehouerou/quaver/internal/errmsg"
	"github.com/llehouerou/quaver/internal/store"
	"github.com/llehouerou/quaver/internal/ui/action"
	"github.com/llehouerou/quaver/internal/ui/helpbindings"
	"github.com/llehouerou/quaver/internal/ui/nowplaying"
	"github.com/llehouerou/quaver/internal/ui/options"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadingMessage:
		return m.handleLoadingMsg(msg)

	case StoreMessage:
		return m.handleStoreMsg(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.ResizeComponents()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case action.Msg:
		return m.handleActionMsg(msg)
	}

	// Everything else belongs to the page: click and scroll timers, art
	// warming and cursor blinks.
	var cmd tea.Cmd
	m.Page, cmd = m.Page.Update(msg)
	return m, cmd
}

func (m Model) handleLoadingMsg(msg LoadingMessage) (tea.Model, tea.Cmd) {
	loaded, ok := msg.(QueueLoadedMsg)
	if !ok {
		return m, nil
	}
	if loaded.Err != nil {
		m.Logger.Error("load queue", zap.String("op", string(loaded.Op)), zap.Error(loaded.Err))
		m.ErrorMsg = errmsg.Format(loaded.Op, loaded.Err)
	}

	m.Store = store.New(loaded.Queue, m.Logger)
	if err := m.applyStartupSettings(); err != nil {
		m.Logger.Warn("startup settings", zap.Error(err))
	}
	m.playbackSub = m.Store.Subscribe()
	if m.StateMgr.CacheImages() {
		m.ensureArt()
	}
	m.ResizeComponents()
	cmd := m.Page.Load(m.Store)

	m.Logger.Info("queue loaded",
		zap.Int("tracks", loaded.Queue.Len()),
		zap.Int("added", loaded.Added))
	if loaded.Added > 0 {
		m.ScheduleQueueSave()
	}
	return m, tea.Batch(cmd, m.WatchStoreEvents())
}

func (m Model) handleStoreMsg(msg StoreMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StoreClosedMsg:
		m.playbackSub = nil
		return m, nil
	case QueueChangedMsg:
		m.ScheduleQueueSave()
	case SettingChangedMsg:
		// Repeat mode is saved with the queue.
		if msg.Key == store.SettingRepeat {
			m.ScheduleQueueSave()
		}
	}

	var cmd tea.Cmd
	m.Page, cmd = m.Page.Update(nowplaying.StoreChangedMsg{})
	return m, tea.Batch(cmd, m.WatchStoreEvents())
}

// handleMouseMsg routes the mouse to the page, which is drawn at the top of
// the screen. The footer and open popups ignore the mouse.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Popup != nil || msg.Y >= m.pageHeight() {
		return m, nil
	}
	var cmd tea.Cmd
	m.Page, cmd = m.Page.Update(msg)
	return m, cmd
}

func (m Model) handleActionMsg(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case nowplaying.Failed:
		m.showError(a.Message)
		return m, nil
	case options.Failed:
		m.showError(a.Message)
		return m, nil
	case options.Changed:
		return m.handleOptionChanged(a)
	case options.Close, helpbindings.Close:
		m.closePopup()
		return m, nil
	}

	var cmd tea.Cmd
	m.Page, cmd = m.Page.Update(msg)
	return m, cmd
}

// handleOptionChanged pushes a saved option to whoever caches it.
func (m Model) handleOptionChanged(a options.Changed) (tea.Model, tea.Cmd) {
	switch a.Field { //nolint:exhaustive // row height and font size are read on refresh
	case options.FieldAutoScroll:
		m.dispatchSetting(store.SettingScrollWithCurrentSong, m.StateMgr.ScrollWithCurrentSong())
	case options.FieldVolume:
		m.dispatchSetting(store.SettingVolume, m.StateMgr.Volume())
	case options.FieldCacheImages:
		if m.StateMgr.CacheImages() {
			m.ensureArt()
		}
	}

	var cmd tea.Cmd
	m.Page, cmd = m.Page.Update(nowplaying.SettingsChangedMsg{})
	return m, cmd
}

func (m *Model) dispatchSetting(key string, value any) {
	if m.Store == nil {
		return
	}
	if err := m.Store.Dispatch(store.SetPlaybackSetting{Key: key, Value: value}); err != nil {
		m.showError(errmsg.Format(errmsg.OpSettingSave, err))
	}
}

// ensureArt opens the album art cache the first time it is needed.
func (m *Model) ensureArt() {
	if m.Art == nil {
		c, err := artcache.New(m.Config.GetArtCache(), m.Logger)
		if err != nil {
			m.showError(errmsg.Format(errmsg.OpArtCache, err))
			return
		}
		m.Art = c
	}
	m.Page.SetArt(m.Art)
}

func (m *Model) showError(message string) {
	m.Logger.Warn("operation failed", zap.String("message", message))
	m.ErrorMsg = message
}
