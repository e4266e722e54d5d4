package app

import (
	"github.com/llehouerou/quaver/internal/state"
	"github.com/llehouerou/quaver/internal/store"
)

// ScheduleQueueSave persists the current queue after the save debounce.
func (m *Model) ScheduleQueueSave() {
	if m.Store == nil {
		return
	}
	m.StateMgr.ScheduleQueueSave(state.QueueStateFrom(m.Store.Snapshot().Queue))
}

// applyStartupSettings copies the persisted playback preferences into the
// store's session settings.
func (m *Model) applyStartupSettings() error {
	if err := m.Store.Dispatch(store.SetPlaybackSetting{
		Key:   store.SettingScrollWithCurrentSong,
		Value: m.StateMgr.ScrollWithCurrentSong(),
	}); err != nil {
		return err
	}
	return m.Store.Dispatch(store.SetPlaybackSetting{
		Key:   store.SettingVolume,
		Value: m.StateMgr.Volume(),
	})
}
