package store

import (
	"github.com/llehouerou/quaver/internal/playback"
	"github.com/llehouerou/quaver/internal/playlist"
)

// MoveUp moves the entries at the given base indices one position up.
type MoveUp struct {
	Indices []int
}

// ActionType implements action.Action.
func (MoveUp) ActionType() string { return "store.move_up" }

// MoveDown moves the entries at the given base indices one position down.
type MoveDown struct {
	Indices []int
}

// ActionType implements action.Action.
func (MoveDown) ActionType() string { return "store.move_down" }

// MoveToIndex moves Entries to just before the entry with BeforeID.
type MoveToIndex struct {
	Entries  []playlist.Track
	BeforeID string
}

// ActionType implements action.Action.
func (MoveToIndex) ActionType() string { return "store.move_to_index" }

// SetPlayerVolume sets the volume of one player.
type SetPlayerVolume struct {
	Player playback.Player
	Volume float64
}

// ActionType implements action.Action.
func (SetPlayerVolume) ActionType() string { return "store.set_player_volume" }

// SetPlayerIndex makes Track the playing entry on the primary player.
type SetPlayerIndex struct {
	Track playlist.Track
}

// ActionType implements action.Action.
func (SetPlayerIndex) ActionType() string { return "store.set_player_index" }

// FixPlayer2Index points the secondary player at the next entry in play order.
type FixPlayer2Index struct{}

// ActionType implements action.Action.
func (FixPlayer2Index) ActionType() string { return "store.fix_player2_index" }

// ClearPlayQueue empties the queue.
type ClearPlayQueue struct{}

// ActionType implements action.Action.
func (ClearPlayQueue) ActionType() string { return "store.clear_play_queue" }

// ShuffleInPlace re-randomizes the shuffled order.
type ShuffleInPlace struct{}

// ActionType implements action.Action.
func (ShuffleInPlace) ActionType() string { return "store.shuffle_in_place" }

// ToggleShuffle turns shuffle mode on or off.
type ToggleShuffle struct{}

// ActionType implements action.Action.
func (ToggleShuffle) ActionType() string { return "store.toggle_shuffle" }

// CycleRepeat advances the repeat mode.
type CycleRepeat struct{}

// ActionType implements action.Action.
func (CycleRepeat) ActionType() string { return "store.cycle_repeat" }

// SetPlaybackSetting changes a session playback setting.
// Key is one of SettingScrollWithCurrentSong or SettingVolume.
type SetPlaybackSetting struct {
	Key   string
	Value any
}

// ActionType implements action.Action.
func (SetPlaybackSetting) ActionType() string { return "store.set_playback_setting" }

// SortQueue orders the displayed queue. SortNone clears the sort.
type SortQueue struct {
	Column playlist.SortColumn
	Order  playlist.SortOrder
}

// ActionType implements action.Action.
func (SortQueue) ActionType() string { return "store.sort_queue" }

// AddTracks appends entries to the queue.
type AddTracks struct {
	Tracks []playlist.Track
}

// ActionType implements action.Action.
func (AddTracks) ActionType() string { return "store.add_tracks" }

// RemoveSelected removes every selected entry from the queue.
type RemoveSelected struct{}

// ActionType implements action.Action.
func (RemoveSelected) ActionType() string { return "store.remove_selected" }

// Undo reverts the last queue edit.
type Undo struct{}

// ActionType implements action.Action.
func (Undo) ActionType() string { return "store.undo" }

// Redo reapplies the last undone queue edit.
type Redo struct{}

// ActionType implements action.Action.
func (Redo) ActionType() string { return "store.redo" }

// ToggleSelected toggles Track in the selection.
type ToggleSelected struct {
	Track playlist.Track
}

// ActionType implements action.Action.
func (ToggleSelected) ActionType() string { return "store.toggle_selected" }

// SetRangeSelected records the end of a shift range.
type SetRangeSelected struct {
	Track playlist.Track
}

// ActionType implements action.Action.
func (SetRangeSelected) ActionType() string { return "store.set_range_selected" }

// ToggleRangeSelected selects the recorded range over Projection.
type ToggleRangeSelected struct {
	Projection []playlist.Track
}

// ActionType implements action.Action.
func (ToggleRangeSelected) ActionType() string { return "store.toggle_range_selected" }

// SetSelected replaces the selection with Track.
type SetSelected struct {
	Track playlist.Track
}

// ActionType implements action.Action.
func (SetSelected) ActionType() string { return "store.set_selected" }

// ClearSelected empties the selection.
type ClearSelected struct{}

// ActionType implements action.Action.
func (ClearSelected) ActionType() string { return "store.clear_selected" }

// SetIsDragging sets the drag flag.
type SetIsDragging struct {
	Dragging bool
}

// ActionType implements action.Action.
func (SetIsDragging) ActionType() string { return "store.set_is_dragging" }

// SetMouseOver records the entry under the pointer during a drag.
type SetMouseOver struct {
	ID string
}

// ActionType implements action.Action.
func (SetMouseOver) ActionType() string { return "store.set_mouse_over" }

// ResetPlayer clears seek and fade state and returns to the primary player.
type ResetPlayer struct{}

// ActionType implements action.Action.
func (ResetPlayer) ActionType() string { return "store.reset_player" }

// SetStatus changes the playback status.
type SetStatus struct {
	Status playback.Status
}

// ActionType implements action.Action.
func (SetStatus) ActionType() string { return "store.set_status" }
