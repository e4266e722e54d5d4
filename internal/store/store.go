// Package store holds the now-playing state and applies every change to it
// through dispatched actions.
package store

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/llehouerou/quaver/internal/playback"
	"github.com/llehouerou/quaver/internal/playlist"
	"github.com/llehouerou/quaver/internal/selection"
	"github.com/llehouerou/quaver/internal/ui/action"
)

// Session playback setting keys accepted by SetPlaybackSetting.
const (
	SettingScrollWithCurrentSong = "scroll_with_current_song"
	SettingVolume                = "volume"

	// SettingRepeat is only reported: repeat changes through CycleRepeat.
	SettingRepeat = "repeat"
)

const historySize = 50

var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrUnknownSetting = errors.New("unknown playback setting")
	ErrInvalidPlayer  = errors.New("invalid player")
	ErrUnknownEntry   = errors.New("entry not in queue")
)

// State is the mutable state owned by a Store.
type State struct {
	Queue                 *playlist.PlayingQueue
	Selection             selection.Model
	Transport             playback.Transport
	ScrollWithCurrentSong bool
	Volume                float64 // configured volume for the primary player
}

// Snapshot is a copy of the state that can be read without holding the lock.
type Snapshot struct {
	Queue                 *playlist.PlayingQueue
	Selection             selection.Model
	Transport             playback.Transport
	ScrollWithCurrentSong bool
	Volume                float64
	CanUndo               bool
	CanRedo               bool
}

// Store is a mutex-guarded state container.
type Store struct {
	mu      sync.Mutex
	state   State
	history *playlist.QueueHistory
	logger  *zap.Logger

	subsMu sync.RWMutex
	subs   []*playback.Subscription
}

// New creates a store around an existing queue.
func New(q *playlist.PlayingQueue, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		state: State{
			Queue:     q,
			Selection: selection.New(),
			Transport: playback.NewTransport(),
			Volume:    1,
		},
		history: playlist.NewQueueHistory(historySize),
		logger:  logger,
	}
	s.history.Reset(q.Tracks())
	s.state.Transport.SetIndex(playback.Primary, q.CurrentIndex())
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Queue:                 s.state.Queue.Clone(),
		Selection:             s.state.Selection.Clone(),
		Transport:             s.state.Transport,
		ScrollWithCurrentSong: s.state.ScrollWithCurrentSong,
		Volume:                s.state.Volume,
		CanUndo:               s.history.CanUndo(),
		CanRedo:               s.history.CanRedo(),
	}
}

// Subscribe creates a new event subscription.
func (s *Store) Subscribe() *playback.Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := playback.NewSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Close ends every subscription.
func (s *Store) Close() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, sub := range s.subs {
		sub.Close()
	}
	s.subs = nil
}

// Dispatch applies a to the state and notifies subscribers.
func (s *Store) Dispatch(a action.Action) error {
	s.mu.Lock()
	ch, err := s.apply(a)
	var ev events
	if err == nil {
		ev = s.collect(ch)
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("dispatch failed",
			zap.String("action", a.ActionType()),
			zap.Error(err))
		return err
	}
	s.logger.Debug("dispatch", zap.String("action", a.ActionType()))
	s.publish(ev)
	return nil
}

// changes records what an action touched.
type changes struct {
	queue     bool
	selection bool
	status    *playback.Status // previous status
	setting   *playback.SettingChange
	indices   []playback.Player
}

func (s *Store) apply(a action.Action) (changes, error) {
	st := &s.state
	var ch changes

	switch a := a.(type) {
	case MoveUp:
		ch.queue = s.editQueue(func() bool { return st.Queue.MoveUp(a.Indices) })
	case MoveDown:
		ch.queue = s.editQueue(func() bool { return st.Queue.MoveDown(a.Indices) })
	case MoveToIndex:
		ch.queue = s.editQueue(func() bool { return st.Queue.MoveToIndex(a.Entries, a.BeforeID) })
	case AddTracks:
		ch.queue = s.editQueue(func() bool {
			st.Queue.Add(a.Tracks...)
			return len(a.Tracks) > 0
		})
	case RemoveSelected:
		ids := st.Selection.IDs()
		ch.queue = s.editQueue(func() bool { return st.Queue.RemoveIDs(ids) > 0 })
		if ch.queue {
			st.Selection.Clear()
			ch.selection = true
		}
	case ClearPlayQueue:
		ch.queue = s.editQueue(func() bool {
			if st.Queue.IsEmpty() {
				return false
			}
			st.Queue.Clear()
			return true
		})
		st.Selection.Clear()
		st.Transport.ClearChannels()
		ch.selection = true
		ch.indices = []playback.Player{playback.Primary, playback.Secondary}
	case Undo:
		tracks, ok := s.history.Undo()
		if ok {
			s.restore(tracks)
			ch.queue = true
		}
	case Redo:
		tracks, ok := s.history.Redo()
		if ok {
			s.restore(tracks)
			ch.queue = true
		}
	case ShuffleInPlace:
		st.Queue.ShuffleInPlace()
		ch.queue = st.Queue.Shuffle()
	case ToggleShuffle:
		st.Queue.ToggleShuffle()
		ch.queue = true
	case CycleRepeat:
		mode := st.Queue.CycleRepeatMode()
		ch.setting = &playback.SettingChange{Key: SettingRepeat, Value: mode}
	case SortQueue:
		if a.Column == playlist.SortNone {
			st.Queue.ClearSort()
		} else {
			st.Queue.SortBy(a.Column, a.Order)
		}
		ch.queue = true

	case SetPlayerVolume:
		if !a.Player.Valid() {
			return ch, fmt.Errorf("%w: %d", ErrInvalidPlayer, a.Player)
		}
		st.Transport.SetVolume(a.Player, a.Volume)
	case SetPlayerIndex:
		idx := st.Queue.IndexOf(a.Track.ID)
		if idx < 0 {
			return ch, fmt.Errorf("%w: %s", ErrUnknownEntry, a.Track.ID)
		}
		st.Queue.JumpTo(idx)
		st.Transport.SetIndex(playback.Primary, idx)
		st.Transport.CurrentPlayer = playback.Primary
		ch.indices = []playback.Player{playback.Primary}
	case FixPlayer2Index:
		st.Transport.SetIndex(playback.Secondary, st.Queue.NextIndex())
		ch.indices = []playback.Player{playback.Secondary}
	case ResetPlayer:
		st.Transport.Reset()
	case SetStatus:
		prev := st.Transport.SetStatus(a.Status)
		if prev != a.Status {
			ch.status = &prev
		}
	case SetPlaybackSetting:
		if err := s.applySetting(a.Key, a.Value); err != nil {
			return ch, err
		}
		ch.setting = &playback.SettingChange{Key: a.Key, Value: a.Value}

	case SetSelected:
		st.Selection.Set(a.Track)
		ch.selection = true
	case ToggleSelected:
		st.Selection.Toggle(a.Track)
		ch.selection = true
	case SetRangeSelected:
		st.Selection.SetRange(a.Track)
	case ToggleRangeSelected:
		st.Selection.ToggleRange(a.Projection)
		ch.selection = true
	case ClearSelected:
		st.Selection.Clear()
		ch.selection = true
	case SetIsDragging:
		st.Selection.SetDragging(a.Dragging)
	case SetMouseOver:
		st.Selection.SetMouseOver(a.ID)

	default:
		return ch, fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}
	return ch, nil
}

func (s *Store) applySetting(key string, value any) error {
	switch key {
	case SettingScrollWithCurrentSong:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%s: want bool, got %T", key, value)
		}
		s.state.ScrollWithCurrentSong = v
	case SettingVolume:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("%s: want float64, got %T", key, value)
		}
		s.state.Volume = min(max(v, 0), 1)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}
	return nil
}

// editQueue runs an edit of the base sequence. When it changes anything the
// result is recorded for undo and the idle player is re-pointed at the entry
// it held before the edit.
func (s *Store) editQueue(edit func() bool) bool {
	held := s.heldIDs()
	if !edit() {
		return false
	}
	s.history.Push(s.state.Queue.Tracks())
	s.repoint(held)
	s.dropStaleSelection()
	return true
}

func (s *Store) restore(tracks []playlist.Track) {
	held := s.heldIDs()
	s.state.Queue.Restore(tracks)
	s.repoint(held)
	s.dropStaleSelection()
}

func (s *Store) heldIDs() [2]string {
	var held [2]string
	tracks := s.state.Queue.Tracks()
	for i, p := range []playback.Player{playback.Primary, playback.Secondary} {
		idx := s.state.Transport.Channel(p).Index
		if idx >= 0 && idx < len(tracks) {
			held[i] = tracks[idx].ID
		}
	}
	return held
}

func (s *Store) repoint(held [2]string) {
	for i, p := range []playback.Player{playback.Primary, playback.Secondary} {
		idx := -1
		if held[i] != "" {
			idx = s.state.Queue.IndexOf(held[i])
		}
		s.state.Transport.SetIndex(p, idx)
	}
	// The driving player always holds the playing entry.
	t := &s.state.Transport
	t.SetIndex(t.CurrentPlayer, s.state.Queue.CurrentIndex())
}

func (s *Store) dropStaleSelection() {
	present := make(map[string]bool, s.state.Queue.Len())
	for _, t := range s.state.Queue.Tracks() {
		present[t.ID] = true
	}
	s.state.Selection.Retain(present)
}

// events are the notifications produced by one dispatch.
type events struct {
	queue     *playback.QueueChange
	selection *playback.SelectionChange
	status    *playback.StatusChange
	setting   *playback.SettingChange
	indices   []playback.IndexChange
}

func (s *Store) collect(ch changes) events {
	var ev events
	st := &s.state
	if ch.queue {
		tracks := st.Queue.Tracks()
		ids := make([]string, len(tracks))
		for i, t := range tracks {
			ids[i] = t.ID
		}
		ev.queue = &playback.QueueChange{
			IDs:     ids,
			Index:   st.Queue.CurrentIndex(),
			Shuffle: st.Queue.Shuffle(),
		}
	}
	if ch.selection {
		ev.selection = &playback.SelectionChange{Count: st.Selection.Len()}
	}
	if ch.status != nil {
		ev.status = &playback.StatusChange{Previous: *ch.status, Current: st.Transport.Status}
	}
	ev.setting = ch.setting
	for _, p := range ch.indices {
		ev.indices = append(ev.indices, playback.IndexChange{
			Player: p,
			Index:  st.Transport.Channel(p).Index,
		})
	}
	return ev
}

func (s *Store) publish(ev events) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		if ev.queue != nil {
			sub.SendQueue(*ev.queue)
		}
		if ev.selection != nil {
			sub.SendSelection(*ev.selection)
		}
		if ev.status != nil {
			sub.SendStatus(*ev.status)
		}
		if ev.setting != nil {
			sub.SendSetting(*ev.setting)
		}
		for _, e := range ev.indices {
			sub.SendIndex(e)
		}
	}
}
