package playback

import "time"

// Channel is the state of one player: which queue entry it holds and how
// loud it is.
type Channel struct {
	Index  int     // base queue index, -1 if empty
	Volume float64 // 0..1
}

// Transport is the state of the two-player playback engine. Playback
// alternates between the players so the next track can be preloaded on the
// idle one and faded in.
type Transport struct {
	Status          Status
	CurrentPlayer   Player
	Channels        [2]Channel
	Seek            time.Duration
	Fading          bool
	AutoIncremented bool
}

// NewTransport returns a stopped transport with both players empty at full
// volume.
func NewTransport() Transport {
	return Transport{
		Status:        StatusStopped,
		CurrentPlayer: Primary,
		Channels: [2]Channel{
			{Index: -1, Volume: 1},
			{Index: -1, Volume: 1},
		},
	}
}

// Channel returns the state of player p.
func (t Transport) Channel(p Player) Channel {
	if !p.Valid() {
		return Channel{Index: -1}
	}
	return t.Channels[p-1]
}

// SetVolume sets the volume of player p, clamped to 0..1.
func (t *Transport) SetVolume(p Player, volume float64) {
	if !p.Valid() {
		return
	}
	t.Channels[p-1].Volume = clampVolume(volume)
}

// SetIndex points player p at the given base queue index.
func (t *Transport) SetIndex(p Player, index int) {
	if !p.Valid() {
		return
	}
	t.Channels[p-1].Index = index
}

// SetStatus changes the playback status and returns the previous one.
func (t *Transport) SetStatus(s Status) Status {
	prev := t.Status
	t.Status = s
	return prev
}

// Reset clears seek and fade state and hands playback back to the primary
// player. Volumes and channel indices are untouched.
func (t *Transport) Reset() {
	t.Seek = 0
	t.Fading = false
	t.AutoIncremented = false
	t.CurrentPlayer = Primary
}

// ClearChannels empties both players.
func (t *Transport) ClearChannels() {
	t.Channels[0].Index = -1
	t.Channels[1].Index = -1
}

// PrimaryDriving reports whether the primary player is the one producing sound.
func (t Transport) PrimaryDriving() bool {
	return t.CurrentPlayer == Primary
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
