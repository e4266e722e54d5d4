// Package playerbar renders the one-line transport summary shown in the
// footer: status, the playing entry, both player channels and the queue
// modes. There is no audio engine behind it; it reflects store state.
package playerbar

import (
	"fmt"
	"strings"

	"github.com/llehouerou/quaver/internal/icons"
	"github.com/llehouerou/quaver/internal/playback"
	"github.com/llehouerou/quaver/internal/playlist"
	"github.com/llehouerou/quaver/internal/ui/render"
)

// Height is the footer height: top border plus the status line.
const Height = 2

// State holds everything needed to render the player bar.
type State struct {
	Status    playback.Status
	Current   *playlist.Track // nil when nothing is playing
	Position  int             // 1-based base position of Current
	Total     int
	Transport playback.Transport
	Shuffle   bool
	Repeat    playlist.RepeatMode
	Message   string // transient error or notice, replaces the modes
}

// NewState builds the bar state from a queue and its transport.
func NewState(q *playlist.PlayingQueue, t playback.Transport) State {
	s := State{
		Status:    t.Status,
		Total:     q.Len(),
		Transport: t,
		Shuffle:   q.Shuffle(),
		Repeat:    q.RepeatMode(),
	}
	if cur := q.Current(); cur != nil {
		track := *cur
		s.Current = &track
		s.Position = q.CurrentIndex() + 1
	}
	return s
}

// Render returns the status line for the given width.
func Render(s State, width int) string {
	status := statusLabel(s.Status)

	var now string
	switch {
	case s.Current == nil:
		now = mutedStyle().Render("Nothing playing")
	default:
		now = titleStyle().Render(s.Current.Title)
		if s.Current.Artist != "" {
			now += mutedStyle().Render(" · " + s.Current.Artist)
		}
		now += mutedStyle().Render(fmt.Sprintf("  %d/%d", s.Position, s.Total))
	}

	right := RenderChannels(s.Transport)
	if s.Message != "" {
		right = errorStyle().Render(s.Message)
	} else if m := modes(s); m != "" {
		right = m + "   " + right
	}

	left := status + "  " + now
	return render.Row(left, right, width)
}

func statusLabel(st playback.Status) string {
	icon := icons.Status(st)
	if icon == "" {
		return mutedStyle().Render(st.String())
	}
	return statusStyle().Render(icon + " " + st.String())
}

func modes(s State) string {
	var parts []string
	if s.Shuffle {
		parts = append(parts, icons.Shuffle())
	}
	switch s.Repeat {
	case playlist.RepeatOff:
	case playlist.RepeatAll:
		parts = append(parts, icons.RepeatAll())
	case playlist.RepeatOne:
		parts = append(parts, icons.RepeatOne())
	}
	if len(parts) == 0 {
		return ""
	}
	return modeStyle().Render(strings.Join(parts, " "))
}
