package playerbar

import (
	"fmt"
	"strings"

	"github.com/llehouerou/quaver/internal/playback"
)

const volumeBarWidth = 5

var (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// RenderVolume renders one channel: "P1 ▓▓▓░░  60% #3".
// The driving player is highlighted.
func RenderVolume(p playback.Player, ch playback.Channel, driving bool) string {
	filled := min(int(ch.Volume*volumeBarWidth+0.5), volumeBarWidth)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, volumeBarWidth-filled)

	index := "-"
	if ch.Index >= 0 {
		index = fmt.Sprintf("#%d", ch.Index+1)
	}
	text := fmt.Sprintf("P%d %s %3d%% %s", int(p), bar, int(ch.Volume*100+0.5), index)
	if driving {
		return statusStyle().Render(text)
	}
	return mutedStyle().Render(text)
}

// RenderChannels renders both channels side by side.
func RenderChannels(t playback.Transport) string {
	return RenderVolume(playback.Primary, t.Channel(playback.Primary), t.CurrentPlayer == playback.Primary) +
		"  " +
		RenderVolume(playback.Secondary, t.Channel(playback.Secondary), t.CurrentPlayer == playback.Secondary)
}
