package nowplaying

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/quaver/internal/playlist"
	"github.com/llehouerou/quaver/internal/search"
	"github.com/llehouerou/quaver/internal/state"
	"github.com/llehouerou/quaver/internal/store"
	"github.com/llehouerou/quaver/internal/ui/action"
	"github.com/llehouerou/quaver/internal/ui/testutil"
)

// recordingStore records every dispatched action type before applying it.
type recordingStore struct {
	*store.Store
	actions []string
	fail    error
}

func (r *recordingStore) Dispatch(a action.Action) error {
	r.actions = append(r.actions, a.ActionType())
	if r.fail != nil {
		return r.fail
	}
	return r.Store.Dispatch(a)
}

func (r *recordingStore) reset() {
	r.actions = nil
}

func track(id, title string) playlist.Track {
	return playlist.Track{
		ID:       id,
		Title:    title,
		Artist:   "Artist " + id,
		Album:    "Album",
		Path:     "/music/" + id + ".mp3",
		Duration: 3 * time.Minute,
	}
}

func tracks(idList ...string) []playlist.Track {
	out := make([]playlist.Track, 0, len(idList))
	for _, id := range idList {
		out = append(out, track(id, "Song "+id))
	}
	return out
}

func idsOf(list []playlist.Track) []string {
	out := make([]string, 0, len(list))
	for _, t := range list {
		out = append(out, t.ID)
	}
	return out
}

// rowY is the page line of display row i at row height 1.
func rowY(i int) int {
	return chromeLines + i
}

// newPage returns a loaded, focused 80x20 page over the given entries with
// the first one playing.
func newPage(t *testing.T, entries ...playlist.Track) (*testutil.Harness[Model], *recordingStore, *state.Mock) {
	t.Helper()
	q := playlist.NewQueueWithRand(rand.New(rand.NewPCG(3, 5)))
	q.Replace(entries...)
	rec := &recordingStore{Store: store.New(q, nil)}
	settings := state.NewMock()

	m := New(Deps{Settings: settings})
	m.SetSize(80, 20)
	m.SetFocused(true)
	m.Load(rec)
	return testutil.NewHarness(m), rec, settings
}

// apply dispatches directly on the store, as another part of the program
// would, and notifies the page.
func apply(t *testing.T, h *testutil.Harness[Model], rec *recordingStore, actions ...action.Action) {
	t.Helper()
	for _, a := range actions {
		require.NoError(t, rec.Store.Dispatch(a), a.ActionType())
	}
	h.Send(StoreChangedMsg{})
}

func TestNew_NotLoaded(t *testing.T) {
	m := New(Deps{Settings: state.NewMock()})
	assert.False(t, m.Loaded())
	assert.Empty(t, m.Displayed())
}

func TestLoad_ShowsBaseOrder(t *testing.T) {
	h, _, _ := newPage(t, tracks("a", "b", "c")...)
	m := h.Model()

	assert.True(t, m.Loaded())
	assert.Equal(t, []string{"a", "b", "c"}, idsOf(m.Displayed()))
	assert.Equal(t, search.SourceBase, m.Source())
}

func TestRefresh_FollowsProjection(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b", "c", "d")...)

	apply(t, h, rec, store.ToggleShuffle{})
	assert.Equal(t, search.SourceShuffled, h.Model().Source())
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, idsOf(h.Model().Displayed()))

	apply(t, h, rec, store.SortQueue{Column: playlist.SortTitle, Order: playlist.SortDesc})
	assert.Equal(t, search.SourceSorted, h.Model().Source())
	assert.Equal(t, []string{"d", "c", "b", "a"}, idsOf(h.Model().Displayed()))
}

func TestRefresh_KeepsCursorOnEntry(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b", "c")...)
	h.SendKey("j")
	h.SendKey("j")
	require.Equal(t, 2, h.Model().CursorIndex())

	apply(t, h, rec, store.SortQueue{Column: playlist.SortTitle, Order: playlist.SortDesc})

	assert.Equal(t, 0, h.Model().CursorIndex(), "cursor follows entry c to the top")
}

func TestSearch_FiltersAndClears(t *testing.T) {
	h, _, _ := newPage(t,
		track("a", "Alpha one"),
		track("b", "Beta"),
		track("c", "Alpha two"),
	)

	h.SendKey("/")
	require.True(t, h.Model().Searching())
	h.SendKey("alpha")
	h.Settle(nil)

	assert.Equal(t, "alpha", h.Model().Query())
	assert.Equal(t, search.SourceFiltered, h.Model().Source())
	assert.Equal(t, []string{"a", "c"}, idsOf(h.Model().Displayed()))

	h.SendKey("enter")
	assert.False(t, h.Model().Searching())
	assert.Equal(t, "alpha", h.Model().Query(), "enter keeps the filter")

	h.SendKey("esc")
	h.Settle(nil)
	assert.Empty(t, h.Model().Query())
	assert.Equal(t, []string{"a", "b", "c"}, idsOf(h.Model().Displayed()))
}

func TestSearch_KeysDoNotReachQueue(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b")...)
	h.SendKey("/")
	h.SendKey("c")
	h.Settle(nil)

	assert.NotContains(t, rec.actions, "store.clear_play_queue")
	assert.Equal(t, "c", h.Model().Query())
}

func TestUpdate_IgnoresInputWhileLoading(t *testing.T) {
	m := New(Deps{Settings: state.NewMock()})
	m.SetSize(80, 20)
	m.SetFocused(true)
	h := testutil.NewHarness(m)

	assert.Nil(t, h.SendKey("c"))
	assert.Nil(t, h.Send(testutil.Press(5, rowY(0))))
}
