package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/quaver/internal/playlist"
)

func tr(id string) playlist.Track {
	return playlist.Track{ID: id, Title: id}
}

func seq(idList ...string) []playlist.Track {
	out := make([]playlist.Track, 0, len(idList))
	for _, id := range idList {
		out = append(out, tr(id))
	}
	return out
}

func TestSet_ReplacesSelection(t *testing.T) {
	m := New()
	m.Set(tr("a"))
	m.Set(tr("b"))

	assert.Equal(t, 1, m.Len())
	assert.True(t, m.Contains("b"))
	assert.False(t, m.Contains("a"))

	anchor, ok := m.Anchor()
	require.True(t, ok)
	assert.Equal(t, "b", anchor.ID)
}

func TestToggle(t *testing.T) {
	m := New()
	m.Toggle(tr("a"))
	m.Toggle(tr("b"))
	assert.Equal(t, map[string]bool{"a": true, "b": true}, m.IDs())

	m.Toggle(tr("a"))
	assert.Equal(t, map[string]bool{"b": true}, m.IDs())
}

func TestToggleRange(t *testing.T) {
	tests := []struct {
		name       string
		anchor     string
		target     string
		projection []string
		want       map[string]bool
	}{
		{
			name:       "forward range",
			anchor:     "a",
			target:     "c",
			projection: []string{"a", "b", "c", "d"},
			want:       map[string]bool{"a": true, "b": true, "c": true},
		},
		{
			name:       "backward range",
			anchor:     "d",
			target:     "b",
			projection: []string{"a", "b", "c", "d"},
			want:       map[string]bool{"b": true, "c": true, "d": true},
		},
		{
			name:       "filtered projection skips hidden rows",
			anchor:     "a",
			target:     "c",
			projection: []string{"a", "c"},
			want:       map[string]bool{"a": true, "c": true},
		},
		{
			name:       "range follows projection order, not base order",
			anchor:     "a",
			target:     "b",
			projection: []string{"c", "a", "d", "b"},
			want:       map[string]bool{"a": true, "d": true, "b": true},
		},
		{
			name:       "anchor hidden adds only target",
			anchor:     "b",
			target:     "c",
			projection: []string{"a", "c"},
			want:       map[string]bool{"b": true, "c": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.Set(tr(tt.anchor))
			m.SetRange(tr(tt.target))
			m.ToggleRange(seq(tt.projection...))

			assert.Equal(t, tt.want, m.IDs())
		})
	}
}

func TestToggleRange_UnionsWithExistingSelection(t *testing.T) {
	m := New()
	m.Toggle(tr("x"))
	m.Toggle(tr("a"))
	m.SetRange(tr("b"))
	m.ToggleRange(seq("a", "b", "x"))

	assert.Equal(t, map[string]bool{"x": true, "a": true, "b": true}, m.IDs())
	assert.Equal(t, 3, m.Len(), "no duplicates")
}

func TestSetRange_WithoutAnchor(t *testing.T) {
	m := New()
	m.SetRange(tr("b"))
	m.ToggleRange(seq("a", "b", "c"))

	assert.Equal(t, map[string]bool{"b": true}, m.IDs())
}

func TestToggleRange_WithoutRangeEndIsNoop(t *testing.T) {
	m := New()
	m.Set(tr("a"))
	m.ToggleRange(seq("a", "b"))

	assert.Equal(t, map[string]bool{"a": true}, m.IDs())
}

func TestClear(t *testing.T) {
	m := New()
	m.Set(tr("a"))
	m.Clear()

	assert.Zero(t, m.Len())
	_, ok := m.Anchor()
	assert.False(t, ok)
}

func TestRetain(t *testing.T) {
	m := New()
	m.Toggle(tr("a"))
	m.Toggle(tr("b"))

	m.Retain(map[string]bool{"a": true})

	assert.Equal(t, map[string]bool{"a": true}, m.IDs())
	_, ok := m.Anchor()
	assert.False(t, ok, "anchor b was dropped")
}

func TestRetain_DropsRemovedRangeEnd(t *testing.T) {
	m := New()
	m.Set(tr("a"))
	m.SetRange(tr("c"))

	m.Retain(map[string]bool{"a": true})
	m.ToggleRange([]playlist.Track{tr("a"), tr("b")})

	assert.Nil(t, m.rangeEnd)
	assert.Equal(t, map[string]bool{"a": true}, m.IDs(), "no range extends to a removed entry")
}

func TestDragState(t *testing.T) {
	m := New()
	assert.False(t, m.IsDragging())

	m.SetDragging(true)
	m.SetMouseOver("c")

	assert.True(t, m.IsDragging())
	assert.Equal(t, "c", m.MouseOverID())
}

func TestClone_IsIndependent(t *testing.T) {
	m := New()
	m.Set(tr("a"))

	c := m.Clone()
	m.Toggle(tr("b"))

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, m.Len())
}

func TestEntries_ReturnsCopy(t *testing.T) {
	m := New()
	m.Set(tr("a"))

	entries := m.Entries()
	entries[0].ID = "mutated"

	assert.True(t, m.Contains("a"))
}
