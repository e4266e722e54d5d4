package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueHistory_Empty(t *testing.T) {
	h := NewQueueHistory(10)
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Equal(t, 0, h.Len())

	_, ok := h.Undo()
	assert.False(t, ok)
	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestQueueHistory_UndoRedo(t *testing.T) {
	h := NewQueueHistory(10)
	h.Push([]Track{tr("a")})
	assert.False(t, h.CanUndo(), "a single snapshot has nothing before it")

	h.Push([]Track{tr("b")})
	h.Push([]Track{tr("c")})

	got, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, ids(got))
	got, _ = h.Undo()
	assert.Equal(t, []string{"a"}, ids(got))
	assert.False(t, h.CanUndo())

	got, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, ids(got))
	got, _ = h.Redo()
	assert.Equal(t, []string{"c"}, ids(got))
	assert.False(t, h.CanRedo())
	assert.Equal(t, 3, h.Len())
}

func TestQueueHistory_PushForgetsRedo(t *testing.T) {
	h := NewQueueHistory(10)
	h.Push([]Track{tr("a")})
	h.Push([]Track{tr("b")})
	h.Undo()
	require.True(t, h.CanRedo())

	h.Push([]Track{tr("c")})

	assert.False(t, h.CanRedo())
	got, _ := h.Undo()
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestQueueHistory_MaxSize(t *testing.T) {
	h := NewQueueHistory(3)
	for _, id := range []string{"a", "b", "c", "d"} {
		h.Push([]Track{tr(id)})
	}

	h.Undo()
	got, _ := h.Undo()
	assert.Equal(t, []string{"b"}, ids(got))
	assert.False(t, h.CanUndo(), "a fell off the end")
}

func TestQueueHistory_StoresCopies(t *testing.T) {
	h := NewQueueHistory(10)
	pushed := []Track{tr("a")}
	h.Push(pushed)
	pushed[0].ID = "changed"
	h.Push([]Track{tr("b")})

	got, _ := h.Undo()
	got[0].ID = "changed again"
	h.Redo()
	got, _ = h.Undo()

	assert.Equal(t, []string{"a"}, ids(got))
}

func TestQueueHistory_Reset(t *testing.T) {
	h := NewQueueHistory(10)
	h.Push([]Track{tr("a")})
	h.Push([]Track{tr("b")})

	h.Reset([]Track{tr("z")})

	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Equal(t, 1, h.Len())
}
