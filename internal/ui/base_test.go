package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase_Size(t *testing.T) {
	var b Base
	b.SetSize(80, 24)

	w, h := b.Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
	assert.Equal(t, 20, b.BodyHeight(4))
	assert.Equal(t, 0, b.BodyHeight(30))
}

func TestBase_Focus(t *testing.T) {
	var b Base
	assert.False(t, b.IsFocused())
	b.SetFocused(true)
	assert.True(t, b.IsFocused())
}

func TestBase_Contains(t *testing.T) {
	var b Base
	b.SetSize(10, 5)

	assert.True(t, b.Contains(0, 0))
	assert.True(t, b.Contains(9, 4))
	assert.False(t, b.Contains(10, 0))
	assert.False(t, b.Contains(0, 5))
	assert.False(t, b.Contains(-1, 2))
}
