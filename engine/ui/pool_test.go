package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolAllocatesLowestIndexFirst(t *testing.T) {
	p := NewPool("test", 3)
	assert.Equal(t, 0, p.Allocate(1, 1))
	assert.Equal(t, 1, p.Allocate(2, 1))
	assert.Equal(t, 2, p.Allocate(3, 1))
	assert.Equal(t, 1, p.Lookup(2))
	assert.Equal(t, -1, p.Lookup(99))
	assert.Equal(t, PoolSlot{ID: 3, LastUpdate: 1}, p.Slot(2))
}

func TestPoolEvictsLeastRecentlyTouched(t *testing.T) {
	p := NewPool("test", 3)
	for id := ID(1); id <= 3; id++ {
		p.Allocate(id, 1)
	}
	p.Touch(p.Lookup(1), 2)
	p.Touch(p.Lookup(3), 3)

	idx := p.Allocate(4, 4)
	assert.Equal(t, 1, idx, "slot of id 2 has the oldest stamp")
	assert.Equal(t, -1, p.Lookup(2))
	assert.Equal(t, idx, p.Lookup(4))
	assert.Equal(t, 4, p.Slot(idx).LastUpdate)
}

func TestPoolTiesGoToLowestIndex(t *testing.T) {
	p := NewPool("test", 3)
	p.Allocate(1, 3)
	p.Allocate(2, 3)
	p.Allocate(3, 3)
	p.Touch(0, 5)
	assert.Equal(t, 1, p.Allocate(4, 6))
}

func TestPoolClearedSlotIsReusedFirst(t *testing.T) {
	p := NewPool("test", 3)
	for id := ID(1); id <= 3; id++ {
		p.Allocate(id, 1)
	}
	p.Clear(2)
	assert.Equal(t, -1, p.Lookup(3))
	assert.Equal(t, 2, p.Allocate(9, 2))
}

func TestPoolExhaustedWithinOneFrame(t *testing.T) {
	p := NewPool("test", 2)
	p.Allocate(1, 7)
	p.Allocate(2, 7)
	requireUsageError(t, ErrPoolExhausted, func() { p.Allocate(3, 7) })
}

func TestContainerPoolEviction(t *testing.T) {
	c := newTestCtx(WithPoolSize(2))
	win := func(name string) {
		require.True(t, c.BeginWindow(name, R(0, 0, 100, 100), OptNoTitle))
		c.EndWindow()
	}
	c.Update(func() { win("a"); win("b") })
	c.Update(func() { win("b"); win("c") })

	assert.Equal(t, -1, c.containerPool.Lookup(c.GetIDString("a")))
	assert.GreaterOrEqual(t, c.containerPool.Lookup(c.GetIDString("b")), 0)
	assert.GreaterOrEqual(t, c.containerPool.Lookup(c.GetIDString("c")), 0)

	c.BeginFrame()
	win("a")
	win("b")
	requireUsageError(t, ErrPoolExhausted, func() { win("c") })
}
