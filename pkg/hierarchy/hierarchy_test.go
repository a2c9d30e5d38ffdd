package hierarchy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDetachAlwaysAllowed(t *testing.T) {
	a := Arena{}
	assert.NoError(t, a.CanReparent(uuid.New(), nil))
}

func TestSelfParentIsCycle(t *testing.T) {
	id := uuid.New()
	a := Arena{id: nil}
	assert.ErrorIs(t, a.CanReparent(id, &id), ErrCycle)
}

func TestUnknownParentNotFound(t *testing.T) {
	id := uuid.New()
	missing := uuid.New()
	a := Arena{id: nil}
	assert.ErrorIs(t, a.CanReparent(id, &missing), ErrParentNotFound)
}

func TestDescendantParentIsCycle(t *testing.T) {
	// b3 -> b2 -> b1 (b3 is the parent of b2, b2 the parent of b1).
	b1, b2, b3 := uuid.New(), uuid.New(), uuid.New()
	a := Arena{
		b3: nil,
		b2: &b3,
		b1: &b2,
	}
	// Moving b3 under b1 would close the loop.
	assert.ErrorIs(t, a.CanReparent(b3, &b1), ErrCycle)
	// Moving b1 under b3 directly is fine.
	assert.NoError(t, a.CanReparent(b1, &b3))
}

func TestSiblingMoveAllowed(t *testing.T) {
	root, a1, a2 := uuid.New(), uuid.New(), uuid.New()
	a := Arena{
		root: nil,
		a1:   &root,
		a2:   &root,
	}
	assert.NoError(t, a.CanReparent(a1, &a2))
}

func TestTerminatesOnCorruptedArena(t *testing.T) {
	// Pre-existing cycle between x and y; the walk must still stop.
	x, y, z := uuid.New(), uuid.New(), uuid.New()
	a := Arena{
		x: &y,
		y: &x,
		z: nil,
	}
	assert.NoError(t, a.CanReparent(z, &x))
}
