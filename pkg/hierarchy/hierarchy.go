// Package hierarchy validates parent/child moves over an id-indexed
// arena, detached from the storage layer so cycle detection stays
// bounded and testable on its own.
package hierarchy

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrParentNotFound means the proposed parent is not in the arena.
	ErrParentNotFound = errors.New("parent not found")
	// ErrCycle means the move would make the node its own ancestor.
	ErrCycle = errors.New("cycle detected")
)

// Arena maps every node id to its current parent id (nil for roots).
// Callers build it from one owner's rows only, so a parent belonging to
// another owner is simply absent and reported as not found.
type Arena map[uuid.UUID]*uuid.UUID

// CanReparent reports whether node may be re-parented under newParent.
// A nil newParent (detach) is always allowed. The walk up the ancestor
// chain is bounded by the arena size, so it terminates even if the
// stored data already contains a cycle.
func (a Arena) CanReparent(node uuid.UUID, newParent *uuid.UUID) error {
	if newParent == nil {
		return nil
	}
	if _, ok := a[*newParent]; !ok {
		return ErrParentNotFound
	}

	cursor := newParent
	for steps := 0; cursor != nil && steps <= len(a); steps++ {
		if *cursor == node {
			return ErrCycle
		}
		cursor = a[*cursor]
	}
	return nil
}
