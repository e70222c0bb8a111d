package glyph

import "sync/atomic"

// EntityID identifies a point, path or component for the lifetime of the
// process. IDs are allocated from a global monotonic counter and never
// reused, so a deleted entity cannot be aliased by a later one. Allocation
// is safe from concurrent goroutines.
//
// IDs are not stable across process restarts and must never be persisted
// as structural identity.
type EntityID uint64

var idcounter atomic.Uint64

// NewEntityID allocates a fresh process-unique identity.
func NewEntityID() EntityID {
	return EntityID(idcounter.Add(1))
}
