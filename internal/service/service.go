package service

import "context"

// SnapshotKey is the fixed key under which the task list is stored.
const SnapshotKey = "todos"

// Slot is a durable key-value store. The task store only ever touches
// SnapshotKey, but backends are key-generic.
type Slot interface {
	// Get returns the stored value. ok is false when nothing is stored.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set replaces the stored value in full.
	Set(ctx context.Context, key string, value []byte) error
}
