// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
)

// FakeSlot is an in-memory implementation of service.Slot for testing.
type FakeSlot struct {
	mu     sync.RWMutex
	values map[string][]byte
	writes int
	closed bool

	// Error injection for testing
	GetErr error
	SetErr error
}

// NewFakeSlot creates an empty FakeSlot.
func NewFakeSlot() *FakeSlot {
	return &FakeSlot{values: make(map[string][]byte)}
}

// Put stores a raw value without counting it as a write.
func (f *FakeSlot) Put(key string, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = []byte(value)
}

// Value returns the raw stored value.
func (f *FakeSlot) Value(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return string(v), ok
}

// Writes returns the number of successful Set calls.
func (f *FakeSlot) Writes() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.writes
}

// Closed reports whether Close was called.
func (f *FakeSlot) Closed() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.closed
}

// Get implements service.Slot.
func (f *FakeSlot) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.GetErr != nil {
		return nil, false, f.GetErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set implements service.Slot.
func (f *FakeSlot) Set(ctx context.Context, key string, value []byte) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	f.values[key] = v
	f.writes++
	return nil
}

// Close implements io.Closer.
func (f *FakeSlot) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
