package dedupe

import "runtime/debug"

// MapBackend is an in-memory Backend, cheapest for small pair streams.
// Elements are internal/batch's encoded (a, b) pair keys, not raw input
// strings, so a pair seen twice collapses to one distance computation.
type MapBackend struct {
	storage map[string]struct{}
}

func NewMapBackend() *MapBackend {
	return &MapBackend{storage: map[string]struct{}{}}
}

func (m *MapBackend) Upsert(pairKey string) {
	m.storage[pairKey] = struct{}{}
}

func (m *MapBackend) IterCallback(callback func(pairKey string)) {
	for k := range m.storage {
		callback(k)
	}
}

func (m *MapBackend) Cleanup() {
	m.storage = nil
	// By default GC doesnot release buffered/allocated memory
	// since there always is possibilitly of needing it again/immediately
	// and releases memory in chunks
	// debug.FreeOSMemory forces GC to release allocated memory at once
	debug.FreeOSMemory()
}
