// Package dedupe provides pluggable string-set dedup backends used by
// internal/batch to skip recomputation when the same (a, b) pair
// appears more than once in an input stream.
package dedupe

// Backend is a write-only-then-scan string set: pair keys are upserted
// as they are seen, then iterated once after input has been consumed.
// MapBackend and LevelDBBackend both satisfy it.
type Backend interface {
	Upsert(pairKey string)
	IterCallback(callback func(pairKey string))
	Cleanup()
}
