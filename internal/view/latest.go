package view

import "sync/atomic"

// Latest guards against overlapping fetches resolving out of order.
// Each fetch takes a sequence number before it starts; only the
// completion carrying the newest issued sequence may apply its result,
// so a slow stale response cannot overwrite a newer one.
type Latest struct {
	seq atomic.Uint64
}

// Next issues the sequence number for a fetch about to start.
func (l *Latest) Next() uint64 {
	return l.seq.Add(1)
}

// Keep reports whether a fetch that started with seq is still the
// newest one and may apply its result.
func (l *Latest) Keep(seq uint64) bool {
	return l.seq.Load() == seq
}
