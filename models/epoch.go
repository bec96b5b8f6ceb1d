package models

import "sync/atomic"

// Epoch is a logical time point. No monotonicity is imposed: epochs may
// move forward or backward.
type Epoch = int64

// EpochCursor is an interior-mutable holder of a single epoch, designed to
// be shared by many TemporalAttributes and mutated independently of them.
// Slide is O(1) and immediately visible to every attribute bound to the
// cursor. Single-threaded use is assumed throughout this package; the
// atomic storage is not a concurrency guarantee, just the usual Go shape
// for a scalar that is read through shared references and mutated in
// place (logger.currentLevel uses the same pattern).
type EpochCursor struct {
	epoch atomic.Int64
}

// NewEpochCursor returns a cursor starting at epoch 0.
func NewEpochCursor() *EpochCursor {
	return &EpochCursor{}
}

// Slide sets the cursor to e.
func (c *EpochCursor) Slide(e Epoch) {
	c.epoch.Store(e)
}

// Get reads the current epoch.
func (c *EpochCursor) Get() Epoch {
	return c.epoch.Load()
}
