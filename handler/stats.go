package handler

import (
	"sync/atomic"
)

// Stats tracks handler statistics
type Stats struct {
	// Processed counts records written successfully
	Processed atomic.Uint64
	// Failed counts records whose write returned an error
	Failed atomic.Uint64
	// Skipped counts records rejected by the formatter config filters
	Skipped atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.Processed.Add(1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.Failed.Add(1)
}

// IncrementSkipped atomically increments the skipped counter
func (s *Stats) IncrementSkipped() {
	s.Skipped.Add(1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.Processed.Store(0)
	s.Failed.Store(0)
	s.Skipped.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed uint64
	Failed    uint64
	Skipped   uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Processed: s.Processed.Load(),
		Failed:    s.Failed.Load(),
		Skipped:   s.Skipped.Load(),
	}
}

// Add returns the element-wise sum of two snapshots.
func (s Snapshot) Add(o Snapshot) Snapshot {
	return Snapshot{
		Processed: s.Processed + o.Processed,
		Failed:    s.Failed + o.Failed,
		Skipped:   s.Skipped + o.Skipped,
	}
}
