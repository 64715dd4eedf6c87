package logger

import (
	"sync/atomic"
)

// Stats counts what happened to the lines a Logger tried to write. Write
// and flush failures are never reported to the caller; these counters are
// the only trace they leave.
type Stats struct {
	written      atomic.Uint64
	writeFailed  atomic.Uint64
	flushFailed  atomic.Uint64
	sinkPanicked atomic.Uint64
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Written      uint64
	WriteFailed  uint64
	FlushFailed  uint64
	SinkPanicked uint64
}

func (s *Stats) incrementWritten()      { s.written.Add(1) }
func (s *Stats) incrementWriteFailed()  { s.writeFailed.Add(1) }
func (s *Stats) incrementFlushFailed()  { s.flushFailed.Add(1) }
func (s *Stats) incrementSinkPanicked() { s.sinkPanicked.Add(1) }

// Snapshot returns the current counter values
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Written:      s.written.Load(),
		WriteFailed:  s.writeFailed.Load(),
		FlushFailed:  s.flushFailed.Load(),
		SinkPanicked: s.sinkPanicked.Load(),
	}
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.written.Store(0)
	s.writeFailed.Store(0)
	s.flushFailed.Store(0)
	s.sinkPanicked.Store(0)
}
