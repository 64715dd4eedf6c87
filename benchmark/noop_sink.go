package benchmark

import (
	"sync/atomic"
)

// countingSink drops data but counts the writes, so benchmarks can check
// that nothing was filtered by mistake.
type countingSink struct {
	writes atomic.Uint64
	bytes  atomic.Uint64
}

func (s *countingSink) Write(p []byte) (int, error) {
	s.writes.Add(1)
	s.bytes.Add(uint64(len(p)))
	return len(p), nil
}

func (s *countingSink) Sync() error {
	return nil
}
