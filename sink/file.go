package sink

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

// FileSink appends log lines to a file. Each write holds an exclusive
// advisory lock on "<path>.lock" so that several processes can share one
// log file without interleaving lines.
type FileSink struct {
	mu   sync.Mutex
	path string
	file *os.File
	lock *flock.Flock
}

// OpenFile opens path for appending, creating it and its directory when
// needed.
func OpenFile(path string) (*FileSink, error) {
	if path == "" {
		return nil, errors.New("sink: empty file path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "sink: creating directory for %s", path)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "sink: opening %s", path)
	}

	return &FileSink{
		path: path,
		file: file,
		lock: flock.New(path + ".lock"),
	}, nil
}

// Path returns the file path
func (s *FileSink) Path() string {
	return s.path
}

// Write appends p under the cross-process lock
func (s *FileSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return 0, os.ErrClosed
	}
	if err := s.lock.Lock(); err != nil {
		return 0, errors.Wrapf(err, "sink: locking %s", s.lock.Path())
	}
	defer s.lock.Unlock()

	return s.file.Write(p)
}

// Sync commits the file contents to stable storage
func (s *FileSink) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return os.ErrClosed
	}
	return s.file.Sync()
}

// Close closes the file and releases the lock file handle. Closing twice
// is a no-op.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	if lerr := s.lock.Close(); lerr != nil && err == nil {
		err = lerr
	}
	return errors.Wrapf(err, "sink: closing %s", s.path)
}
