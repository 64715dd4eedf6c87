package sink

import (
	"io"
	"os"

	"go.uber.org/zap/zapcore"
)

// Sink is a writable destination for formatted log lines. Sync flushes
// any buffered data; sinks without buffering return nil.
//
// Sink has the method set of zapcore.WriteSyncer, so zap's syncers can be
// used as sinks and vice versa.
type Sink = zapcore.WriteSyncer

// Stderr returns a Sink writing to the process standard error
func Stderr() Sink {
	return zapcore.AddSync(os.Stderr)
}

// Stdout returns a Sink writing to the process standard output
func Stdout() Sink {
	return zapcore.AddSync(os.Stdout)
}

// Discard returns a Sink that drops everything
func Discard() Sink {
	return zapcore.AddSync(io.Discard)
}

// flusher matches buffered writers such as *bufio.Writer
type flusher interface {
	Flush() error
}

type flushSyncer struct {
	io.Writer
	f flusher
}

func (s flushSyncer) Sync() error {
	return s.f.Flush()
}

// Wrap adapts w to a Sink. Writers that already have Sync keep it, writers
// with a Flush() error method are flushed on Sync, anything else gets a
// no-op Sync.
func Wrap(w io.Writer) Sink {
	if w == nil {
		return Discard()
	}
	if s, ok := w.(zapcore.WriteSyncer); ok {
		return s
	}
	if f, ok := w.(flusher); ok {
		return flushSyncer{Writer: w, f: f}
	}
	return zapcore.AddSync(w)
}

// Multi duplicates every write and sync to all sinks. Errors from the
// individual sinks are combined.
func Multi(sinks ...Sink) Sink {
	return zapcore.NewMultiWriteSyncer(sinks...)
}
