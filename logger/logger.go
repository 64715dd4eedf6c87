package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/philipp01105/flaglog/core"
	"github.com/philipp01105/flaglog/facade"
	"github.com/philipp01105/flaglog/formatter"
	"github.com/philipp01105/flaglog/sink"
)

// maxKeptBuffer is the largest line buffer kept between writes
const maxKeptBuffer = 64 * 1024

// Logger writes formatted lines to a sink. It can be used simultaneously
// from multiple goroutines; it guarantees to serialize writes so that each
// line reaches the sink in a single Write call.
type Logger struct {
	mu     sync.Mutex // guards below fields and the sink
	flags  core.Flags
	prefix string
	out    sink.Sink
	buf    []byte

	level      atomic.Int32 // read without mu by Enabled
	registered atomic.Bool
	now        func() time.Time
	stats      Stats
}

var _ facade.Log = (*Logger)(nil)

// Builder provides a fluent API for building Logger instances
type Builder struct {
	level  core.Level
	flags  core.Flags
	prefix string
	out    sink.Sink
	now    func() time.Time
}

// NewBuilder creates a new logger builder. Unset values default to
// DebugLevel, LstdFlags, an empty prefix and standard error.
func NewBuilder() *Builder {
	return &Builder{
		level: core.DebugLevel,
		flags: core.LstdFlags,
		now:   time.Now,
	}
}

// WithLevel sets the minimum level that is written
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFlags sets the header flags
func (b *Builder) WithFlags(flags core.Flags) *Builder {
	b.flags = flags
	return b
}

// WithPrefix sets the prefix written at the start of every header, or
// before the message when Lmsgprefix is set
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.prefix = prefix
	return b
}

// WithOutput sets the destination writer. See sink.Wrap for how Flush is
// mapped onto the writer.
func (b *Builder) WithOutput(w io.Writer) *Builder {
	b.out = sink.Wrap(w)
	return b
}

// WithSink sets the destination sink
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.out = s
	return b
}

// WithClock replaces time.Now as the source of header timestamps
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Build creates the Logger instance. The Logger takes ownership of the
// sink; nothing else should write to it afterwards.
func (b *Builder) Build() *Logger {
	l := &Logger{
		flags:  b.flags,
		prefix: b.prefix,
		out:    b.out,
		now:    b.now,
	}
	if l.out == nil {
		l.out = sink.Stderr()
	}
	if l.now == nil {
		l.now = time.Now
	}
	l.level.Store(int32(b.level))
	return l
}

// New creates a Logger in the manner of the standard library log.New,
// writing every level to out.
func New(out io.Writer, prefix string, flags core.Flags) *Logger {
	return NewBuilder().
		WithOutput(out).
		WithPrefix(prefix).
		WithFlags(flags).
		Build()
}

// Enabled reports whether a record at level would be written. It never
// blocks.
func (l *Logger) Enabled(level core.Level) bool {
	return level >= core.Level(l.level.Load())
}

// Log writes a record handed over by the facade. Records below the level
// filter are dropped without touching the sink.
func (l *Logger) Log(rec *core.Record) {
	if rec == nil || !l.Enabled(rec.Level) {
		return
	}
	l.output(l.now(), rec.Level, rec.File, rec.Line, rec.Message)
}

// Flush asks the sink to flush buffered data. Failures are counted in
// Stats and otherwise ignored.
func (l *Logger) Flush() {
	l.mu.Lock()
	defer l.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			l.stats.incrementSinkPanicked()
		}
	}()
	if err := l.out.Sync(); err != nil {
		l.stats.incrementFlushFailed()
	}
}

// Output writes msg at level. calldepth is the number of stack frames to
// skip when recording the source location; 1 names the caller of Output.
func (l *Logger) Output(calldepth int, level core.Level, msg string) {
	if !l.Enabled(level) {
		return
	}
	l.outputDepth(calldepth+1, level, msg)
}

// outputDepth looks up the caller only when a file flag asks for it
func (l *Logger) outputDepth(depth int, level core.Level, msg string) {
	now := l.now() // get this early
	var c core.CallerInfo
	if l.Flags().ShowFile() {
		c = core.GetCaller(depth)
	}
	l.output(now, level, c.File, c.Line, msg)
}

// output renders and writes one line inside the critical section. The
// flags and prefix are read under the same lock that serializes writes.
func (l *Logger) output(now time.Time, level core.Level, file string, line int, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var location string
	if l.flags.ShowFile() {
		location = formatter.Location(file, line)
	}
	l.buf = formatter.AppendLine(l.buf[:0], l.flags, now, l.prefix, level, location, msg)
	l.write(l.buf)

	if cap(l.buf) > maxKeptBuffer {
		l.buf = nil
	}
}

// write performs the single Write of a line. Errors and panics from the
// sink are swallowed.
func (l *Logger) write(p []byte) {
	defer func() {
		if r := recover(); r != nil {
			l.stats.incrementSinkPanicked()
		}
	}()
	if _, err := l.out.Write(p); err != nil {
		l.stats.incrementWriteFailed()
		return
	}
	l.stats.incrementWritten()
}

// Debug logs a debug message
func (l *Logger) Debug(args ...interface{}) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.outputDepth(2, core.DebugLevel, fmt.Sprint(args...))
}

// Info logs an info message
func (l *Logger) Info(args ...interface{}) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.outputDepth(2, core.InfoLevel, fmt.Sprint(args...))
}

// Warn logs a warning message
func (l *Logger) Warn(args ...interface{}) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.outputDepth(2, core.WarnLevel, fmt.Sprint(args...))
}

// Error logs an error message
func (l *Logger) Error(args ...interface{}) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.outputDepth(2, core.ErrorLevel, fmt.Sprint(args...))
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.outputDepth(2, core.DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.outputDepth(2, core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.outputDepth(2, core.WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.outputDepth(2, core.ErrorLevel, fmt.Sprintf(format, args...))
}

// Level returns the minimum level that is written
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// SetLevel sets the minimum level that is written. On a registered
// logger the facade's max level follows.
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int32(level))
	if l.registered.Load() {
		facade.SetMaxLevel(level)
	}
}

// Flags returns the header flags
func (l *Logger) Flags() core.Flags {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flags
}

// SetFlags sets the header flags
func (l *Logger) SetFlags(flags core.Flags) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flags = flags
}

// Prefix returns the prefix
func (l *Logger) Prefix() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.prefix
}

// SetPrefix sets the prefix
func (l *Logger) SetPrefix(prefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prefix = prefix
}

// Writer returns the sink
func (l *Logger) Writer() sink.Sink {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out
}

// SetOutput replaces the sink. The previous sink is not closed.
func (l *Logger) SetOutput(w io.Writer) {
	s := sink.Wrap(w)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = s
}

// Registered reports whether the logger was installed with Init
func (l *Logger) Registered() bool {
	return l.registered.Load()
}

// Stats returns the write counters
func (l *Logger) Stats() Snapshot {
	return l.stats.Snapshot()
}

// Close flushes the sink and closes it if it is an io.Closer. The
// process standard streams are never closed.
func (l *Logger) Close() error {
	l.Flush()

	l.mu.Lock()
	defer l.mu.Unlock()
	if f, ok := l.out.(*os.File); ok && (f == os.Stdout || f == os.Stderr) {
		return nil
	}
	if c, ok := l.out.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
