package facade

import (
	"fmt"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/philipp01105/flaglog/core"
)

// ErrAlreadyInitialized is returned by SetLogger once a logger is installed
var ErrAlreadyInitialized = errors.New("facade: logger already initialized")

// Log is the contract between the facade and a logger implementation
type Log interface {
	// Enabled reports whether a record at level would be logged. It is
	// called on every log call and must not block.
	Enabled(level core.Level) bool
	// Log handles a record. The record is only valid for the duration of
	// the call.
	Log(record *core.Record)
	// Flush flushes any buffered output
	Flush()
}

// holder wraps the installed logger so it can be swapped atomically
type holder struct {
	log Log
}

var (
	installed atomic.Pointer[holder]
	maxLevel  atomic.Int32
)

// SetLogger installs l as the process-wide logger. It succeeds once; any
// later call returns ErrAlreadyInitialized and leaves the first logger in
// place.
func SetLogger(l Log) error {
	if l == nil {
		return errors.New("facade: nil logger")
	}
	if !installed.CompareAndSwap(nil, &holder{log: l}) {
		return ErrAlreadyInitialized
	}
	return nil
}

// Logger returns the installed logger, or a logger that discards
// everything when none is installed yet.
func Logger() Log {
	if h := installed.Load(); h != nil {
		return h.log
	}
	return nopLogger{}
}

// Initialized reports whether SetLogger has succeeded
func Initialized() bool {
	return installed.Load() != nil
}

// SetMaxLevel sets the global level filter checked at call sites before a
// record is built. It may be changed at any time.
func SetMaxLevel(level core.Level) {
	maxLevel.Store(int32(level))
}

// MaxLevel returns the global level filter. It defaults to DebugLevel.
func MaxLevel() core.Level {
	return core.Level(maxLevel.Load())
}

// Flush flushes the installed logger
func Flush() {
	Logger().Flush()
}

// enabled checks the global filter first so that disabled calls never
// reach the installed logger or format their arguments.
func enabled(level core.Level) bool {
	return level >= MaxLevel() && Logger().Enabled(level)
}

// Debug logs a debug message through the installed logger
func Debug(args ...interface{}) {
	if !enabled(core.DebugLevel) {
		return
	}
	output(core.DebugLevel, fmt.Sprint(args...))
}

// Info logs an info message through the installed logger
func Info(args ...interface{}) {
	if !enabled(core.InfoLevel) {
		return
	}
	output(core.InfoLevel, fmt.Sprint(args...))
}

// Warn logs a warning message through the installed logger
func Warn(args ...interface{}) {
	if !enabled(core.WarnLevel) {
		return
	}
	output(core.WarnLevel, fmt.Sprint(args...))
}

// Error logs an error message through the installed logger
func Error(args ...interface{}) {
	if !enabled(core.ErrorLevel) {
		return
	}
	output(core.ErrorLevel, fmt.Sprint(args...))
}

// Debugf logs a formatted debug message through the installed logger
func Debugf(format string, args ...interface{}) {
	if !enabled(core.DebugLevel) {
		return
	}
	output(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs a formatted info message through the installed logger
func Infof(format string, args ...interface{}) {
	if !enabled(core.InfoLevel) {
		return
	}
	output(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning message through the installed logger
func Warnf(format string, args ...interface{}) {
	if !enabled(core.WarnLevel) {
		return
	}
	output(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message through the installed logger
func Errorf(format string, args ...interface{}) {
	if !enabled(core.ErrorLevel) {
		return
	}
	output(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// output builds a pooled record for the caller and hands it to the
// installed logger.
func output(level core.Level, msg string) {
	rec := core.GetRecord()
	rec.Level = level
	rec.Message = msg
	// skip output and the exported wrapper
	if c := core.GetCaller(2); c.Defined {
		rec.File = c.File
		rec.Line = c.Line
	}
	Logger().Log(rec)
	core.PutRecord(rec)
}

type nopLogger struct{}

func (nopLogger) Enabled(core.Level) bool { return false }
func (nopLogger) Log(*core.Record)        {}
func (nopLogger) Flush()                  {}
