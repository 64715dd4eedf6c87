package logger

import (
	"github.com/philipp01105/flaglog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// Flags Re-export type and constants for convenience
type Flags = core.Flags

const (
	Ldate         = core.Ldate
	Ltime         = core.Ltime
	Lmicroseconds = core.Lmicroseconds
	Llongfile     = core.Llongfile
	Lshortfile    = core.Lshortfile
	LUTC          = core.LUTC
	Lmsgprefix    = core.Lmsgprefix
	LstdFlags     = core.LstdFlags
)

// ParseLevel converts a string to a Level, falling back to InfoLevel
func ParseLevel(s string) Level {
	level, _ := core.ParseLevel(s)
	return level
}
