// Package logger is the public API of flaglog. Most users only need to
// import this package.
//
// A Logger writes one line per record in the style of the standard
// library log package, with a level tag after the prefix:
//
//	DEBUG 2020/10/02 21:27:03 hello, world
//	myprogram: DEBUG 2020/10/02 21:27:03.123123 main.go:12: hello, world
//
// The first line uses the defaults (LstdFlags, no prefix), the second
// LstdFlags|Lshortfile|Lmicroseconds with the prefix "myprogram: ".
//
// Build a Logger with the Builder and install it as the process-wide
// implementation of the facade package with Init:
//
//	log := logger.NewBuilder().
//	    WithLevel(logger.DebugLevel).
//	    WithFlags(logger.LstdFlags | logger.Lshortfile | logger.Lmicroseconds).
//	    WithPrefix("myprogram: ").
//	    Build()
//	if err := logger.Init(log); err != nil {
//	    // a logger was already installed
//	}
//	facade.Debug("hello, world")
//
// Init succeeds once per process. After it the Logger is shared by every
// call site; its setters stay safe to use because formatting and writing
// happen in one critical section guarded by the Logger's mutex. The level
// filter is an atomic, so Enabled is lock-free and filtered calls cost a
// single load.
//
// Each line reaches the sink in exactly one Write. Sink errors are never
// returned to the caller; they are counted in Stats.
package logger
