package logger

import (
	"sync"

	"github.com/philipp01105/flaglog/facade"
)

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
)

// Default returns a logger built with NewBuilder defaults: every level,
// LstdFlags, no prefix, standard error. It is created on first use and is
// not registered with the facade.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = NewBuilder().Build()
	})
	return defaultLogger
}

// Init installs l as the process-wide logger and sets the facade max level
// to l's level. It fails with facade.ErrAlreadyInitialized when a logger is
// already installed; l is then left unregistered.
func Init(l *Logger) error {
	if err := facade.SetLogger(l); err != nil {
		return err
	}
	l.registered.Store(true)
	facade.SetMaxLevel(l.Level())
	return nil
}
