// Package facade is the process-wide dispatch point between log call
// sites and a single installed logger implementation.
//
// The installed logger is process-wide state with a one-way lifecycle:
// nothing is installed at start, SetLogger installs an implementation
// exactly once through an atomic compare-and-swap, and every later call
// site reads it. There is no way to replace or remove it; a second
// SetLogger returns ErrAlreadyInitialized and keeps the first.
//
// Before installation all calls are discarded. Call sites check the
// global MaxLevel and the logger's Enabled before formatting their
// arguments, so a disabled call costs two atomic loads:
//
//	if err := facade.SetLogger(myLogger); err != nil {
//	    // another logger won
//	}
//	facade.Infof("listening on %s", addr)
//
// Any type with Enabled, Log and Flush methods can be installed; the
// logger package provides the text implementation and its Init helper.
package facade
