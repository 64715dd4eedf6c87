// Package core defines the shared types used across flaglog.
//
// It provides the Level type for severity filtering, the Flags bitmask
// that selects header elements, and the Record type that represents a
// single log event travelling from the facade to a logger.
//
// Flags follow the standard library log package: Ldate, Ltime,
// Lmicroseconds, Llongfile, Lshortfile, LUTC and Lmsgprefix, with
// LstdFlags as the Ldate|Ltime composite. Two rules are applied when a
// header is rendered rather than encoded in the bits: Lmicroseconds
// implies a full time of day, and Lshortfile overrides Llongfile.
//
// Records built by the facade call-site functions come from a sync.Pool.
// Callers get a Record with GetRecord and return it with PutRecord once
// the logger has consumed it.
package core
