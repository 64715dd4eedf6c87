// Package formatter renders the header of a flaglog line.
//
// The header is built from a Flags bitmask, an instant, a prefix, a level
// and an optional "file:line" location:
//
//	myprogram: DEBUG 2020/10/02 21:27:03.123123 main.go:12: hello, world
//	^prefix    ^level ^Ldate    ^Ltime+Lmicroseconds ^Lshortfile
//
// Render is a pure function: the instant is passed in, never read from
// the clock, so the same inputs always produce the same string. The
// logger uses the Append-style variants (AppendHeader, AppendLine) to
// format straight into its own buffer without intermediate strings.
//
// Level tags are pre-computed and left-aligned in a five column field
// ("INFO  ", "DEBUG ") so that messages line up. Dates and times are
// written with a small fixed-width itoa rather than time.Format.
package formatter
