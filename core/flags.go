package core

import (
	"fmt"
	"strings"
)

// Flags selects the elements of a log header. Bits are OR'ed together to
// control what is printed. Apart from Lmsgprefix there is no control over
// the order they appear (the order listed here) or the format they present.
//
// For example, flags Ldate | Ltime produce
//
//	INFO  2009/01/23 01:23:23 message
//
// while flags Ldate | Ltime | Lmicroseconds | Llongfile produce
//
//	INFO  2009/01/23 01:23:23.123123 /a/b/c/d.go:23: message
type Flags uint8

const (
	Ldate         Flags = 1 << iota // the date in the local time zone: 2009/01/23
	Ltime                           // the time in the local time zone: 01:23:23
	Lmicroseconds                   // microsecond resolution: 01:23:23.123123. assumes Ltime.
	Llongfile                       // full file name and line number: /a/b/c/d.go:23
	Lshortfile                      // final file name element and line number: d.go:23. overrides Llongfile
	LUTC                            // if Ldate or Ltime is set, use UTC rather than the local time zone
	Lmsgprefix                      // move the prefix from the beginning of the line to before the message

	// LstdFlags are the initial values for a logger built with defaults
	LstdFlags = Ldate | Ltime
)

var flagNames = [...]struct {
	flag Flags
	name string
}{
	{Ldate, "date"},
	{Ltime, "time"},
	{Lmicroseconds, "microseconds"},
	{Llongfile, "longfile"},
	{Lshortfile, "shortfile"},
	{LUTC, "utc"},
	{Lmsgprefix, "msgprefix"},
}

// Has reports whether every bit of mask is set in f
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// ShowDate reports whether the header carries a date
func (f Flags) ShowDate() bool {
	return f&Ldate != 0
}

// ShowTime reports whether the header carries a time of day.
// Lmicroseconds alone is enough.
func (f Flags) ShowTime() bool {
	return f&(Ltime|Lmicroseconds) != 0
}

// ShowFile reports whether the header carries a source location
func (f Flags) ShowFile() bool {
	return f&(Llongfile|Lshortfile) != 0
}

// ShortFile reports whether the location is trimmed to its base name.
// Lshortfile takes precedence when both file flags are set.
func (f Flags) ShortFile() bool {
	return f&Lshortfile != 0
}

// String returns the flags as a "|" separated list, e.g. "date|time"
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var b strings.Builder
	for _, fn := range flagNames {
		if f&fn.flag == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(fn.name)
	}
	return b.String()
}

// ParseFlags parses a "|" or "," separated list of flag names as produced
// by String. "std" expands to LstdFlags and "none" to zero.
func ParseFlags(s string) (Flags, error) {
	var f Flags
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		name := strings.ToLower(strings.TrimSpace(part))
		switch name {
		case "", "none":
			continue
		case "std":
			f |= LstdFlags
			continue
		}
		found := false
		for _, fn := range flagNames {
			if fn.name == name {
				f |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown log flag %q", part)
		}
	}
	return f, nil
}
