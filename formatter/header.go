package formatter

import (
	"strings"
	"time"

	"github.com/philipp01105/flaglog/core"
)

// UnknownLocation is rendered when a file flag is set but the record
// carries no source location.
const UnknownLocation = "???:0"

// pre-formatted level tags, left-aligned in a five column field
var levelTags = [...]string{
	core.DebugLevel: "DEBUG ",
	core.InfoLevel:  "INFO  ",
	core.WarnLevel:  "WARN  ",
	core.ErrorLevel: "ERROR ",
}

// Render returns the header for one log line: prefix, level tag, then the
// date, time and source location selected by flags. location has the form
// "file:line". The result has no trailing newline.
func Render(flags core.Flags, t time.Time, prefix string, level core.Level, location string) string {
	buf := getBuffer()
	*buf = AppendHeader(*buf, flags, t, prefix, level, location)
	s := string(*buf)
	putBuffer(buf)
	return s
}

// AppendHeader appends the header rendered by Render to dst and returns
// the extended slice.
func AppendHeader(dst []byte, flags core.Flags, t time.Time, prefix string, level core.Level, location string) []byte {
	if flags&core.Lmsgprefix == 0 {
		dst = append(dst, prefix...)
	}

	if level.Valid() {
		dst = append(dst, levelTags[level]...)
	} else {
		dst = append(dst, level.String()...)
		dst = append(dst, ' ')
	}

	if flags.ShowDate() || flags.ShowTime() {
		if flags&core.LUTC != 0 {
			t = t.UTC()
		}
		if flags.ShowDate() {
			year, month, day := t.Date()
			dst = itoa(dst, year, 4)
			dst = append(dst, '/')
			dst = itoa(dst, int(month), 2)
			dst = append(dst, '/')
			dst = itoa(dst, day, 2)
			dst = append(dst, ' ')
		}
		if flags.ShowTime() {
			hour, min, sec := t.Clock()
			dst = itoa(dst, hour, 2)
			dst = append(dst, ':')
			dst = itoa(dst, min, 2)
			dst = append(dst, ':')
			dst = itoa(dst, sec, 2)
			if flags&core.Lmicroseconds != 0 {
				dst = append(dst, '.')
				dst = itoa(dst, t.Nanosecond()/1e3, 6)
			}
			dst = append(dst, ' ')
		}
	}

	if flags.ShowFile() {
		if location == "" {
			location = UnknownLocation
		}
		if flags.ShortFile() {
			location = shortLocation(location)
		}
		dst = append(dst, location...)
		dst = append(dst, ": "...)
	}

	if flags&core.Lmsgprefix != 0 {
		dst = append(dst, prefix...)
	}
	return dst
}

// AppendLine appends a complete log line: the header, msg, and a newline
// unless msg already ends with one.
func AppendLine(dst []byte, flags core.Flags, t time.Time, prefix string, level core.Level, location, msg string) []byte {
	dst = AppendHeader(dst, flags, t, prefix, level, location)
	dst = append(dst, msg...)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		dst = append(dst, '\n')
	}
	return dst
}

// Location joins a file and line into the "file:line" form taken by
// Render. An empty file yields UnknownLocation.
func Location(file string, line int) string {
	if file == "" {
		return UnknownLocation
	}
	buf := make([]byte, 0, len(file)+8)
	buf = append(buf, file...)
	buf = append(buf, ':')
	buf = itoa(buf, line, -1)
	return string(buf)
}

// shortLocation drops every directory from a "path:line" location.
func shortLocation(location string) string {
	if i := strings.LastIndexByte(location, '/'); i >= 0 {
		return location[i+1:]
	}
	return location
}
