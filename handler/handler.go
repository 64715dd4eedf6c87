package handler

import (
	"strconv"
	"strings"

	"github.com/philipp01105/flaglog/facade"
)

// target returns l, or the facade's installed logger when l is nil so that
// a bridge built before registration follows it.
func target(l facade.Log) facade.Log {
	if l != nil {
		return l
	}
	return facade.Logger()
}

// appendKV appends " key=value" to a message, quoting values that would
// otherwise be ambiguous.
func appendKV(b *strings.Builder, key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	if needsQuoting(value) {
		b.WriteString(strconv.Quote(value))
		return
	}
	b.WriteString(value)
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' || r == 0x7f {
			return true
		}
	}
	return false
}
