package handler

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"github.com/philipp01105/flaglog/core"
	"github.com/philipp01105/flaglog/facade"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// facade.Log, so log/slog call sites end up in a flaglog Logger.
//
// Attributes are appended to the message as key=value text. The record
// time is ignored; the logger stamps the line with its own clock.
type SlogHandler struct {
	log   facade.Log
	attrs string // pre-rendered " key=value" pairs from WithAttrs
	group string
}

// NewSlogHandler creates a new slog.Handler adapter. A nil l routes to
// whatever logger the facade has installed at the time of each call.
func NewSlogHandler(l facade.Log) *SlogHandler {
	return &SlogHandler{log: l}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return target(s.log).Enabled(slogLevelToCore(level))
}

// Handle converts a slog.Record to a core.Record and passes it on.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var msg strings.Builder
	msg.WriteString(record.Message)
	msg.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&msg, s.group, a)
		return true
	})

	rec := core.GetRecord()
	rec.Level = slogLevelToCore(record.Level)
	rec.Message = msg.String()
	if record.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{record.PC})
		f, _ := frames.Next()
		rec.File = f.File
		rec.Line = f.Line
	}

	target(s.log).Log(rec)
	core.PutRecord(rec)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&b, s.group, a)
	}
	return &SlogHandler{
		log:   s.log,
		attrs: b.String(),
		group: s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		log:   s.log,
		attrs: s.attrs,
		group: newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr renders a, flattening groups into dotted keys.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}
	appendKV(b, key, a.Value.String())
}
