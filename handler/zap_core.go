package handler

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/flaglog/core"
	"github.com/philipp01105/flaglog/facade"
)

// ZapCore implements zapcore.Core on top of a facade.Log, so a *zap.Logger
// built with zap.New(handler.NewZapCore(l)) writes flaglog lines.
//
// Fields are appended to the message as key=value text, sorted by key.
type ZapCore struct {
	log    facade.Log
	fields []zapcore.Field
}

var _ zapcore.Core = (*ZapCore)(nil)

// NewZapCore creates a zapcore.Core adapter. A nil l routes to whatever
// logger the facade has installed at the time of each call.
func NewZapCore(l facade.Log) *ZapCore {
	return &ZapCore{log: l}
}

// Enabled reports whether entries at lvl are written.
func (c *ZapCore) Enabled(lvl zapcore.Level) bool {
	return target(c.log).Enabled(zapLevelToCore(lvl))
}

// With returns a copy of the core carrying additional fields.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	newFields := make([]zapcore.Field, len(c.fields), len(c.fields)+len(fields))
	copy(newFields, c.fields)
	newFields = append(newFields, fields...)
	return &ZapCore{
		log:    c.log,
		fields: newFields,
	}
}

// Check adds the core to ce when the entry's level is enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write hands the entry to the logger. It never fails; sink errors are
// handled by the logger.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	var msg strings.Builder
	msg.WriteString(ent.Message)
	if len(c.fields)+len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range c.fields {
			f.AddTo(enc)
		}
		for _, f := range fields {
			f.AddTo(enc)
		}
		keys := make([]string, 0, len(enc.Fields))
		for k := range enc.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			appendKV(&msg, k, fmt.Sprint(enc.Fields[k]))
		}
	}

	rec := core.GetRecord()
	rec.Level = zapLevelToCore(ent.Level)
	rec.Message = msg.String()
	if ent.Caller.Defined {
		rec.File = ent.Caller.File
		rec.Line = ent.Caller.Line
	}

	target(c.log).Log(rec)
	core.PutRecord(rec)
	return nil
}

// Sync flushes the logger.
func (c *ZapCore) Sync() error {
	target(c.log).Flush()
	return nil
}

// zapLevelToCore converts a zapcore.Level to a core.Level. DPanic, Panic
// and Fatal are written as errors; zap itself handles the panic or exit.
func zapLevelToCore(lvl zapcore.Level) core.Level {
	switch {
	case lvl >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case lvl == zapcore.WarnLevel:
		return core.WarnLevel
	case lvl == zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
