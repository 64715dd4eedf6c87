// Package handler bridges other logging front ends onto flaglog.
//
// Programs that already log through log/slog or go.uber.org/zap can route
// those calls into a flaglog Logger (or any facade.Log) and get the same
// flag-driven text lines:
//
//   - SlogHandler implements slog.Handler. Install it with
//     slog.SetDefault(slog.New(handler.NewSlogHandler(nil))).
//   - ZapCore implements zapcore.Core. Build a logger with
//     zap.New(handler.NewZapCore(nil), zap.AddCaller()).
//
// Passing nil routes every call to the logger the facade has installed at
// that moment, so a bridge may be created before registration. Attributes
// and fields are flattened into key=value text after the message; the
// logger still writes exactly one line per record.
//
// Levels are mapped onto the four flaglog levels: anything at or above
// the front end's error level becomes ERROR, anything below info becomes
// DEBUG.
package handler
