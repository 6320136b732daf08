// Package vc2log is the thin logging wrapper used across the bitstream
// engine. It exists so call sites never reach for the zap API directly and
// so a no-op logger (the default) costs nothing on the hot parsing path.
package vc2log

import "go.uber.org/zap"

// Logger wraps a *zap.Logger, scoped to a single named component (e.g.
// "serdes", "vc2.parse_info").
type Logger struct {
	z *zap.Logger
}

// Nop returns a Logger that discards everything, the default for library
// use where the caller hasn't wired in its own zap core.
func Nop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// New wraps an existing *zap.Logger for use within this package's
// components, naming it name.
func New(base *zap.Logger, name string) *Logger {
	return &Logger{z: base.Named(name)}
}

// Debug logs a trace-level message with structured fields. Bitstream
// parsing emits one Debug call per token at most; callers that care about
// throughput should leave the default Nop logger in place.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.z.Debug(msg, fields...)
}

// Warn logs a recoverable anomaly (e.g. a bounded block that overran by a
// surprising number of bits) that isn't itself an error.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.z.Warn(msg, fields...)
}

// Error logs an error alongside the context it occurred in, without
// itself constructing the error value returned to the caller.
func (l *Logger) Error(msg string, err error, fields ...zap.Field) {
	l.z.Error(msg, append(fields, zap.Error(err))...)
}

// With returns a child Logger carrying additional structured fields on
// every subsequent call, e.g. the parse_code of the data unit being
// decoded.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{z: l.z.With(fields...)}
}
