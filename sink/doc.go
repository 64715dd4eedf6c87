// Package sink provides output destinations for flaglog.
//
// A Sink is anything that can write bytes and flush them; it shares the
// method set of zap's zapcore.WriteSyncer. Stderr, Stdout and Discard
// cover the common cases, Wrap adapts an arbitrary io.Writer (flushing
// *bufio.Writer and friends on Sync) and Multi fans writes out to several
// sinks.
//
// FileSink appends to a file and takes an exclusive gofrs/flock lock on a
// sibling ".lock" file around each write, so processes sharing a log file
// never interleave partial lines. It does not rotate.
package sink
