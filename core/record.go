package core

import (
	"runtime"
	"sync"
)

// Record is a single log event as handed from the facade to a logger
type Record struct {
	Level   Level
	Message string
	// File and Line locate the call site. File is empty when unknown.
	File string
	Line int
}

// HasLocation reports whether the record carries a source location
func (r *Record) HasLocation() bool {
	return r.File != ""
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a cleared Record from the pool
func GetRecord() *Record {
	return recordPool.Get().(*Record)
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	*r = Record{}
	recordPool.Put(r)
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File    string
	Line    int
	Defined bool
}

// GetCaller retrieves caller information. GetCaller(0) describes the
// function that called GetCaller; each increment of skip climbs one frame.
func GetCaller(skip int) CallerInfo {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}
	return CallerInfo{
		File:    file,
		Line:    line,
		Defined: true,
	}
}
