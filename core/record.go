package core

import (
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Record represents one logging event. It is created at the call site,
// consumed synchronously by handlers and never retained by them.
type Record struct {
	Time    time.Time
	Level   Level
	Target  string
	Message string
	Caller  CallerInfo
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	// Module is the import path of the package that emitted the record.
	Module  string
	Defined bool
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Now()
	r.Caller = CallerInfo{}
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.Target = ""
	r.Message = ""
	r.Caller = CallerInfo{}
	recordPool.Put(r)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Module:    PackagePath(funcName),
		Defined:   true,
	}
}

// PackagePath extracts the package import path from a fully qualified
// function name such as "github.com/a/b.(*T).Method".
func PackagePath(funcName string) string {
	if funcName == "" {
		return ""
	}
	slash := strings.LastIndexByte(funcName, '/')
	dot := strings.IndexByte(funcName[slash+1:], '.')
	if dot < 0 {
		return funcName
	}
	return funcName[:slash+1+dot]
}
