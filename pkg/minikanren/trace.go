package minikanren

import (
	"log"
	"os"
	"sync/atomic"
)

// Lightweight, opt-in tracing for the unification/stream-forcing hot
// path. Enable by setting env var KANREN_TRACE=1. Grounded directly on
// the teacher's wfs_trace.go (GOKANDO_WFS_TRACE / wfsTraceEnabled /
// wfsTracef), renamed to the kernel concerns that survive here (WFS
// tabling itself is a non-goal, see DESIGN.md).
//
// Disabled (the default), each call site costs one atomic load and
// nothing else: no formatting, no allocation.

var traceEnabled atomic.Bool

func init() {
	if os.Getenv("KANREN_TRACE") == "1" {
		traceEnabled.Store(true)
	}
}

// EnableTrace turns on diagnostic logging programmatically, for hosts
// that cannot set environment variables before the process starts.
func EnableTrace() { traceEnabled.Store(true) }

// DisableTrace turns diagnostic logging back off.
func DisableTrace() { traceEnabled.Store(false) }

func tracef(format string, args ...any) {
	if !traceEnabled.Load() {
		return
	}
	log.Printf("[kanren] "+format, args...)
}
