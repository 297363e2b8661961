package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var crashHandler atomic.Pointer[func(any)]

// SetCrashHandler installs the handler used by Go; frontends use it to restore the terminal
func SetCrashHandler(fn func(any)) {
	crashHandler.Store(&fn)
}

// HandleCrash routes a recovered panic to the installed handler, or prints and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}
	if fn := crashHandler.Load(); fn != nil && *fn != nil {
		(*fn)(r)
		return
	}
	fmt.Fprintf(os.Stderr, "\nCRASH DETECTED: %v\nStack Trace:\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
