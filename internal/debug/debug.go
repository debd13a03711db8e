// Package debug provides opt-in diagnostic tracing for the solidid CLI.
// Output is off unless enabled at build time or via the DEBUG environment
// variable, and goes to stderr by default so it never mixes with emitted
// identifiers on stdout.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Build flag for debug mode - can be overridden at build time
// go build -ldflags "-X github.com/ivan-a-souza/solid-id/internal/debug.EnableDebug=true"
var EnableDebug = "false"

// debugOutput is the writer for debug output
var debugOutput io.Writer = os.Stderr

// debugMutex protects access to debug output
var debugMutex sync.Mutex

// runtimeEnable turns tracing on for this process regardless of the build
// flag or environment, set from CLI verbosity.
var runtimeEnable bool

// SetEnabled turns debug tracing on or off at runtime.
func SetEnabled(enabled bool) {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	runtimeEnable = enabled
}

// SetOutput sets a custom writer for debug output.
// Pass nil to disable debug output entirely.
func SetOutput(w io.Writer) {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	debugOutput = w
}

// IsEnabled returns true if debug mode is enabled
func IsEnabled() bool {
	debugMutex.Lock()
	enabled := runtimeEnable
	debugMutex.Unlock()
	if enabled {
		return true
	}
	if EnableDebug == "true" {
		return true
	}
	if os.Getenv("DEBUG") == "1" || os.Getenv("DEBUG") == "true" {
		return true
	}
	return false
}

func writer() io.Writer {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	return debugOutput
}

// Printf prints debug information only when debug mode is enabled and output is configured
func Printf(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	w := writer()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[DEBUG] "+format, args...)
}

// Log provides structured debug logging with component names
func Log(component, format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	w := writer()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[DEBUG:%s] "+format, append([]interface{}{component}, args...)...)
}

// LogParse provides debug logging specifically for parse/validate operations
func LogParse(format string, args ...interface{}) {
	Log("PARSE", format, args...)
}

// LogGen provides debug logging specifically for generation operations
func LogGen(format string, args ...interface{}) {
	Log("GEN", format, args...)
}
