package logger

import (
	"github.com/fatih/color" // Colored console output for the log levels below
)

// Colorized printing functions for the different log levels.
// Package-level variables holding functions that behave like fmt.Printf,
// with text colored according to the log level.

// Info logs informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta, signaling caution
// without being as alarming as an error.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red to draw immediate attention.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan if enabled, otherwise is a no-op.
// It is assigned during Init based on the debug flag.
var Debug func(format string, a ...any)

// Init enables or disables debug logging. When disabled, Debug becomes
// a no-op function so debug call sites cost nothing at runtime.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

func init() {
	// Commands call Init from their pre-run hook; default to quiet so
	// library-style use (tests) never hits a nil Debug.
	Init(false)
}
