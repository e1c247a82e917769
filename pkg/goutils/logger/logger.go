/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package logger

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// Level of log messages. Messages of levels greater than current level are not printed
type TLogLevel int32

const (
	LogLevelNone = TLogLevel(iota)
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelVerbose
	LogLevelTrace
)

// Sets current level, returns previous one. Safe for concurrent use
func SetLogLevel(logLevel TLogLevel) (old TLogLevel) {
	return TLogLevel(atomic.SwapInt32((*int32)(&globalLogPrinter.logLevel), int32(logLevel)))
}

// Sets current level, returns func to restore previous one. Useful in tests
func SetLogLevelWithRestore(logLevel TLogLevel) (restore func()) {
	old := SetLogLevel(logLevel)
	return func() { SetLogLevel(old) }
}

func Error(args ...interface{}) { printIfLevel(LogLevelError, args...) }
func Warning(args ...interface{}) { printIfLevel(LogLevelWarning, args...) }
func Info(args ...interface{}) { printIfLevel(LogLevelInfo, args...) }
func Verbose(args ...interface{}) { printIfLevel(LogLevelVerbose, args...) }
func Trace(args ...interface{}) { printIfLevel(LogLevelTrace, args...) }

// Use to avoid expensive args evaluation
func IsVerbose() bool { return isEnabled(LogLevelVerbose) }
func IsTrace() bool { return isEnabled(LogLevelTrace) }

// Prints formatted log line. Replace in tests to capture output
var PrintLine func(level TLogLevel, line string) = DefaultPrintLine

// Prints error lines to stderr, other lines to stdout
func DefaultPrintLine(level TLogLevel, line string) {
	var w io.Writer = os.Stdout
	if level == LogLevelError {
		w = os.Stderr
	}
	fmt.Fprintln(w, line)
}
