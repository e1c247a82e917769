/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package logger

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

type logPrinter struct {
	logLevel TLogLevel
}

var globalLogPrinter = logPrinter{logLevel: LogLevelInfo}

// Key of context value with log attributes
type ctxKey struct{}

func isEnabled(logLevel TLogLevel) bool {
	return TLogLevel(atomic.LoadInt32((*int32)(&globalLogPrinter.logLevel))) >= logLevel
}

var levelPrefixes = [...]string{
	LogLevelError:   errorPrefix,
	LogLevelWarning: warningPrefix,
	LogLevelInfo:    infoPrefix,
	LogLevelVerbose: verbosePrefix,
	LogLevelTrace:   tracePrefix,
}

func getLevelPrefix(level TLogLevel) string {
	if level >= 0 && int(level) < len(levelPrefixes) {
		return levelPrefixes[level]
	}
	return ""
}

// Returns short name of function and line of caller, skip is count of frames to skip
func (p *logPrinter) getFuncName(skip int) (funcName string, line int) {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return "", 0
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
		if i := strings.LastIndex(funcName, "/"); i >= 0 {
			funcName = funcName[i+1:]
		}
	}
	return funcName, line
}

func (p *logPrinter) getFormattedMsg(msgType string, funcName string, line int, args ...interface{}) string {
	var b strings.Builder
	b.WriteString(time.Now().Format(timeFormat))
	b.WriteString(": ")
	b.WriteString(msgType)
	fmt.Fprintf(&b, ": [%s:%d]:", funcName, line)
	for _, arg := range args {
		b.WriteByte(' ')
		fmt.Fprint(&b, arg)
	}
	return b.String()
}

func (p *logPrinter) print(skip int, level TLogLevel, args ...interface{}) {
	funcName, line := p.getFuncName(skip)
	PrintLine(level, p.getFormattedMsg(getLevelPrefix(level), funcName, line, args...))
}

func printIfLevel(level TLogLevel, args ...interface{}) {
	if isEnabled(level) {
		globalLogPrinter.print(skipFrames+1, level, args...)
	}
}
