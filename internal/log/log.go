// Package log provides leveled logging for the sheet engine. Warnings are
// always printed; debug output is gated behind EnableDebug.
package log

import (
	"log"
	"os"

	"github.com/logrusorgru/aurora"
)

var (
	Output = os.Stderr
	Flags  = log.Ltime | log.Lmicroseconds

	PrefixWarn   = "Warn:  "
	PrefixInfo   = "Info:  "
	PrefixDebug  = "Debug: "
	DebugGreyLvl = uint8(11)

	EnableDebug = false
)

var (
	logWarn  *log.Logger
	logInfo  *log.Logger
	logDebug *log.Logger
)

func init() {
	ResetLoggers()
}

func newLogger(prefix aurora.Value) *log.Logger {
	return log.New(Output, prefix.Bold().String(), Flags)
}

func ResetLoggers() {
	logWarn = newLogger(aurora.Yellow(PrefixWarn))
	logInfo = newLogger(aurora.Blue(PrefixInfo))
	logDebug = newLogger(aurora.Gray(DebugGreyLvl, PrefixDebug))
}

func Warnf(f string, v ...interface{}) {
	logWarn.Printf(f, v...)
}

func Warnln(v ...interface{}) {
	logWarn.Println(v...)
}

func Infof(f string, v ...interface{}) {
	logInfo.Printf(f, v...)
}

func Infoln(v ...interface{}) {
	logInfo.Println(v...)
}

func Debugf(f string, v ...interface{}) {
	if !EnableDebug {
		return
	}
	logDebug.Printf(f, v...)
}

func Debugln(v ...interface{}) {
	if !EnableDebug {
		return
	}
	logDebug.Println(v...)
}
