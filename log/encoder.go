package log

import (
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"
)

// ANSI SGR codes used by the console encoder.
const (
	codeRed   = "31"
	codeGreen = "32"
	codeWhite = "37"
	codeGray  = "90"
	codeBold  = "1"
)

// Colour helpers, exported so host programs can match the console output.
var (
	Red   = ansi(codeRed)
	Green = ansi(codeGreen)
	White = ansi(codeWhite)
	Gray  = ansi(codeGray)
	Bold  = ansi(codeBold)
)

func ansi(code string) func(any) string {
	return func(v any) string {
		return fmt.Sprintf("\x1b[%sm%v\x1b[0m", code, v)
	}
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Gray(t.Format("02/01 15:04:05")))
}

func levelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(levelColor(level))
}

func callerEncoder(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Gray("@" + caller.TrimmedPath()))
}

func nameEncoder(name string, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(White(Bold(name)))
}

func levelColor(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return Green(level.CapitalString())
	case zapcore.InfoLevel:
		return White(Bold(level.CapitalString()))
	case zapcore.WarnLevel:
		return Gray(Bold(level.CapitalString()))
	default:
		return Red(Bold(level.CapitalString()))
	}
}
