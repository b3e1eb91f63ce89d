package testing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arloliu/repairtime/types"
)

// NewTestLogger returns a Logger that writes solver output through t.Logf,
// so it only shows up for failing or verbose test runs.
//
// Fields are rendered as key=value pairs; a trailing key without a value is
// printed as key=<missing>. Fatal fails the test instead of exiting.
func NewTestLogger(tb testing.TB) types.Logger {
	return &testLogger{tb: tb}
}

type testLogger struct {
	tb testing.TB
}

var _ types.Logger = (*testLogger)(nil)

func (l *testLogger) Debug(msg string, keysAndValues ...any) {
	l.log("DEBUG", msg, keysAndValues)
}

func (l *testLogger) Info(msg string, keysAndValues ...any) {
	l.log("INFO", msg, keysAndValues)
}

func (l *testLogger) Warn(msg string, keysAndValues ...any) {
	l.log("WARN", msg, keysAndValues)
}

func (l *testLogger) Error(msg string, keysAndValues ...any) {
	l.log("ERROR", msg, keysAndValues)
}

func (l *testLogger) Fatal(msg string, keysAndValues ...any) {
	l.tb.Helper()
	l.tb.Fatal(formatEntry("FATAL", msg, keysAndValues))
}

func (l *testLogger) log(level, msg string, keysAndValues []any) {
	l.tb.Helper()
	l.tb.Log(formatEntry(level, msg, keysAndValues))
}

func formatEntry(level, msg string, keysAndValues []any) string {
	var sb strings.Builder
	sb.WriteString(level)
	sb.WriteString(": ")
	sb.WriteString(msg)

	for i := 0; i < len(keysAndValues); i += 2 {
		fmt.Fprintf(&sb, " %v=", keysAndValues[i])
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&sb, "%v", keysAndValues[i+1])
		} else {
			sb.WriteString("<missing>")
		}
	}

	return sb.String()
}
