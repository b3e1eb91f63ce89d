package logger

import (
	"sync"

	"github.com/arloliu/repairtime/types"
)

// Entry is a single record captured by Recorder.
type Entry struct {
	Level         string
	Msg           string
	KeysAndValues []any
}

// Value returns the value logged under key, or nil.
func (e Entry) Value(key string) any {
	for i := 0; i+1 < len(e.KeysAndValues); i += 2 {
		if k, ok := e.KeysAndValues[i].(string); ok && k == key {
			return e.KeysAndValues[i+1]
		}
	}

	return nil
}

// Recorder captures log records in memory so tests can assert on them.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Compile-time assertion that Recorder implements Logger.
var _ types.Logger = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(level, msg string, keysAndValues []any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, Entry{Level: level, Msg: msg, KeysAndValues: keysAndValues})
}

// Debug records a debug-level message.
func (r *Recorder) Debug(msg string, keysAndValues ...any) { r.record("DEBUG", msg, keysAndValues) }

// Info records an info-level message.
func (r *Recorder) Info(msg string, keysAndValues ...any) { r.record("INFO", msg, keysAndValues) }

// Warn records a warning-level message.
func (r *Recorder) Warn(msg string, keysAndValues ...any) { r.record("WARN", msg, keysAndValues) }

// Error records an error-level message.
func (r *Recorder) Error(msg string, keysAndValues ...any) { r.record("ERROR", msg, keysAndValues) }

// Fatal records a fatal-level message without exiting.
func (r *Recorder) Fatal(msg string, keysAndValues ...any) { r.record("FATAL", msg, keysAndValues) }

// Entries returns a copy of all captured records.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)

	return out
}

// Find returns the first record with the given level and message.
func (r *Recorder) Find(level, msg string) (Entry, bool) {
	for _, e := range r.Entries() {
		if e.Level == level && e.Msg == msg {
			return e, true
		}
	}

	return Entry{}, false
}
