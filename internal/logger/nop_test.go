package logger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/repairtime/types"
)

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	var _ types.Logger = logger

	require.NotPanics(t, func() {
		logger.Debug("test message", "key", "value")
		logger.Info("test message", "key", "value")
		logger.Warn("test message", "key", "value")
		logger.Error("test message", "key", "value")
		logger.Fatal("test message", "key", "value") // Should NOT exit
	})
}

func TestNopLogger_NoSideEffects(t *testing.T) {
	logger := NewNop()

	require.NotPanics(t, func() {
		logger.Debug("")
		logger.Info("", nil)
		logger.Warn("message")
		logger.Error("message", "single")
		logger.Fatal("message", "k1", "v1", "k2", "v2")
	})
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()

	rec.Debug("solved", "minTime", int64(16), "iterations", 7)
	rec.Warn("rejected input", "error", "no workers")
	rec.Fatal("boom")

	entries := rec.Entries()
	require.Len(t, entries, 3)
	require.Equal(t, "DEBUG", entries[0].Level)
	require.Equal(t, int64(16), entries[0].Value("minTime"))
	require.Equal(t, 7, entries[0].Value("iterations"))
	require.Nil(t, entries[0].Value("missing"))

	e, ok := rec.Find("WARN", "rejected input")
	require.True(t, ok)
	require.Equal(t, "no workers", e.Value("error"))

	_, ok = rec.Find("INFO", "solved")
	require.False(t, ok)
}

func TestRecorder_OddKeyValues(t *testing.T) {
	rec := NewRecorder()
	rec.Info("msg", "dangling")

	e, ok := rec.Find("INFO", "msg")
	require.True(t, ok)
	require.Nil(t, e.Value("dangling"))
}

func BenchmarkNopLogger(b *testing.B) {
	logger := NewNop()

	for b.Loop() {
		logger.Debug("benchmark message", "key1", "value1", "key2", 42)
	}
}
