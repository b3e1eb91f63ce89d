package types

// Logger is the structured logger the solver and its ceiling strategies write to.
//
// Fields are passed as alternating key/value pairs. The solver emits:
//   - Debug "solved minimal completion time": workers, requirement, ceiling,
//     minTime, iterations, fingerprint
//   - Warn "rejected solver input" and "time ceiling too low"
//   - Error "time ceiling unavailable"
//
// Fatal is never called by the library; it exists so that application loggers
// such as a zap.SugaredLogger satisfy the interface unchanged.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)

	// Fatal logs and terminates the process.
	Fatal(msg string, keysAndValues ...any)
}
