package ports

// Logger is the console sink for user-facing messages.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info reports progress or context.
	Info(msg string)
	// Ok reports a completed change.
	Ok(msg string)
	// Warn reports a no-op or a recovered problem.
	Warn(msg string)
	// Error reports a failure.
	Error(err error)
}
