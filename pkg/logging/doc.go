// Package logging provides a minimal logging facade for the paillier module.
//
// The Logger interface wraps the subset of log/slog the library needs, so an
// application can plug in its own implementation for testing, redaction or
// integration with an existing logging system.
//
// # Default Implementation
//
//	// Use slog.Default()
//	logger := logging.New(nil)
//
//	// Use a custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
// # Redaction
//
// Key material must never reach a log line. Mark the attribute instead:
//
//	logger.Debug(ctx, "private key decoded", logging.Redacted("lambda"))
//	// Logs: lambda=[redacted]
//
// Secret keeps the bit length of a redacted integer, which is often the only
// detail worth seeing when debugging key generation:
//
//	logger.Debug(ctx, "prime found", logging.Secret("p", p))
//	// Logs: p.value=[redacted] p.bits=1024
//
// Discard returns a Logger that drops everything; the paillier package uses it
// when no logger is configured.
package logging
