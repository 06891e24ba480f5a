// Package logger provides a structured logging facility based on Zap.
//
// # Configuration
//
//   - Level: debug (development config), info, warn, error
//   - Format: json or console
//
// # Request Correlation
//
// WithRayID attaches the request's RayID (set by core/middleware/rayid) to a
// logger, so every line logged while serving an upload can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Upload failed", zap.Error(err))
package logger
