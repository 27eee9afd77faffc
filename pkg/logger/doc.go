// Package logger builds log/slog loggers from functional options and offers
// attribute helpers so that keys stay consistent across the codebase.
//
// # Usage
//
//	import "github.com/dmitrymomot/namer/pkg/logger"
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "namer"),
//	)
//	logger.SetAsDefault(log)
//
//	log.Warn("filename generation failed",
//	    logger.Strategy("hash"),
//	    logger.Error(err),
//	)
//
// # Configuration
//
//   - WithEnvironment – level and format defaults per environment.
//   - WithFormat – FormatJSON or FormatText; panics on anything else.
//   - WithLevel – minimum slog.Level.
//   - WithOutput – destination writer (stdout by default).
//   - WithAttr – static attributes added to every record.
//
// Error returns an empty attribute for a nil error, so it can be passed
// without a nil check.
package logger
