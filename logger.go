package prop

import "log/slog"

// logger is the package-wide logger. It is consulted only on cold paths
// (deferred callback attachment), never per access.
var logger *slog.Logger = slog.Default()

// SetLogger overrides the package logger.
//
// If not set, slog.Default() is used.
func SetLogger(l *slog.Logger) {
	logger = l
}
