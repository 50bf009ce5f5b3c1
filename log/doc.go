// Package log provides the structured logger used throughout pallas. It is a
// thin, concurrency-safe layer over [log/slog].
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("parse complete", slog.Int("statements", 3))
//
// # Configuration
//
// Loggers are configured at creation time with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"))
//
// An existing logger can be reconfigured with [Logger.Wrap], which returns a
// new logger and leaves the receiver untouched.
//
// # Default Logger
//
// The package-level functions ([Info], [DebugContext], ...) write through a
// process-wide default logger. The command line adjusts it with [Config] while
// parsing flags, so that errors reported during flag parsing already honor
// the requested format and level.
//
// # Levels and Formats
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Output is [FormatJSON] (default) or
// [FormatText]; text output may be colorized with [WithPretty].
package log
