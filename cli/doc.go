// Package cli contains the command line interface for pallas.
//
// # Usage
//
//	pallas fmt [native|json|yaml|ast] [source...]
//	pallas check [source...]
//	pallas path <path>...
//	pallas query --where <predicate> [source...]
//	pallas find <pattern> [source...]
//	pallas repl [source...]
//
// A source of "-" (the default) reads standard input. Multiple sources are
// parsed as one file, in order, with standard input last.
//
// # Configuration
//
// Flags may also be set in $XDG_CONFIG_HOME/pallas/config, written in the
// pallas language itself, or in config.json beside it:
//
//	define log_level debug;
//	define log_pretty false;
//	define log_time_layout $raw{15:04:05};
//
// Command-line flags override both files.
//
// # Logging Options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: output format (json, text)
//   - --log-time-layout: timestamp layout, a time constant name, or none
//   - --log-caller: include caller information
//   - --log-pretty: colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: enable profiling (see --help for the available modes)
//   - --pprof-dir: profile output directory (default: cache dir/pprof)
package cli
