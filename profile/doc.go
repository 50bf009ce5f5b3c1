// Package profile provides optional runtime profiling of pallas through
// [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Profiler.Start] is a no-op, so
// callers never need their own build constraints.
//
// # Usage
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/pallas"}
//	defer p.Start().Stop()
//
// Profiles are written to Path and can be inspected with
//
//	go tool pprof -http=: /tmp/pallas/cpu.pprof
package profile
