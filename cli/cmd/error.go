package cmd

import "github.com/ardnew/pallas/lang"

// Sentinel errors for command failures.
var (
	ErrOpenSource   = lang.NewError("open source")
	ErrWriteOutput  = lang.NewError("write output")
	ErrCheckFailed  = lang.NewError("check failed")
	ErrCompileQuery = lang.NewError("compile query")
	ErrEvalQuery    = lang.NewError("evaluate query")
	ErrStdinSource  = lang.NewError("standard input is reserved for the session")
)
