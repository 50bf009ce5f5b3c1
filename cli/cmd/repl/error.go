package repl

import "github.com/ardnew/pallas/lang"

// Sentinel errors.
var (
	ErrOutOfBounds    = lang.NewError("index out of range")
	ErrUnknownCommand = lang.NewError("unknown command")
	ErrUnparsedInput  = lang.NewError("unparsed input")
)
