// Package cmd implements the pallas subcommands.
//
// Each command is a kong command struct whose Run method receives the
// context prepared by package cli. Output goes to the writer installed with
// [WithOutput], and "-" sources read from the reader installed with
// [WithInput]; both default to the process's standard streams.
package cmd

// CacheIdentifier is the kong variable holding the runtime cache directory.
const CacheIdentifier = "cache"

// ConfigIdentifier is the kong variable holding the configuration file path.
const ConfigIdentifier = "config"
