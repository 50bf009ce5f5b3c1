package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/pallas/lang"
)

// Fmt parses sources and writes them in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as canonical pallas syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	AST    AST    `cmd:""                    help:"Print the syntax tree."`
}

// Native writes canonical pallas syntax, one definition per line.
type Native struct {
	Input `embed:""`
}

// Run executes the fmt native command.
func (f *Native) Run(ctx context.Context) error {
	ast, err := f.parse(ctx)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "native"))
	}

	return writeErr(ast.Format(ctx, outputFrom(ctx)))
}

// JSON writes the syntax tree as JSON.
type JSON struct {
	Indent  int  `default:"2" help:"Indent width; 0 writes a single line." short:"i"`
	Partial bool `            help:"Accept an unparsable suffix and report it under \"rest\"."`

	Input `embed:""`
}

// Run executes the fmt json command.
func (j *JSON) Run(ctx context.Context) error {
	ast, err := j.parse(ctx, lang.WithPartial(j.Partial))
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "json"))
	}

	return writeErr(ast.FormatJSON(ctx, outputFrom(ctx), j.Indent))
}

// YAML writes the syntax tree as YAML.
type YAML struct {
	Indent  int  `default:"2" help:"Indent width; 0 selects flow style." short:"i"`
	Partial bool `            help:"Accept an unparsable suffix and report it under \"rest\"."`

	Input `embed:""`
}

// Run executes the fmt yaml command.
func (y *YAML) Run(ctx context.Context) error {
	ast, err := y.parse(ctx, lang.WithPartial(y.Partial))
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "yaml"))
	}

	return writeErr(ast.FormatYAML(ctx, outputFrom(ctx), y.Indent))
}

// AST prints an indented tree of the parsed definitions.
type AST struct {
	Partial bool `help:"Accept an unparsable suffix."`

	Input `embed:""`
}

// Run executes the fmt ast command.
func (a *AST) Run(ctx context.Context) error {
	ast, err := a.parse(ctx, lang.WithPartial(a.Partial))
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "ast"))
	}

	ast.Print(outputFrom(ctx))

	return nil
}
