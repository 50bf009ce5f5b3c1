package cmd

import (
	"context"
	"log/slog"
	"slices"

	"github.com/ardnew/pallas/cli/cmd/repl"
	"github.com/ardnew/pallas/lang"
	"github.com/ardnew/pallas/log"
)

// Repl starts an interactive session.
type Repl struct {
	CacheDir string `default:"${cache}" help:"Directory holding the REPL history." hidden:"" type:"path"`

	Source []string `arg:"" help:"Source file(s) whose definitions are preloaded. Standard input ('-') is not accepted." name:"source" optional:""`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	var ast *lang.AST

	if slices.Contains(r.Source, stdinSource) {
		return ErrStdinSource.With(slog.String("source", stdinSource))
	}

	if len(r.Source) > 0 {
		in := Input{Source: r.Source}

		var err error

		ast, err = in.parse(ctx, lang.WithPartial(true))
		if err != nil {
			return err
		}
	}

	return repl.Run(ctx, ast, r.CacheDir, log.Default())
}
