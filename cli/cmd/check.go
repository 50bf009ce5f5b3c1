package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/pallas/lang"
	"github.com/ardnew/pallas/log"
)

// Check parses sources strictly and reports a summary. Trailing input and
// names defined more than once are errors.
type Check struct {
	Quiet bool `help:"Suppress the summary line." short:"q"`

	Input `embed:""`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	ast, err := c.parse(ctx, lang.WithUnique(true))
	if err != nil {
		return ErrCheckFailed.Wrap(err)
	}

	n := ast.Len()

	log.InfoContext(ctx, "check passed",
		slog.Int("definitions", n),
		slog.Int("names", len(ast.Names())),
		slog.Int("statements", len(ast.Statements)))

	if c.Quiet {
		return nil
	}

	_, err = fmt.Fprintf(outputFrom(ctx), "ok: %d definitions\n", n)

	return writeErr(err)
}
