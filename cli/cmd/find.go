package cmd

import (
	"context"
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/pallas/lang"
)

// Find fuzzy-searches definition names and prints the best matches first.
type Find struct {
	Limit   int  `default:"0" help:"Maximum number of matches to print (0 for all)." short:"n"`
	Partial bool `            help:"Accept an unparsable suffix."`

	Pattern string `arg:"" help:"Characters to match, in order, against definition names." name:"pattern"`

	Input `embed:""`
}

// definitions adapts a definition list to [fuzzy.Source].
type definitions []*lang.Definition

func (d definitions) String(i int) string { return string(d[i].Name) }

func (d definitions) Len() int { return len(d) }

// Run executes the find command.
func (f *Find) Run(ctx context.Context) error {
	ast, err := f.parse(ctx, lang.WithPartial(f.Partial))
	if err != nil {
		return err
	}

	var defs definitions
	for def := range ast.Definitions() {
		defs = append(defs, def)
	}

	matches := fuzzy.FindFrom(f.Pattern, defs)
	if f.Limit > 0 && len(matches) > f.Limit {
		matches = matches[:f.Limit]
	}

	w := outputFrom(ctx)

	for _, m := range matches {
		if _, err := fmt.Fprintln(w, defs[m.Index].String()); err != nil {
			return writeErr(err)
		}
	}

	return nil
}
