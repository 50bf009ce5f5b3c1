package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/pallas/lang"
	"github.com/ardnew/pallas/log"
)

// Path parses module path expressions and prints their canonical form.
type Path struct {
	JSON bool `help:"Print each path as JSON." short:"j"`

	Paths []string `arg:"" help:"Module path expressions, such as 'std::{io, fmt as f}'." name:"path"`
}

// Run executes the path command.
func (p *Path) Run(ctx context.Context) error {
	w := outputFrom(ctx)

	for _, src := range p.Paths {
		path, err := lang.ParsePath(ctx, strings.TrimSpace(src),
			lang.WithLogger(log.Default()))
		if err != nil {
			return lang.WrapError(err).With(slog.String("path", src))
		}

		out := path.String()

		if p.JSON {
			b, err := json.Marshal(path)
			if err != nil {
				return lang.ErrMarshal.Wrap(err)
			}

			out = string(b)
		}

		if _, err := fmt.Fprintln(w, out); err != nil {
			return writeErr(err)
		}
	}

	return nil
}
