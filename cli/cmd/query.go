package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/pallas/lang"
	"github.com/ardnew/pallas/log"
)

// Query prints the definitions whose record satisfies a predicate.
//
// The predicate is an expr-lang expression evaluated once per definition
// against these variables:
//
//	name    definition name
//	kind    "variable" or "internal"
//	target  referenced identifier, or the internal name without its sigil
//	raw     payload of an internal value ("" for variables)
//	nested  whether the payload parsed as an expression
type Query struct {
	Where   string `help:"Boolean expr-lang predicate, such as 'kind == \"internal\" && target == \"env\"'." required:"" short:"w"`
	Partial bool   `help:"Accept an unparsable suffix."`

	Input `embed:""`
}

// record returns the query variables for def.
func record(def *lang.Definition) map[string]any {
	r := map[string]any{
		"name":   string(def.Name),
		"kind":   "variable",
		"target": "",
		"raw":    "",
		"nested": false,
	}

	switch def.Value.Kind {
	case lang.ExprVariable:
		r["target"] = string(def.Value.Variable)

	case lang.ExprInternalValue:
		r["kind"] = "internal"
		r["target"] = string(def.Value.Internal.Name.Identifier)
		r["raw"] = def.Value.Internal.Raw
		r["nested"] = def.Value.Internal.Expr != nil
	}

	return r
}

// Run executes the query command.
func (q *Query) Run(ctx context.Context) error {
	program, err := expr.Compile(q.Where,
		expr.Env(record(&lang.Definition{})),
		expr.AsBool())
	if err != nil {
		return ErrCompileQuery.Wrap(err).With(slog.String("where", q.Where))
	}

	ast, err := q.parse(ctx, lang.WithPartial(q.Partial))
	if err != nil {
		return err
	}

	w := outputFrom(ctx)
	matched := 0

	for def := range ast.Definitions() {
		result, err := vm.Run(program, record(def))
		if err != nil {
			return ErrEvalQuery.Wrap(err).
				With(slog.String("definition", string(def.Name)))
		}

		if ok, _ := result.(bool); !ok {
			continue
		}

		matched++

		if _, err := fmt.Fprintln(w, def.String()); err != nil {
			return writeErr(err)
		}
	}

	log.DebugContext(ctx, "query complete",
		slog.String("where", q.Where),
		slog.Int("matched", matched),
		slog.Int("definitions", ast.Len()))

	return nil
}
