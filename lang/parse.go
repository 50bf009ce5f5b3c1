package lang

import (
	"context"
	"log/slog"

	"github.com/ardnew/pallas/log"
)

// optionsKey holds the options that affect the parse result.
// This type is gob-encodable for cache key hashing.
type optionsKey struct {
	Partial bool
	Unique  bool
}

// Option configures parsing behavior.
type Option func(*AST)

// WithPartial accepts input that the file grammar cannot fully consume. The
// unparsed suffix is recorded in [AST.Rest] instead of causing
// [ErrTrailingInput].
func WithPartial(partial bool) Option {
	return func(ast *AST) {
		ast.opts.Partial = partial
	}
}

// WithUnique rejects a file that defines the same name more than once with
// [ErrDuplicateDefinition].
func WithUnique(unique bool) Option {
	return func(ast *AST) {
		ast.opts.Unique = unique
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(ast *AST) {
		ast.logger = logger
	}
}

func newAST(opts ...Option) *AST {
	ast := new(AST)

	for _, opt := range opts {
		opt(ast)
	}

	return ast
}

// ParseString parses src as a file.
//
// Unless [WithPartial] is given, the whole of src must be consumed. Input that
// begins with something other than a definition or whitespace is reported as
// [ErrNoParse]; input with an unparsable suffix as [ErrTrailingInput].
func ParseString(ctx context.Context, src string, opts ...Option) (*AST, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ast := newAST(opts...)

	ast.logger.TraceContext(ctx, "parse start",
		slog.Int("source_length", len(src)))

	rest, file, _ := FileRule.Parse(src)

	if err := ast.accept(file, src, rest); err != nil {
		return nil, err
	}

	ast.logger.TraceContext(ctx, "parse complete",
		slog.Int("statements", len(ast.Statements)),
		slog.Int("definitions", ast.Len()),
		slog.Int("rest_length", len(ast.Rest)))

	return ast, nil
}

// accept installs the result of the file grammar, enforcing complete
// consumption unless partial parsing is enabled.
func (ast *AST) accept(file File, src, rest string) error {
	if rest != "" && !ast.opts.Partial {
		if len(rest) == len(src) {
			return ErrNoParse.withRemaining(rest)
		}

		return ErrTrailingInput.withRemaining(rest).
			With(slog.Int("parsed_bytes", len(src)-len(rest)))
	}

	if ast.opts.Unique {
		if err := file.register(); err != nil {
			return err
		}
	}

	ast.File = file
	ast.Rest = rest

	return nil
}

// ParsePath parses src as a module path. The whole of src must be consumed.
//
// Only [WithLogger] is meaningful here; other options are ignored.
func ParsePath(ctx context.Context, src string, opts ...Option) (*Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := newAST(opts...).logger

	rest, path, ok := PathRule.Parse(src)
	if !ok {
		return nil, ErrInvalidPath.Wrap(ErrNoParse).withRemaining(src)
	}

	if rest != "" {
		return nil, ErrInvalidPath.Wrap(ErrTrailingInput).withRemaining(rest)
	}

	logger.TraceContext(ctx, "path parsed", slog.String("path", path.String()))

	return &path, nil
}

// ParseExpr parses src as a single expression. The whole of src must be
// consumed.
func ParseExpr(src string) (*Expr, error) {
	rest, expr, ok := ExprRule.Parse(src)
	if !ok {
		return nil, ErrInvalidExpr.Wrap(ErrNoParse).withRemaining(src)
	}

	if rest != "" {
		return nil, ErrInvalidExpr.Wrap(ErrTrailingInput).withRemaining(rest)
	}

	return &expr, nil
}
