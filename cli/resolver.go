package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/pallas/lang"
	"github.com/ardnew/pallas/log"
)

// resolve returns a [kong.ConfigurationLoader] for config files written in
// the pallas language. Each definition names a flag and supplies its value:
//
//	define log_level debug;
//	define log_pretty false;
//	define log_time_layout $raw{2006-01-02 15:04:05};
//
// A variable contributes its identifier as the value. An internal value
// contributes its payload verbatim, which allows values that are not
// identifiers. Flag names may use underscores in place of hyphens.
//
// A config file that does not parse, or that defines a flag more than once,
// is reported and ignored. Command-line
// flags override config file values.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		ast, err := lang.ParseReader(ctx, r,
			lang.WithUnique(true), lang.WithLogger(log.Default()))
		if err != nil {
			log.WarnContext(ctx, "ignoring config file", slog.Any("error", err))

			return config{}, nil
		}

		return configFromAST(ast), nil
	}
}

// config implements [kong.Resolver] over flag name/value pairs.
type config map[string]string

// configFromAST flattens definitions into a config.
func configFromAST(ast *lang.AST) config {
	cfg := make(config)

	for def := range ast.Definitions() {
		switch def.Value.Kind {
		case lang.ExprVariable:
			cfg[string(def.Name)] = string(def.Value.Variable)

		case lang.ExprInternalValue:
			cfg[string(def.Name)] = def.Value.Internal.Raw
		}
	}

	return cfg
}

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	for _, name := range []string{
		flag.Name,
		strings.ReplaceAll(flag.Name, "-", "_"),
	} {
		if value, ok := r[name]; ok {
			return value, nil
		}
	}

	return nil, nil //nolint:nilnil
}
