package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/pallas/cli/cmd"
	"github.com/ardnew/pallas/pkg"
)

// CLI is the top-level command-line interface for pallas.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Fmt   cmd.Fmt   `cmd:"" help:"Format definitions."`
	Check cmd.Check `cmd:"" help:"Parse definitions strictly and report a summary."`
	Path  cmd.Path  `cmd:"" help:"Parse module paths and print their canonical form."`
	Query cmd.Query `cmd:"" help:"Print definitions matching an expr-lang predicate."`
	Find  cmd.Find  `cmd:"" help:"Fuzzy-search definition names."`
	Repl  cmd.Repl  `cmd:"" help:"Start an interactive session."`
}

// Run executes the pallas CLI with the given context and arguments.
// The exit function is called with the appropriate exit code when kong
// terminates early, such as after printing help.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	if err := mkdirAllRequired(); err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
		"version":            pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Apply logger flags before kong reports any parse error.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve(ctx), configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.Log.start(ctx)

	// [pprofConfig.start] is a no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}
