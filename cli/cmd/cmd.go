package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/pallas/lang"
	"github.com/ardnew/pallas/log"
)

type (
	outputKey struct{}
	inputKey  struct{}
)

// WithOutput returns a context whose commands write to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// WithInput returns a context whose commands read the "-" source from r.
func WithInput(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, inputKey{}, r)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

func inputFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(inputKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// stdinSource names standard input on the command line.
const stdinSource = "-"

// Input is the set of source files a command parses.
type Input struct {
	Source []string `arg:"" default:"-" help:"Source file(s), or '-' for stdin." name:"source" optional:""`
}

// parse reads and parses the sources as one file.
func (in *Input) parse(ctx context.Context, opts ...lang.Option) (*lang.AST, error) {
	r, closeAll, err := openSources(ctx, in.Source)
	if err != nil {
		return nil, err
	}
	defer closeAll()

	opts = append([]lang.Option{lang.WithLogger(log.Default())}, opts...)

	return lang.ParseReader(ctx, r, opts...)
}

// openSources returns a reader over the concatenated contents of paths.
//
// A file named more than once, under any path, is read only once. All
// occurrences of "-" are read as a single standard input placed last.
func openSources(
	ctx context.Context,
	paths []string,
) (io.Reader, func(), error) {
	var (
		files   []*os.File
		seen    []os.FileInfo
		stdin   bool
		readers []io.Reader
	)

	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	for _, path := range paths {
		if path == stdinSource {
			stdin = true

			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			closeAll()

			return nil, nil, ErrOpenSource.Wrap(err).With(slog.String("path", path))
		}

		if duplicate(seen, info) {
			log.DebugContext(ctx, "skipping duplicate source", slog.String("path", path))

			continue
		}

		f, err := os.Open(path)
		if err != nil {
			closeAll()

			return nil, nil, ErrOpenSource.Wrap(err).With(slog.String("path", path))
		}

		seen = append(seen, info)
		files = append(files, f)
		readers = append(readers, f)
	}

	if stdin {
		readers = append(readers, inputFrom(ctx))
	}

	if len(readers) == 0 {
		return nil, nil, ErrOpenSource.Wrap(errors.New("no sources"))
	}

	return io.MultiReader(readers...), closeAll, nil
}

func duplicate(seen []os.FileInfo, info os.FileInfo) bool {
	for _, s := range seen {
		if os.SameFile(s, info) {
			return true
		}
	}

	return false
}

// writeErr wraps a failed write to the command output.
func writeErr(err error) error {
	if err == nil {
		return nil
	}

	return ErrWriteOutput.Wrap(err)
}
