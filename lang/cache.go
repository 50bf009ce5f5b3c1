package lang

import (
	"bytes"
	"context"
	"encoding/gob"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// globalCache stores parse results keyed by source and options hash.
var globalCache sync.Map

// state is a cached parse result. Parsing happens at most once per key.
type state struct {
	once sync.Once
	file File
	rest string
	err  error
}

// hashOptions encodes options using gob and hashes with xxh3.
func hashOptions(opts optionsKey) uint64 {
	var buf bytes.Buffer

	_ = gob.NewEncoder(&buf).Encode(opts)

	return xxh3.Hash(buf.Bytes())
}

// cacheKey combines the source hash and options hash.
func cacheKey(source string, opts optionsKey) string {
	return strconv.FormatUint(xxh3.HashString(source)^hashOptions(opts), 36)
}

// ParseReader parses a file read from r.
//
// Results are cached by content: parsing the same source with the same
// options again returns an AST sharing the statements of the first parse.
// ASTs must therefore be treated as immutable.
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (*AST, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := string(data)
	ast := newAST(opts...)
	key := cacheKey(source, ast.opts)

	value, hit := globalCache.LoadOrStore(key, new(state))
	entry := value.(*state)

	ast.logger.TraceContext(ctx, "cache lookup",
		slog.String("key", key),
		slog.Int("source_bytes", len(data)),
		slog.Bool("cache_hit", hit))

	entry.once.Do(func() {
		rest, file, _ := FileRule.Parse(source)

		var tmp AST

		tmp.opts = ast.opts
		if entry.err = tmp.accept(file, source, rest); entry.err == nil {
			entry.file, entry.rest = tmp.File, tmp.Rest
		}
	})

	if entry.err != nil {
		return nil, entry.err
	}

	ast.File = entry.file
	ast.Rest = entry.rest

	ast.logger.TraceContext(ctx, "parse complete",
		slog.Int("statements", len(ast.Statements)),
		slog.Int("definitions", ast.Len()),
		slog.Int("rest_length", len(ast.Rest)))

	return ast, nil
}

// ClearCache removes all cached parse results.
func ClearCache() {
	globalCache.Clear()
}
