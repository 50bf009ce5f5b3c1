package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ardnew/pallas/lang"
)

const sample = `define host $env{HOST};
define port default_port;
define shell $sh{echo hi};
define hostname host;
`

// run returns a context reading stdin from in and the buffer receiving output.
func run(t *testing.T, in string) (context.Context, *bytes.Buffer) {
	t.Helper()

	lang.ClearCache()

	var out bytes.Buffer

	ctx := WithOutput(context.Background(), &out)
	ctx = WithInput(ctx, strings.NewReader(in))

	return ctx, &out
}

func stdin() Input { return Input{Source: []string{stdinSource}} }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNative(t *testing.T) {
	ctx, out := run(t, "define  a\n b;\n\n\ndefine c $d {e};")

	require.NoError(t, (&Native{Input: stdin()}).Run(ctx))
	require.Equal(t, "define a b;\ndefine c $d{e};\n", out.String())
}

func TestNative_TrailingInput(t *testing.T) {
	ctx, _ := run(t, "define a b; nope")

	err := (&Native{Input: stdin()}).Run(ctx)
	require.ErrorIs(t, err, lang.ErrTrailingInput)
}

func TestJSON(t *testing.T) {
	ctx, out := run(t, "define a b;")

	require.NoError(t, (&JSON{Indent: 0, Input: stdin()}).Run(ctx))
	require.JSONEq(t, `{"definitions":[{"name":"a","value":{"variable":"b"}}]}`, out.String())
}

func TestJSON_Partial(t *testing.T) {
	ctx, out := run(t, "define a b; ???")

	require.NoError(t, (&JSON{Indent: 2, Partial: true, Input: stdin()}).Run(ctx))
	require.Contains(t, out.String(), `"rest": "???"`)
}

func TestYAML(t *testing.T) {
	ctx, out := run(t, sample)

	require.NoError(t, (&YAML{Indent: 2, Input: stdin()}).Run(ctx))
	require.Contains(t, out.String(), "name: host")
	require.Contains(t, out.String(), "raw: echo hi")
}

func TestAST(t *testing.T) {
	ctx, out := run(t, "define a b;")

	require.NoError(t, (&AST{Input: stdin()}).Run(ctx))
	require.Equal(t, "Definition: a\n  Variable: b\n", out.String())
}

func TestCheck(t *testing.T) {
	ctx, out := run(t, sample)

	require.NoError(t, (&Check{Input: stdin()}).Run(ctx))
	require.Equal(t, "ok: 4 definitions\n", out.String())

	ctx, out = run(t, "define a = b;")

	err := (&Check{Input: stdin()}).Run(ctx)
	require.ErrorIs(t, err, ErrCheckFailed)
	require.ErrorIs(t, err, lang.ErrNoParse)
	require.Empty(t, out.String())
}

func TestCheck_DuplicateDefinition(t *testing.T) {
	ctx, out := run(t, "define a b;\ndefine c d;\ndefine a e;\n")

	err := (&Check{Input: stdin()}).Run(ctx)
	require.ErrorIs(t, err, ErrCheckFailed)
	require.ErrorIs(t, err, lang.ErrDuplicateDefinition)
	require.Empty(t, out.String())

	// Other commands keep accepting repeated names.
	ctx, out = run(t, "define a b;\ndefine a e;\n")

	require.NoError(t, (&Native{Input: stdin()}).Run(ctx))
	require.Equal(t, "define a b;\ndefine a e;\n", out.String())
}

func TestPath(t *testing.T) {
	ctx, out := run(t, "")

	require.NoError(t, (&Path{Paths: []string{"*", " a::b as c ", "{a,b::c,}"}}).Run(ctx))
	require.Equal(t, "*\na::b as c\n{a, b::c}\n", out.String())

	ctx, out = run(t, "")

	require.NoError(t, (&Path{JSON: true, Paths: []string{"a::*"}}).Run(ctx))
	require.Equal(t, `{"name":"a","next":"*"}`+"\n", out.String())

	ctx, _ = run(t, "")

	require.ErrorIs(t, (&Path{Paths: []string{"a::"}}).Run(ctx), lang.ErrInvalidPath)
}

func TestQuery(t *testing.T) {
	tests := []struct {
		where string
		want  string
	}{
		{where: `kind == "internal"`, want: "define host $env{HOST};\ndefine shell $sh{echo hi};\n"},
		{where: `kind == "variable" && target == "host"`, want: "define hostname host;\n"},
		{where: `nested`, want: "define host $env{HOST};\n"},
		{where: `name startsWith "host"`, want: "define host $env{HOST};\ndefine hostname host;\n"},
		{where: `raw contains " "`, want: "define shell $sh{echo hi};\n"},
		{where: `false`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.where, func(t *testing.T) {
			ctx, out := run(t, sample)

			require.NoError(t, (&Query{Where: tt.where, Input: stdin()}).Run(ctx))
			require.Equal(t, tt.want, out.String())
		})
	}
}

func TestQuery_Invalid(t *testing.T) {
	ctx, _ := run(t, sample)

	require.ErrorIs(t, (&Query{Where: `name + 1`, Input: stdin()}).Run(ctx), ErrCompileQuery)
	require.ErrorIs(t, (&Query{Where: `undefined_var`, Input: stdin()}).Run(ctx), ErrCompileQuery)
}

func TestFind(t *testing.T) {
	ctx, out := run(t, sample)

	require.NoError(t, (&Find{Pattern: "hst", Input: stdin()}).Run(ctx))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "define host $env{HOST};", lines[0])

	ctx, out = run(t, sample)

	require.NoError(t, (&Find{Pattern: "h", Limit: 1, Input: stdin()}).Run(ctx))
	require.Equal(t, 1, strings.Count(out.String(), "\n"))
}

func TestRepl_StdinRejected(t *testing.T) {
	ctx, out := run(t, "define a b;")

	path := writeFile(t, "defs.pallas", "define c d;")

	err := (&Repl{Source: []string{path, stdinSource}}).Run(ctx)
	require.ErrorIs(t, err, ErrStdinSource)
	require.Empty(t, out.String())
}

func TestOpenSources(t *testing.T) {
	a := writeFile(t, "a.pallas", "define a b;\n")
	b := writeFile(t, "b.pallas", "define c d;\n")

	ctx, out := run(t, "define e f;\n")

	in := Input{Source: []string{stdinSource, a, b, a, stdinSource}}
	require.NoError(t, (&Native{Input: in}).Run(ctx))
	require.Equal(t, "define a b;\ndefine c d;\ndefine e f;\n", out.String())
}

func TestOpenSources_Missing(t *testing.T) {
	ctx, _ := run(t, "")

	in := Input{Source: []string{filepath.Join(t.TempDir(), "missing")}}
	require.ErrorIs(t, (&Native{Input: in}).Run(ctx), ErrOpenSource)
}
