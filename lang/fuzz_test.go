package lang

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func FuzzFileRule(f *testing.F) {
	for _, seed := range []string{
		"",
		"define x $y{z};",
		"define x y;\n",
		"define a $b{$c{d};",
		"define  q\t$r {s t};  ???",
		"define = y;",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		rest, file, ok := FileRule.Parse(src)
		if !ok {
			t.Fatal("FileRule failed")
		}

		if !strings.HasSuffix(src, rest) {
			t.Fatalf("rest %q is not a suffix of the input", rest)
		}

		ast := &AST{File: file}

		var buf bytes.Buffer
		if err := ast.Format(context.Background(), &buf); err != nil {
			t.Fatal(err)
		}

		again, err := ParseString(context.Background(), buf.String())
		if err != nil {
			t.Fatalf("formatted output does not parse: %v\n%s", err, buf.String())
		}

		want := make([]*Definition, 0)
		for def := range ast.Definitions() {
			want = append(want, def)
		}

		got := make([]*Definition, 0)
		for def := range again.Definitions() {
			got = append(got, def)
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}

func FuzzPathRule(f *testing.F) {
	for _, seed := range []string{
		"*",
		"a::b as c",
		"{a, b::c}",
		"a::{b, c as d, *,}",
		"{}",
		"a::",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		p, err := ParsePath(context.Background(), src)
		if err != nil {
			return
		}

		again, err := ParsePath(context.Background(), p.String())
		if err != nil {
			t.Fatalf("canonical form %q does not parse: %v", p.String(), err)
		}

		if diff := cmp.Diff(p, again, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}
