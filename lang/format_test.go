package lang

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

const formatSource = "define  x   $y {z};\n\ndefine w v;"

func mustParse(t *testing.T, src string) *AST {
	t.Helper()

	ast, err := ParseString(context.Background(), src)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", src, err)
	}

	return ast
}

func TestFormat(t *testing.T) {
	var buf bytes.Buffer

	if err := mustParse(t, formatSource).Format(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}

	const want = "define x $y{z};\ndefine w v;\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer

	if err := mustParse(t, "define w v;").FormatJSON(context.Background(), &buf, 0); err != nil {
		t.Fatal(err)
	}

	const want = `{"definitions":[{"name":"w","value":{"variable":"v"}}]}` + "\n"
	if buf.String() != want {
		t.Errorf("FormatJSON() = %q, want %q", buf.String(), want)
	}
}

func TestFormatJSON_Indent(t *testing.T) {
	var buf bytes.Buffer

	if err := mustParse(t, formatSource).FormatJSON(context.Background(), &buf, 2); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"\n  \"definitions\": [",
		`"internal": "y"`,
		`"raw": "z"`,
		`"expr": {`,
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("FormatJSON() missing %q:\n%s", want, buf.String())
		}
	}
}

func TestFormatYAML(t *testing.T) {
	for _, indent := range []int{0, 2} {
		var buf bytes.Buffer

		if err := mustParse(t, formatSource).FormatYAML(context.Background(), &buf, indent); err != nil {
			t.Fatal(err)
		}

		for _, want := range []string{"definitions", "name: x", "internal: y", "variable: v"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("indent %d: FormatYAML() missing %q:\n%s", indent, want, buf.String())
			}
		}
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer

	mustParse(t, formatSource).Print(&buf)

	const want = "Definition: x\n" +
		"  InternalValue: $y: \"z\"\n" +
		"    Variable: z\n" +
		"Definition: w\n" +
		"  Variable: v\n"
	if buf.String() != want {
		t.Errorf("Print() =\n%s\nwant\n%s", buf.String(), want)
	}
}
