package lang

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func ptr[T any](v T) *T { return &v }

func TestIdentifierRule(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   Identifier
		rest   string
	}{
		{name: "letters", input: "abc;", wantOK: true, want: "abc", rest: ";"},
		{name: "underscore start", input: "_x1 y", wantOK: true, want: "_x1", rest: " y"},
		{name: "underscore alone", input: "_", wantOK: true, want: "_", rest: ""},
		{name: "interior underscore stops", input: "a_b", wantOK: true, want: "a", rest: "_b"},
		{name: "unicode", input: "λ2", wantOK: true, want: "λ2", rest: ""},
		{name: "digit start", input: "1a", wantOK: false, rest: "1a"},
		{name: "empty", input: "", wantOK: false, rest: ""},
		{name: "sigil", input: "$a", wantOK: false, rest: "$a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, got, ok := IdentifierRule.Parse(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}

			if rest != tt.rest {
				t.Errorf("rest = %q, want %q", rest, tt.rest)
			}

			if got != tt.want {
				t.Errorf("identifier = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInternalNameRule(t *testing.T) {
	rest, got, ok := InternalNameRule.Parse("$env{HOME}")
	if !ok || got.Identifier != "env" || rest != "{HOME}" {
		t.Fatalf("got (%q, %+v, %v)", rest, got, ok)
	}

	if got.String() != "$env" {
		t.Errorf("String() = %q, want %q", got.String(), "$env")
	}

	for _, in := range []string{"$ env", "env", "$", "$1"} {
		if rest, _, ok := InternalNameRule.Parse(in); ok || rest != in {
			t.Errorf("%q: got (%q, %v), want failure", in, rest, ok)
		}
	}
}

func TestInternalValueRule(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   InternalValue
		rest   string
	}{
		{
			name:   "variable payload",
			input:  "$y{z}",
			wantOK: true,
			want: InternalValue{
				Name: InternalName{"y"},
				Raw:  "z",
				Expr: ptr(Variable("z")),
			},
		},
		{
			name:   "space before brace",
			input:  "$y \t{z};",
			wantOK: true,
			want: InternalValue{
				Name: InternalName{"y"},
				Raw:  "z",
				Expr: ptr(Variable("z")),
			},
			rest: ";",
		},
		{
			name:   "payload not an expression",
			input:  "$sh{echo hi}",
			wantOK: true,
			want:   InternalValue{Name: InternalName{"sh"}, Raw: "echo hi"},
		},
		{
			name:   "empty payload",
			input:  "$y{}",
			wantOK: true,
			want:   InternalValue{Name: InternalName{"y"}, Raw: ""},
		},
		{
			name:   "nested value payload",
			input:  "$a{$b{c}",
			wantOK: true,
			want: InternalValue{
				Name: InternalName{"a"},
				Raw:  "$b{c",
			},
		},
		{
			name:   "first brace ends payload",
			input:  "$a{$b{c}}",
			wantOK: true,
			want: InternalValue{
				Name: InternalName{"a"},
				Raw:  "$b{c",
			},
			rest: "}",
		},
		{name: "unterminated", input: "$y{z", wantOK: false, rest: "$y{z"},
		{name: "no brace", input: "$y z", wantOK: false, rest: "$y z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, got, ok := InternalValueRule.Parse(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}

			if rest != tt.rest {
				t.Errorf("rest = %q, want %q", rest, tt.rest)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInternalValueRule_PayloadMatchesDirectParse(t *testing.T) {
	for _, payload := range []string{"z", "$q{r", "a b", "", "x1", " x"} {
		_, v, ok := InternalValueRule.Parse("$n{" + payload + "}")
		if !ok {
			t.Fatalf("%q: internal value failed", payload)
		}

		if v.Raw != payload {
			t.Errorf("raw = %q, want %q", v.Raw, payload)
		}

		rest, direct, ok := ExprRule.Parse(payload)
		if ok && rest == "" {
			if diff := cmp.Diff(&direct, v.Expr); diff != "" {
				t.Errorf("%q: sub-expression mismatch (-direct +attached):\n%s", payload, diff)
			}
		} else if v.Expr != nil {
			t.Errorf("%q: attached %v for an incomplete parse", payload, *v.Expr)
		}
	}
}

func TestExprRule(t *testing.T) {
	tests := []struct {
		input string
		want  Expr
		rest  string
	}{
		{input: "name", want: Variable("name")},
		{input: "name;", want: Variable("name"), rest: ";"},
		{
			input: "$env{HOME}",
			want: Internal(InternalValue{
				Name: InternalName{"env"},
				Raw:  "HOME",
				Expr: ptr(Variable("HOME")),
			}),
		},
		{input: "$env", want: Expr{}, rest: "$env"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rest, got, _ := ExprRule.Parse(tt.input)
			if rest != tt.rest {
				t.Errorf("rest = %q, want %q", rest, tt.rest)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("expr mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDefinitionRule(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   Definition
	}{
		{
			name:   "internal value",
			input:  "define x $y{z};",
			wantOK: true,
			want: Definition{
				Name: "x",
				Value: Internal(InternalValue{
					Name: InternalName{"y"},
					Raw:  "z",
					Expr: ptr(Variable("z")),
				}),
			},
		},
		{
			name:   "variable",
			input:  "define x y;",
			wantOK: true,
			want:   Definition{Name: "x", Value: Variable("y")},
		},
		{
			name:   "extra whitespace",
			input:  "define \n x \t y;",
			wantOK: true,
			want:   Definition{Name: "x", Value: Variable("y")},
		},
		{
			name:  "interior underscore in name",
			input: "define my_var x;",
		},
		{
			name:  "interior underscore in value",
			input: "define x my_var;",
		},
		{
			name:   "sigil adjacent to name",
			input:  "define x$y{};",
			wantOK: true,
			want: Definition{
				Name:  "x",
				Value: Internal(InternalValue{Name: InternalName{"y"}}),
			},
		},
		{name: "no space after keyword", input: "definex y;"},
		{name: "equals separator", input: "define x = y;"},
		{name: "missing semicolon", input: "define x y"},
		{name: "space before semicolon", input: "define x y ;"},
		{name: "name runs into value", input: "define xy;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, got, ok := DefinitionRule.Parse(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (rest %q)", ok, tt.wantOK, rest)
			}

			if !ok {
				if rest != tt.input {
					t.Errorf("failure consumed input: rest = %q", rest)
				}

				return
			}

			if rest != "" {
				t.Errorf("rest = %q, want empty", rest)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("definition mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFileRule(t *testing.T) {
	def := func(name, target Identifier) *Statement {
		return &Statement{
			Kind:       StatementDefinition,
			Definition: &Definition{Name: name, Value: Variable(target)},
		}
	}

	tests := []struct {
		name  string
		input string
		want  File
		rest  string
	}{
		{name: "empty", input: ""},
		{name: "whitespace only", input: " \n\t", want: File{Statements: []*Statement{nil}}},
		{
			name:  "two definitions",
			input: "define a b;\ndefine c d;\n",
			want:  File{Statements: []*Statement{def("a", "b"), nil, def("c", "d"), nil}},
		},
		{
			name:  "adjacent definitions",
			input: "define a b;define c d;",
			want:  File{Statements: []*Statement{def("a", "b"), def("c", "d")}},
		},
		{
			name:  "unparsable suffix",
			input: "define a b; junk",
			want:  File{Statements: []*Statement{def("a", "b"), nil}},
			rest:  "junk",
		},
		{name: "garbage", input: "junk", rest: "junk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, got, ok := FileRule.Parse(tt.input)
			if !ok {
				t.Fatal("FileRule failed")
			}

			if rest != tt.rest {
				t.Errorf("rest = %q, want %q", rest, tt.rest)
			}

			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("file mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFileRule_Deterministic(t *testing.T) {
	const src = "define a $b{c};  define d e; ???"

	rest1, file1, _ := FileRule.Parse(src)
	rest2, file2, _ := FileRule.Parse(src)

	if rest1 != rest2 {
		t.Errorf("rest differs: %q vs %q", rest1, rest2)
	}

	if diff := cmp.Diff(file1, file2); diff != "" {
		t.Errorf("results differ:\n%s", diff)
	}
}
