package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes the AST in canonical pallas syntax, one definition per line.
func (ast *AST) Format(_ context.Context, w io.Writer) error {
	for def := range ast.Definitions() {
		if _, err := fmt.Fprintln(w, def.String()); err != nil {
			return err
		}
	}

	return nil
}

// FormatJSON writes the AST as JSON to the writer.
func (ast *AST) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(ast, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(ast)
	}

	if err != nil {
		return ErrMarshal.Wrap(err)
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the AST as YAML to the writer. An indent of zero selects
// flow style.
func (ast *AST) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, ast.ToNative(), opts...)
	if err != nil {
		return ErrMarshal.Wrap(err)
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}
