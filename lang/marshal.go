package lang

import "encoding/json"

// MarshalJSON implements json.Marshaler for AST.
func (ast *AST) MarshalJSON() ([]byte, error) {
	return json.Marshal(ast.ToNative())
}

// MarshalJSON implements json.Marshaler for Path.
func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToNative())
}

// ToNative converts the AST to plain maps and slices.
//
// Definitions are listed in source order under "definitions". An unparsed
// suffix, if any, is included under "rest".
func (ast *AST) ToNative() map[string]any {
	defs := make([]any, 0, len(ast.Statements))
	for def := range ast.Definitions() {
		defs = append(defs, def.ToNative())
	}

	result := map[string]any{"definitions": defs}
	if ast.Rest != "" {
		result["rest"] = ast.Rest
	}

	return result
}

// ToNative converts the definition to a map with keys "name" and "value".
func (d *Definition) ToNative() map[string]any {
	return map[string]any{
		"name":  string(d.Name),
		"value": d.Value.ToNative(),
	}
}

// ToNative converts the expression to a map. A variable yields
// {"variable": name}; an internal value yields {"internal": name, "raw": raw}
// plus "expr" when the payload parsed as an expression.
func (e Expr) ToNative() map[string]any {
	switch e.Kind {
	case ExprVariable:
		return map[string]any{"variable": string(e.Variable)}

	case ExprInternalValue:
		if e.Internal == nil {
			return nil
		}

		m := map[string]any{
			"internal": string(e.Internal.Name.Identifier),
			"raw":      e.Internal.Raw,
		}

		if e.Internal.Expr != nil {
			m["expr"] = e.Internal.Expr.ToNative()
		}

		return m

	default:
		return nil
	}
}

// ToNative converts the path to native values: "*" for the wildcard, a map
// with "name" and optional "next" for an ordinary path, a map with "path" and
// "as" for an alias, and a slice for a group.
func (p Path) ToNative() any {
	switch p.Kind {
	case PathWildcard:
		return "*"

	case PathOrdinary:
		m := map[string]any{"name": string(p.Name)}
		if p.Next != nil {
			m["next"] = p.Next.ToNative()
		}

		return m

	case PathAs:
		m := map[string]any{"as": string(p.Alias)}
		if p.Inner != nil {
			m["path"] = p.Inner.ToNative()
		}

		return m

	case PathMulti:
		s := make([]any, len(p.Paths))
		for i, q := range p.Paths {
			s[i] = q.ToNative()
		}

		return s

	default:
		return nil
	}
}
