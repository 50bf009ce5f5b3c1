package repl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/ardnew/pallas/lang"
)

// inputMode selects how a non-command line is interpreted.
type inputMode int

const (
	// modeFile parses lines as definitions, or looks up a definition by name.
	modeFile inputMode = iota

	// modePath parses lines as module paths.
	modePath
)

func (m inputMode) String() string {
	if m == modePath {
		return "path"
	}

	return "file"
}

// commands lists the control commands, each introduced by ':'.
var commands = []string{":help", ":list", ":file", ":path", ":reset", ":quit"}

const helpText = `Commands:
  :help   Print this text
  :list   List definitions entered so far
  :file   Parse lines as definitions (default)
  :path   Parse lines as module paths
  :reset  Forget all definitions
  :quit   Exit

In file mode, a line of definitions is added to the session and a bare
name prints the definition bound to it. In path mode, each line is printed
in canonical and JSON form.

Tab cycles through completions. Up and Down browse history.
Ctrl+C on an empty line or Ctrl+D exits.`

// result is the outcome of evaluating one line.
type result struct {
	lines []string
	err   error
	quit  bool
}

// session holds the definitions entered so far and the current mode.
type session struct {
	defs []*lang.Definition
	mode inputMode
}

// newSession starts a session preloaded with the definitions of ast, which
// may be nil.
func newSession(ast *lang.AST) *session {
	s := new(session)

	if ast != nil {
		for def := range ast.Definitions() {
			s.defs = append(s.defs, def)
		}
	}

	return s
}

// lookup returns the most recent definition of name.
func (s *session) lookup(name string) (*lang.Definition, bool) {
	for i := len(s.defs) - 1; i >= 0; i-- {
		if string(s.defs[i].Name) == name {
			return s.defs[i], true
		}
	}

	return nil, false
}

// names returns the distinct definition names in order of first appearance.
func (s *session) names() []string {
	seen := make(map[string]bool, len(s.defs))
	out := make([]string, 0, len(s.defs))

	for _, d := range s.defs {
		if n := string(d.Name); !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}

	return out
}

// eval evaluates a single input line.
func (s *session) eval(ctx context.Context, line string) result {
	line = strings.TrimSpace(line)

	switch {
	case line == "":
		return result{}

	case strings.HasPrefix(line, ":"):
		return s.command(line)

	case s.mode == modePath:
		return s.evalPath(ctx, line)

	default:
		return s.evalFile(ctx, line)
	}
}

func (s *session) command(line string) result {
	switch line {
	case ":help", ":h", ":?":
		return result{lines: []string{helpText}}

	case ":list", ":ls":
		lines := make([]string, 0, len(s.defs))
		for _, d := range s.defs {
			lines = append(lines, d.String())
		}

		return result{lines: lines}

	case ":file":
		s.mode = modeFile

		return result{lines: []string{"mode: file"}}

	case ":path":
		s.mode = modePath

		return result{lines: []string{"mode: path"}}

	case ":reset":
		s.defs = nil

		return result{lines: []string{"definitions cleared"}}

	case ":quit", ":q", ":exit":
		return result{quit: true}

	default:
		return result{err: ErrUnknownCommand.With(slog.String("command", line))}
	}
}

func (s *session) evalFile(ctx context.Context, line string) result {
	// A bare name looks up its definition.
	if e, err := lang.ParseExpr(line); err == nil && e.Kind == lang.ExprVariable {
		def, ok := s.lookup(string(e.Variable))
		if !ok {
			return result{err: lang.ErrDefinitionNotFound.
				With(slog.String("name", string(e.Variable)))}
		}

		return result{lines: []string{def.String()}}
	}

	ast, err := lang.ParseString(ctx, line, lang.WithPartial(true))
	if err != nil {
		return result{err: err}
	}

	var r result

	for def := range ast.Definitions() {
		s.defs = append(s.defs, def)
		r.lines = append(r.lines, def.String())
	}

	if ast.Rest != "" {
		r.err = ErrUnparsedInput.With(slog.String("remaining", ast.Rest))
	}

	return r
}

func (s *session) evalPath(ctx context.Context, line string) result {
	p, err := lang.ParsePath(ctx, line)
	if err != nil {
		return result{err: err}
	}

	b, err := json.Marshal(p)
	if err != nil {
		return result{err: lang.ErrMarshal.Wrap(err)}
	}

	return result{lines: []string{p.String(), string(b)}}
}
