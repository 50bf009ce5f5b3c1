// Package repl implements an interactive read-eval-print loop for pallas
// definitions and module paths.
package repl

import (
	"context"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/pallas/lang"
	"github.com/ardnew/pallas/log"
)

var prompt = map[inputMode]string{
	modeFile: "pallas> ",
	modePath: "path> ",
}

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	pathPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	matchStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

func renderPrompt(mode inputMode) string {
	if mode == modePath {
		return pathPromptStyle.Render(prompt[mode])
	}

	return promptStyle.Render(prompt[mode])
}

const defaultWidth = 80

// model is the Bubble Tea model for the REPL.
type model struct {
	ctx        context.Context //nolint:containedctx
	input      textinput.Model
	session    *session
	history    *History
	historyIdx int
	logger     log.Logger
	matches    fuzzy.Matches
	wordStart  int // byte offset of the word being completed
	wordEnd    int
	sel        int // selected match while cycling with Tab, or -1
	width      int
	quitting   bool
}

// Run starts the REPL. Definitions of ast, which may be nil, are available
// from the first prompt. History is kept in cacheDir; an empty cacheDir keeps
// it in memory.
func Run(
	ctx context.Context,
	ast *lang.AST,
	cacheDir string,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	path := ""
	if cacheDir != "" {
		path = filepath.Join(cacheDir, baseHistory)
	}

	history := NewHistory(path)
	if err := history.Load(); err != nil {
		logger.WarnContext(ctx, "could not load history",
			slog.String("path", path), slog.Any("error", err))
	}

	logger.TraceContext(ctx, "repl start",
		slog.String("history", path),
		slog.Int("history_entries", history.Len()),
		slog.Bool("has_source", ast != nil))

	p := tea.NewProgram(newModel(ctx, ast, history, logger), tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

func newModel(
	ctx context.Context,
	ast *lang.AST,
	history *History,
	logger log.Logger,
) model {
	ti := textinput.New()
	ti.Prompt = renderPrompt(modeFile)
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = defaultWidth

	return model{
		ctx:        ctx,
		input:      ti,
		session:    newSession(ast),
		history:    history,
		historyIdx: history.Len(),
		logger:     logger,
		sel:        -1,
		width:      defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-lipgloss.Width(m.input.Prompt)-1, 1)

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.historyIdx < m.history.Len():
		b.WriteString(hintStyle.Render(
			"history " + strconv.Itoa(m.historyIdx+1) + "/" + strconv.Itoa(m.history.Len())))

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(m.matches, m.sel, m.width))

	case m.input.Value() == "":
		b.WriteString(hintStyle.Render(
			"Type definitions or a name (" + m.session.mode.String() + " mode, :help for commands)"))
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.resetCompletion()

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if m.sel >= 0 {
			// Accept the selected completion without evaluating.
			m.resetCompletion()

			return m, nil
		}

		return m.execute()

	case tea.KeyTab, tea.KeyShiftTab:
		return m.cycle(msg.Type == tea.KeyShiftTab), nil

	case tea.KeyUp:
		return m.browse(-1), nil

	case tea.KeyDown:
		return m.browse(+1), nil
	}

	var cmd tea.Cmd

	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	m.refresh()

	return m, cmd
}

// execute evaluates the current line and prints its result above the prompt.
func (m model) execute() (model, tea.Cmd) {
	line := m.input.Value()
	mode := m.session.mode

	m.input.SetValue("")
	m.resetCompletion()

	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	if err := m.history.Add(line, mode); err != nil {
		m.logger.WarnContext(m.ctx, "could not save history", slog.Any("error", err))
	}

	m.historyIdx = m.history.Len()

	r := m.session.eval(m.ctx, line)

	m.logger.TraceContext(m.ctx, "repl eval",
		slog.String("line", line),
		slog.String("mode", mode.String()),
		slog.Int("output_lines", len(r.lines)),
		slog.Any("error", r.err))

	m.input.Prompt = renderPrompt(m.session.mode)

	out := []string{renderPrompt(mode) + line}
	for _, l := range r.lines {
		out = append(out, resultStyle.Render(l))
	}

	if r.err != nil {
		out = append(out, errorStyle.Render("error: "+r.err.Error()))
	}

	echo := tea.Println(strings.Join(out, "\n"))

	if r.quit {
		m.quitting = true

		return m, tea.Sequence(echo, tea.Quit)
	}

	return m, echo
}

// cycle replaces the current word with the next (or previous) completion.
func (m model) cycle(backward bool) model {
	if len(m.matches) == 0 {
		return m
	}

	switch {
	case m.sel < 0 && backward:
		m.sel = len(m.matches) - 1
	case m.sel < 0:
		m.sel = 0
	case backward:
		m.sel = (m.sel + len(m.matches) - 1) % len(m.matches)
	default:
		m.sel = (m.sel + 1) % len(m.matches)
	}

	value := m.input.Value()
	word := m.matches[m.sel].Str
	value = value[:m.wordStart] + word + value[m.wordEnd:]

	m.wordEnd = m.wordStart + len(word)
	m.input.SetValue(value)
	m.input.SetCursor(len([]rune(value[:m.wordEnd])))

	return m
}

// browse moves through history by delta entries. Moving past the newest
// entry clears the input.
func (m model) browse(delta int) model {
	i := m.historyIdx + delta
	if i < 0 || i > m.history.Len() {
		return m
	}

	m.historyIdx = i
	m.resetCompletion()

	entry, err := m.history.Entry(i)
	if err != nil {
		m.input.SetValue("")

		return m
	}

	m.input.SetValue(entry.Line)
	m.input.CursorEnd()

	return m
}

// refresh recomputes completions for the word under the cursor.
func (m *model) refresh() {
	value := m.input.Value()
	runes := []rune(value)
	cursor := min(m.input.Position(), len(runes))

	m.sel = -1
	m.matches, m.wordStart, m.wordEnd = m.session.complete(value, len(string(runes[:cursor])))
}

func (m *model) resetCompletion() {
	m.matches = nil
	m.sel = -1
}
