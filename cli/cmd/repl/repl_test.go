package repl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/pallas/log"
)

func typeText(t *testing.T, m model, s string) model {
	t.Helper()

	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(model)
	}

	return m
}

func press(t *testing.T, m model, k tea.KeyType) (model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(tea.KeyMsg{Type: k})

	return next.(model), cmd
}

func testModel() model {
	return newModel(context.Background(), nil, NewHistory(""), log.Logger{})
}

func TestModel_EnterEvaluates(t *testing.T) {
	m := typeText(t, testModel(), "define a b;")
	require.Equal(t, "define a b;", m.input.Value())

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)
	require.Empty(t, m.input.Value())
	require.Equal(t, []string{"a"}, m.session.names())
	require.Equal(t, 1, m.history.Len())
}

func TestModel_TabCompletes(t *testing.T) {
	m := testModel()
	m.session.eval(context.Background(), "define hostname a;")

	m = typeText(t, m, "define x hst")
	require.NotEmpty(t, m.matches)

	m, _ = press(t, m, tea.KeyTab)
	require.Equal(t, "define x hostname", m.input.Value())

	// Enter accepts the completion without evaluating.
	m, _ = press(t, m, tea.KeyEnter)
	require.Equal(t, "define x hostname", m.input.Value())
	require.Equal(t, 0, m.history.Len())
}

func TestModel_History(t *testing.T) {
	m := typeText(t, testModel(), "define a b;")
	m, _ = press(t, m, tea.KeyEnter)

	m, _ = press(t, m, tea.KeyUp)
	require.Equal(t, "define a b;", m.input.Value())

	m, _ = press(t, m, tea.KeyDown)
	require.Empty(t, m.input.Value())
}

func TestModel_Quit(t *testing.T) {
	m, cmd := press(t, testModel(), tea.KeyCtrlD)
	require.True(t, m.quitting)
	require.NotNil(t, cmd)
	require.Empty(t, m.View())

	m = typeText(t, testModel(), ":quit")
	m, _ = press(t, m, tea.KeyEnter)
	require.True(t, m.quitting)
}

func TestModel_ModeSwitchChangesPrompt(t *testing.T) {
	m := typeText(t, testModel(), ":path")
	m, _ = press(t, m, tea.KeyEnter)
	require.Equal(t, modePath, m.session.mode)
	require.Equal(t, renderPrompt(modePath), m.input.Prompt)
}
