package repl

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/pallas/lang"
)

// currentWord returns the byte bounds of the word ending at cursor. A word is
// a run of letters, numbers and underscores, optionally preceded by ':' when
// it begins the line.
func currentWord(input string, cursor int) (start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	start = cursor
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if !isWordRune(r) {
			break
		}

		start -= size
	}

	if start == 1 && input[0] == ':' {
		start = 0
	}

	return start, cursor
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// candidates returns the completion candidates for word.
func (s *session) candidates(word string) []string {
	if strings.HasPrefix(word, ":") {
		return commands
	}

	if s.mode == modePath {
		return append(s.names(), lang.KeywordAs)
	}

	return append(s.names(), lang.KeywordDefine)
}

// complete returns the fuzzy matches for the word ending at cursor.
func (s *session) complete(input string, cursor int) (fuzzy.Matches, int, int) {
	start, end := currentWord(input, cursor)

	word := input[start:end]
	if word == "" {
		return nil, start, end
	}

	matches := fuzzy.Find(word, s.candidates(word))

	// An exact match needs no completion.
	if len(matches) == 1 && matches[0].Str == word {
		return nil, start, end
	}

	return matches, start, end
}

// renderCandidate highlights the matched characters of m.
func renderCandidate(m fuzzy.Match, selected bool) string {
	if selected {
		return selectedStyle.Render(m.Str)
	}

	var b strings.Builder

	hit := make(map[int]bool, len(m.MatchedIndexes))
	for _, i := range m.MatchedIndexes {
		hit[i] = true
	}

	for i, r := range m.Str {
		if hit[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteString(suggestionStyle.Render(string(r)))
		}
	}

	return b.String()
}

// renderCandidateBar renders matches on one line, truncated with an ellipsis
// to fit width.
func renderCandidateBar(matches fuzzy.Matches, sel int, width int) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	ellipsis := hintStyle.Render("...")

	var b strings.Builder

	used := 0

	for i, m := range matches {
		item := renderCandidate(m, i == sel)

		w := lipgloss.Width(item)
		if i > 0 {
			w += lipgloss.Width(sep)
		}

		if i > 0 && used+w+lipgloss.Width(ellipsis) > width {
			b.WriteString(sep + ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(item)

		used += w
	}

	return b.String()
}
