package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// maxVisible caps the number of options drawn below the filter input.
const maxVisible = 10

// Select asks the user to pick one of options on stderr with fuzzy
// filtering. bypassHint describes how to pass the value non-interactively
// (e.g. "use --node <name>"). Non-interactive terminals return
// *NoInteractionError; esc and ctrl+c return ErrCancelled.
func Select(label string, options []string, bypassHint string) (string, error) {
	if err := RequireInteraction(bypassHint); err != nil {
		return "", fmt.Errorf("selection required: %w", err)
	}
	if len(options) == 0 {
		return "", fmt.Errorf("nothing to select")
	}

	m := newSelectModel(label, options)
	p := tea.NewProgram(m,
		tea.WithOutput(os.Stderr),
	)

	if _, err := p.Run(); err != nil {
		return "", fmt.Errorf("select prompt: %w", err)
	}

	if m.cancelled {
		return "", ErrCancelled
	}
	return m.choice, nil
}

// option is one filtered entry with the rune positions that matched.
type option struct {
	value   string
	matched []int
}

// filterOptions returns the options matching query, best match first.
// An empty query keeps every option in declaration order.
func filterOptions(options []string, query string) []option {
	if strings.TrimSpace(query) == "" {
		out := make([]option, len(options))
		for i, o := range options {
			out[i] = option{value: o}
		}
		return out
	}

	matches := fuzzy.Find(query, options)
	out := make([]option, len(matches))
	for i, m := range matches {
		out[i] = option{value: m.Str, matched: m.MatchedIndexes}
	}
	return out
}

// selectModel is a bubbletea model for fuzzy single choice.
type selectModel struct {
	label     string
	options   []string
	filtered  []option
	cursor    int
	textInput textinput.Model
	choice    string
	cancelled bool
	submitted bool
}

func newSelectModel(label string, options []string) *selectModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Focus()
	ti.PromptStyle = AccentStyle
	ti.TextStyle = lipgloss.NewStyle()

	return &selectModel{
		label:     label,
		options:   options,
		filtered:  filterOptions(options, ""),
		textInput: ti,
	}
}

func (m *selectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if len(m.filtered) == 0 {
				return m, nil
			}
			m.choice = m.filtered[m.cursor].value
			m.submitted = true
			return m, tea.Quit
		case "up", "ctrl+p", "shift+tab":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n", "tab":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	prev := m.textInput.Value()
	m.textInput, cmd = m.textInput.Update(msg)
	if m.textInput.Value() != prev {
		m.filtered = filterOptions(m.options, m.textInput.Value())
		m.cursor = 0
	}
	return m, cmd
}

func (m *selectModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(AccentStyle.Render("?") + " " + m.label + "\n")
	sb.WriteString(m.textInput.View() + "\n")

	if len(m.filtered) == 0 {
		sb.WriteString(MutedStyle.Render("  no matches") + "\n")
		return sb.String()
	}

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.filtered))
	for i := start; i < end; i++ {
		o := m.filtered[i]
		prefix := "  "
		if i == m.cursor {
			prefix = AccentStyle.Render("> ")
		}
		sb.WriteString(prefix + highlight(o) + "\n")
	}
	if hidden := len(m.filtered) - end; hidden > 0 {
		sb.WriteString(MutedStyle.Render(fmt.Sprintf("  … %d more", hidden)) + "\n")
	}
	return sb.String()
}

func highlight(o option) string {
	if len(o.matched) == 0 {
		return o.value
	}
	hit := make(map[int]bool, len(o.matched))
	for _, i := range o.matched {
		hit[i] = true
	}

	var sb strings.Builder
	for i, r := range o.value {
		if hit[i] {
			sb.WriteString(MatchStyle.Render(string(r)))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
