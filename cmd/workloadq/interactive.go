package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// --- confirmModel: bubbletea model for yes/no confirmation ---

type confirmModel struct {
	title   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit
		case "left", "right", "tab", "h", "l":
			m.value = !m.value
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yes := " Yes "
	no := " No "
	if m.value {
		yes = selectedStyle.Render(" Yes ")
	} else {
		no = selectedStyle.Render(" No ")
	}
	return fmt.Sprintf("%s %s / %s\n", titleStyle.Render(m.title), yes, no)
}

// --- filterModel: bubbletea model for fuzzy-less substring selection ---

type filterModel struct {
	textInput textinput.Model
	title     string
	items     []string
	matches   []int
	cursor    int
	choice    int
	aborted   bool
	done      bool
}

func newFilterModel(title string, items []string) filterModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Focus()

	m := filterModel{
		textInput: ti,
		title:     title,
		items:     items,
		choice:    -1,
	}
	m.refilter()
	return m
}

func (m *filterModel) refilter() {
	query := strings.ToLower(m.textInput.Value())
	m.matches = m.matches[:0]
	for i, item := range m.items {
		if strings.Contains(strings.ToLower(item), query) {
			m.matches = append(m.matches, i)
		}
	}
	if m.cursor >= len(m.matches) {
		m.cursor = len(m.matches) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m filterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m filterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if len(m.matches) > 0 {
				m.choice = m.matches[m.cursor]
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.refilter()
	return m, cmd
}

func (m filterModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.textInput.View() + "\n")
	if len(m.matches) == 0 {
		b.WriteString(dimStyle.Render("  no matches") + "\n")
		return b.String()
	}
	for pos, idx := range m.matches {
		line := "  " + m.items[idx]
		if pos == m.cursor {
			line = selectedStyle.Render("> " + m.items[idx])
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// --- prompt helpers ---

func promptConfirm(title string) (bool, error) {
	m := confirmModel{
		title: title,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, err
	}
	rm := result.(confirmModel)
	if rm.aborted {
		return false, fmt.Errorf("user aborted")
	}
	return rm.value, nil
}

// promptFilter shows a filterable list and returns the chosen index into
// items, or -1 when the user backs out without selecting.
func promptFilter(title string, items []string) (int, error) {
	m := newFilterModel(title, items)

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return -1, err
	}
	rm := result.(filterModel)
	if rm.aborted {
		return -1, nil
	}
	return rm.choice, nil
}
