package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mgomes/lexan/lexan"
)

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type searchModel struct {
	textInput   textinput.Model
	session     *lexan.SearchSession
	table       *lexan.SymbolTable
	history     []historyEntry
	width       int
	height      int
	showHelp    bool
	showTable   bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	CtrlT key.Binding
	CtrlH key.Binding
}

var keys = keyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	CtrlT: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "toggle table"),
	),
	CtrlH: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
}

func newSearchModel(table *lexan.SymbolTable) searchModel {
	session := lexan.NewSearchSession(table)

	ti := textinput.New()
	ti.Placeholder = "a symbol, e.g. x or +"
	ti.Focus()
	ti.CharLimit = 16
	ti.Width = 40
	ti.PromptStyle = promptStyle
	ti.Prompt = session.Prompt()

	return searchModel{
		textInput: ti,
		session:   session,
		table:     table,
		history:   make([]historyEntry, 0),
		showTable: true,
	}
}

func (m searchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = max(msg.Width-len(m.textInput.Prompt)-4, 10)
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlT):
			m.showTable = !m.showTable
			return m, nil

		case key.Matches(msg, keys.CtrlH):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}
			return m.submit(input)
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m searchModel) submit(input string) (tea.Model, tea.Cmd) {
	asked := m.session.State()
	report, err := m.session.Submit(input)
	m.textInput.SetValue("")

	switch {
	case err != nil:
		m.history = append(m.history, historyEntry{input: input, output: err.Error(), isErr: true})
	case asked == lexan.AwaitQuery:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: report,
			isErr:  !m.session.Last().Found,
		})
	}

	if m.session.State() == lexan.Done {
		m.quitting = true
		return m, tea.Quit
	}
	m.textInput.Prompt = m.session.Prompt()
	return m, nil
}

func (m searchModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	b.WriteString(headerStyle.Padding(0, 1).Render("Symbol Search"))
	b.WriteString(" " + mutedStyle.Render(fmt.Sprintf("%d entries", m.table.Len())) + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", max(min(m.width-2, 60), 0))) + "\n\n")

	if m.showTable {
		b.WriteString(renderSymbolTable(m.table))
		b.WriteString("\n\n")
	}

	reservedLines := 8
	if m.showHelp {
		reservedLines += 8
	}
	if m.showTable {
		reservedLines += m.table.Len() + 5
	}
	availableHeight := max(m.height-reservedLines, 1)

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}
	for _, entry := range m.history[historyStart:] {
		b.WriteString(mutedStyle.Render("  › ") + entry.input + "\n")
		if entry.isErr {
			b.WriteString("  " + errorStyle.Render("✗ "+entry.output) + "\n")
		} else {
			b.WriteString("  " + resultStyle.Render("→ "+entry.output) + "\n")
		}
	}
	if len(m.history) > 0 {
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(renderHelpPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("ctrl+k") + helpDescStyle.Render(" help  ") +
		helpKeyStyle.Render("ctrl+t") + helpDescStyle.Render(" table  ") +
		helpKeyStyle.Render("ctrl+l") + helpDescStyle.Render(" clear  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"Enter", "Search for the first character typed"},
		{"y / n", "Search again or finish"},
		{"ctrl+t", "Toggle the symbol table"},
		{"ctrl+l", "Clear results"},
		{"ctrl+c", "Exit"},
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Help"))
	for _, h := range help {
		line := fmt.Sprintf("  %s  %s",
			helpKeyStyle.Render(fmt.Sprintf("%-8s", h.key)),
			helpDescStyle.Render(h.desc))
		lines = append(lines, line)
	}

	return borderStyle.Render(strings.Join(lines, "\n"))
}

func runSearchTUI(table *lexan.SymbolTable) error {
	p := tea.NewProgram(newSearchModel(table), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
