package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgomes/lexan/lexan"
)

func submitInput(t *testing.T, m searchModel, input string) (searchModel, tea.Cmd) {
	t.Helper()
	m.textInput.SetValue(input)
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sm, ok := model.(searchModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return sm, cmd
}

func TestSearchModelQueryAndQuit(t *testing.T) {
	m := newSearchModel(extractTable(t, "x = a + b$"))

	m, cmd := submitInput(t, m, "+")
	if cmd != nil {
		t.Fatalf("expected no command after a query")
	}
	if len(m.history) != 1 || m.history[0].output != "Symbol found: + at address A3" || m.history[0].isErr {
		t.Fatalf("unexpected history %+v", m.history)
	}
	if m.session.State() != lexan.AwaitContinue {
		t.Fatalf("expected AwaitContinue, got %s", m.session.State())
	}
	if !strings.Contains(m.textInput.Prompt, "(y/n)") {
		t.Fatalf("prompt not updated: %q", m.textInput.Prompt)
	}

	m, _ = submitInput(t, m, "y")
	m, _ = submitInput(t, m, "z")
	if len(m.history) != 2 || !m.history[1].isErr || m.history[1].output != "Symbol not found." {
		t.Fatalf("unexpected history %+v", m.history)
	}

	m, cmd = submitInput(t, m, "n")
	if !m.quitting {
		t.Fatalf("quitting flag not set")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestSearchModelIgnoresEmptyInput(t *testing.T) {
	m := newSearchModel(extractTable(t, "a$"))
	m, cmd := submitInput(t, m, "   ")
	if cmd != nil || len(m.history) != 0 {
		t.Fatalf("empty input should be ignored")
	}
	if m.session.State() != lexan.AwaitQuery {
		t.Fatalf("state changed on empty input: %s", m.session.State())
	}
}

func TestSearchModelTogglesAndView(t *testing.T) {
	m := newSearchModel(extractTable(t, "a+b$"))
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = model.(searchModel)

	view := m.View()
	if !strings.Contains(view, "Symbol Search") || !strings.Contains(view, "A2") {
		t.Fatalf("unexpected view:\n%s", view)
	}

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = model.(searchModel)
	if m.showTable {
		t.Fatalf("ctrl+t should hide the table")
	}

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	m = model.(searchModel)
	if !m.showHelp || !strings.Contains(m.View(), "Search again or finish") {
		t.Fatalf("ctrl+k should show help")
	}
}

func TestSearchModelCtrlCQuits(t *testing.T) {
	m := newSearchModel(extractTable(t, "a$"))
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !model.(searchModel).quitting || cmd == nil {
		t.Fatalf("ctrl+c should quit")
	}
}
