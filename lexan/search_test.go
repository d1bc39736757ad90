package lexan

import (
	"errors"
	"strings"
	"testing"
)

func newExpressionSession(t *testing.T) *SearchSession {
	t.Helper()
	table, err := ExtractSymbols(strings.NewReader("x = a + b$"), DefaultSentinel)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	return NewSearchSession(table)
}

func TestSearchSessionLoop(t *testing.T) {
	s := newExpressionSession(t)
	if s.State() != AwaitQuery {
		t.Fatalf("expected AwaitQuery, got %s", s.State())
	}

	out, err := s.Submit("+")
	if err != nil {
		t.Fatalf("submit +: %v", err)
	}
	if out != "Symbol found: + at address A3" {
		t.Fatalf("unexpected report %q", out)
	}
	if s.State() != AwaitContinue {
		t.Fatalf("expected AwaitContinue, got %s", s.State())
	}

	if _, err := s.Submit("y"); err != nil {
		t.Fatalf("submit y: %v", err)
	}
	if s.State() != AwaitQuery {
		t.Fatalf("expected AwaitQuery after y, got %s", s.State())
	}

	out, err = s.Submit("  y  ")
	if err != nil {
		t.Fatalf("submit y query: %v", err)
	}
	if out != "Symbol not found." {
		t.Fatalf("unexpected report %q", out)
	}
	if last := s.Last(); last.Found || last.Query != 'y' {
		t.Fatalf("unexpected last result %+v", last)
	}

	if _, err := s.Submit("n"); err != nil {
		t.Fatalf("submit n: %v", err)
	}
	if s.State() != Done {
		t.Fatalf("expected Done, got %s", s.State())
	}
	if _, err := s.Submit("a"); err == nil {
		t.Fatalf("expected error after Done")
	}
}

func TestSearchSessionUsesFirstRuneOfQuery(t *testing.T) {
	s := newExpressionSession(t)
	out, err := s.Submit("ab")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out != "Symbol found: a at address A2" {
		t.Fatalf("unexpected report %q", out)
	}
}

func TestSearchSessionEmptyQueryIsMalformed(t *testing.T) {
	s := newExpressionSession(t)
	_, err := s.Submit("   ")
	if !errors.Is(err, ErrMalformedSymbolRequest) {
		t.Fatalf("expected ErrMalformedSymbolRequest, got %v", err)
	}
	var lexErr *Error
	if !errors.As(err, &lexErr) || lexErr.Kind != KindMalformedSymbolRequest {
		t.Fatalf("expected *Error with malformed kind, got %#v", err)
	}
	if s.State() != Done {
		t.Fatalf("expected Done after malformed request, got %s", s.State())
	}
}

func TestSearchSessionPrompts(t *testing.T) {
	s := newExpressionSession(t)
	if !strings.Contains(s.Prompt(), "symbol to search") {
		t.Fatalf("unexpected query prompt %q", s.Prompt())
	}
	_, _ = s.Submit("x")
	if !strings.Contains(s.Prompt(), "(y/n)") {
		t.Fatalf("unexpected continue prompt %q", s.Prompt())
	}
	_, _ = s.Submit("")
	if s.State() != Done || s.Prompt() != "" {
		t.Fatalf("empty continue answer should finish the session")
	}
}
