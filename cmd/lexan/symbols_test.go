package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mgomes/lexan/lexan"
	"github.com/mgomes/lexan/store"
)

func extractTable(t *testing.T, expr string) *lexan.SymbolTable {
	t.Helper()
	table, err := lexan.ExtractSymbols(strings.NewReader(expr), lexan.DefaultSentinel)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	return table
}

func TestSymbolsCommandBuildsTableAndSearches(t *testing.T) {
	withStdin(t, "x = a + b$\n+\ny\n\n  y\nn\n")

	out, err := captureStdout(t, func() error {
		return symbolsCommand(nil)
	})
	if err != nil {
		t.Fatalf("symbols command failed: %v", err)
	}

	for _, want := range []string{
		"Enter an expression ending with $: ",
		"Symbol Table",
		"Address",
		"A4",
		"Operator",
		"Symbol found: + at address A3",
		"Do you want to search again? (y/n): ",
		"Symbol not found.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "A5") {
		t.Fatalf("expected exactly five entries:\n%s", out)
	}
}

func TestSymbolsCommandReadsFileAndSaves(t *testing.T) {
	path := writeSource(t, "expr.txt", "total = price * ( qty - 1 )$ ignored")
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	out, err := captureStdout(t, func() error {
		return symbolsCommand([]string{"-file", path, "-no-search", "-db", dbPath})
	})
	if err != nil {
		t.Fatalf("symbols command failed: %v", err)
	}
	if strings.Contains(out, "Enter an expression") {
		t.Fatalf("file input should not prompt:\n%s", out)
	}

	db, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	runs, err := db.Runs(ctx)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 1 || runs[0].Kind != store.KindSymbols {
		t.Fatalf("unexpected runs %+v", runs)
	}
	if runs[0].Source != "total = price * ( qty - 1 )$" {
		t.Fatalf("unexpected stored source %q", runs[0].Source)
	}

	table, err := db.Symbols(ctx, runs[0].ID)
	if err != nil {
		t.Fatalf("symbols: %v", err)
	}
	if table.Len() != 18 {
		t.Fatalf("expected 18 stored symbols, got %d", table.Len())
	}
}

func TestSymbolsCommandRejectsLongSentinel(t *testing.T) {
	err := symbolsCommand([]string{"-sentinel", "$$"})
	if err == nil || !strings.Contains(err.Error(), "single character") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunSearchLoopEOFAtQueryIsMalformed(t *testing.T) {
	var out bytes.Buffer
	err := runSearchLoop(bufio.NewReader(strings.NewReader("\n\n")), &out, extractTable(t, "a$"))
	if !errors.Is(err, lexan.ErrMalformedSymbolRequest) {
		t.Fatalf("expected malformed request, got %v", err)
	}
}

func TestRunSearchLoopEOFAtContinueEnds(t *testing.T) {
	var out bytes.Buffer
	err := runSearchLoop(bufio.NewReader(strings.NewReader("a")), &out, extractTable(t, "a$"))
	if err != nil {
		t.Fatalf("search loop failed: %v", err)
	}
	if !strings.Contains(out.String(), "Symbol found: a at address A0") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestExpressionText(t *testing.T) {
	if got := expressionText("x = y$\n+\n", '$'); got != "x = y$" {
		t.Fatalf("unexpected expression %q", got)
	}
	if got := expressionText("no end", '$'); got != "no end" {
		t.Fatalf("unexpected expression %q", got)
	}
}
