package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/mgomes/lexan/lexan"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

func renderSymbolTable(table *lexan.SymbolTable) string {
	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers("Symbol", "Address", "Type").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, sym := range table.Symbols() {
		t.Row(string(sym.Char), sym.Addr.String(), string(sym.Kind))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Symbol Table"))
	b.WriteString("\n")
	if table.Len() == 0 {
		b.WriteString(mutedStyle.Render("(no symbols)"))
		return b.String()
	}
	b.WriteString(t.Render())
	return b.String()
}

// writeTokenRows prints tokens grouped under "Line: N" headers.
func writeTokenRows(w io.Writer, tokens []lexan.Token) {
	line := 0
	for _, tok := range tokens {
		for line < tok.Pos.Line {
			line++
			fmt.Fprintf(w, "\nLine: %d\n", line)
		}
		fmt.Fprintf(w, "\t%s\t:\t%s\n", tok.Lexeme, tok.Label())
	}
}

func newTraceLogger(verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "lexan: ", 0)
}
