package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mgomes/lexan/lexan"
	"github.com/mgomes/lexan/store"
)

func symbolsCommand(args []string) error {
	fs := flag.NewFlagSet("symbols", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	file := fs.String("file", "", "read the expression from this file instead of stdin")
	sentinel := fs.String("sentinel", "$", "character that ends the expression")
	useTUI := fs.Bool("tui", false, "search the table in a full-screen terminal UI")
	noSearch := fs.Bool("no-search", false, "print the table and exit")
	dbPath := fs.String("db", "", "save the symbol table to this SQLite database")
	verbose := fs.Bool("v", false, "trace progress on stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	trace := newTraceLogger(*verbose)

	if utf8.RuneCountInString(*sentinel) != 1 {
		return fmt.Errorf("lexan symbols: sentinel must be a single character, got %q", *sentinel)
	}
	end, _ := utf8.DecodeRuneInString(*sentinel)
	analyzer, err := lexan.NewAnalyzer(lexan.Config{Sentinel: end})
	if err != nil {
		return err
	}

	var (
		consumed     bytes.Buffer
		input, stdin *bufio.Reader
	)
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			return &lexan.Error{Kind: lexan.KindInputUnavailable, Resource: *file, Err: err}
		}
		defer f.Close()
		input = bufio.NewReader(io.TeeReader(f, &consumed))
		stdin = bufio.NewReader(os.Stdin)
	} else {
		stdin = bufio.NewReader(io.TeeReader(os.Stdin, &consumed))
		input = stdin
		fmt.Printf("Enter an expression ending with %c: ", end)
	}

	table, err := analyzer.ExtractSymbols(input)
	if err != nil {
		return err
	}
	trace.Printf("extracted %d symbols", table.Len())

	fmt.Println()
	fmt.Println(renderSymbolTable(table))

	if *dbPath != "" {
		if err := saveSymbols(*dbPath, expressionText(consumed.String(), end), table); err != nil {
			return err
		}
		trace.Printf("saved symbol table to %s", *dbPath)
	}

	if *noSearch {
		return nil
	}
	if *useTUI {
		return runSearchTUI(table)
	}
	return runSearchLoop(stdin, os.Stdout, table)
}

// expressionText trims buffered input back to the text up to and including
// the sentinel.
func expressionText(consumed string, end rune) string {
	if i := strings.IndexRune(consumed, end); i >= 0 {
		return consumed[:i+utf8.RuneLen(end)]
	}
	return consumed
}

func saveSymbols(path, source string, table *lexan.SymbolTable) error {
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.SaveSymbols(context.Background(), source, table)
	return err
}

// runSearchLoop drives a search session from line-oriented input. Blank lines
// are skipped while waiting for an answer. End of input while waiting for a
// query is a malformed request; while waiting for y/n it ends the loop.
func runSearchLoop(in *bufio.Reader, out io.Writer, table *lexan.SymbolTable) error {
	session := lexan.NewSearchSession(table)
	for session.State() != lexan.Done {
		fmt.Fprint(out, "\n"+session.Prompt())

		line, err := readAnswer(in)
		if err != nil && !errors.Is(err, io.EOF) {
			return &lexan.Error{Kind: lexan.KindInputUnavailable, Resource: "stdin", Err: err}
		}
		if errors.Is(err, io.EOF) && session.State() == lexan.AwaitContinue {
			line = "n"
		}

		report, err := session.Submit(line)
		if err != nil {
			return err
		}
		if report != "" {
			fmt.Fprintln(out, report)
		}
	}
	return nil
}

func readAnswer(in *bufio.Reader) (string, error) {
	for {
		line, err := in.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
		if err != nil {
			return "", err
		}
	}
}
