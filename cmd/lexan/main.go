package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "tokens":
		return tokensCommand(args[2:])
	case "symbols":
		return symbolsCommand(args[2:])
	case "check":
		return checkCommand(args[2:])
	case "runs":
		return runsCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [args...]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  tokens [flags] [path...]")
	fmt.Fprintln(os.Stderr, "    classify every word of the given sources, line by line")
	fmt.Fprintln(os.Stderr, "  symbols [flags]")
	fmt.Fprintln(os.Stderr, "    build a symbol table from input ending with the sentinel, then search it")
	fmt.Fprintln(os.Stderr, "  check [flags] <file>")
	fmt.Fprintln(os.Stderr, "    report malformed constants and unclassified punctuation")
	fmt.Fprintln(os.Stderr, "  runs -db <file> [-show id]")
	fmt.Fprintln(os.Stderr, "    list or show analysis runs saved with -db")
	fmt.Fprintln(os.Stderr, "Common flags:")
	fmt.Fprintln(os.Stderr, "  -keywords <file>   keyword list (default: bundled)")
	fmt.Fprintln(os.Stderr, "  -operators <file>  operator list, one \"lexeme name\" pair per line (default: bundled)")
	fmt.Fprintln(os.Stderr, "  -db <file>         save the run to a SQLite database")
	fmt.Fprintln(os.Stderr, "  -v                 trace progress on stderr")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
