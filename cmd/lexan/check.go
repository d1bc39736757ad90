package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mgomes/lexan/lexan"
)

func checkCommand(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	keywords := fs.String("keywords", "", "keyword list file")
	operators := fs.String("operators", "", "operator list file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("lexan check: source path required")
	}

	sourcePath, err := filepath.Abs(remaining[0])
	if err != nil {
		return fmt.Errorf("resolve source path: %w", err)
	}
	input, err := os.ReadFile(sourcePath)
	if err != nil {
		return &lexan.Error{Kind: lexan.KindInputUnavailable, Resource: sourcePath, Err: err}
	}

	analyzer, err := lexan.NewAnalyzer(lexan.Config{KeywordsPath: *keywords, OperatorsPath: *operators})
	if err != nil {
		return err
	}

	source := string(input)
	diags, err := analyzer.Check(source)
	if err != nil {
		return err
	}
	if len(diags) == 0 {
		fmt.Println("No issues found")
		return nil
	}

	for _, d := range diags {
		fmt.Printf("%s:%d:%d: %s\n", sourcePath, d.Pos.Line, d.Pos.Column, d.Message)
		if frame := d.Frame(source); frame != "" {
			fmt.Println(frame)
		}
	}

	return fmt.Errorf("check found %d issue(s)", len(diags))
}
