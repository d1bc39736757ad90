package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mgomes/lexan/lexan"
	"github.com/mgomes/lexan/store"
)

func tokensCommand(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	keywords := fs.String("keywords", "", "keyword list file")
	operators := fs.String("operators", "", "operator list file")
	intermediate := fs.String("intermediate", "", "write the line-marked source to this file")
	dbPath := fs.String("db", "", "save tokens to this SQLite database")
	ext := fs.String("ext", ".c", "source extension used when walking directories")
	verbose := fs.Bool("v", false, "trace progress on stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	trace := newTraceLogger(*verbose)

	targets := fs.Args()
	if len(targets) == 0 {
		name, err := promptFilename()
		if err != nil {
			return err
		}
		targets = []string{name}
	}

	files, err := collectSourceFiles(targets, *ext)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("lexan tokens: no %s files found", *ext)
	}
	if *intermediate != "" && len(files) != 1 {
		return errors.New("lexan tokens: -intermediate needs exactly one source file")
	}

	analyzer, err := lexan.NewAnalyzer(lexan.Config{KeywordsPath: *keywords, OperatorsPath: *operators})
	if err != nil {
		return err
	}
	refs := analyzer.References()
	trace.Printf("loaded %d keywords and %d operators", refs.KeywordCount(), refs.OperatorCount())

	var db *store.Store
	if *dbPath != "" {
		db, err = store.Open(*dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
	}

	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			return &lexan.Error{Kind: lexan.KindInputUnavailable, Resource: path, Err: err}
		}
		trace.Printf("scanning %s (%d bytes)", path, len(source))

		if *intermediate != "" {
			if err := writeIntermediate(*intermediate, source); err != nil {
				return err
			}
			trace.Printf("wrote intermediate form to %s", *intermediate)
		}

		if len(files) > 1 {
			fmt.Printf("==> %s <==\n", path)
		}
		if err := analyzer.WriteListing(os.Stdout, bytes.NewReader(source)); err != nil {
			return fmt.Errorf("tokenize %s: %w", path, err)
		}

		if db != nil {
			tokens, err := analyzer.Tokenize(bytes.NewReader(source))
			if err != nil {
				return fmt.Errorf("tokenize %s: %w", path, err)
			}
			id, err := db.SaveTokens(context.Background(), string(source), tokens)
			if err != nil {
				return err
			}
			trace.Printf("saved %d tokens as run %s", len(tokens), id)
		}
	}
	return nil
}

func promptFilename() (string, error) {
	fmt.Print("Enter the input filename: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	name := strings.TrimSpace(line)
	if name == "" {
		if err == nil {
			err = errors.New("no filename given")
		}
		return "", &lexan.Error{Kind: lexan.KindInputUnavailable, Resource: "stdin", Err: err}
	}
	return name, nil
}

func writeIntermediate(path string, source []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := lexan.RewriteLineBreaks(f, bytes.NewReader(source)); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// collectSourceFiles expands directories into the files below them that
// carry ext. Explicit file arguments are kept regardless of extension.
func collectSourceFiles(targets []string, ext string) ([]string, error) {
	seen := make(map[string]struct{})
	files := make([]string, 0)
	addFile := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return
		}
		if _, ok := seen[abs]; ok {
			return
		}
		seen[abs] = struct{}{}
		files = append(files, abs)
	}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, &lexan.Error{Kind: lexan.KindInputUnavailable, Resource: target, Err: err}
		}
		if !info.IsDir() {
			addFile(target)
			continue
		}
		var found []string
		err = filepath.WalkDir(target, func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if entry.IsDir() || filepath.Ext(path) != ext {
				return nil
			}
			found = append(found, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", target, err)
		}
		sort.Strings(found)
		for _, path := range found {
			addFile(path)
		}
	}

	return files, nil
}
