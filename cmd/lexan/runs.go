package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mgomes/lexan/store"
)

func runsCommand(args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	dbPath := fs.String("db", "", "SQLite database written by -db")
	show := fs.String("show", "", "print the stored result of this run id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dbPath == "" {
		return errors.New("lexan runs: -db required")
	}

	db, err := store.Open(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	runs, err := db.Runs(ctx)
	if err != nil {
		return err
	}

	if *show == "" {
		if len(runs) == 0 {
			fmt.Println("No runs recorded")
			return nil
		}
		for _, run := range runs {
			fmt.Printf("%s\t%s\t%s\t%s\n", run.ID, run.Kind, run.CreatedAt.Format(time.RFC3339), summarize(run.Source))
		}
		return nil
	}

	for _, run := range runs {
		if run.ID != *show {
			continue
		}
		switch run.Kind {
		case store.KindSymbols:
			table, err := db.Symbols(ctx, run.ID)
			if err != nil {
				return err
			}
			fmt.Println(renderSymbolTable(table))
		default:
			tokens, err := db.Tokens(ctx, run.ID)
			if err != nil {
				return err
			}
			writeTokenRows(os.Stdout, tokens)
		}
		return nil
	}
	return fmt.Errorf("lexan runs: no run %q", *show)
}

func summarize(source string) string {
	first, _, _ := strings.Cut(source, "\n")
	if len(first) > 40 {
		first = first[:40] + "..."
	}
	return first
}
