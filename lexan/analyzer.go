package lexan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Config controls where reference sets come from and how symbol input ends.
type Config struct {
	KeywordsPath  string
	OperatorsPath string
	Sentinel      rune
}

// Analyzer bundles loaded reference sets with the scanning entry points.
type Analyzer struct {
	config Config
	refs   *ReferenceSets
}

// NewAnalyzer loads the configured reference sets. Empty paths select the
// bundled lists and a zero Sentinel selects DefaultSentinel.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	if cfg.Sentinel == 0 {
		cfg.Sentinel = DefaultSentinel
	}
	refs, err := LoadReferenceSets(cfg.KeywordsPath, cfg.OperatorsPath)
	if err != nil {
		return nil, err
	}
	return &Analyzer{config: cfg, refs: refs}, nil
}

// MustNewAnalyzer is like NewAnalyzer but panics on error.
func MustNewAnalyzer(cfg Config) *Analyzer {
	a, err := NewAnalyzer(cfg)
	if err != nil {
		panic(err)
	}
	return a
}

// NewAnalyzerWithReferences wraps already-built reference sets.
func NewAnalyzerWithReferences(refs *ReferenceSets) *Analyzer {
	return &Analyzer{config: Config{Sentinel: DefaultSentinel}, refs: refs}
}

func (a *Analyzer) References() *ReferenceSets {
	return a.refs
}

func (a *Analyzer) Sentinel() rune {
	return a.config.Sentinel
}

// Tokenize classifies every word in r. Line-boundary markers are dropped;
// each token keeps its line in Pos.
func (a *Analyzer) Tokenize(r io.Reader) ([]Token, error) {
	var tokens []Token
	err := a.walk(r, func(w Word) error {
		if !w.LineBreak {
			tokens = append(tokens, a.refs.ClassifyToken(w.Text, w.Pos))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// WriteListing streams the per-line classification listing for r to w.
// Lines already written stay written if a later read fails.
func (a *Analyzer) WriteListing(w io.Writer, r io.Reader) error {
	out := bufio.NewWriter(w)
	line := 1
	fmt.Fprintf(out, "\nLexical Analysis\nLine: %d\n", line)
	err := a.walk(r, func(word Word) error {
		if word.LineBreak {
			line++
			fmt.Fprintf(out, "\nLine: %d\n", line)
			return out.Flush()
		}
		tok := a.refs.ClassifyToken(word.Text, word.Pos)
		_, err := fmt.Fprintf(out, "\t%s\t:\t%s\n", tok.Lexeme, tok.Label())
		return err
	})
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	return err
}

// ExtractSymbols builds a symbol table from r up to the configured sentinel.
func (a *Analyzer) ExtractSymbols(r io.Reader) (*SymbolTable, error) {
	return ExtractSymbols(r, a.config.Sentinel)
}

func (a *Analyzer) walk(r io.Reader, fn func(Word) error) error {
	s := NewScanner(r)
	for {
		w, err := s.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := fn(w); err != nil {
			return err
		}
	}
}
