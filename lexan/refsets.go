package lexan

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed defaults/keywords.txt
var defaultKeywords string

//go:embed defaults/operators.txt
var defaultOperators string

// ReferenceSets holds the static keyword and operator lists used to classify
// words. It is read-only once constructed.
type ReferenceSets struct {
	keywords  map[string]struct{}
	operators map[string]string
}

// NewReferenceSets builds reference sets from in-memory lists. The operator
// map goes from lexeme to display name.
func NewReferenceSets(keywords []string, operators map[string]string) *ReferenceSets {
	rs := &ReferenceSets{
		keywords:  make(map[string]struct{}, len(keywords)),
		operators: make(map[string]string, len(operators)),
	}
	for _, kw := range keywords {
		rs.keywords[kw] = struct{}{}
	}
	for lexeme, name := range operators {
		rs.operators[lexeme] = name
	}
	return rs
}

// DefaultReferenceSets returns the keyword and operator lists bundled with
// the package.
func DefaultReferenceSets() *ReferenceSets {
	keywords, err := ParseKeywords(strings.NewReader(defaultKeywords))
	if err != nil {
		panic(fmt.Sprintf("lexan: bundled keywords: %v", err))
	}
	operators, err := ParseOperators(strings.NewReader(defaultOperators))
	if err != nil {
		panic(fmt.Sprintf("lexan: bundled operators: %v", err))
	}
	return NewReferenceSets(keywords, operators)
}

// LoadReferenceSets reads the keyword and operator lists from disk. An empty
// path selects the bundled list for that set. Every file handle is closed
// before returning, including when a later open fails.
func LoadReferenceSets(keywordsPath, operatorsPath string) (*ReferenceSets, error) {
	var (
		keywords  []string
		operators map[string]string
		err       error
	)

	if keywordsPath == "" {
		keywords, err = ParseKeywords(strings.NewReader(defaultKeywords))
	} else {
		err = withFile(keywordsPath, func(r io.Reader) error {
			var parseErr error
			keywords, parseErr = ParseKeywords(r)
			return parseErr
		})
	}
	if err != nil {
		return nil, referenceError(displayPath(keywordsPath, "bundled keywords"), err)
	}

	if operatorsPath == "" {
		operators, err = ParseOperators(strings.NewReader(defaultOperators))
	} else {
		err = withFile(operatorsPath, func(r io.Reader) error {
			var parseErr error
			operators, parseErr = ParseOperators(r)
			return parseErr
		})
	}
	if err != nil {
		return nil, referenceError(displayPath(operatorsPath, "bundled operators"), err)
	}

	return NewReferenceSets(keywords, operators), nil
}

func withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}

func displayPath(path, fallback string) string {
	if path == "" {
		return fallback
	}
	return path
}

// ParseKeywords reads whitespace-separated keywords. Blank lines and lines
// starting with '#' are ignored.
func ParseKeywords(r io.Reader) ([]string, error) {
	var keywords []string
	err := eachLine(r, func(_ int, fields []string) error {
		keywords = append(keywords, fields...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keywords, nil
}

// ParseOperators reads one "lexeme name" pair per line. Blank lines and lines
// starting with '#' are ignored.
func ParseOperators(r io.Reader) (map[string]string, error) {
	operators := make(map[string]string)
	err := eachLine(r, func(line int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("line %d: expected lexeme and name, got %d field(s)", line, len(fields))
		}
		operators[fields[0]] = fields[1]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return operators, nil
}

func eachLine(r io.Reader, fn func(line int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(line, strings.Fields(text)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// IsKeyword reports whether word is a reserved keyword.
func (rs *ReferenceSets) IsKeyword(word string) bool {
	_, ok := rs.keywords[word]
	return ok
}

// OperatorName returns the display name for an operator lexeme.
func (rs *ReferenceSets) OperatorName(word string) (string, bool) {
	name, ok := rs.operators[word]
	return name, ok
}

// KeywordCount returns the number of distinct keywords.
func (rs *ReferenceSets) KeywordCount() int {
	return len(rs.keywords)
}

// OperatorCount returns the number of distinct operator lexemes.
func (rs *ReferenceSets) OperatorCount() int {
	return len(rs.operators)
}
