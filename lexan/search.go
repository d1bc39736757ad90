package lexan

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// SearchState is a step of the interactive symbol search loop.
type SearchState int

const (
	AwaitQuery SearchState = iota
	Searching
	ReportResult
	AwaitContinue
	Done
)

func (s SearchState) String() string {
	switch s {
	case AwaitQuery:
		return "AwaitQuery"
	case Searching:
		return "Searching"
	case ReportResult:
		return "ReportResult"
	case AwaitContinue:
		return "AwaitContinue"
	case Done:
		return "Done"
	default:
		return fmt.Sprintf("SearchState(%d)", int(s))
	}
}

var errSearchFinished = errors.New("search session finished")

// SearchResult is the outcome of one query.
type SearchResult struct {
	Query rune
	Addr  Address
	Found bool
}

func (r SearchResult) String() string {
	if !r.Found {
		return "Symbol not found."
	}
	return fmt.Sprintf("Symbol found: %c at address %s", r.Query, r.Addr)
}

// SearchSession drives repeated lookups against a SymbolTable. Callers feed
// it one line of user input at a time through Submit.
type SearchSession struct {
	table *SymbolTable
	state SearchState
	last  SearchResult
}

func NewSearchSession(table *SymbolTable) *SearchSession {
	return &SearchSession{table: table, state: AwaitQuery}
}

func (s *SearchSession) State() SearchState {
	return s.state
}

// Last returns the most recent search result.
func (s *SearchSession) Last() SearchResult {
	return s.last
}

// Prompt returns the text to show before reading the next input line.
func (s *SearchSession) Prompt() string {
	switch s.state {
	case AwaitQuery:
		return "Enter symbol to search: "
	case AwaitContinue:
		return "Do you want to search again? (y/n): "
	default:
		return ""
	}
}

// Submit advances the session with one line of input and returns the text
// to report, if any. An empty query is a MalformedSymbolRequest and ends the
// session.
func (s *SearchSession) Submit(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	switch s.state {
	case AwaitQuery:
		if trimmed == "" {
			s.state = Done
			return "", &Error{Kind: KindMalformedSymbolRequest, Err: errors.New("no symbol given")}
		}
		query, _ := utf8.DecodeRuneInString(trimmed)
		s.state = Searching
		addr, found := s.table.Lookup(query)
		s.last = SearchResult{Query: query, Addr: addr, Found: found}
		s.state = ReportResult
		report := s.last.String()
		s.state = AwaitContinue
		return report, nil
	case AwaitContinue:
		if strings.HasPrefix(trimmed, "y") || strings.HasPrefix(trimmed, "Y") {
			s.state = AwaitQuery
		} else {
			s.state = Done
		}
		return "", nil
	default:
		return "", errSearchFinished
	}
}
