package lexan

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Diagnostic flags a word whose classification is probably not what the
// author meant.
type Diagnostic struct {
	Pos     Position
	Lexeme  string
	Message string
}

// Check reports constants that are not well-formed numbers and words that
// fall through to Identifier without looking like one.
func (a *Analyzer) Check(source string) ([]Diagnostic, error) {
	tokens, err := a.Tokenize(strings.NewReader(source))
	if err != nil {
		return nil, err
	}

	diags := make([]Diagnostic, 0)
	for _, tok := range tokens {
		switch tok.Category {
		case CategoryConstant:
			if !isWellFormedNumber(tok.Lexeme) {
				diags = append(diags, Diagnostic{
					Pos:     tok.Pos,
					Lexeme:  tok.Lexeme,
					Message: fmt.Sprintf("constant %q is not a well-formed number", tok.Lexeme),
				})
			}
		case CategoryIdentifier:
			first, _ := utf8.DecodeRuneInString(tok.Lexeme)
			if !unicode.IsLetter(first) && first != '_' {
				diags = append(diags, Diagnostic{
					Pos:     tok.Pos,
					Lexeme:  tok.Lexeme,
					Message: fmt.Sprintf("%q matches no reference set; classified as identifier", tok.Lexeme),
				})
			}
		}
	}

	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Pos.Line != diags[j].Pos.Line {
			return diags[i].Pos.Line < diags[j].Pos.Line
		}
		return diags[i].Pos.Column < diags[j].Pos.Column
	})
	return diags, nil
}

func isWellFormedNumber(lexeme string) bool {
	seenDot := false
	for i := 0; i < len(lexeme); i++ {
		switch c := lexeme[i]; {
		case isDecimalDigit(c):
		case c == '.' && !seenDot && i > 0 && i < len(lexeme)-1:
			seenDot = true
		default:
			return false
		}
	}
	return lexeme != ""
}

// Frame renders the source line containing the diagnostic with a caret under
// its first character.
func (d Diagnostic) Frame(source string) string {
	return formatCodeFrame(source, d.Pos)
}
