package lexan

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// Word is a raw whitespace-delimited chunk of source. A LineBreak word marks
// a newline; its Text is empty and its Pos is the end of the line it closes.
type Word struct {
	Text      string
	Pos       Position
	LineBreak bool
}

// Scanner splits a character stream into words in a single pass, tracking
// the current line.
type Scanner struct {
	r *bufio.Reader

	line   int
	column int

	pending *Word
	err     error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r), line: 1}
}

// Line returns the line the scanner is currently on.
func (s *Scanner) Line() int {
	return s.line
}

// Next returns the next word or line-boundary marker. It returns io.EOF once
// the input is exhausted; read failures are reported as InputUnavailable.
func (s *Scanner) Next() (Word, error) {
	if s.pending != nil {
		w := *s.pending
		s.pending = nil
		return w, nil
	}
	if s.err != nil {
		return Word{}, s.err
	}

	var (
		sb    strings.Builder
		start Position
	)
	for {
		r, err := s.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.err = io.EOF
			} else {
				s.err = inputError("", err)
			}
			if sb.Len() > 0 {
				return Word{Text: sb.String(), Pos: start}, nil
			}
			return Word{}, s.err
		}

		switch {
		case r == '\n':
			marker := Word{LineBreak: true, Pos: Position{Line: s.line, Column: s.column}}
			s.line++
			s.column = 0
			if sb.Len() > 0 {
				s.pending = &marker
				return Word{Text: sb.String(), Pos: start}, nil
			}
			return marker, nil
		case unicode.IsSpace(r):
			if sb.Len() > 0 {
				return Word{Text: sb.String(), Pos: start}, nil
			}
		default:
			if sb.Len() == 0 {
				start = Position{Line: s.line, Column: s.column}
			}
			sb.WriteRune(r)
		}
	}
}

func (s *Scanner) readRune() (rune, error) {
	r, _, err := s.r.ReadRune()
	if err != nil {
		return 0, err
	}
	s.column++
	return r, nil
}

// RewriteLineBreaks copies src to dst, replacing every newline with a
// standalone " $" marker followed by the newline. The output is the
// materialized intermediate form of the source.
func RewriteLineBreaks(dst io.Writer, src io.Reader) error {
	in := bufio.NewReader(src)
	out := bufio.NewWriter(dst)
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return inputError("", err)
		}
		if r == '\n' {
			_, err = out.WriteString(" $\n")
		} else {
			_, err = out.WriteRune(r)
		}
		if err != nil {
			return err
		}
	}
	return out.Flush()
}
