package lexan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// DefaultSentinel ends interactive symbol input.
const DefaultSentinel = '$'

// Address is the synthetic address of a symbol table entry. Addresses are
// allocated in insertion order and never reused.
type Address uint32

func (a Address) String() string {
	return fmt.Sprintf("A%d", uint32(a))
}

// SymbolKind distinguishes letters from operator characters.
type SymbolKind string

const (
	SymbolIdentifier SymbolKind = "Identifier"
	SymbolOperator   SymbolKind = "Operator"
)

// Symbol is one symbol table entry.
type Symbol struct {
	Char rune
	Addr Address
	Kind SymbolKind
}

// SymbolTable is an append-only list of symbols. Repeated characters get
// their own entries.
type SymbolTable struct {
	entries []Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{}
}

// Qualifies reports whether ch belongs in the symbol table.
func Qualifies(ch rune) bool {
	if unicode.IsLetter(ch) {
		return true
	}
	return strings.ContainsRune("+-*/=()", ch)
}

// Insert appends ch and returns its new address.
func (t *SymbolTable) Insert(ch rune) Address {
	addr := Address(len(t.entries))
	kind := SymbolOperator
	if unicode.IsLetter(ch) {
		kind = SymbolIdentifier
	}
	t.entries = append(t.entries, Symbol{Char: ch, Addr: addr, Kind: kind})
	return addr
}

// Lookup returns the address of the first entry for ch.
func (t *SymbolTable) Lookup(ch rune) (Address, bool) {
	for _, sym := range t.entries {
		if sym.Char == ch {
			return sym.Addr, true
		}
	}
	return 0, false
}

// Symbols returns a copy of the entries in insertion order.
func (t *SymbolTable) Symbols() []Symbol {
	return append([]Symbol(nil), t.entries...)
}

func (t *SymbolTable) Len() int {
	return len(t.entries)
}

// ExtractSymbols reads runes from r until sentinel (or end of input) and
// inserts every qualifying character into a new table.
func ExtractSymbols(r io.Reader, sentinel rune) (*SymbolTable, error) {
	table := NewSymbolTable()
	in, ok := r.(io.RuneReader)
	if !ok {
		in = bufio.NewReader(r)
	}
	for {
		ch, _, err := in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return table, nil
			}
			return nil, inputError("", err)
		}
		if ch == sentinel {
			return table, nil
		}
		if Qualifies(ch) {
			table.Insert(ch)
		}
	}
}
