// Package lexan implements a small lexical-analysis pipeline for a toy,
// C-flavoured language. It provides:
//   - A whitespace/newline Scanner that tracks line numbers and emits a
//     line-boundary marker for every newline in the source.
//   - A Classifier that labels each word as an operator, keyword, constant,
//     or identifier using static reference sets.
//   - An append-only SymbolTable with synthetic addresses and a first-match
//     linear lookup, plus a SearchSession state machine for interactive use.
//
// Words are split on whitespace only; `x>0` is a single identifier word.
package lexan
