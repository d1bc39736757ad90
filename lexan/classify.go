package lexan

// Classify assigns a category to word. Operators are checked before
// keywords, then a leading decimal digit makes a constant; anything else is
// an identifier. Only the first character is inspected for constants, so
// "12a" is a Constant.
func (rs *ReferenceSets) Classify(word string) Category {
	if _, ok := rs.operators[word]; ok {
		return CategoryOperator
	}
	if _, ok := rs.keywords[word]; ok {
		return CategoryKeyword
	}
	if word != "" && isDecimalDigit(word[0]) {
		return CategoryConstant
	}
	return CategoryIdentifier
}

// ClassifyToken classifies word and wraps it in a Token at pos.
func (rs *ReferenceSets) ClassifyToken(word string, pos Position) Token {
	tok := Token{Lexeme: word, Category: rs.Classify(word), Pos: pos}
	if tok.Category == CategoryOperator {
		tok.Operator = rs.operators[word]
	}
	return tok
}

func isDecimalDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
