package lexan

// Category identifies the lexical class assigned to a word.
type Category string

const (
	CategoryKeyword    Category = "Keyword"
	CategoryOperator   Category = "Operator"
	CategoryIdentifier Category = "Identifier"
	CategoryConstant   Category = "Constant"
)

// Token is a classified word.
type Token struct {
	Lexeme   string
	Category Category
	// Operator holds the display name from the operator reference set and
	// is empty for every other category.
	Operator string
	Pos      Position
}

// Label is the text shown next to the lexeme in listings: the operator's
// display name for operators, the category otherwise.
func (t Token) Label() string {
	if t.Category == CategoryOperator && t.Operator != "" {
		return t.Operator
	}
	return string(t.Category)
}

// Position identifies a line and rune column in the source, both 1-based.
type Position struct {
	Line   int
	Column int
}
