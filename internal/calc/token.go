package calc

// Kind is the category of a lexed token.
type Kind uint8

const (
	Invalid Kind = iota
	EOF
	Int
	Ident
	Plus       // +
	Minus      // -
	Star       // *
	Caret      // ^
	Slash      // /
	Percent    // %
	PlusPlus   // ++
	MinusMinus // --
	Equals     // =
	EqEq       // ==
	BangEq     // !=
	Lt         // <
	Gt         // >
	LtEq       // <=
	GtEq       // >=
	LParen     // (
	RParen     // )
)

var kindNames = [...]string{
	Invalid:    "invalid",
	EOF:        "end of input",
	Int:        "integer",
	Ident:      "identifier",
	Plus:       "'+'",
	Minus:      "'-'",
	Star:       "'*'",
	Caret:      "'^'",
	Slash:      "'/'",
	Percent:    "'%'",
	PlusPlus:   "'++'",
	MinusMinus: "'--'",
	Equals:     "'='",
	EqEq:       "'=='",
	BangEq:     "'!='",
	Lt:         "'<'",
	Gt:         "'>'",
	LtEq:       "'<='",
	GtEq:       "'>='",
	LParen:     "'('",
	RParen:     "')'",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token is a lexed token with its byte offset.
type Token struct {
	Kind Kind
	Pos  int
	Text string
}
