package calc

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// symbols NFKC leaves alone but users type anyway.
var symbolReplacer = strings.NewReplacer(
	"−", "-", // minus sign
	"×", "*", // multiplication sign
	"≤", "<=",
	"≥", ">=",
	"≠", "!=",
)

// Normalize applies NFKC and maps common math symbols to ASCII operators.
func Normalize(src string) string {
	return symbolReplacer.Replace(norm.NFKC.String(src))
}

type lexer struct {
	src string
	off int
}

// Lex splits normalized source into tokens ending with EOF.
func Lex(src string) ([]Token, error) {
	lx := &lexer{src: src}
	var out []Token
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		if tok.Kind == EOF {
			return out, nil
		}
	}
}

func (lx *lexer) peek() byte {
	if lx.off >= len(lx.src) {
		return 0
	}
	return lx.src[lx.off]
}

func (lx *lexer) try2(a, b byte) bool {
	if lx.off+1 < len(lx.src) && lx.src[lx.off] == a && lx.src[lx.off+1] == b {
		lx.off += 2
		return true
	}
	return false
}

func (lx *lexer) next() (Token, error) {
	for lx.off < len(lx.src) && isSpace(lx.src[lx.off]) {
		lx.off++
	}
	start := lx.off
	emit := func(k Kind) (Token, error) {
		return Token{Kind: k, Pos: start, Text: lx.src[start:lx.off]}, nil
	}
	if lx.off >= len(lx.src) {
		return emit(EOF)
	}

	c := lx.peek()
	switch {
	case isDigit(c):
		for isDigit(lx.peek()) {
			lx.off++
		}
		return emit(Int)
	case isIdentStart(c):
		for isIdentStart(lx.peek()) || isDigit(lx.peek()) {
			lx.off++
		}
		return emit(Ident)
	}

	switch {
	case lx.try2('+', '+'):
		return emit(PlusPlus)
	case lx.try2('-', '-'):
		return emit(MinusMinus)
	case lx.try2('=', '='):
		return emit(EqEq)
	case lx.try2('!', '='):
		return emit(BangEq)
	case lx.try2('<', '='):
		return emit(LtEq)
	case lx.try2('>', '='):
		return emit(GtEq)
	case lx.try2('*', '*'):
		return emit(Caret)
	}

	lx.off++
	switch c {
	case '+':
		return emit(Plus)
	case '-':
		return emit(Minus)
	case '*':
		return emit(Star)
	case '^':
		return emit(Caret)
	case '/':
		return emit(Slash)
	case '%':
		return emit(Percent)
	case '=':
		return emit(Equals)
	case '<':
		return emit(Lt)
	case '>':
		return emit(Gt)
	case '(':
		return emit(LParen)
	case ')':
		return emit(RParen)
	}
	return Token{}, errorf(start, ErrSyntax, "unexpected character %q", runeAt(lx.src, start))
}

func runeAt(s string, off int) string {
	for i := range s[off:] {
		if i > 0 {
			return s[off : off+i]
		}
	}
	return s[off:]
}

func isSpace(c byte) bool      { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }
func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || (c|0x20 >= 'a' && c|0x20 <= 'z') }
