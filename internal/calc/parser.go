package calc

import (
	"numkit/internal/bignum"
)

var builtins = map[string]struct{}{
	"abs":    {},
	"sign":   {},
	"digits": {},
}

// IsBuiltin reports whether name is a builtin function and so cannot be
// used as a variable.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

type parser struct {
	toks []Token
	pos  int
}

// Parse normalizes and parses one statement.
func Parse(src string) (Node, error) {
	toks, err := Lex(Normalize(src))
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.statement()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != EOF {
		return nil, p.unexpected(tok)
	}
	return n, nil
}

func (p *parser) peek() Token { return p.toks[p.pos] }

func (p *parser) peekN(n int) Token {
	if p.pos+n < len(p.toks) {
		return p.toks[p.pos+n]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) advance() Token {
	tok := p.toks[p.pos]
	if tok.Kind != EOF {
		p.pos++
	}
	return tok
}

func (p *parser) accept(kinds ...Kind) (Token, bool) {
	tok := p.peek()
	for _, k := range kinds {
		if tok.Kind == k {
			p.pos++
			return tok, true
		}
	}
	return tok, false
}

func (p *parser) unexpected(tok Token) error {
	switch tok.Kind {
	case Slash, Percent:
		return errorf(tok.Pos, ErrUnsupported, "operator %s is not supported", tok.Kind)
	case EOF:
		return errorf(tok.Pos, ErrSyntax, "unexpected end of input")
	case RParen:
		return errorf(tok.Pos, ErrSyntax, "unbalanced ')'")
	}
	return errorf(tok.Pos, ErrSyntax, "unexpected %s %q", tok.Kind, tok.Text)
}

func (p *parser) statement() (Node, error) {
	if p.peek().Kind == Ident && p.peekN(1).Kind == Equals {
		name := p.advance()
		p.advance()
		x, err := p.comparison()
		if err != nil {
			return nil, err
		}
		if _, ok := builtins[name.Text]; ok {
			return nil, errorf(name.Pos, ErrSyntax, "cannot assign to builtin %q", name.Text)
		}
		return &Assign{At: name.Pos, Name: name.Text, X: x}, nil
	}
	return p.comparison()
}

func (p *parser) comparison() (Node, error) {
	l, err := p.sum()
	if err != nil {
		return nil, err
	}
	op, ok := p.accept(Lt, Gt, LtEq, GtEq, EqEq, BangEq)
	if !ok {
		return l, nil
	}
	r, err := p.sum()
	if err != nil {
		return nil, err
	}
	return &Binary{At: op.Pos, Op: op.Kind, L: l, R: r}, nil
}

func (p *parser) sum() (Node, error) {
	l, err := p.product()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.accept(Plus, Minus)
		if !ok {
			return l, nil
		}
		r, err := p.product()
		if err != nil {
			return nil, err
		}
		l = &Binary{At: op.Pos, Op: op.Kind, L: l, R: r}
	}
}

func (p *parser) product() (Node, error) {
	l, err := p.power()
	if err != nil {
		return nil, err
	}
	for {
		if k := p.peek().Kind; k == Slash || k == Percent {
			return nil, p.unexpected(p.peek())
		}
		op, ok := p.accept(Star)
		if !ok {
			return l, nil
		}
		r, err := p.power()
		if err != nil {
			return nil, err
		}
		l = &Binary{At: op.Pos, Op: op.Kind, L: l, R: r}
	}
}

func (p *parser) power() (Node, error) {
	base, err := p.unary()
	if err != nil {
		return nil, err
	}
	op, ok := p.accept(Caret)
	if !ok {
		return base, nil
	}
	exp, err := p.power()
	if err != nil {
		return nil, err
	}
	return &Binary{At: op.Pos, Op: Caret, L: base, R: exp}, nil
}

func (p *parser) unary() (Node, error) {
	if op, ok := p.accept(Minus, Plus); ok {
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{At: op.Pos, Op: op.Kind, X: x}, nil
	}
	if op, ok := p.accept(PlusPlus, MinusMinus); ok {
		name, ok := p.accept(Ident)
		if !ok {
			return nil, errorf(op.Pos, ErrSyntax, "%s needs a variable", op.Kind)
		}
		return &Step{At: op.Pos, Op: op.Kind, Prefix: true, Name: name.Text}, nil
	}
	return p.postfix()
}

func (p *parser) postfix() (Node, error) {
	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	op, ok := p.accept(PlusPlus, MinusMinus)
	if !ok {
		return x, nil
	}
	v, isVar := x.(*Var)
	if !isVar {
		return nil, errorf(op.Pos, ErrSyntax, "%s needs a variable", op.Kind)
	}
	return &Step{At: v.At, Op: op.Kind, Name: v.Name}, nil
}

func (p *parser) primary() (Node, error) {
	tok := p.advance()
	switch tok.Kind {
	case Int:
		v, err := bignum.Parse(tok.Text)
		if err != nil {
			return nil, &Error{Pos: tok.Pos, Kind: ErrSyntax, Msg: "bad integer", Err: err}
		}
		return &Lit{At: tok.Pos, Value: v}, nil
	case Ident:
		if p.peek().Kind != LParen {
			if _, ok := builtins[tok.Text]; ok {
				return nil, errorf(tok.Pos, ErrSyntax, "builtin %q needs an argument", tok.Text)
			}
			return &Var{At: tok.Pos, Name: tok.Text}, nil
		}
		if _, ok := builtins[tok.Text]; !ok {
			return nil, errorf(tok.Pos, ErrSyntax, "unknown function %q", tok.Text)
		}
		open := p.advance()
		arg, err := p.comparison()
		if err != nil {
			return nil, err
		}
		if _, ok := p.accept(RParen); !ok {
			return nil, errorf(open.Pos, ErrSyntax, "unbalanced '('")
		}
		return &Call{At: tok.Pos, Fn: tok.Text, Arg: arg}, nil
	case LParen:
		x, err := p.comparison()
		if err != nil {
			return nil, err
		}
		if _, ok := p.accept(RParen); !ok {
			return nil, errorf(tok.Pos, ErrSyntax, "unbalanced '('")
		}
		return x, nil
	}
	return nil, p.unexpected(tok)
}
