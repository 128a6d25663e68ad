package calc

import "numkit/internal/bignum"

// Node is a parsed expression.
type Node interface {
	Pos() int
}

type (
	// Lit is an integer literal.
	Lit struct {
		At    int
		Value bignum.BigInt
	}
	// Var reads a variable.
	Var struct {
		At   int
		Name string
	}
	// Unary is -x or +x.
	Unary struct {
		At int
		Op Kind
		X  Node
	}
	// Binary is l op r for arithmetic and comparison operators.
	Binary struct {
		At   int
		Op   Kind
		L, R Node
	}
	// Step is ++x, --x, x++ or x--.
	Step struct {
		At     int
		Op     Kind
		Prefix bool
		Name   string
	}
	// Call applies a builtin.
	Call struct {
		At  int
		Fn  string
		Arg Node
	}
	// Assign is name = x. It only appears at statement level.
	Assign struct {
		At   int
		Name string
		X    Node
	}
)

func (n *Lit) Pos() int    { return n.At }
func (n *Var) Pos() int    { return n.At }
func (n *Unary) Pos() int  { return n.At }
func (n *Binary) Pos() int { return n.At }
func (n *Step) Pos() int   { return n.At }
func (n *Call) Pos() int   { return n.At }
func (n *Assign) Pos() int { return n.At }
