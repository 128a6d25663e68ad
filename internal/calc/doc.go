// Package calc evaluates integer expressions over bignum.BigInt.
//
// A statement is either an expression or an assignment "name = expr".
// Operators, from loosest to tightest binding:
//
//	< > <= >= == !=      one comparison per expression, yields 1 or 0
//	+ -                  left associative
//	*                    left associative
//	^ (or **)            right associative, exponent must be >= 0
//	- +                  unary
//	++x --x x++ x--      on variables only
//
// Builtins are abs(x), sign(x) and digits(x). Division and remainder are
// not supported. Input is NFKC-normalized before lexing, so full-width
// digits and operators are accepted; reported positions are byte offsets
// into the normalized text.
package calc
