// Package bignum implements BigInt, an arbitrary-precision signed integer
// held as a sign flag and a base-10 magnitude.
//
// The magnitude is stored least-significant digit first. Every value handed
// out by this package is canonical: the magnitude has at least one digit, no
// high-order zero digits, and zero is never negative. The zero value of
// BigInt is canonical zero.
//
// Arithmetic is exposed through named functions (Add, Sub, Mul, Pow) that
// return fresh values, plus pointer-receiver helpers (AddAssign, Inc,
// PostDec, ...) that compute a new value and replace the receiver with it.
// Division and modulo are intentionally absent.
package bignum
