// SPDX-License-Identifier: MIT
// Package poly: the Poly type, constructors, and ring arithmetic.
//
// Purpose:
//   - Wrap a coefficient bit-vector in polynomial vocabulary.
//   - Keep arithmetic operand-preserving: Add/Mul/Squared return fresh
//     polynomials and never mutate their receivers.
//
// Notes:
//   - Coefficient i of x^i sits at element i of the underlying vector.
//   - High-order zero coefficients are legal; Degree looks past them.

package poly

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gf2/store"
)

// Poly is a polynomial over GF(2), held as a coefficient bit-vector with
// the coefficient of x^i at element i.
type Poly struct {
	coeffs *store.Vec
}

// Zero returns the zero polynomial.
func Zero() *Poly { return &Poly{coeffs: store.NewVec()} }

// One returns the constant polynomial 1.
func One() *Poly { return Constant(true) }

// Constant returns the constant polynomial val.
func Constant(val bool) *Poly {
	p := &Poly{coeffs: store.NewVec()}
	p.coeffs.Push(val)

	return p
}

// XToThe returns the monomial x^n.
//
// Errors:
//   - ErrBadDegree if n is negative.
func XToThe(n int) (*Poly, error) {
	if n < 0 {
		return nil, fmt.Errorf("XToThe: degree %d: %w", n, ErrBadDegree)
	}
	v, _ := store.ZerosVec(n + 1)
	v.Set(n, true)

	return &Poly{coeffs: v}, nil
}

// Ones returns the polynomial 1 + x + ... + x^(n-1) of n coefficients.
// Ones(0) is the zero polynomial.
//
// Errors:
//   - ErrBadDegree if n is negative.
func Ones(n int) (*Poly, error) {
	if n < 0 {
		return nil, fmt.Errorf("Ones: length %d: %w", n, ErrBadDegree)
	}
	v, _ := store.OnesVec(n)

	return &Poly{coeffs: v}, nil
}

// FromCoeffs returns the polynomial with the given exponents set, e.g.
// FromCoeffs(0, 2, 5) is 1 + x^2 + x^5. Duplicate exponents are idempotent.
//
// Errors:
//   - ErrBadDegree if any exponent is negative.
func FromCoeffs(exponents ...int) (*Poly, error) {
	max := -1
	for _, e := range exponents {
		if e < 0 {
			return nil, fmt.Errorf("FromCoeffs: exponent %d: %w", e, ErrBadDegree)
		}
		if e > max {
			max = e
		}
	}
	v, _ := store.ZerosVec(max + 1)
	for _, e := range exponents {
		v.Set(e, true)
	}

	return &Poly{coeffs: v}, nil
}

// FromString parses a coefficient string in any format store.VecFromString
// accepts (binary or suffixed hex); element i of the parsed vector becomes
// the coefficient of x^i, so "101" is 1 + x^2.
//
// Errors:
//   - store.ErrBadString if s is not parsable.
func FromString(s string) (*Poly, error) {
	v, err := store.VecFromString(s)
	if err != nil {
		return nil, fmt.Errorf("FromString: %w", err)
	}

	return &Poly{coeffs: v}, nil
}

// FromVec returns a polynomial holding a copy of the given coefficients.
func FromVec(v *store.Vec) *Poly { return &Poly{coeffs: v.Clone()} }

// Random returns a polynomial of n fair-coin coefficients.
//
// Errors:
//   - ErrBadDegree if n is negative.
func Random(n int) (*Poly, error) { return RandomSeeded(n, 0) }

// RandomSeeded returns a reproducible polynomial of n fair-coin
// coefficients driven by seed (0 means "use the clock").
//
// Errors:
//   - ErrBadDegree if n is negative.
func RandomSeeded(n int, seed uint64) (*Poly, error) {
	if n < 0 {
		return nil, fmt.Errorf("RandomSeeded: length %d: %w", n, ErrBadDegree)
	}
	v, _ := store.RandomVecSeeded(n, seed)

	return &Poly{coeffs: v}, nil
}

// Clone returns an independent copy of the polynomial.
func (p *Poly) Clone() *Poly { return &Poly{coeffs: p.coeffs.Clone()} }

// Len returns the number of stored coefficients, including any high-order
// zeros.
func (p *Poly) Len() int { return p.coeffs.Len() }

// Vec returns a copy of the coefficient bit-vector.
func (p *Poly) Vec() *store.Vec { return p.coeffs.Clone() }

// Degree returns the exponent of the highest set coefficient. The zero
// polynomial reports degree 0, indistinguishable from a constant; check
// IsZero first when it matters.
func (p *Poly) Degree() int {
	d, ok := store.LastSet(p.coeffs)
	if !ok {
		return 0
	}

	return d
}

// IsZero reports whether every coefficient is zero.
func (p *Poly) IsZero() bool { return store.None(p.coeffs) }

// IsOne reports whether the polynomial is the constant 1.
func (p *Poly) IsOne() bool { return p.Coeff(0) && store.CountOnes(p.coeffs) == 1 }

// IsConstant reports whether no coefficient above x^0 is set. True for the
// zero polynomial.
func (p *Poly) IsConstant() bool { return p.Degree() == 0 }

// IsMonic reports whether the leading coefficient is 1, i.e. the
// polynomial is not zero.
func (p *Poly) IsMonic() bool { return !p.IsZero() }

// Coeff returns the coefficient of x^i. Exponents outside the stored range
// are zero coefficients, not errors.
func (p *Poly) Coeff(i int) bool {
	if i < 0 || i >= p.coeffs.Len() {
		return false
	}

	return p.coeffs.Get(i)
}

// SetCoeff sets the coefficient of x^i, growing the polynomial as needed.
//
// Errors:
//   - ErrBadDegree if i is negative.
func (p *Poly) SetCoeff(i int, val bool) error {
	if i < 0 {
		return fmt.Errorf("SetCoeff: exponent %d: %w", i, ErrBadDegree)
	}
	if i >= p.coeffs.Len() {
		if !val {
			return nil // an absent coefficient is already zero
		}
		p.coeffs.Resize(i + 1)
	}
	p.coeffs.Set(i, val)

	return nil
}

// Equal reports whether p and q have the same coefficients, ignoring
// high-order zeros.
func (p *Poly) Equal(q *Poly) bool {
	short, long := p.coeffs, q.coeffs
	if short.Len() > long.Len() {
		short, long = long, short
	}
	for i := 0; i < short.Len(); i++ {
		if short.Get(i) != long.Get(i) {
			return false
		}
	}
	for i := short.Len(); i < long.Len(); i++ {
		if long.Get(i) {
			return false
		}
	}

	return true
}

// Add returns p + q. Over GF(2) addition is coefficient-wise XOR, so
// p.Add(p) is zero.
func (p *Poly) Add(q *Poly) *Poly {
	short, long := p.coeffs, q.coeffs
	if short.Len() > long.Len() {
		short, long = long, short
	}
	sum := long.Clone()
	view, _ := sum.Slice(0, short.Len())
	_ = store.Xor(view, short)

	return &Poly{coeffs: sum}
}

// MulX returns p * x^n, shifting every coefficient up by n places.
// Non-positive n returns a plain copy.
func (p *Poly) MulX(n int) *Poly {
	out := p.coeffs.Clone()
	if n > 0 {
		out.Resize(out.Len() + n)
		store.ShiftRight(out, n)
	}

	return &Poly{coeffs: out}
}

// Mul returns p * q by carry-less convolution of the coefficients. The
// result has Len p.Len()+q.Len()-1 (empty if either operand stores no
// coefficients).
func (p *Poly) Mul(q *Poly) *Poly {
	return &Poly{coeffs: store.Convolve(p.coeffs, q.coeffs)}
}

// Squared returns p^2. Squaring is the Frobenius endomorphism over GF(2):
// p(x)^2 == p(x^2), so the coefficients just interleave with zeros. The
// result has Len 2*p.Len()-1.
func (p *Poly) Squared() *Poly {
	return &Poly{coeffs: store.Riffled(p.coeffs)}
}

// EvalBool evaluates the polynomial at a GF(2) point. p(0) is the constant
// coefficient; p(1) is the parity of the coefficient count.
func (p *Poly) EvalBool(at bool) bool {
	if !at {
		return p.Coeff(0)
	}

	return store.CountOnes(p.coeffs)%2 == 1
}

// String renders the set terms with variable "x", e.g. "1 + x^2 + x^5".
// The zero polynomial renders as "0".
func (p *Poly) String() string { return p.StringWithVar("x") }

// StringWithVar renders the set terms with a custom variable name.
func (p *Poly) StringWithVar(v string) string {
	if p.IsZero() {
		return "0"
	}
	terms := make([]string, 0, store.CountOnes(p.coeffs))
	for _, e := range store.SetBits(p.coeffs) {
		switch e {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, v)
		default:
			terms = append(terms, fmt.Sprintf("%s^%d", v, e))
		}
	}

	return strings.Join(terms, " + ")
}

// FullString renders every stored coefficient, zeros included, e.g.
// "1 + 0x + 1x^2". A polynomial with no stored coefficients renders as "0".
func (p *Poly) FullString() string {
	if p.coeffs.Len() == 0 {
		return "0"
	}
	terms := make([]string, p.coeffs.Len())
	for i := 0; i < p.coeffs.Len(); i++ {
		c := byte('0')
		if p.coeffs.Get(i) {
			c = '1'
		}
		switch i {
		case 0:
			terms[i] = string(c)
		case 1:
			terms[i] = string(c) + "x"
		default:
			terms[i] = fmt.Sprintf("%cx^%d", c, i)
		}
	}

	return strings.Join(terms, " + ")
}
