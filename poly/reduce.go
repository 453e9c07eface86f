// SPDX-License-Identifier: MIT
// Package poly: modular exponentiation of x.
//
// Both entry points reduce against a modulus P of degree d by working in
// the residue ring GF(2)[x]/P, where every residue fits in d coefficient
// bits. The engine precomputes the folding table
//
//	powers[i] = x^(d+i) mod P   for i in [0, d-1)
//
// once per call; a squaring then riffles the residue to 2d-1 coefficients
// and folds the high d-1 back through the table, and a multiplication by x
// is a one-place shift plus one conditional XOR of P's low coefficients.
//
// XPowModP(n) runs a most-significant-bit-first square-and-multiply ladder
// over the bits of n; XPow2PowModP(N) squares N times starting from x, so
// x^(2^N) mod P costs N squarings and never materializes 2^N.

package poly

import (
	"fmt"

	gbit "github.com/katalvlaran/gf2/bit"
	"github.com/katalvlaran/gf2/store"
)

// reducer holds the per-modulus state for a run of reductions. Only built
// for moduli of degree >= 2; lower degrees short-circuit before this.
type reducer struct {
	d      int
	low    *store.Vec   // low d coefficients of P, i.e. x^d mod P
	powers []*store.Vec // powers[i] = x^(d+i) mod P

	// Scratch for squaring, reused across steps.
	riffled *store.Vec
	high    *store.Vec
}

func newReducer(p *Poly) *reducer {
	d := p.Degree()
	low, _ := p.coeffs.Sub(0, d)
	r := &reducer{
		d:       d,
		low:     low,
		riffled: store.NewVec(),
		high:    store.NewVec(),
	}

	// powers[0] is x^d mod P = P's low coefficients; each next entry is
	// the previous one times x.
	r.powers = make([]*store.Vec, d-1)
	cur := low.Clone()
	r.powers[0] = cur.Clone()
	for i := 1; i < d-1; i++ {
		r.timesX(cur)
		r.powers[i] = cur.Clone()
	}

	return r
}

// x returns the residue of x itself, length d.
func (r *reducer) x() *store.Vec {
	v, _ := store.ZerosVec(r.d)
	v.Set(1, true)

	return v
}

// timesX multiplies the residue q by x in place: shift every coefficient
// up one place and, if the old leading coefficient was set, fold x^d back
// in as P's low coefficients.
func (r *reducer) timesX(q *store.Vec) {
	carry := q.Get(r.d - 1)
	store.ShiftRight(q, 1)
	if carry {
		_ = store.Xor(q, r.low)
	}
}

// square replaces the residue q with q^2 mod P. The riffled square has
// 2d-1 coefficients; the low d stay, the high d-1 fold back through the
// powers table. The riffle leaves set bits two apart, so the scan over the
// high part steps by 2.
func (r *reducer) square(q *store.Vec) {
	store.RiffleInto(q, r.riffled)
	_ = store.SplitAt(r.riffled, r.d, q, r.high)

	first, ok := store.FirstSet(r.high)
	if !ok {
		return
	}
	last, _ := store.LastSet(r.high)
	for i := first; i <= last; i += 2 {
		if r.high.Get(i) {
			_ = store.Xor(q, r.powers[i])
		}
	}
}

// XPowModP returns x^n mod P, where P is the receiver.
//
// Errors:
//   - ErrZeroModulus if P is the zero polynomial.
func (p *Poly) XPowModP(n uint64) (*Poly, error) {
	if p.IsZero() {
		return nil, fmt.Errorf("XPowModP: %w", ErrZeroModulus)
	}
	d := p.Degree()
	switch {
	case d == 0:
		return Zero(), nil // everything is 0 mod 1
	case n == 0:
		return One(), nil
	case d == 1:
		// x is congruent to the constant coefficient, and constants are
		// idempotent under multiplication over GF(2).
		return Constant(p.Coeff(0)), nil
	case n < uint64(d):
		q, _ := XToThe(int(n))

		return q, nil
	}

	r := newReducer(p)
	if n == uint64(d) {
		return &Poly{coeffs: r.low.Clone()}, nil
	}

	// MSB-first ladder: the leading bit of n is covered by starting at x;
	// every remaining bit costs a squaring plus, when set, a times-x step.
	q := r.x()
	for bit := gbit.PrevPowerOfTwo(n) >> 1; bit != 0; bit >>= 1 {
		r.square(q)
		if n&bit != 0 {
			r.timesX(q)
		}
	}

	return &Poly{coeffs: q}, nil
}

// XPow2PowModP returns x^(2^N) mod P, where P is the receiver. The
// exponent 2^N is never computed, so N far beyond 64 is fine.
//
// Errors:
//   - ErrZeroModulus if P is the zero polynomial.
func (p *Poly) XPow2PowModP(n uint64) (*Poly, error) {
	if p.IsZero() {
		return nil, fmt.Errorf("XPow2PowModP: %w", ErrZeroModulus)
	}
	d := p.Degree()
	switch {
	case d == 0:
		return Zero(), nil
	case d == 1:
		return Constant(p.Coeff(0)), nil
	case n < 63 && uint64(1)<<n < uint64(d):
		q, _ := XToThe(1 << n)

		return q, nil
	}

	r := newReducer(p)
	q := r.x() // x^(2^0)
	for i := uint64(0); i < n; i++ {
		r.square(q)
	}

	return &Poly{coeffs: q}, nil
}
