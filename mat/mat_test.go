// SPDX-License-Identifier: MIT
package mat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gf2/mat"
	"github.com/katalvlaran/gf2/store"
)

// mustMat parses a matrix string, failing the test on error.
func mustMat(t *testing.T, s string) *mat.Mat {
	t.Helper()
	m, err := mat.FromString(s)
	require.NoError(t, err)

	return m
}

// mustVec parses a bit string, failing the test on error.
func mustVec(t *testing.T, s string) *store.Vec {
	t.Helper()
	v, err := store.VecFromString(s)
	require.NoError(t, err)

	return v
}

func TestConstructors(t *testing.T) {
	z, err := mat.New(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, z.Rows())
	require.Equal(t, 3, z.Cols())
	require.True(t, z.IsZero())
	require.False(t, z.IsSquare())

	ones, err := mat.Ones(2, 2)
	require.NoError(t, err)
	require.Equal(t, "11 11", ones.CompactString())

	id, err := mat.Identity(3)
	require.NoError(t, err)
	require.True(t, id.IsIdentity())
	require.Equal(t, "100 010 001", id.CompactString())

	_, err = mat.New(-1, 2)
	require.ErrorIs(t, err, mat.ErrBadShape)
	_, err = mat.Identity(-1)
	require.ErrorIs(t, err, mat.ErrBadShape)
}

func TestFromString(t *testing.T) {
	require.Equal(t, "111 111 111", mustMat(t, "111   111\n111").CompactString())
	require.Equal(t, "10101010 11110000", mustMat(t, "0XAA; 0b1111_0000").CompactString())
	require.Equal(t, "111 000", mustMat(t, "0x7.8 000").CompactString())
	require.Equal(t, 0, mustMat(t, "").Rows())

	_, err := mat.FromString("111 11")
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)
	_, err = mat.FromString("111 1Z1")
	require.ErrorIs(t, err, store.ErrBadString)
}

func TestCompanion(t *testing.T) {
	m := mat.Companion(mustVec(t, "10101"))
	require.Equal(t, "10101 10000 01000 00100 00010", m.CompactString())
	require.True(t, mat.Companion(store.NewVec()).IsEmpty())
}

func TestRotations(t *testing.T) {
	r, err := mat.RightRotation(5, 2)
	require.NoError(t, err)
	got, err := r.MulVec(mustVec(t, "11100"))
	require.NoError(t, err)
	require.Equal(t, "10011", got.String())

	l, err := mat.LeftRotation(5, 2)
	require.NoError(t, err)
	prod, err := l.Mul(r)
	require.NoError(t, err)
	require.True(t, prod.IsIdentity())
}

func TestElementAccess(t *testing.T) {
	m := mustMat(t, "10 01")
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, v)
	require.NoError(t, m.Set(0, 1, true))
	require.Equal(t, "11 01", m.CompactString())

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, mat.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, true), mat.ErrOutOfRange)
}

func TestRowColClone(t *testing.T) {
	m := mustMat(t, "110 001")
	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, "110", row.String())
	row.Set(2, true) // copies, not views
	require.Equal(t, "110 001", m.CompactString())

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, "01", col.String())

	_, err = m.Row(5)
	require.ErrorIs(t, err, mat.ErrOutOfRange)
	_, err = m.Col(3)
	require.ErrorIs(t, err, mat.ErrOutOfRange)

	c := m.Clone()
	require.True(t, c.Equal(m))
	require.NoError(t, c.Set(0, 0, false))
	require.False(t, c.Equal(m))
}

func TestSwapsAndTranspose(t *testing.T) {
	m := mustMat(t, "110 001")
	require.NoError(t, m.SwapRows(0, 1))
	require.Equal(t, "001 110", m.CompactString())
	require.NoError(t, m.SwapCols(0, 2))
	require.Equal(t, "100 011", m.CompactString())
	require.ErrorIs(t, m.SwapRows(0, 2), mat.ErrOutOfRange)
	require.ErrorIs(t, m.SwapCols(0, 3), mat.ErrOutOfRange)

	require.Equal(t, "10 10 01", mustMat(t, "110 001").Transposed().CompactString())
	id, err := mat.Identity(4)
	require.NoError(t, err)
	require.True(t, id.Transposed().IsIdentity())
}

func TestSubMatrixAppendRemove(t *testing.T) {
	m := mustMat(t, "1011 0110 1100")
	sub, err := m.SubMatrix(1, 1, 3, 4)
	require.NoError(t, err)
	require.Equal(t, "110 100", sub.CompactString())
	_, err = m.SubMatrix(0, 0, 4, 2)
	require.ErrorIs(t, err, mat.ErrOutOfRange)

	require.NoError(t, m.AppendRow(mustVec(t, "1111")))
	require.Equal(t, 4, m.Rows())
	require.ErrorIs(t, m.AppendRow(mustVec(t, "11")), mat.ErrDimensionMismatch)
	last, err := m.RemoveRow()
	require.NoError(t, err)
	require.Equal(t, "1111", last.String())

	require.NoError(t, m.AppendCol(mustVec(t, "101")))
	require.Equal(t, "10111 01100 11001", m.CompactString())
	col, err := m.RemoveCol()
	require.NoError(t, err)
	require.Equal(t, "101", col.String())
	require.Equal(t, "1011 0110 1100", m.CompactString())
	require.ErrorIs(t, m.AppendCol(mustVec(t, "1")), mat.ErrDimensionMismatch)

	right := mustMat(t, "11 00 10")
	require.NoError(t, m.AppendCols(right))
	require.Equal(t, "101111 011000 110010", m.CompactString())
	require.ErrorIs(t, m.AppendCols(mustMat(t, "1 1")), mat.ErrDimensionMismatch)
}

func TestResize(t *testing.T) {
	m := mustMat(t, "1011 0110 1100")
	require.NoError(t, m.Resize(2, 2))
	require.Equal(t, "10 01", m.CompactString())
	require.NoError(t, m.Resize(3, 3))
	require.Equal(t, "100 010 000", m.CompactString())

	// Zero in either dimension clears the matrix completely.
	require.NoError(t, m.Resize(0, 10))
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.NoError(t, m.Resize(2, 2))
	require.True(t, m.IsZero())

	// Shrinking a column away then growing back leaves zeros behind.
	ones, err := mat.Ones(3, 3)
	require.NoError(t, err)
	require.NoError(t, ones.Resize(3, 2))
	require.NoError(t, ones.Resize(3, 3))
	require.Equal(t, "110 110 110", ones.CompactString())

	// Growth across a word boundary zero-fills.
	wide, err := mat.Ones(2, 2)
	require.NoError(t, err)
	require.NoError(t, wide.Resize(2, 70))
	require.Equal(t, 70, wide.Cols())
	row, err := wide.Row(0)
	require.NoError(t, err)
	require.Equal(t, 2, store.CountOnes(row))

	require.ErrorIs(t, m.Resize(-1, 2), mat.ErrBadShape)
	require.ErrorIs(t, m.Resize(2, -1), mat.ErrBadShape)
}

func TestReplaceSubMatrix(t *testing.T) {
	m, err := mat.Identity(5)
	require.NoError(t, err)
	block, err := mat.Ones(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.ReplaceSubMatrix(1, 1, block))
	require.Equal(t, "10000 01110 01110 01110 00001", m.CompactString())

	// The replacement is a copy; mutating the source afterwards is inert.
	require.NoError(t, block.Set(0, 0, false))
	require.Equal(t, "10000 01110 01110 01110 00001", m.CompactString())

	require.ErrorIs(t, m.ReplaceSubMatrix(3, 0, block), mat.ErrOutOfRange)
	require.ErrorIs(t, m.ReplaceSubMatrix(0, 3, block), mat.ErrOutOfRange)
	require.ErrorIs(t, m.ReplaceSubMatrix(-1, 0, block), mat.ErrOutOfRange)
}

func TestTriangularExtraction(t *testing.T) {
	ones, err := mat.Ones(3, 3)
	require.NoError(t, err)
	require.Equal(t, "100 110 111", ones.Lower().CompactString())
	require.Equal(t, "111 011 001", ones.Upper().CompactString())
	require.Equal(t, "000 100 110", ones.StrictlyLower().CompactString())
	require.Equal(t, "011 001 000", ones.StrictlyUpper().CompactString())
	// Extraction copies; the source keeps its elements.
	require.Equal(t, "111 111 111", ones.CompactString())

	z, err := mat.New(3, 3)
	require.NoError(t, err)
	require.True(t, z.UnitLower().IsIdentity())
	require.True(t, z.UnitUpper().IsIdentity())

	// Rectangular shapes keep the diagonal at min(rows, cols).
	wide, err := mat.Ones(2, 4)
	require.NoError(t, err)
	require.Equal(t, "1000 1100", wide.Lower().CompactString())
	require.Equal(t, "1111 0111", wide.Upper().CompactString())
	require.Equal(t, "0111 0011", wide.StrictlyUpper().CompactString())
}

func TestAddIdentity(t *testing.T) {
	id, err := mat.Identity(3)
	require.NoError(t, err)
	require.NoError(t, id.AddIdentity())
	require.True(t, id.IsZero())
	require.ErrorIs(t, mustMat(t, "10 01 11").AddIdentity(), mat.ErrNonSquare)
}

func TestProducts(t *testing.T) {
	m := mustMat(t, "11 01")

	got, err := m.MulVec(mustVec(t, "01"))
	require.NoError(t, err)
	require.Equal(t, "11", got.String())

	got, err = m.VecMul(mustVec(t, "10"))
	require.NoError(t, err)
	require.Equal(t, "11", got.String())

	sq, err := m.Mul(m)
	require.NoError(t, err)
	require.True(t, sq.IsIdentity()) // [[1,1],[0,1]] is self-inverse

	// Rectangular product against a hand calculation.
	a := mustMat(t, "110 011")
	b := mustMat(t, "10 11 01")
	ab, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, "01 10", ab.CompactString())

	_, err = m.MulVec(mustVec(t, "111"))
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)
	_, err = m.VecMul(mustVec(t, "1"))
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)
	_, err = a.Mul(a)
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)
}

func TestPow(t *testing.T) {
	m := mustMat(t, "11 01")

	p0, err := m.Pow(0)
	require.NoError(t, err)
	require.True(t, p0.IsIdentity())
	p2, err := m.Pow(2)
	require.NoError(t, err)
	require.True(t, p2.IsIdentity())
	p3, err := m.Pow(3)
	require.NoError(t, err)
	require.True(t, p3.Equal(m))

	// A rotation has known order: L(5, 1)^5 = I.
	l, err := mat.LeftRotation(5, 1)
	require.NoError(t, err)
	p5, err := l.Pow(5)
	require.NoError(t, err)
	require.True(t, p5.IsIdentity())
	p7, err := l.Pow(7)
	require.NoError(t, err)
	want, err := mat.LeftRotation(5, 2)
	require.NoError(t, err)
	require.True(t, p7.Equal(want))

	// Pow2(k) is k squarings: M^(2^3) == M^8.
	p8a, err := m.Pow2(3)
	require.NoError(t, err)
	p8b, err := m.Pow(8)
	require.NoError(t, err)
	require.True(t, p8a.Equal(p8b))

	_, err = mustMat(t, "10 01 11").Pow(2)
	require.ErrorIs(t, err, mat.ErrNonSquare)
	_, err = mustMat(t, "10 01 11").Pow2(2)
	require.ErrorIs(t, err, mat.ErrNonSquare)
}

func TestStrings(t *testing.T) {
	id, err := mat.Identity(2)
	require.NoError(t, err)
	require.Equal(t, "10\n01", id.String())
	require.Equal(t, "10 01", id.CompactString())
	require.Equal(t, "", mustMat(t, "").String())
}

func TestProbabilityInvertible(t *testing.T) {
	require.InDelta(t, 0.5, mat.ProbabilityInvertible(1), 1e-12)
	require.InDelta(t, 0.328125, mat.ProbabilityInvertible(3), 1e-12)

	// The product converges to about 28.9 percent.
	require.InDelta(t, 0.288788, mat.ProbabilityInvertible(100), 1e-5)
	require.InDelta(t, 0.711212, mat.ProbabilitySingular(100), 1e-5)
	require.InDelta(t, 1.0, mat.ProbabilityInvertible(0), 1e-12)
}
