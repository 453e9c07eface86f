// SPDX-License-Identifier: MIT
// Package mat: the Mat type, constructors, structural operations, and
// products.
//
// Purpose:
//   - Hold the matrix as a slice of row bit-vectors so every elimination
//     sweep is a whole-word row XOR.
//   - Keep the column count alongside the rows: a 3 x 0 matrix and a 0 x 3
//     matrix are different shapes even though neither stores a bit.
//
// Notes:
//   - at/setAt are the unchecked internal fast path; At/Set validate.
//   - Products follow the row-major grain: M*N pulls rows of N into rows
//     of the result instead of forming columns.

package mat

import (
	"fmt"
	"strings"

	gbit "github.com/katalvlaran/gf2/bit"
	"github.com/katalvlaran/gf2/store"
)

// Mat is a matrix over GF(2), stored row-major with each row a bit-vector.
type Mat struct {
	rows []*store.Vec
	cols int
}

// zeros is the internal constructor for shapes already known valid.
func zeros(r, c int) *Mat {
	m := &Mat{rows: make([]*store.Vec, r), cols: c}
	for i := range m.rows {
		v, _ := store.ZerosVec(c)
		m.rows[i] = v
	}

	return m
}

// checkShape validates a requested matrix shape.
func checkShape(op string, r, c int) error {
	if r < 0 || c < 0 {
		return fmt.Errorf("%s: shape %d x %d: %w", op, r, c, ErrBadShape)
	}

	return nil
}

// New returns an r x c matrix of zeros.
//
// Errors:
//   - ErrBadShape if either dimension is negative.
func New(r, c int) (*Mat, error) {
	if err := checkShape("New", r, c); err != nil {
		return nil, err
	}

	return zeros(r, c), nil
}

// Ones returns an r x c matrix with every element set.
//
// Errors:
//   - ErrBadShape if either dimension is negative.
func Ones(r, c int) (*Mat, error) {
	if err := checkShape("Ones", r, c); err != nil {
		return nil, err
	}
	m := zeros(r, c)
	for _, row := range m.rows {
		store.Fill(row, true)
	}

	return m, nil
}

// Identity returns the n x n identity matrix.
//
// Errors:
//   - ErrBadShape if n is negative.
func Identity(n int) (*Mat, error) {
	if err := checkShape("Identity", n, n); err != nil {
		return nil, err
	}
	m := zeros(n, n)
	for i := 0; i < n; i++ {
		m.rows[i].Set(i, true)
	}

	return m, nil
}

// Random returns an r x c matrix of fair-coin elements.
//
// Errors:
//   - ErrBadShape if either dimension is negative.
func Random(r, c int) (*Mat, error) { return RandomSeeded(r, c, 0) }

// RandomSeeded returns a reproducible r x c matrix of fair-coin elements
// driven by seed (0 means "use the clock").
//
// Errors:
//   - ErrBadShape if either dimension is negative.
func RandomSeeded(r, c int, seed uint64) (*Mat, error) {
	if err := checkShape("RandomSeeded", r, c); err != nil {
		return nil, err
	}
	m := zeros(r, c)

	// Derive one stream per row so a fixed seed is reproducible while the
	// rows stay independent.
	for i, row := range m.rows {
		rowSeed := seed
		if seed != 0 {
			rowSeed = seed + uint64(i) + 1
		}
		store.FillRandomSeeded(row, rowSeed)
	}

	return m, nil
}

// FromString parses a matrix from a string of rows separated by whitespace
// or semicolons. Each row is parsed by store.VecFromString, so binary and
// suffixed hex both work, with optional "0b"/"0x" prefixes and underscore
// separators inside a row. The empty string parses to the empty matrix.
//
// Errors:
//   - store.ErrBadString if any row fails to parse.
//   - ErrDimensionMismatch if the rows have different lengths.
func FromString(s string) (*Mat, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return &Mat{}, nil
	}

	m := &Mat{rows: make([]*store.Vec, len(fields))}
	for i, f := range fields {
		row, err := store.VecFromString(f)
		if err != nil {
			return nil, fmt.Errorf("FromString: row %d: %w", i, err)
		}
		if i == 0 {
			m.cols = row.Len()
		} else if row.Len() != m.cols {
			return nil, fmt.Errorf("FromString: row %d has %d columns, row 0 has %d: %w",
				i, row.Len(), m.cols, ErrDimensionMismatch)
		}
		m.rows[i] = row
	}

	return m, nil
}

// Companion returns the square companion matrix with a copy of topRow as
// its first row and ones on the principal sub-diagonal. An empty top row
// yields the empty matrix.
func Companion(topRow *store.Vec) *Mat {
	n := topRow.Len()
	m := zeros(n, n)
	if n == 0 {
		return m
	}
	_ = store.CopyStore(m.rows[0], topRow)
	for i := 1; i < n; i++ {
		m.rows[i].Set(i-1, true)
	}

	return m
}

// LeftRotation returns the n x n matrix that rotates a vector left by p
// places when applied with MulVec.
//
// Errors:
//   - ErrBadShape if n is negative.
func LeftRotation(n, p int) (*Mat, error) {
	if err := checkShape("LeftRotation", n, n); err != nil {
		return nil, err
	}
	m := zeros(n, n)
	for i := 0; i < n; i++ {
		m.rows[i].Set(((i-p)%n+n)%n, true)
	}

	return m, nil
}

// RightRotation returns the n x n matrix that rotates a vector right by p
// places when applied with MulVec. It is the inverse and transpose of
// LeftRotation(n, p).
//
// Errors:
//   - ErrBadShape if n is negative.
func RightRotation(n, p int) (*Mat, error) {
	if err := checkShape("RightRotation", n, n); err != nil {
		return nil, err
	}
	m := zeros(n, n)
	for i := 0; i < n; i++ {
		m.rows[i].Set(((i+p)%n+n)%n, true)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Mat) Rows() int { return len(m.rows) }

// Cols returns the number of columns.
func (m *Mat) Cols() int { return m.cols }

// IsSquare reports whether the matrix has as many rows as columns.
func (m *Mat) IsSquare() bool { return len(m.rows) == m.cols }

// IsEmpty reports whether the matrix stores no elements.
func (m *Mat) IsEmpty() bool { return len(m.rows) == 0 || m.cols == 0 }

// at is the unchecked element read. Indices must be in range.
func (m *Mat) at(i, j int) bool { return m.rows[i].Get(j) }

// setAt is the unchecked element write. Indices must be in range.
func (m *Mat) setAt(i, j int, val bool) { m.rows[i].Set(j, val) }

// checkIndex validates an element position.
func (m *Mat) checkIndex(op string, i, j int) error {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.cols {
		return fmt.Errorf("%s: element (%d, %d), shape %d x %d: %w",
			op, i, j, len(m.rows), m.cols, ErrOutOfRange)
	}

	return nil
}

// At returns element (i, j).
//
// Errors:
//   - ErrOutOfRange if either index is outside the matrix.
func (m *Mat) At(i, j int) (bool, error) {
	if err := m.checkIndex("At", i, j); err != nil {
		return false, err
	}

	return m.at(i, j), nil
}

// Set writes element (i, j).
//
// Errors:
//   - ErrOutOfRange if either index is outside the matrix.
func (m *Mat) Set(i, j int, val bool) error {
	if err := m.checkIndex("Set", i, j); err != nil {
		return err
	}
	m.setAt(i, j, val)

	return nil
}

// Row returns a copy of row i.
//
// Errors:
//   - ErrOutOfRange if i is outside the matrix.
func (m *Mat) Row(i int) (*store.Vec, error) {
	if i < 0 || i >= len(m.rows) {
		return nil, fmt.Errorf("Row: index %d of %d: %w", i, len(m.rows), ErrOutOfRange)
	}

	return m.rows[i].Clone(), nil
}

// Col returns a copy of column j as a vector of Rows() elements.
//
// Errors:
//   - ErrOutOfRange if j is outside the matrix.
func (m *Mat) Col(j int) (*store.Vec, error) {
	if j < 0 || j >= m.cols {
		return nil, fmt.Errorf("Col: index %d of %d: %w", j, m.cols, ErrOutOfRange)
	}

	return m.colVec(j), nil
}

// colVec gathers column j without a range check.
func (m *Mat) colVec(j int) *store.Vec {
	col, _ := store.ZerosVec(len(m.rows))
	for i := range m.rows {
		if m.at(i, j) {
			col.Set(i, true)
		}
	}

	return col
}

// Clone returns an independent copy of the matrix.
func (m *Mat) Clone() *Mat {
	out := &Mat{rows: make([]*store.Vec, len(m.rows)), cols: m.cols}
	for i, row := range m.rows {
		out.rows[i] = row.Clone()
	}

	return out
}

// Equal reports whether m and n have the same shape and the same elements.
func (m *Mat) Equal(n *Mat) bool {
	if len(m.rows) != len(n.rows) || m.cols != n.cols {
		return false
	}
	for i := range m.rows {
		if !store.Equal(m.rows[i], n.rows[i]) {
			return false
		}
	}

	return true
}

// SwapRows exchanges rows i0 and i1 in place.
//
// Errors:
//   - ErrOutOfRange if either index is outside the matrix.
func (m *Mat) SwapRows(i0, i1 int) error {
	n := len(m.rows)
	if i0 < 0 || i0 >= n || i1 < 0 || i1 >= n {
		return fmt.Errorf("SwapRows: rows %d, %d of %d: %w", i0, i1, n, ErrOutOfRange)
	}
	m.rows[i0], m.rows[i1] = m.rows[i1], m.rows[i0]

	return nil
}

// SwapCols exchanges columns j0 and j1 in place.
//
// Errors:
//   - ErrOutOfRange if either index is outside the matrix.
func (m *Mat) SwapCols(j0, j1 int) error {
	if j0 < 0 || j0 >= m.cols || j1 < 0 || j1 >= m.cols {
		return fmt.Errorf("SwapCols: columns %d, %d of %d: %w", j0, j1, m.cols, ErrOutOfRange)
	}
	if j0 != j1 {
		for _, row := range m.rows {
			_ = store.SwapBits(row, j0, j1)
		}
	}

	return nil
}

// Transposed returns a new matrix that is the transpose of m.
func (m *Mat) Transposed() *Mat {
	out := zeros(m.cols, len(m.rows))
	for i := range m.rows {
		row := m.rows[i]
		for _, j := range store.SetBits(row) {
			out.rows[j].Set(i, true)
		}
	}

	return out
}

// SubMatrix returns a copy of the half-open block [i0, i1) x [j0, j1).
//
// Errors:
//   - ErrOutOfRange unless the block lies within the matrix.
func (m *Mat) SubMatrix(i0, j0, i1, j1 int) (*Mat, error) {
	if i0 < 0 || i1 < i0 || i1 > len(m.rows) || j0 < 0 || j1 < j0 || j1 > m.cols {
		return nil, fmt.Errorf("SubMatrix: block [%d, %d) x [%d, %d), shape %d x %d: %w",
			i0, i1, j0, j1, len(m.rows), m.cols, ErrOutOfRange)
	}
	out := &Mat{rows: make([]*store.Vec, i1-i0), cols: j1 - j0}
	for i := range out.rows {
		sub, _ := m.rows[i0+i].Sub(j0, j1)
		out.rows[i] = sub
	}

	return out, nil
}

// ReplaceSubMatrix overwrites the block starting at row top, column left
// with a copy of src, leaving everything outside the block untouched.
//
// Errors:
//   - ErrOutOfRange unless src fits inside the matrix at (top, left).
func (m *Mat) ReplaceSubMatrix(top, left int, src *Mat) error {
	if top < 0 || left < 0 || top+len(src.rows) > len(m.rows) || left+src.cols > m.cols {
		return fmt.Errorf("ReplaceSubMatrix: %d x %d block at (%d, %d), shape %d x %d: %w",
			len(src.rows), src.cols, top, left, len(m.rows), m.cols, ErrOutOfRange)
	}
	for i, srcRow := range src.rows {
		dst, _ := m.rows[top+i].Slice(left, left+src.cols)
		_ = store.CopyStore(dst, srcRow)
	}

	return nil
}

// AppendRow adds a copy of v as the new final row.
//
// Errors:
//   - ErrDimensionMismatch unless v matches the column count (any length
//     is accepted by a matrix with no rows yet).
func (m *Mat) AppendRow(v *store.Vec) error {
	if len(m.rows) == 0 {
		m.cols = v.Len()
	} else if v.Len() != m.cols {
		return fmt.Errorf("AppendRow: row of %d columns, matrix has %d: %w", v.Len(), m.cols, ErrDimensionMismatch)
	}
	m.rows = append(m.rows, v.Clone())

	return nil
}

// RemoveRow removes and returns the final row.
//
// Errors:
//   - ErrBadShape if the matrix has no rows.
func (m *Mat) RemoveRow() (*store.Vec, error) {
	if len(m.rows) == 0 {
		return nil, fmt.Errorf("RemoveRow: no rows: %w", ErrBadShape)
	}
	last := m.rows[len(m.rows)-1]
	m.rows = m.rows[:len(m.rows)-1]

	return last, nil
}

// AppendCol adds the elements of v as the new final column.
//
// Errors:
//   - ErrDimensionMismatch unless v has one element per row.
func (m *Mat) AppendCol(v *store.Vec) error {
	if v.Len() != len(m.rows) {
		return fmt.Errorf("AppendCol: column of %d elements, matrix has %d rows: %w",
			v.Len(), len(m.rows), ErrDimensionMismatch)
	}
	for i, row := range m.rows {
		row.Push(v.Get(i))
	}
	m.cols++

	return nil
}

// RemoveCol removes and returns the final column.
//
// Errors:
//   - ErrBadShape if the matrix has no columns.
func (m *Mat) RemoveCol() (*store.Vec, error) {
	if m.cols == 0 {
		return nil, fmt.Errorf("RemoveCol: no columns: %w", ErrBadShape)
	}
	col, _ := store.ZerosVec(len(m.rows))
	for i, row := range m.rows {
		val, _ := row.Pop()
		col.Set(i, val)
	}
	m.cols--

	return col, nil
}

// AppendCols adds copies of all columns of n on the right of m.
//
// Errors:
//   - ErrDimensionMismatch unless n has the same number of rows.
func (m *Mat) AppendCols(n *Mat) error {
	if len(n.rows) != len(m.rows) {
		return fmt.Errorf("AppendCols: %d rows vs %d: %w", len(n.rows), len(m.rows), ErrDimensionMismatch)
	}
	for i, row := range m.rows {
		store.Append(row, n.rows[i])
	}
	m.cols += n.cols

	return nil
}

// Resize changes the matrix to r rows and c columns in place. Elements in
// the overlap with the old shape keep their values; grown regions are
// zero. Resizing either dimension to zero clears the matrix to 0 x 0.
//
// Errors:
//   - ErrBadShape if r or c is negative.
func (m *Mat) Resize(r, c int) error {
	if r < 0 || c < 0 {
		return fmt.Errorf("Resize: shape %d x %d: %w", r, c, ErrBadShape)
	}
	if r == 0 || c == 0 {
		m.rows = nil
		m.cols = 0

		return nil
	}
	if r < len(m.rows) {
		m.rows = m.rows[:r]
	}
	if c != m.cols {
		for _, row := range m.rows {
			row.Resize(c)
		}
		m.cols = c
	}
	for len(m.rows) < r {
		row, _ := store.ZerosVec(c)
		m.rows = append(m.rows, row)
	}

	return nil
}

// setDiagonal writes val along the main diagonal, min(rows, cols) long.
func (m *Mat) setDiagonal(val bool) {
	for i := 0; i < len(m.rows) && i < m.cols; i++ {
		m.rows[i].Set(i, val)
	}
}

// Lower returns a copy with every element above the main diagonal zeroed.
func (m *Mat) Lower() *Mat {
	out := m.Clone()
	for i, row := range out.rows {
		if i+1 < out.cols {
			tail, _ := row.Slice(i+1, out.cols)
			store.Fill(tail, false)
		}
	}

	return out
}

// Upper returns a copy with every element below the main diagonal zeroed.
func (m *Mat) Upper() *Mat {
	out := m.Clone()
	for i, row := range out.rows {
		n := i
		if n > out.cols {
			n = out.cols
		}
		if n > 0 {
			head, _ := row.Slice(0, n)
			store.Fill(head, false)
		}
	}

	return out
}

// StrictlyLower returns Lower with the diagonal zeroed as well.
func (m *Mat) StrictlyLower() *Mat {
	out := m.Lower()
	out.setDiagonal(false)

	return out
}

// StrictlyUpper returns Upper with the diagonal zeroed as well.
func (m *Mat) StrictlyUpper() *Mat {
	out := m.Upper()
	out.setDiagonal(false)

	return out
}

// UnitLower returns Lower with the diagonal forced to ones.
func (m *Mat) UnitLower() *Mat {
	out := m.Lower()
	out.setDiagonal(true)

	return out
}

// UnitUpper returns Upper with the diagonal forced to ones.
func (m *Mat) UnitUpper() *Mat {
	out := m.Upper()
	out.setDiagonal(true)

	return out
}

// IsZero reports whether every element is zero. True for the empty matrix.
func (m *Mat) IsZero() bool {
	for _, row := range m.rows {
		if store.Any(row) {
			return false
		}
	}

	return true
}

// IsIdentity reports whether the matrix is square with ones exactly on the
// diagonal. True for the empty matrix.
func (m *Mat) IsIdentity() bool {
	if !m.IsSquare() {
		return false
	}
	for i, row := range m.rows {
		if store.CountOnes(row) != 1 || !row.Get(i) {
			return false
		}
	}

	return true
}

// AddIdentity XORs the identity into the matrix in place, flipping the
// diagonal.
//
// Errors:
//   - ErrNonSquare if the matrix is not square.
func (m *Mat) AddIdentity() error {
	if !m.IsSquare() {
		return fmt.Errorf("AddIdentity: shape %d x %d: %w", len(m.rows), m.cols, ErrNonSquare)
	}
	for i, row := range m.rows {
		row.Flip(i)
	}

	return nil
}

// MulVec returns the product M * v.
//
// Errors:
//   - ErrDimensionMismatch unless v has one element per column.
func (m *Mat) MulVec(v *store.Vec) (*store.Vec, error) {
	if v.Len() != m.cols {
		return nil, fmt.Errorf("MulVec: vector of %d elements, matrix has %d columns: %w",
			v.Len(), m.cols, ErrDimensionMismatch)
	}
	out, _ := store.ZerosVec(len(m.rows))
	for i, row := range m.rows {
		dot, _ := store.Dot(row, v)
		out.Set(i, dot)
	}

	return out, nil
}

// VecMul returns the product v^T * M as a vector of Cols() elements.
//
// Errors:
//   - ErrDimensionMismatch unless v has one element per row.
func (m *Mat) VecMul(v *store.Vec) (*store.Vec, error) {
	if v.Len() != len(m.rows) {
		return nil, fmt.Errorf("VecMul: vector of %d elements, matrix has %d rows: %w",
			v.Len(), len(m.rows), ErrDimensionMismatch)
	}

	// v^T M is the XOR of the rows v selects.
	out, _ := store.ZerosVec(m.cols)
	for _, i := range store.SetBits(v) {
		_ = store.Xor(out, m.rows[i])
	}

	return out, nil
}

// Mul returns the product M * N.
//
// Errors:
//   - ErrDimensionMismatch unless M's column count equals N's row count.
func (m *Mat) Mul(n *Mat) (*Mat, error) {
	if m.cols != len(n.rows) {
		return nil, fmt.Errorf("Mul: %d columns vs %d rows: %w", m.cols, len(n.rows), ErrDimensionMismatch)
	}

	// Row i of the product is the XOR of the rows of N that row i of M
	// selects, so the whole product runs on word-wide row operations.
	out := zeros(len(m.rows), n.cols)
	for i, row := range m.rows {
		for _, j := range store.SetBits(row) {
			_ = store.Xor(out.rows[i], n.rows[j])
		}
	}

	return out, nil
}

// Pow returns M^n by binary exponentiation. M^0 is the identity.
//
// Errors:
//   - ErrNonSquare if the matrix is not square.
func (m *Mat) Pow(n uint64) (*Mat, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("Pow: shape %d x %d: %w", len(m.rows), m.cols, ErrNonSquare)
	}
	if n == 0 {
		id, _ := Identity(len(m.rows))

		return id, nil
	}

	// MSB-first ladder: the leading bit is covered by starting at M.
	result := m.Clone()
	for bit := gbit.PrevPowerOfTwo(n) >> 1; bit != 0; bit >>= 1 {
		result, _ = result.Mul(result)
		if n&bit != 0 {
			result, _ = result.Mul(m)
		}
	}

	return result, nil
}

// Pow2 returns M^(2^n) by n successive squarings; the exponent itself is
// never computed.
//
// Errors:
//   - ErrNonSquare if the matrix is not square.
func (m *Mat) Pow2(n uint64) (*Mat, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("Pow2: shape %d x %d: %w", len(m.rows), m.cols, ErrNonSquare)
	}
	result := m.Clone()
	for i := uint64(0); i < n; i++ {
		result, _ = result.Mul(result)
	}

	return result, nil
}

// String renders the matrix as one binary row per line.
func (m *Mat) String() string {
	parts := make([]string, len(m.rows))
	for i, row := range m.rows {
		parts[i] = store.BinaryString(row)
	}

	return strings.Join(parts, "\n")
}

// CompactString renders the matrix as binary rows separated by single
// spaces, e.g. "100 010 001".
func (m *Mat) CompactString() string {
	parts := make([]string, len(m.rows))
	for i, row := range m.rows {
		parts[i] = store.BinaryString(row)
	}

	return strings.Join(parts, " ")
}

// ProbabilityInvertible returns the probability that an n x n matrix of
// fair-coin elements is invertible: the product over k = 1..n of
// (1 - 2^-k). The product converges fast, about 28.9 percent by n = 10.
// Non-positive n returns 1 (the empty matrix is vacuously invertible).
func ProbabilityInvertible(n int) float64 {
	result := 1.0
	pow2 := 1.0
	for k := 1; k <= n && k < 54; k++ { // factors beyond 2^-53 are 1.0 in a float64
		pow2 *= 0.5
		result *= 1.0 - pow2
	}

	return result
}

// ProbabilitySingular returns the probability that an n x n matrix of
// fair-coin elements is singular. See ProbabilityInvertible.
func ProbabilitySingular(n int) float64 { return 1.0 - ProbabilityInvertible(n) }
