package bitmatrix

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Sentinel errors for bitmatrix operations.
var (
	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("bitmatrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside the matrix.
	ErrIndexOutOfBounds = errors.New("bitmatrix: index out of bounds")

	// ErrDimensionMismatch indicates an operation between matrices of
	// incompatible shape (XORPopcount or CopyInto across differing shapes).
	ErrDimensionMismatch = errors.New("bitmatrix: dimension mismatch")
)

// BitMatrix is a rows×cols grid of bits, one github.com/bits-and-blooms/bitset.BitSet per row.
//
// The main diagonal convention (self-edges set for general graphs, zero for
// bipartite graphs) is a gmodel-level concern; BitMatrix itself has no
// notion of diagonals.
type BitMatrix struct {
	rows, cols int
	data       []*bitset.BitSet // one BitSet per row, length cols
}

// New allocates a rows×cols BitMatrix with every bit clear.
// Complexity: O(rows*cols/W).
func New(rows, cols int) (*BitMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]*bitset.BitSet, rows)
	for r := 0; r < rows; r++ {
		data[r] = bitset.New(uint(cols))
	}
	return &BitMatrix{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *BitMatrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *BitMatrix) Cols() int { return m.cols }

func (m *BitMatrix) checkBounds(method string, row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return fmt.Errorf("bitmatrix.%s(%d,%d): %w", method, row, col, ErrIndexOutOfBounds)
	}
	return nil
}

// Test reports whether bit (row, col) is set. Complexity: O(1).
func (m *BitMatrix) Test(row, col int) bool {
	if err := m.checkBounds("Test", row, col); err != nil {
		return false
	}
	return m.data[row].Test(uint(col))
}

// Set sets bit (row, col). Complexity: O(1). Not safe for concurrent
// mutation of the same row; callers serialize per-row per §4.1.
func (m *BitMatrix) Set(row, col int) error {
	if err := m.checkBounds("Set", row, col); err != nil {
		return err
	}
	m.data[row].Set(uint(col))
	return nil
}

// Clear clears bit (row, col). Complexity: O(1).
func (m *BitMatrix) Clear(row, col int) error {
	if err := m.checkBounds("Clear", row, col); err != nil {
		return err
	}
	m.data[row].Clear(uint(col))
	return nil
}

// RowPopcount returns the number of set bits in row. Complexity: O(cols/W).
func (m *BitMatrix) RowPopcount(row int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, fmt.Errorf("bitmatrix.RowPopcount(%d): %w", row, ErrIndexOutOfBounds)
	}
	return int(m.data[row].Count()), nil
}

// RowXORPopcount computes popcount(row1 XOR row2) without mutating either
// row: for two event rows of an adjacency matrix, the number of actor bits
// set in exactly one of them. (cooc.PairCooc uses RowANDPopcount, not this.)
// Complexity: O(cols/W).
func (m *BitMatrix) RowXORPopcount(row1, row2 int) (int, error) {
	if row1 < 0 || row1 >= m.rows || row2 < 0 || row2 >= m.rows {
		return 0, fmt.Errorf("bitmatrix.RowXORPopcount(%d,%d): %w", row1, row2, ErrIndexOutOfBounds)
	}
	xored := m.data[row1].SymmetricDifference(m.data[row2])
	return int(xored.Count()), nil
}

// RowANDPopcount computes popcount(row1 AND row2), the direct count of
// actors adjacent to both events row1 and row2 — the core of cooc(row1,row2).
// Complexity: O(cols/W).
func (m *BitMatrix) RowANDPopcount(row1, row2 int) (int, error) {
	if row1 < 0 || row1 >= m.rows || row2 < 0 || row2 >= m.rows {
		return 0, fmt.Errorf("bitmatrix.RowANDPopcount(%d,%d): %w", row1, row2, ErrIndexOutOfBounds)
	}
	anded := m.data[row1].Intersection(m.data[row2])
	return int(anded.Count()), nil
}

// XORPopcount computes the total popcount of (m XOR other) across every
// row, for two matrices of identical shape — the swap heuristic's
// single-switch perturbation measure (§4.8): the number of adjacency bits
// that differ between a candidate graph and the original.
// Complexity: O(rows*cols/W).
func (m *BitMatrix) XORPopcount(other *BitMatrix) (int, error) {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return 0, ErrDimensionMismatch
	}
	total := 0
	for r := 0; r < m.rows; r++ {
		total += int(m.data[r].SymmetricDifference(other.data[r]).Count())
	}
	return total, nil
}

// Clone returns a deep copy of m. Complexity: O(rows*cols/W).
func (m *BitMatrix) Clone() *BitMatrix {
	data := make([]*bitset.BitSet, m.rows)
	for r := 0; r < m.rows; r++ {
		data[r] = m.data[r].Clone()
	}
	return &BitMatrix{rows: m.rows, cols: m.cols, data: data}
}

// CopyInto deep-copies m into dst, which must already have matching
// dimensions. Used by gmodel.Graph.Copy to fill a caller-provided Graph
// without an extra allocation round-trip. Complexity: O(rows*cols/W).
func (m *BitMatrix) CopyInto(dst *BitMatrix) error {
	if dst == nil || dst.rows != m.rows || dst.cols != m.cols {
		return ErrDimensionMismatch
	}
	for r := 0; r < m.rows; r++ {
		dst.data[r] = m.data[r].Clone()
	}
	return nil
}

// Equal reports whether m and other have identical dimensions and bits.
// Complexity: O(rows*cols/W).
func (m *BitMatrix) Equal(other *BitMatrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for r := 0; r < m.rows; r++ {
		if !m.data[r].Equal(other.data[r]) {
			return false
		}
	}
	return true
}
