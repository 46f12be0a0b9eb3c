// Package triangle finds the minimum-sum path from the apex of a number
// triangle to its base row, stepping each time to one of the two adjacent
// numbers in the row below.
package triangle

import (
	"strconv"
	"strings"
)

// Coord addresses a cell by row and column, both 0-based.
type Coord struct {
	Row int
	Col int
}

// Cell is one number of the triangle together with the values computed for
// it by Solve.
type Cell struct {
	Value             int64
	MinDistanceToBase int64
	Child             Coord

	hasChild bool
}

// HasChild reports whether Child is set. Base-row cells never have one.
func (c Cell) HasChild() bool {
	return c.hasChild
}

// Triangle holds the rows of numbers; row i has exactly i+1 cells.
type Triangle struct {
	rows   [][]Cell
	solved bool
}

// FromRows builds a triangle from already-split values, applying the same
// row-length rule as Parse.
func FromRows(values [][]int64) (*Triangle, error) {
	t := &Triangle{rows: make([][]Cell, 0, len(values))}
	for i, row := range values {
		if len(row) != i+1 {
			return nil, &RowLengthError{Line: i + 1, Expected: i + 1, Actual: len(row)}
		}
		cells := make([]Cell, len(row))
		for j, v := range row {
			cells[j] = Cell{Value: v}
		}
		t.rows = append(t.rows, cells)
	}
	return t, nil
}

func (t *Triangle) Rows() int {
	return len(t.rows)
}

// Cell returns the cell at c. It panics when c is outside the triangle.
func (t *Triangle) Cell(c Coord) Cell {
	return t.rows[c.Row][c.Col]
}

// Values returns a copy of the numbers, row by row.
func (t *Triangle) Values() [][]int64 {
	out := make([][]int64, len(t.rows))
	for i, row := range t.rows {
		out[i] = make([]int64, len(row))
		for j, cell := range row {
			out[i][j] = cell.Value
		}
	}
	return out
}

func (t *Triangle) String() string {
	var b strings.Builder
	for i, row := range t.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatInt(cell.Value, 10))
		}
	}
	return b.String()
}

// Path is the sequence of values visited from apex to base. A nil Path
// means the triangle was empty.
type Path []int64

func (p Path) Sum() int64 {
	var sum int64
	for _, v := range p {
		sum += v
	}
	return sum
}
