package triangle_test

import (
	"math/rand"
	"testing"

	"min_triangle_path/internal/triangle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, rows [][]int64) *triangle.Triangle {
	t.Helper()
	tri, err := triangle.FromRows(rows)
	require.NoError(t, err)
	return tri
}

// bruteForce enumerates every apex-to-base path.
func bruteForce(rows [][]int64) int64 {
	var walk func(r, c int) int64
	walk = func(r, c int) int64 {
		v := rows[r][c]
		if r == len(rows)-1 {
			return v
		}
		return v + min(walk(r+1, c), walk(r+1, c+1))
	}
	return walk(0, 0)
}

func TestSolve_Example(t *testing.T) {
	tri := build(t, [][]int64{{2}, {3, 4}, {6, 5, 7}, {4, 1, 8, 3}})

	path := tri.Solve()
	assert.Equal(t, triangle.Path{2, 3, 5, 1}, path)
	assert.Equal(t, int64(11), path.Sum())

	apex, ok := tri.Apex()
	require.True(t, ok)
	assert.Equal(t, int64(11), apex.MinDistanceToBase)
	assert.Equal(t, triangle.Coord{Row: 1, Col: 0}, apex.Child)
}

func TestSolve_Empty(t *testing.T) {
	tri := build(t, nil)
	assert.Nil(t, tri.Solve())

	_, ok := tri.Apex()
	assert.False(t, ok)
}

func TestSolve_SingleRow(t *testing.T) {
	tri := build(t, [][]int64{{7}})
	assert.Equal(t, triangle.Path{7}, tri.Solve())

	apex, _ := tri.Apex()
	assert.False(t, apex.HasChild())
	assert.Equal(t, int64(7), apex.MinDistanceToBase)
}

func TestSolve_TiePrefersLeft(t *testing.T) {
	// Both children of the apex reach the base with 5; distinct base values
	// tell the two paths apart.
	tri := build(t, [][]int64{{1}, {2, 3}, {3, 4, 2}})

	path := tri.Solve()
	assert.Equal(t, triangle.Path{1, 2, 3}, path)

	apex, _ := tri.Apex()
	assert.Equal(t, triangle.Coord{Row: 1, Col: 0}, apex.Child)
}

func TestSolve_TieInBaseRowPrefersLeft(t *testing.T) {
	tri := build(t, [][]int64{{0}, {4, 4}})
	tri.Solve()

	apex, _ := tri.Apex()
	assert.Equal(t, 0, apex.Child.Col)
}

func TestSolve_BaseCellsHaveNoChild(t *testing.T) {
	tri := build(t, [][]int64{{1}, {2, 3}, {4, 5, 6}})
	tri.Solve()

	for col := 0; col < 3; col++ {
		cell := tri.Cell(triangle.Coord{Row: 2, Col: col})
		assert.False(t, cell.HasChild())
		assert.Equal(t, cell.Value, cell.MinDistanceToBase)
	}
	assert.True(t, tri.Cell(triangle.Coord{Row: 1, Col: 1}).HasChild())
}

func TestSolve_Idempotent(t *testing.T) {
	tri := build(t, [][]int64{{2}, {3, 4}, {6, 5, 7}})
	first := tri.Solve()
	assert.Equal(t, first, tri.Solve())
}

func TestSolve_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 1; n <= 8; n++ {
		for trial := 0; trial < 25; trial++ {
			rows := make([][]int64, n)
			for i := range rows {
				rows[i] = make([]int64, i+1)
				for j := range rows[i] {
					rows[i][j] = int64(rng.Intn(21) - 5)
				}
			}

			tri := build(t, rows)
			path := tri.Solve()
			apex, _ := tri.Apex()

			require.Len(t, path, n)
			assert.Equal(t, bruteForce(rows), path.Sum(), "rows=%v", rows)
			assert.Equal(t, apex.MinDistanceToBase, path.Sum())
			assertAdjacent(t, tri, path)
		}
	}
}

// assertAdjacent checks that the path follows the Child links from the apex
// and each step moves to column c or c+1.
func assertAdjacent(t *testing.T, tri *triangle.Triangle, path triangle.Path) {
	t.Helper()
	at := triangle.Coord{}
	for i, v := range path {
		cell := tri.Cell(at)
		require.Equal(t, cell.Value, v, "step %d", i)
		if !cell.HasChild() {
			require.Equal(t, len(path)-1, i)
			return
		}
		require.Equal(t, at.Row+1, cell.Child.Row)
		require.Contains(t, []int{at.Col, at.Col + 1}, cell.Child.Col)
		at = cell.Child
	}
}
