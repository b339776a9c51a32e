// Package spiral builds the Square of 9 grid: integers laid out on an outward
// square spiral around a center cell, plus the mapping from a longitude in
// degrees to the cell that carries it.
package spiral

import (
	"github.com/cockroachdb/errors"
)

// DefaultSize is the classic 19x19 chart. Its largest value is 361.
const DefaultSize = 19

// ErrInvalidSize is returned for even or non-positive grid sizes.
var ErrInvalidSize = errors.New("spiral: size must be odd and >= 1")

// Grid is an immutable size x size spiral. cells[row][col] holds the value,
// pos[n] holds the (row, col) of value n.
type Grid struct {
	size  int
	cells [][]int
	pos   [][2]int
}

// Build fills a size x size grid starting with 1 at the center and turning
// right, up, left, down. Runs grow by one after every two turns.
func Build(size int) (*Grid, error) {
	if size < 1 || size%2 == 0 {
		return nil, errors.WithHintf(ErrInvalidSize, "got %d", size)
	}

	total := size * size
	g := &Grid{
		size:  size,
		cells: make([][]int, size),
		pos:   make([][2]int, total+1),
	}
	for i := range g.cells {
		g.cells[i] = make([]int, size)
	}

	row, col := size/2, size/2
	n := 1
	g.set(row, col, n)

	// moves along one leg; returns false once the grid is full
	walk := func(steps, dr, dc int) bool {
		for i := 0; i < steps; i++ {
			if n >= total {
				return false
			}
			row += dr
			col += dc
			n++
			g.set(row, col, n)
		}
		return n < total
	}

	for step := 1; n < total; step += 2 {
		if !walk(step, 0, 1) || !walk(step, -1, 0) {
			break
		}
		if !walk(step+1, 0, -1) || !walk(step+1, 1, 0) {
			break
		}
	}

	return g, nil
}

// MustBuild is Build for sizes known to be valid at compile time.
func MustBuild(size int) *Grid {
	g, err := Build(size)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) set(row, col, n int) {
	g.cells[row][col] = n
	g.pos[n] = [2]int{row, col}
}

// Size returns the side length.
func (g *Grid) Size() int { return g.size }

// Center returns the index of the middle row and column.
func (g *Grid) Center() int { return g.size / 2 }

// Max returns the largest value in the grid (size squared).
func (g *Grid) Max() int { return g.size * g.size }

// At returns the value at (row, col), or 0 when out of bounds.
func (g *Grid) At(row, col int) int {
	if row < 0 || col < 0 || row >= g.size || col >= g.size {
		return 0
	}
	return g.cells[row][col]
}

// Locate returns the position of n.
func (g *Grid) Locate(n int) (row, col int, ok bool) {
	if n < 1 || n > g.Max() {
		return 0, 0, false
	}
	p := g.pos[n]
	return p[0], p[1], true
}

// Rows returns a copy of the grid contents.
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.size)
	for i, r := range g.cells {
		out[i] = append([]int(nil), r...)
	}
	return out
}

// IsCardinal reports whether (row, col) lies on the center cross or either
// diagonal.
func (g *Grid) IsCardinal(row, col int) bool {
	c := g.Center()
	return row == c || col == c || row == col || row+col == g.size-1
}
