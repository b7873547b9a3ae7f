package tour

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyBoard       = errors.New("tour: board must have at least one row and one column")
	ErrStartOutOfBounds = errors.New("tour: start square is off the board")
)

type CellState uint8

const (
	Unvisited CellState = iota
	Current
	Visited
)

func (s CellState) String() string {
	switch s {
	case Current:
		return "current"
	case Visited:
		return "visited"
	default:
		return "unvisited"
	}
}

// Position is a 0-indexed (row, column) pair.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Board is a rows x cols grid of cell states stored row-major.
type Board struct {
	rows, cols int
	cells      []CellState
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyBoard
	}

	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]CellState, rows*cols),
	}, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// Squares is the number of cells on the board.
func (b *Board) Squares() int { return b.rows * b.cols }

func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// At returns the state of p. Off-board positions read as Unvisited.
func (b *Board) At(p Position) CellState {
	if !b.InBounds(p) {
		return Unvisited
	}
	return b.cells[b.index(p)]
}

// Current returns the square holding the knight, if any.
func (b *Board) Current() (Position, bool) {
	for i, s := range b.cells {
		if s == Current {
			return Position{Row: i / b.cols, Col: i % b.cols}, true
		}
	}
	return Position{}, false
}

// Count returns how many cells are in state s.
func (b *Board) Count(s CellState) int {
	n := 0
	for _, c := range b.cells {
		if c == s {
			n++
		}
	}
	return n
}

// Row returns a copy of row r.
func (b *Board) Row(r int) []CellState {
	row := make([]CellState, b.cols)
	copy(row, b.cells[r*b.cols:(r+1)*b.cols])
	return row
}

// Reset marks every cell Unvisited.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Unvisited
	}
}

func (b *Board) set(p Position, s CellState) {
	b.cells[b.index(p)] = s
}

func (b *Board) index(p Position) int {
	return p.Row*b.cols + p.Col
}
