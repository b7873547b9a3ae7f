// Package notation names tour squares the way chess players do. Boards up
// to 8×8 are laid on a standard chessboard with row 0 on the highest rank
// in use and column 0 on the a-file.
package notation

import (
	"errors"
	"fmt"
	"strings"

	chess "github.com/garlicgarrison/go-chess"

	"github.com/garlicgarrison/knights-tour/tour"
)

const boardSize = 8

var (
	ErrTooLarge = errors.New("notation: board does not fit on a chessboard")
	ErrOffBoard = errors.New("notation: square is off the board")
)

// Fits reports whether a rows×cols board can be shown on a chessboard.
func Fits(rows, cols int) bool {
	return rows >= 1 && rows <= boardSize && cols >= 1 && cols <= boardSize
}

func square(p tour.Position, rows int) chess.Square {
	rank := rows - 1 - p.Row
	return chess.A1 + chess.Square(rank*boardSize+p.Col)
}

// Square returns the algebraic name of p, e.g. "a3" for the top-left square
// of a 3-row board.
func Square(p tour.Position, rows, cols int) (string, error) {
	if !Fits(rows, cols) {
		return "", ErrTooLarge
	}
	if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
		return "", fmt.Errorf("%w: %v", ErrOffBoard, p)
	}
	return square(p, rows).String(), nil
}

// Path names every square of a tour path. Boards that do not fit on a
// chessboard fall back to 1-indexed (row,col) pairs.
func Path(path []tour.Position, rows, cols int) []string {
	names := make([]string, 0, len(path))
	for _, p := range path {
		name, err := Square(p, rows, cols)
		if err != nil {
			name = fmt.Sprintf("(%d,%d)", p.Row+1, p.Col+1)
		}
		names = append(names, name)
	}
	return names
}

// Placement returns the FEN piece placement of the board: a white knight on
// the current square and black pawns on visited squares.
func Placement(b *tour.Board) (string, error) {
	if !Fits(b.Rows(), b.Cols()) {
		return "", ErrTooLarge
	}

	pieces := make(map[chess.Square]chess.Piece)
	for r := 0; r < b.Rows(); r++ {
		for c, s := range b.Row(r) {
			sq := square(tour.Position{Row: r, Col: c}, b.Rows())
			switch s {
			case tour.Current:
				pieces[sq] = chess.WhiteKnight
			case tour.Visited:
				pieces[sq] = chess.BlackPawn
			}
		}
	}

	return chess.NewBoard(pieces).String(), nil
}

// Join formats names as a space-separated move list.
func Join(names []string) string {
	return strings.Join(names, " ")
}
