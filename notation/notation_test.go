package notation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/garlicgarrison/knights-tour/notation"
	"github.com/garlicgarrison/knights-tour/tour"
)

func TestSquare(t *testing.T) {
	cases := []struct {
		name       string
		p          tour.Position
		rows, cols int
		want       string
	}{
		{"TopLeft8x8", tour.Position{Row: 0, Col: 0}, 8, 8, "a8"},
		{"BottomRight8x8", tour.Position{Row: 7, Col: 7}, 8, 8, "h1"},
		{"TopLeft3x4", tour.Position{Row: 0, Col: 0}, 3, 4, "a3"},
		{"BottomLeft3x4", tour.Position{Row: 2, Col: 0}, 3, 4, "a1"},
		{"Middle5x5", tour.Position{Row: 2, Col: 3}, 5, 5, "d3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := notation.Square(tc.p, tc.rows, tc.cols)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSquare_Errors(t *testing.T) {
	_, err := notation.Square(tour.Position{}, 9, 8)
	require.ErrorIs(t, err, notation.ErrTooLarge)
	_, err = notation.Square(tour.Position{}, 8, 10)
	require.ErrorIs(t, err, notation.ErrTooLarge)
	_, err = notation.Square(tour.Position{Row: 3, Col: 0}, 3, 3)
	require.ErrorIs(t, err, notation.ErrOffBoard)
}

func TestPath(t *testing.T) {
	path := []tour.Position{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 0}}
	require.Equal(t, []string{"a3", "c2", "a1"}, notation.Path(path, 3, 4))
	require.Equal(t, []string{"(1,1)", "(2,3)", "(3,1)"}, notation.Path(path, 10, 10))
	require.Equal(t, "a3 c2 a1", notation.Join(notation.Path(path, 3, 4)))
}

func TestPlacement(t *testing.T) {
	b, err := tour.NewBoard(8, 8)
	require.NoError(t, err)
	tr, err := tour.NewTour(b, tour.Position{Row: 0, Col: 0})
	require.NoError(t, err)

	fen, err := notation.Placement(b)
	require.NoError(t, err)
	require.Equal(t, "N7/8/8/8/8/8/8/8", fen)

	// a8 -> b6
	next, ok := tr.Step()
	require.True(t, ok)
	require.Equal(t, tour.Position{Row: 2, Col: 1}, next)
	fen, err = notation.Placement(b)
	require.NoError(t, err)
	require.Equal(t, "p7/8/1N6/8/8/8/8/8", fen)
}

func TestPlacement_SmallBoard(t *testing.T) {
	b, err := tour.NewBoard(3, 4)
	require.NoError(t, err)
	_, err = tour.NewTour(b, tour.Position{Row: 2, Col: 3})
	require.NoError(t, err)

	fen, err := notation.Placement(b)
	require.NoError(t, err)
	require.Equal(t, "8/8/8/8/8/8/8/3N4", fen)

	big, err := tour.NewBoard(10, 10)
	require.NoError(t, err)
	_, err = notation.Placement(big)
	require.ErrorIs(t, err, notation.ErrTooLarge)
}
