package survey_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/garlicgarrison/knights-tour/survey"
	"github.com/garlicgarrison/knights-tour/tour"
)

func TestRun_CompleteCounts(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		complete   int
	}{
		{"3x3", 3, 3, 0},
		{"3x4", 3, 4, 6},
		{"5x5", 5, 5, 12},
		{"8x8", 8, 8, 63},
		{"1x1", 1, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report, err := survey.Run(tc.rows, tc.cols, 4, zaptest.NewLogger(t))
			require.NoError(t, err)
			require.Len(t, report.Outcomes, tc.rows*tc.cols)
			require.Equal(t, tc.complete, report.Complete)
		})
	}
}

func TestRun_MatchesSequential(t *testing.T) {
	const rows, cols = 6, 7

	report, err := survey.Run(rows, cols, 8, nil)
	require.NoError(t, err)

	for i, o := range report.Outcomes {
		start := tour.Position{Row: i / cols, Col: i % cols}
		require.Equal(t, start, o.Start)

		b, err := tour.NewBoard(rows, cols)
		require.NoError(t, err)
		tr, err := tour.NewTour(b, start)
		require.NoError(t, err)
		res := tr.Run()

		require.Equal(t, res.Moves, o.Moves, "start %v", start)
		require.Equal(t, res.Complete, o.Complete)
		require.Equal(t, res.Path[len(res.Path)-1], o.End)
	}
}

func TestRun_WorkerBounds(t *testing.T) {
	for _, workers := range []int{-3, 0, 1, 100} {
		report, err := survey.Run(3, 4, workers, zap.NewNop())
		require.NoError(t, err)
		require.Equal(t, 6, report.Complete)
	}

	_, err := survey.Run(0, 4, 2, nil)
	require.ErrorIs(t, err, tour.ErrEmptyBoard)
}

func TestPool(t *testing.T) {
	_, err := survey.NewPool(3, 3, 0)
	require.ErrorIs(t, err, survey.ErrPoolSize)

	pool, err := survey.NewPool(3, 3, 1)
	require.NoError(t, err)

	pb := pool.Acquire()
	tr, err := tour.NewTour(pb.Board, tour.Position{Row: 0, Col: 0})
	require.NoError(t, err)
	tr.Run()
	require.NoError(t, pool.Release(pb))

	again := pool.Acquire()
	require.Same(t, pb, again)
	require.Equal(t, 9, again.Board.Count(tour.Unvisited), "released boards are reset")

	other, err := survey.NewPool(3, 3, 1)
	require.NoError(t, err)
	require.ErrorIs(t, other.Release(again), survey.ErrWrongBoard)
	require.ErrorIs(t, pool.Release(nil), survey.ErrWrongBoard)
	require.NoError(t, pool.Release(again))
}

func TestPool_DoubleRelease(t *testing.T) {
	pool, err := survey.NewPool(3, 3, 2)
	require.NoError(t, err)

	a := pool.Acquire()
	b := pool.Acquire()
	require.NotSame(t, a.Board, b.Board)

	require.NoError(t, pool.Release(a))
	require.ErrorIs(t, pool.Release(a), survey.ErrWrongBoard)

	// Only a is back in the pool, and only once.
	again := pool.Acquire()
	require.Same(t, a, again)
	require.NoError(t, pool.Release(b))
	last := pool.Acquire()
	require.Same(t, b, last)
	require.NotSame(t, again.Board, last.Board)
}
