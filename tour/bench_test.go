package tour_test

import (
	"testing"

	"github.com/garlicgarrison/knights-tour/tour"
)

// BenchmarkRun measures a full tour on a 10×10 board, reusing one board.
func BenchmarkRun(b *testing.B) {
	board, err := tour.NewBoard(10, 10)
	if err != nil {
		b.Fatalf("NewBoard: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Reset()
		t, err := tour.NewTour(board, tour.Position{Row: 0, Col: 0})
		if err != nil {
			b.Fatalf("NewTour: %v", err)
		}
		_ = t.Run()
	}
}

func BenchmarkCandidates(b *testing.B) {
	board, _ := tour.NewBoard(8, 8)
	from := tour.Position{Row: 4, Col: 4}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tour.Candidates(from, board)
	}
}
