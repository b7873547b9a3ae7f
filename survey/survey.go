// Package survey runs a Warnsdorff tour from every square of a board.
package survey

import (
	"sync"

	"go.uber.org/zap"

	"github.com/garlicgarrison/knights-tour/tour"
)

type Outcome struct {
	Start    tour.Position `json:"start"`
	End      tour.Position `json:"end"`
	Moves    int           `json:"moves"`
	Complete bool          `json:"complete"`
}

type Report struct {
	Rows     int       `json:"rows"`
	Cols     int       `json:"cols"`
	Outcomes []Outcome `json:"outcomes"`
	Complete int       `json:"complete"`
}

// Run tours the board from each start square using up to workers
// goroutines, each on its own pooled board. Outcomes are in row-major
// start order and match running the tours one by one.
func Run(rows, cols, workers int, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	if n := rows * cols; workers > n && n > 0 {
		workers = n
	}

	pool, err := NewPool(rows, cols, workers)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, rows*cols)
	jobs := make(chan int)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				o, err := runOne(pool, tour.Position{Row: i / cols, Col: i % cols})
				if err != nil {
					errs <- err
					for range jobs {
					}
					return
				}
				outcomes[i] = o
			}
		}()
	}

	for i := range outcomes {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return nil, err
	}

	report := &Report{Rows: rows, Cols: cols, Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Complete {
			report.Complete++
		}
	}

	logger.Info("survey finished",
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Int("workers", workers),
		zap.Int("complete", report.Complete),
	)
	return report, nil
}

func runOne(pool *Pool, start tour.Position) (Outcome, error) {
	pb := pool.Acquire()

	t, err := tour.NewTour(pb.Board, start)
	if err != nil {
		_ = pool.Release(pb)
		return Outcome{}, err
	}
	res := t.Run()

	if err := pool.Release(pb); err != nil {
		return Outcome{}, err
	}

	return Outcome{
		Start:    start,
		End:      res.Path[len(res.Path)-1],
		Moves:    res.Moves,
		Complete: res.Complete,
	}, nil
}
