package survey

import (
	"errors"
	"sync"

	guuid "github.com/google/uuid"

	"github.com/garlicgarrison/knights-tour/tour"
)

var (
	ErrPoolSize   = errors.New("survey: pool needs at least one board")
	ErrWrongBoard = errors.New("survey: board is not checked out of this pool")
)

type PooledBoard struct {
	id    guuid.UUID
	Board *tour.Board
}

// Pool hands out boards of one size so that concurrent tours never share
// a board. Released boards are reset before reuse.
type Pool struct {
	idSet map[guuid.UUID]bool
	pool  chan *PooledBoard

	mutex sync.Mutex
	inUse map[guuid.UUID]bool
}

func NewPool(rows, cols, limit int) (*Pool, error) {
	if limit < 1 {
		return nil, ErrPoolSize
	}

	idSet := make(map[guuid.UUID]bool)
	ch := make(chan *PooledBoard, limit)

	for i := 0; i < limit; i++ {
		b, err := tour.NewBoard(rows, cols)
		if err != nil {
			return nil, err
		}

		id := guuid.New()
		idSet[id] = true
		ch <- &PooledBoard{
			id:    id,
			Board: b,
		}
	}

	return &Pool{
		idSet: idSet,
		pool:  ch,
		inUse: make(map[guuid.UUID]bool),
	}, nil
}

// Acquire blocks until a board is free.
func (p *Pool) Acquire() *PooledBoard {
	pb := <-p.pool

	p.mutex.Lock()
	p.inUse[pb.id] = true
	p.mutex.Unlock()

	return pb
}

// Release returns an acquired board. Boards from another pool and boards
// that are not checked out are rejected with ErrWrongBoard.
func (p *Pool) Release(pb *PooledBoard) error {
	if pb == nil || !p.idSet[pb.id] {
		return ErrWrongBoard
	}

	p.mutex.Lock()
	if !p.inUse[pb.id] {
		p.mutex.Unlock()
		return ErrWrongBoard
	}
	delete(p.inUse, pb.id)
	p.mutex.Unlock()

	pb.Board.Reset()
	p.pool <- pb
	return nil
}
