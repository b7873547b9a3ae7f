package tour

import (
	"go.uber.org/zap"
)

type State uint8

const (
	Active State = iota
	Halted
)

func (s State) String() string {
	if s == Halted {
		return "halted"
	}
	return "active"
}

// Step describes one advance of the knight. The placement on the start
// square is reported as Move 0 with From == To.
type Step struct {
	Move     int
	From, To Position
}

// Observer receives the board after placement and after every move. The
// board must not be modified or retained.
type Observer func(b *Board, step Step)

type Option func(*Tour)

func WithObserver(o Observer) Option {
	return func(t *Tour) {
		t.observers = append(t.observers, o)
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(t *Tour) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// Result is the outcome of a halted tour.
type Result struct {
	Moves    int        `json:"moves"`
	Path     []Position `json:"path"`
	Complete bool       `json:"complete"`
}

// Tour walks a knight over a board by Warnsdorff's rule. It owns the board
// for its lifetime and mutates it in place.
type Tour struct {
	board     *Board
	current   Position
	moves     int
	path      []Position
	state     State
	observers []Observer
	logger    *zap.Logger
}

// NewTour places the knight on start, which becomes the only Current cell.
// The board is expected to be fresh or Reset.
func NewTour(b *Board, start Position, opts ...Option) (*Tour, error) {
	if b == nil {
		return nil, ErrEmptyBoard
	}
	if !b.InBounds(start) {
		return nil, ErrStartOutOfBounds
	}

	t := &Tour{
		board:   b,
		current: start,
		path:    make([]Position, 1, b.Squares()),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.path[0] = start
	b.set(start, Current)
	t.notify(Step{From: start, To: start})

	return t, nil
}

func (t *Tour) Board() *Board      { return t.board }
func (t *Tour) Position() Position { return t.current }
func (t *Tour) Moves() int         { return t.moves }
func (t *Tour) State() State       { return t.state }
func (t *Tour) Path() []Position   { return append([]Position(nil), t.path...) }

// Step makes one Warnsdorff move: among the legal next squares it picks the
// one with the fewest onward moves, the earliest in Offsets order on ties.
// It returns false, and the tour halts, when no legal move remains.
func (t *Tour) Step() (Position, bool) {
	if t.state == Halted {
		return t.current, false
	}

	candidates := Candidates(t.current, t.board)
	if len(candidates) == 0 {
		t.state = Halted
		t.logger.Info("tour halted",
			zap.Int("moves", t.moves),
			zap.Bool("complete", t.Complete()),
			zap.Stringer("at", t.current),
		)
		return t.current, false
	}

	best, bestScore := 0, Degree(candidates[0], t.board)
	for i := 1; i < len(candidates); i++ {
		if score := Degree(candidates[i], t.board); score < bestScore {
			best, bestScore = i, score
		}
	}
	next := candidates[best]

	from := t.current
	t.board.set(from, Visited)
	t.board.set(next, Current)
	t.current = next
	t.moves++
	t.path = append(t.path, next)

	t.logger.Debug("knight moved",
		zap.Int("move", t.moves),
		zap.Stringer("from", from),
		zap.Stringer("to", next),
		zap.Int("candidates", len(candidates)),
		zap.Int("onward", bestScore),
	)
	t.notify(Step{Move: t.moves, From: from, To: next})

	return next, true
}

// Run steps until the knight has no legal move. The last square is left
// Current.
func (t *Tour) Run() Result {
	for {
		if _, ok := t.Step(); !ok {
			break
		}
	}

	return Result{
		Moves:    t.moves,
		Path:     t.Path(),
		Complete: t.Complete(),
	}
}

// Complete reports whether every square has been reached.
func (t *Tour) Complete() bool {
	return t.moves == t.board.Squares()-1
}

func (t *Tour) notify(step Step) {
	for _, o := range t.observers {
		o(t.board, step)
	}
}
