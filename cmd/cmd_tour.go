package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/garlicgarrison/knights-tour/config"
	"github.com/garlicgarrison/knights-tour/notation"
	"github.com/garlicgarrison/knights-tour/prompt"
	"github.com/garlicgarrison/knights-tour/record"
	"github.com/garlicgarrison/knights-tour/render"
	"github.com/garlicgarrison/knights-tour/tour"
)

const (
	introText     = "This program attempts an open Knight Tour using Warnsdorff's algorithm. Please specify square/rectangular board dimensions, and the Knight's starting square."
	completedText = "Tour Completed!"
	stalledText   = "No More Moves!"
)

var errOutOfRange = errors.New("value out of range")

// tourOptions are the root command flags. Zero sizes and squares are read
// interactively.
type tourOptions struct {
	rows, cols int
	row, col   int
	moves      bool
	fen        bool
	record     string
}

var tourFlags tourOptions

func init() {
	flags := mainCommand.Flags()
	flags.IntVar(&tourFlags.rows, "rows", 0, "number of rows (prompted when unset)")
	flags.IntVar(&tourFlags.cols, "cols", 0, "number of columns (prompted when unset)")
	flags.IntVar(&tourFlags.row, "row", 0, "1-indexed starting row (prompted when unset)")
	flags.IntVar(&tourFlags.col, "col", 0, "1-indexed starting column (prompted when unset)")
	flags.BoolVar(&tourFlags.moves, "moves", false, "print the move list after the tour")
	flags.BoolVar(&tourFlags.fen, "fen", false, "print the final FEN placement (boards up to 8x8)")
	flags.StringVar(&tourFlags.record, "record", "", "append a JSON record of the tour to this file")
}

func inRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s %d: %w [%d, %d]", name, v, errOutOfRange, lo, hi)
	}
	return nil
}

// readSetup takes the board size and the start square from flags when
// given and asks the user otherwise. Each pair is set together.
func readSetup(p *prompt.Prompter, cfg config.Config, opts tourOptions) (rows, cols int, start tour.Position, err error) {
	if opts.rows == 0 && opts.cols == 0 {
		if rows, cols, err = p.Size(cfg.MinSize, cfg.MaxSize); err != nil {
			return
		}
	} else {
		rows, cols = opts.rows, opts.cols
		if err = inRange("rows", rows, cfg.MinSize, cfg.MaxSize); err != nil {
			return
		}
		if err = inRange("cols", cols, cfg.MinSize, cfg.MaxSize); err != nil {
			return
		}
	}

	if opts.row == 0 && opts.col == 0 {
		start, err = p.Start(rows, cols)
		return
	}
	if err = inRange("row", opts.row, 1, rows); err != nil {
		return
	}
	if err = inRange("col", opts.col, 1, cols); err != nil {
		return
	}
	return rows, cols, tour.Position{Row: opts.row - 1, Col: opts.col - 1}, nil
}

func runTour(in io.Reader, out io.Writer, opts tourOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer logger.Sync()

	fmt.Fprintln(out, introText)
	rows, cols, start, err := readSetup(prompt.New(in, out), cfg, opts)
	if err != nil {
		return err
	}

	board, err := tour.NewBoard(rows, cols)
	if err != nil {
		return err
	}
	r := render.New(out, cfg.Glyphs, cfg.Color)
	t, err := tour.NewTour(board, start, tour.WithObserver(r.Observer()), tour.WithLogger(logger))
	if err != nil {
		return err
	}

	res := t.Run()
	if err := r.Err(); err != nil {
		return fmt.Errorf("render board: %w", err)
	}

	if res.Complete {
		fmt.Fprintln(out, completedText)
	} else {
		fmt.Fprintln(out, stalledText)
	}

	if opts.moves {
		fmt.Fprintln(out, notation.Join(notation.Path(res.Path, rows, cols)))
	}
	if opts.fen {
		fen, err := notation.Placement(board)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, fen)
	}
	if opts.record != "" {
		rec := record.New(rows, cols, res)
		if err := record.Append(opts.record, rec); err != nil {
			return err
		}
		logger.Info("tour recorded", zap.Stringer("id", rec.ID), zap.String("file", opts.record))
	}

	return nil
}
