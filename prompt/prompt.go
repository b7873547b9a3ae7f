// Package prompt reads validated board settings from an interactive user.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/garlicgarrison/knights-tour/tour"
)

var ErrNoInput = errors.New("prompt: input ended before a valid value was read")

type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Int prints text and reads lines until one starts with an integer within
// [lower, upper]. Only the first whitespace-separated field is parsed and
// the rest of the line is dropped. Lines that do not qualify, whatever their
// length, are discarded and the prompt repeats.
func (p *Prompter) Int(lower, upper int, text string) (int, error) {
	for {
		fmt.Fprint(p.out, text)
		line, err := p.in.ReadString('\n')
		if v, ok := parseInt(line, lower, upper); ok {
			return v, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, ErrNoInput
			}
			return 0, fmt.Errorf("%w: %w", ErrNoInput, err)
		}
	}
}

func parseInt(line string, lower, upper int) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(fields[0])
	if err != nil || v < lower || v > upper {
		return 0, false
	}
	return v, true
}

// Size asks for the board dimensions, each within [lo, hi].
func (p *Prompter) Size(lo, hi int) (rows, cols int, err error) {
	rows, err = p.Int(lo, hi, fmt.Sprintf("Enter number of rows (between %d-%d):", lo, hi))
	if err != nil {
		return 0, 0, err
	}
	cols, err = p.Int(lo, hi, fmt.Sprintf("Enter number of columns (between %d-%d):", lo, hi))
	if err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// Start asks for the knight's 1-indexed starting square and returns it
// 0-indexed.
func (p *Prompter) Start(rows, cols int) (tour.Position, error) {
	r, err := p.Int(1, rows, "Enter starting row of knight:")
	if err != nil {
		return tour.Position{}, err
	}
	c, err := p.Int(1, cols, "Enter starting column of knight:")
	if err != nil {
		return tour.Position{}, err
	}
	return tour.Position{Row: r - 1, Col: c - 1}, nil
}
