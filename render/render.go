// Package render draws tour boards as rows of fixed-width glyphs.
package render

import (
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/garlicgarrison/knights-tour/config"
	"github.com/garlicgarrison/knights-tour/tour"
)

type Renderer struct {
	w      io.Writer
	glyphs [3]string
	err    error
}

// New returns a Renderer writing to w. With color set, the knight and the
// visited squares are colorized with ANSI escapes.
func New(w io.Writer, g config.Glyphs, color bool) *Renderer {
	au := aurora.NewAurora(color)

	r := &Renderer{w: w}
	r.glyphs[tour.Unvisited] = g.Unvisited
	r.glyphs[tour.Current] = au.Bold(au.Green(g.Current)).String()
	r.glyphs[tour.Visited] = au.Yellow(g.Visited).String()
	return r
}

// Render writes the board row by row followed by a blank line. Write
// errors are kept and reported by Err; after the first one Render does
// nothing.
func (r *Renderer) Render(b *tour.Board) {
	if r.err != nil {
		return
	}

	var sb strings.Builder
	for row := 0; row < b.Rows(); row++ {
		for _, s := range b.Row(row) {
			sb.WriteString(r.glyphs[s])
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	_, r.err = io.WriteString(r.w, sb.String())
}

// Observer adapts the renderer to a tour observer.
func (r *Renderer) Observer() tour.Observer {
	return func(b *tour.Board, _ tour.Step) {
		r.Render(b)
	}
}

func (r *Renderer) Err() error {
	return r.err
}
