package display

import (
	"ctchen222/noughts-and-crosses/internal/game"
	"ctchen222/noughts-and-crosses/internal/session"
	"fmt"
	"io"
	"strings"
)

var _ session.Observer = (*TextRenderer)(nil)

// TextRenderer draws the board as text after every move.
type TextRenderer struct {
	out    io.Writer
	layout Layout
	pixels bool
}

type RendererOption func(*TextRenderer)

// WithPixelPositions reports where each placed mark is drawn on screen.
func WithPixelPositions() RendererOption {
	return func(r *TextRenderer) {
		r.pixels = true
	}
}

// NewTextRenderer creates a renderer writing to out.
func NewTextRenderer(out io.Writer, layout Layout, opts ...RendererOption) *TextRenderer {
	r := &TextRenderer{out: out, layout: layout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Draw writes b with column and row numbers.
func (r *TextRenderer) Draw(b *game.Board) {
	var sb strings.Builder

	sb.WriteString("  ")
	for x := range b.Size() {
		fmt.Fprintf(&sb, " %d", x)
	}
	sb.WriteByte('\n')

	for y := range b.Size() {
		fmt.Fprintf(&sb, "%d ", y)
		for x := range b.Size() {
			c := game.Cell{X: x, Y: y}
			sb.WriteByte(' ')
			m, ok, _ := b.Get(c)
			if !ok {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(m.String())
		}
		sb.WriteByte('\n')
	}

	io.WriteString(r.out, sb.String())
}

func (r *TextRenderer) Placed(b *game.Board, mark game.Mark, cell game.Cell) {
	fmt.Fprintf(r.out, "%s plays %v", mark, cell)
	if r.pixels {
		if px, py, err := r.layout.TopLeft(cell); err == nil {
			fmt.Fprintf(r.out, ", drawn at %d,%d", px, py)
		}
	}
	fmt.Fprintln(r.out)
	r.Draw(b)
}

func (r *TextRenderer) Rejected(mark game.Mark, cell game.Cell) {
	fmt.Fprintf(r.out, "%v is already taken, %s to move again\n", cell, mark)
}

func (r *TextRenderer) Finished(b *game.Board, outcome session.Outcome) {
	if outcome.HasWinner {
		fmt.Fprintf(r.out, "%s wins after %d moves\n", outcome.Winner, outcome.Moves)
		return
	}
	fmt.Fprintf(r.out, "Draw after %d moves\n", outcome.Moves)
}
