package player

import (
	"bufio"
	"context"
	"ctchen222/noughts-and-crosses/internal/game"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

var ErrInputClosed = errors.New("input closed")

// Translator maps a screen position to a board cell.
type Translator interface {
	CellAt(px, py int) (game.Cell, error)
}

// Human reads moves typed on a line-oriented input.
type Human struct {
	mark      game.Mark
	scanner   *bufio.Scanner
	out       io.Writer
	translate Translator
}

// HumanOption configures a Human.
type HumanOption func(*Human)

// WithPixelInput makes the player type screen positions instead of cell
// coordinates. Positions are turned into cells by t.
func WithPixelInput(t Translator) HumanOption {
	return func(h *Human) {
		h.translate = t
	}
}

// NewHuman creates a human player reading from in and prompting on out.
func NewHuman(mark game.Mark, in io.Reader, out io.Writer, opts ...HumanOption) *Human {
	h := &Human{
		mark:    mark,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Human) Mark() game.Mark {
	return h.mark
}

// NextMove prompts until the player enters a position on the board. It
// returns ErrInputClosed when input ends or the player quits.
func (h *Human) NextMove(ctx context.Context, b *game.Board) (game.Cell, error) {
	for {
		if err := ctx.Err(); err != nil {
			return game.Cell{}, err
		}

		fmt.Fprintf(h.out, "%s> ", h.mark)
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return game.Cell{}, fmt.Errorf("failed to read move: %w", err)
			}
			return game.Cell{}, ErrInputClosed
		}

		line := strings.TrimSpace(h.scanner.Text())
		if line == "q" || line == "quit" {
			return game.Cell{}, ErrInputClosed
		}

		cell, err := h.parse(line)
		if err == nil && !b.InBounds(cell) {
			err = fmt.Errorf("%w: %v", game.ErrInvalidCoordinate, cell)
		}
		if err != nil {
			slog.DebugContext(ctx, "rejected input", "player.mark", h.mark, "input", line, "error", err)
			fmt.Fprintf(h.out, "invalid move %q: %v\n", line, err)
			continue
		}
		return cell, nil
	}
}

func (h *Human) parse(line string) (game.Cell, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(fields) != 2 {
		return game.Cell{}, errors.New("enter two numbers: x y")
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Cell{}, fmt.Errorf("bad x: %w", err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Cell{}, fmt.Errorf("bad y: %w", err)
	}

	if h.translate != nil {
		return h.translate.CellAt(x, y)
	}
	return game.Cell{X: x, Y: y}, nil
}
