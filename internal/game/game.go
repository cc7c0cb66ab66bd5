package game

import (
	"errors"
	"fmt"
	"strings"
)

// Mark is the symbol a player places on a cell. There is no empty mark;
// an unoccupied cell simply has no mark.
type Mark string

const (
	// Cross always moves first.
	Cross  Mark = "X"
	Nought Mark = "O"

	// DefaultSize is the dimension of a standard board.
	DefaultSize = 3
)

var (
	ErrInvalidCoordinate = errors.New("coordinate out of bounds")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrInvalidSize       = errors.New("invalid board size")
)

// Valid reports whether m is one of the two player marks.
func (m Mark) Valid() bool {
	return m == Cross || m == Nought
}

// Opponent returns the other player's mark.
func (m Mark) Opponent() Mark {
	if m == Cross {
		return Nought
	}
	return Cross
}

func (m Mark) String() string {
	return string(m)
}

// ParseMark converts "x" or "o" (any case) into a Mark.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return Cross, nil
	case "O":
		return Nought, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMark, s)
}

// Cell is a board coordinate. X is the column, Y the row.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Line is a row, column or diagonal. A line fully occupied by one mark wins.
type Line []Cell

// Contains reports whether c is one of the line's cells.
func (l Line) Contains(c Cell) bool {
	for _, lc := range l {
		if lc == c {
			return true
		}
	}
	return false
}

// buildLines returns rows, then columns, then the main and anti diagonals.
func buildLines(size int) []Line {
	lines := make([]Line, 0, 2*size+2)

	for y := range size {
		row := make(Line, size)
		for x := range size {
			row[x] = Cell{X: x, Y: y}
		}
		lines = append(lines, row)
	}

	for x := range size {
		col := make(Line, size)
		for y := range size {
			col[y] = Cell{X: x, Y: y}
		}
		lines = append(lines, col)
	}

	diag := make(Line, size)
	anti := make(Line, size)
	for i := range size {
		diag[i] = Cell{X: i, Y: i}
		anti[i] = Cell{X: i, Y: size - 1 - i}
	}
	return append(lines, diag, anti)
}
