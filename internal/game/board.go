package game

import (
	"fmt"
	"slices"
	"strings"
)

// Board is a square grid of cells. A cell can be claimed exactly once.
// Board is not safe for concurrent use; a single writer is expected.
type Board struct {
	size    int
	cells   map[Cell]Mark
	lines   []Line
	through map[Cell][]Line
}

// NewBoard creates an empty 3x3 board.
func NewBoard() *Board {
	b, _ := NewBoardSize(DefaultSize)
	return b
}

// NewBoardSize creates an empty size x size board.
func NewBoardSize(size int) (*Board, error) {
	if size < DefaultSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	lines := buildLines(size)
	through := make(map[Cell][]Line, size*size)
	for _, l := range lines {
		for _, c := range l {
			through[c] = append(through[c], l)
		}
	}

	return &Board{
		size:    size,
		cells:   make(map[Cell]Mark, size*size),
		lines:   lines,
		through: through,
	}, nil
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether c addresses a cell on this board.
func (b *Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.size && c.Y >= 0 && c.Y < b.size
}

func (b *Board) checkBounds(c Cell) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrInvalidCoordinate, c, b.size, b.size)
	}
	return nil
}

// Place puts mark on c. It returns false without changing the board when c
// is already occupied.
func (b *Board) Place(c Cell, mark Mark) (bool, error) {
	if err := b.checkBounds(c); err != nil {
		return false, err
	}
	if !mark.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidMark, string(mark))
	}
	if _, taken := b.cells[c]; taken {
		return false, nil
	}
	b.cells[c] = mark
	return true, nil
}

// Get returns the mark on c. ok is false when the cell is empty.
func (b *Board) Get(c Cell) (mark Mark, ok bool, err error) {
	if err := b.checkBounds(c); err != nil {
		return "", false, err
	}
	mark, ok = b.cells[c]
	return mark, ok, nil
}

// Lines returns every winning line: rows, columns, then the two diagonals.
// The result is a copy; the board's own line set never changes.
func (b *Board) Lines() []Line {
	return cloneLines(b.lines)
}

// LinesThrough returns the lines that contain c, in Lines order.
func (b *Board) LinesThrough(c Cell) []Line {
	return cloneLines(b.through[c])
}

func cloneLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = slices.Clone(l)
	}
	return out
}

// Cells returns all cells in row-major order.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, 0, b.size*b.size)
	for y := range b.size {
		for x := range b.size {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// EmptyCells returns the unoccupied cells in row-major order.
func (b *Board) EmptyCells() []Cell {
	var empty []Cell
	for _, c := range b.Cells() {
		if _, taken := b.cells[c]; !taken {
			empty = append(empty, c)
		}
	}
	return empty
}

// IsFull reports whether every cell is occupied.
func (b *Board) IsFull() bool {
	return len(b.cells) == b.size*b.size
}

// Winner returns the mark filling the first uniform line, if any.
func (b *Board) Winner() (Mark, bool) {
	for _, l := range b.lines {
		first, ok := b.cells[l[0]]
		if !ok {
			continue
		}
		uniform := true
		for _, c := range l[1:] {
			if m, ok := b.cells[c]; !ok || m != first {
				uniform = false
				break
			}
		}
		if uniform {
			return first, true
		}
	}
	return "", false
}

// IsTerminal reports whether the game on this board is over.
func (b *Board) IsTerminal() bool {
	if b.IsFull() {
		return true
	}
	_, won := b.Winner()
	return won
}

// Turn returns the mark to move next: Cross unless Cross has placed more
// marks than Nought.
func (b *Board) Turn() Mark {
	crosses := 0
	for _, m := range b.cells {
		if m == Cross {
			crosses++
		}
	}
	if crosses > len(b.cells)-crosses {
		return Nought
	}
	return Cross
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make(map[Cell]Mark, len(b.cells))
	for c, m := range b.cells {
		cells[c] = m
	}
	return &Board{size: b.size, cells: cells, lines: b.lines, through: b.through}
}

// String renders the board one row per line, '.' marking empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.size {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range b.size {
			if m, ok := b.cells[Cell{X: x, Y: y}]; ok {
				sb.WriteString(string(m))
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// ParseBoard reads a board written as rows separated by '/' or newlines.
// 'X' and 'O' are marks; '.', '-' and '_' are empty cells.
func ParseBoard(s string) (*Board, error) {
	rows := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '\n' || r == '\r'
	})

	b, err := NewBoardSize(len(rows))
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		row = strings.TrimSpace(row)
		if len(row) != b.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, y, len(row), b.size)
		}
		for x, ch := range row {
			switch ch {
			case '.', '-', '_':
				continue
			}
			mark, err := ParseMark(string(ch))
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			b.cells[Cell{X: x, Y: y}] = mark
		}
	}
	return b, nil
}
