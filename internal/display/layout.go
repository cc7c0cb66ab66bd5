package display

import (
	"ctchen222/noughts-and-crosses/internal/game"
	"fmt"
)

const (
	DefaultCellSize = 100
	DefaultMargin   = 10
)

// Layout maps between screen pixels and board cells. Margin only shifts
// where marks are drawn; clicks are translated without it.
type Layout struct {
	CellSize int
	Margin   int
	Size     int
}

// DefaultLayout is a 3x3 grid of 100px cells with a 10px sprite margin.
func DefaultLayout() Layout {
	return Layout{CellSize: DefaultCellSize, Margin: DefaultMargin, Size: game.DefaultSize}
}

// CellAt returns the cell under the screen position (px, py).
func (l Layout) CellAt(px, py int) (game.Cell, error) {
	if px < 0 || py < 0 || l.CellSize <= 0 {
		return game.Cell{}, fmt.Errorf("%w: pixel (%d,%d)", game.ErrInvalidCoordinate, px, py)
	}
	c := game.Cell{X: px / l.CellSize, Y: py / l.CellSize}
	if c.X >= l.Size || c.Y >= l.Size {
		return game.Cell{}, fmt.Errorf("%w: pixel (%d,%d)", game.ErrInvalidCoordinate, px, py)
	}
	return c, nil
}

// TopLeft returns the pixel where the mark for c is drawn.
func (l Layout) TopLeft(c game.Cell) (x, y int, err error) {
	if c.X < 0 || c.X >= l.Size || c.Y < 0 || c.Y >= l.Size {
		return 0, 0, fmt.Errorf("%w: %v", game.ErrInvalidCoordinate, c)
	}
	return l.Margin + l.CellSize*c.X, l.Margin + l.CellSize*c.Y, nil
}

// Window returns the window dimensions needed for the grid.
func (l Layout) Window() (width, height int) {
	return l.CellSize * l.Size, l.CellSize * l.Size
}
