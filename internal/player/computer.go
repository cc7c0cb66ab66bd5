package player

import (
	"context"
	"ctchen222/noughts-and-crosses/internal/bot"
	"ctchen222/noughts-and-crosses/internal/game"
)

// Computer is a Player backed by the move advisor.
type Computer struct {
	mark game.Mark
}

// NewComputer creates a computer player for mark.
func NewComputer(mark game.Mark) *Computer {
	return &Computer{mark: mark}
}

func (c *Computer) Mark() game.Mark {
	return c.mark
}

// NextMove asks an advisor bound to b for its move.
func (c *Computer) NextMove(ctx context.Context, b *game.Board) (game.Cell, error) {
	cell, _, err := bot.NewAdvisor(b, c.mark).Decide(ctx)
	return cell, err
}
