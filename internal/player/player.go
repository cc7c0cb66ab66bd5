package player

import (
	"context"
	"ctchen222/noughts-and-crosses/internal/game"
)

//go:generate mockgen -destination=mocks/player.go -package=mocks ctchen222/noughts-and-crosses/internal/player Player

// Player chooses cells for one mark.
type Player interface {
	Mark() game.Mark
	// NextMove returns the cell the player wants to claim on b.
	NextMove(ctx context.Context, b *game.Board) (game.Cell, error)
}
