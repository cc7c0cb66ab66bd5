package proto

import (
	"ctchen222/noughts-and-crosses/internal/bot"
	"ctchen222/noughts-and-crosses/internal/game"
)

// AdviceMessage is the advisor's move for a board, as printed by
// `tictactoe advise -o json`.
type AdviceMessage struct {
	Board string    `json:"board"`
	Mark  game.Mark `json:"mark"`
	Cell  game.Cell `json:"cell"`
	Rule  bot.Rule  `json:"rule"`
	Score int       `json:"score"`
}
