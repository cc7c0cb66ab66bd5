package bot

import (
	"context"
	"ctchen222/noughts-and-crosses/internal/game"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("bot")

var ErrNoMovesAvailable = errors.New("no moves available")

// Rule names the heuristic that produced a move.
type Rule string

const (
	RuleWin      Rule = "win"
	RuleBlock    Rule = "block"
	RuleFallback Rule = "fallback"
)

// Advisor picks moves for one mark on one board. It keeps no state between
// calls: every move is a function of the current board contents.
type Advisor struct {
	board *game.Board
	mark  game.Mark
}

// NewAdvisor creates an advisor playing mark on board.
func NewAdvisor(board *game.Board, mark game.Mark) *Advisor {
	return &Advisor{board: board, mark: mark}
}

// Mark returns the mark the advisor plays.
func (a *Advisor) Mark() game.Mark {
	return a.mark
}

// NextMove returns the cell to claim next.
func (a *Advisor) NextMove() (game.Cell, error) {
	c, _, err := a.Decide(context.Background())
	return c, err
}

// Decide returns the next cell together with the rule that chose it.
func (a *Advisor) Decide(ctx context.Context) (game.Cell, Rule, error) {
	ctx, span := tracer.Start(ctx, "bot.Decide", trace.WithAttributes(
		attribute.String("player.mark", a.mark.String()),
	))
	defer span.End()

	empty := a.board.EmptyCells()
	if len(empty) == 0 {
		span.RecordError(ErrNoMovesAvailable)
		return game.Cell{}, "", ErrNoMovesAvailable
	}

	cell, rule := a.choose(empty)
	span.SetAttributes(
		attribute.String("bot.rule", string(rule)),
		attribute.Int("cell.x", cell.X),
		attribute.Int("cell.y", cell.Y),
	)
	slog.DebugContext(ctx, "advisor chose move", "player.mark", a.mark, "rule", rule, "cell", cell)
	return cell, rule, nil
}

func (a *Advisor) choose(empty []game.Cell) (game.Cell, Rule) {
	// 1. Win: complete a line we already nearly own
	if c, ok := a.findCompletingMove(a.mark); ok {
		return c, RuleWin
	}

	// 2. Block: stop the opponent completing a line
	if c, ok := a.findCompletingMove(a.mark.Opponent()); ok {
		return c, RuleBlock
	}

	// 3. Fallback: the cell whose lines are most occupied, first on ties
	best, bestScore := empty[0], a.Score(empty[0])
	for _, c := range empty[1:] {
		if s := a.Score(c); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best, RuleFallback
}

// findCompletingMove scans the lines in order for one holding mark on every
// cell but one, with that last cell empty.
func (a *Advisor) findCompletingMove(mark game.Mark) (game.Cell, bool) {
	for _, l := range a.board.Lines() {
		var (
			own   int
			empty []game.Cell
		)
		for _, c := range l {
			m, occupied, _ := a.board.Get(c)
			switch {
			case !occupied:
				empty = append(empty, c)
			case m == mark:
				own++
			}
		}
		if own == len(l)-1 && len(empty) == 1 {
			return empty[0], true
		}
	}
	return game.Cell{}, false
}

// Score counts, over every line through c, the other cells of that line
// that are already occupied by either mark.
func (a *Advisor) Score(c game.Cell) int {
	score := 0
	for _, l := range a.board.LinesThrough(c) {
		for _, other := range l {
			if other == c {
				continue
			}
			if _, occupied, _ := a.board.Get(other); occupied {
				score++
			}
		}
	}
	return score
}
