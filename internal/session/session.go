package session

import (
	"context"
	"ctchen222/noughts-and-crosses/internal/game"
	"ctchen222/noughts-and-crosses/internal/player"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("session")
	meter  = otel.Meter("session")
)

var (
	ErrSameMark      = errors.New("players must hold different marks")
	ErrMissingPlayer = errors.New("player is nil")
)

//go:generate mockgen -destination=mocks/observer.go -package=mocks ctchen222/noughts-and-crosses/internal/session Observer

// Observer is told about every change to the board. It is how a
// presentation layer follows the game.
type Observer interface {
	Placed(b *game.Board, mark game.Mark, cell game.Cell)
	// Rejected is called when a player picks a cell that is already taken.
	Rejected(mark game.Mark, cell game.Cell)
	Finished(b *game.Board, outcome Outcome)
}

type nopObserver struct{}

func (nopObserver) Placed(*game.Board, game.Mark, game.Cell) {}
func (nopObserver) Rejected(game.Mark, game.Cell)            {}
func (nopObserver) Finished(*game.Board, Outcome)            {}

// Outcome is the result of a finished game.
type Outcome struct {
	Winner    game.Mark
	HasWinner bool
	Moves     int
}

// Result is "X", "O" or "draw".
func (o Outcome) Result() string {
	if o.HasWinner {
		return o.Winner.String()
	}
	return "draw"
}

// Session alternates turns between two players on one board. Cross always
// moves first.
type Session struct {
	ID       string
	board    *game.Board
	players  map[game.Mark]player.Player
	observer Observer

	moveCounter metric.Int64Counter
	gameCounter metric.Int64Counter
}

// New creates a session playing a and b against each other on board. A nil
// observer is allowed.
func New(board *game.Board, a, b player.Player, observer Observer) (*Session, error) {
	if a == nil || b == nil {
		return nil, ErrMissingPlayer
	}
	if a.Mark() == b.Mark() {
		return nil, fmt.Errorf("%w: both are %s", ErrSameMark, a.Mark())
	}
	for _, p := range []player.Player{a, b} {
		if !p.Mark().Valid() {
			return nil, fmt.Errorf("%w: %q", game.ErrInvalidMark, p.Mark().String())
		}
	}
	if observer == nil {
		observer = nopObserver{}
	}

	moveCounter, err := meter.Int64Counter("game.moves",
		metric.WithDescription("Number of marks placed"))
	if err != nil {
		return nil, fmt.Errorf("failed to create move counter: %w", err)
	}
	gameCounter, err := meter.Int64Counter("game.finished",
		metric.WithDescription("Number of games played to the end"))
	if err != nil {
		return nil, fmt.Errorf("failed to create game counter: %w", err)
	}

	return &Session{
		ID:    uuid.New().String(),
		board: board,
		players: map[game.Mark]player.Player{
			a.Mark(): a,
			b.Mark(): b,
		},
		observer:    observer,
		moveCounter: moveCounter,
		gameCounter: gameCounter,
	}, nil
}

// Board returns the board being played on.
func (s *Session) Board() *game.Board {
	return s.board
}

// Run plays until the board is terminal and returns the outcome. A player
// error or a cancelled ctx ends the game early; the returned outcome then
// holds the moves made.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	ctx, span := tracer.Start(ctx, "session.Run", trace.WithAttributes(
		attribute.String("session.id", s.ID),
	))
	defer span.End()

	slog.InfoContext(ctx, "game started", "session.id", s.ID, "board.size", s.board.Size())

	moves := 0
	turn := s.board.Turn()
	for !s.board.IsTerminal() {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Game cancelled")
			return Outcome{Moves: moves}, err
		}
		placed, err := s.handleMove(ctx, turn)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Game aborted")
			return Outcome{Moves: moves}, err
		}
		if !placed {
			continue
		}
		moves++
		turn = turn.Opponent()
	}

	outcome := Outcome{Moves: moves}
	outcome.Winner, outcome.HasWinner = s.board.Winner()

	span.SetAttributes(attribute.String("game.result", outcome.Result()))
	s.gameCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("result", outcome.Result())))
	slog.InfoContext(ctx, "game finished", "session.id", s.ID, "result", outcome.Result(), "moves", moves)

	s.observer.Finished(s.board, outcome)
	return outcome, nil
}

// handleMove asks the player holding mark for a cell and places it. It
// reports false when the cell was already taken.
func (s *Session) handleMove(ctx context.Context, mark game.Mark) (bool, error) {
	ctx, span := tracer.Start(ctx, "session.handleMove", trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("player.mark", mark.String()),
	))
	defer span.End()

	cell, err := s.players[mark].NextMove(ctx, s.board)
	if err != nil {
		return false, fmt.Errorf("player %s failed to move: %w", mark, err)
	}
	span.SetAttributes(attribute.Int("move.x", cell.X), attribute.Int("move.y", cell.Y))

	ok, err := s.board.Place(cell, mark)
	if err != nil {
		slog.ErrorContext(ctx, "player produced an invalid cell", "session.id", s.ID, "player.mark", mark, "cell", cell, "error", err)
		return false, fmt.Errorf("player %s: %w", mark, err)
	}
	span.SetAttributes(attribute.Bool("move.valid", ok))
	if !ok {
		slog.WarnContext(ctx, "cell already occupied", "session.id", s.ID, "player.mark", mark, "cell", cell)
		s.observer.Rejected(mark, cell)
		return false, nil
	}

	s.moveCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("player.mark", mark.String())))
	slog.DebugContext(ctx, "mark placed", "session.id", s.ID, "player.mark", mark, "cell", cell)
	s.observer.Placed(s.board, mark, cell)
	return true, nil
}
