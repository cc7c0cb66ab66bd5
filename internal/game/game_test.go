package game

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, s string) *Board {
	t.Helper()
	b, err := ParseBoard(s)
	if err != nil {
		t.Fatalf("ParseBoard(%q) failed: %v", s, err)
	}
	return b
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name    string
		board   string
		want    Mark
		wantWin bool
	}{
		{name: "No winner - empty board", board: ".../.../...", wantWin: false},
		{name: "No winner - partial board", board: "X../.O./...", wantWin: false},
		{name: "X wins - first row", board: "XXX/.O./..O", want: Cross, wantWin: true},
		{name: "O wins - second column", board: "XO./XO./.O.", want: Nought, wantWin: true},
		{name: "X wins - main diagonal", board: "X../.X./..X", want: Cross, wantWin: true},
		{name: "O wins - anti-diagonal", board: "..O/.O./O..", want: Nought, wantWin: true},
		{name: "No winner - full board (draw)", board: "XOX/XOO/OXX", wantWin: false},
		// Unreachable in play, but the first line in row order must be reported.
		{name: "Both complete - first row wins", board: "OOO/XXX/...", want: Nought, wantWin: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, won := mustParse(t, tt.board).Winner()
			if won != tt.wantWin || got != tt.want {
				t.Errorf("Winner() got = (%v, %v), want (%v, %v)", got, won, tt.want, tt.wantWin)
			}
		})
	}
}

func TestIsFull(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  bool
	}{
		{name: "Empty board is not full", board: ".../.../...", want: false},
		{name: "Partial board is not full", board: "X../.O./...", want: false},
		{name: "Full board is full", board: "XOX/XOO/OXX", want: true},
		{name: "Full board with winner is full", board: "XXX/OOX/OXO", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, tt.board)
			if got := b.IsFull(); got != tt.want {
				t.Errorf("IsFull() got = %v, want %v", got, tt.want)
			}
			if got := len(b.EmptyCells()) == 0; got != tt.want {
				t.Errorf("len(EmptyCells()) == 0 got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	b := NewBoard()
	for _, c := range []Cell{{0, 0}, {1, 0}} {
		if ok, err := b.Place(c, Cross); !ok || err != nil {
			t.Fatalf("Place(%v) = (%v, %v)", c, ok, err)
		}
	}
	if b.IsTerminal() {
		t.Fatal("IsTerminal() = true before the row is complete")
	}
	if ok, _ := b.Place(Cell{2, 0}, Cross); !ok {
		t.Fatal("Place((2,0)) failed")
	}
	if w, ok := b.Winner(); !ok || w != Cross {
		t.Errorf("Winner() = (%v, %v), want (X, true)", w, ok)
	}
	if !b.IsTerminal() {
		t.Error("IsTerminal() = false after X completed the first row")
	}

	draw := mustParse(t, "XOX/XOO/OXX")
	if !draw.IsTerminal() {
		t.Error("IsTerminal() = false on a full board")
	}
}

func TestPlace(t *testing.T) {
	b := NewBoard()
	c := Cell{X: 2, Y: 1}

	ok, err := b.Place(c, Nought)
	if err != nil || !ok {
		t.Fatalf("Place() on empty cell = (%v, %v), want (true, nil)", ok, err)
	}
	if m, occupied, _ := b.Get(c); !occupied || m != Nought {
		t.Errorf("Get() = (%v, %v), want (O, true)", m, occupied)
	}

	for _, m := range []Mark{Cross, Nought} {
		before := b.String()
		ok, err := b.Place(c, m)
		if err != nil || ok {
			t.Errorf("second Place(%v) = (%v, %v), want (false, nil)", m, ok, err)
		}
		if b.String() != before {
			t.Errorf("board changed after rejected Place: %q -> %q", before, b.String())
		}
	}
}

func TestPlace_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cell    Cell
		mark    Mark
		wantErr error
	}{
		{name: "negative x", cell: Cell{-1, 0}, mark: Cross, wantErr: ErrInvalidCoordinate},
		{name: "y too large", cell: Cell{0, 3}, mark: Cross, wantErr: ErrInvalidCoordinate},
		{name: "x too large", cell: Cell{3, 3}, mark: Nought, wantErr: ErrInvalidCoordinate},
		{name: "empty mark", cell: Cell{1, 1}, mark: "", wantErr: ErrInvalidMark},
		{name: "unknown mark", cell: Cell{1, 1}, mark: "Z", wantErr: ErrInvalidMark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			ok, err := b.Place(tt.cell, tt.mark)
			if ok || !errors.Is(err, tt.wantErr) {
				t.Errorf("Place() = (%v, %v), want (false, %v)", ok, err, tt.wantErr)
			}
			if len(b.EmptyCells()) != 9 {
				t.Errorf("board mutated by failing Place: %q", b.String())
			}
		})
	}
}

func TestGet_OutOfBounds(t *testing.T) {
	b := NewBoard()
	if _, _, err := b.Get(Cell{X: 0, Y: -1}); !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("Get() error = %v, want %v", err, ErrInvalidCoordinate)
	}
	if _, ok, err := b.Get(Cell{X: 1, Y: 1}); ok || err != nil {
		t.Errorf("Get() on empty cell = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestLines(t *testing.T) {
	b := mustParse(t, "XO./.X./O..")
	lines := b.Lines()

	if len(lines) != 8 {
		t.Fatalf("Lines() returned %d lines, want 8", len(lines))
	}

	covered := make(map[Cell]int)
	for i, l := range lines {
		if len(l) != 3 {
			t.Errorf("line %d has %d cells, want 3", i, len(l))
		}
		for _, c := range l {
			covered[c]++
		}
	}
	if len(covered) != 9 {
		t.Errorf("lines cover %d cells, want 9", len(covered))
	}

	wantDiag := Line{{0, 0}, {1, 1}, {2, 2}}
	wantAnti := Line{{0, 2}, {1, 1}, {2, 0}}
	for i := range 3 {
		if lines[6][i] != wantDiag[i] {
			t.Errorf("main diagonal = %v, want %v", lines[6], wantDiag)
		}
		if lines[7][i] != wantAnti[i] {
			t.Errorf("anti-diagonal = %v, want %v", lines[7], wantAnti)
		}
	}
	if lines[0][2] != (Cell{2, 0}) || lines[3][2] != (Cell{0, 2}) {
		t.Errorf("rows/columns out of order: row0=%v col0=%v", lines[0], lines[3])
	}

	// Mutating the returned lines must not affect the board.
	lines[0] = nil
	if len(b.Lines()[0]) != 3 {
		t.Error("Lines() exposes internal state")
	}
}

func TestLines_CallerCannotRewrite(t *testing.T) {
	b := NewBoard()
	b.Lines()[0][0] = Cell{2, 2}
	b.LinesThrough(Cell{1, 0})[0][0] = Cell{2, 2}

	if got := b.Lines()[0][0]; got != (Cell{0, 0}) {
		t.Fatalf("row 0 starts at %v after caller edit, want (0,0)", got)
	}
	if got := b.LinesThrough(Cell{1, 0})[0][0]; got != (Cell{0, 0}) {
		t.Fatalf("LinesThrough((1,0)) row starts at %v after caller edit, want (0,0)", got)
	}

	for _, c := range []Cell{{2, 2}, {1, 0}, {2, 0}} {
		if ok, err := b.Place(c, Cross); !ok || err != nil {
			t.Fatalf("Place(%v) = (%v, %v)", c, ok, err)
		}
	}
	if w, ok := b.Winner(); ok {
		t.Errorf("Winner() = (%v, true) with no complete line", w)
	}
}

func TestLineMembership(t *testing.T) {
	b := NewBoard()
	tests := []struct {
		cell Cell
		want int
	}{
		{Cell{0, 0}, 3},
		{Cell{2, 2}, 3},
		{Cell{0, 2}, 3},
		{Cell{1, 0}, 2},
		{Cell{2, 1}, 2},
		{Cell{1, 1}, 4},
	}
	for _, tt := range tests {
		if got := len(b.LinesThrough(tt.cell)); got != tt.want {
			t.Errorf("LinesThrough(%v) has %d lines, want %d", tt.cell, got, tt.want)
		}
	}
}

func TestEmptyCells_RowMajor(t *testing.T) {
	b := mustParse(t, "X../.O./..X")
	want := []Cell{{1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}}
	got := b.EmptyCells()
	if len(got) != len(want) {
		t.Fatalf("EmptyCells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("EmptyCells() = %v, want %v", got, want)
		}
	}
}

func TestNewBoardSize(t *testing.T) {
	if _, err := NewBoardSize(2); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewBoardSize(2) error = %v, want %v", err, ErrInvalidSize)
	}

	b, err := NewBoardSize(4)
	if err != nil {
		t.Fatalf("NewBoardSize(4) failed: %v", err)
	}
	if got := len(b.Lines()); got != 10 {
		t.Errorf("4x4 board has %d lines, want 10", got)
	}
	if got := len(b.EmptyCells()); got != 16 {
		t.Errorf("4x4 board has %d empty cells, want 16", got)
	}
}

func TestParseBoard(t *testing.T) {
	b := mustParse(t, "X.O/-X-/__O")
	if got, want := b.String(), "X.O\n.X.\n..O"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	for _, bad := range []string{"XX/OO", "XXX/OO/...", "XQX/.../..."} {
		if _, err := ParseBoard(bad); err == nil {
			t.Errorf("ParseBoard(%q) succeeded, want error", bad)
		}
	}
}

func TestClone(t *testing.T) {
	b := mustParse(t, "X../.../...")
	c := b.Clone()
	if ok, _ := c.Place(Cell{1, 1}, Nought); !ok {
		t.Fatal("Place on clone failed")
	}
	if _, ok, _ := b.Get(Cell{1, 1}); ok {
		t.Error("placing on a clone changed the source board")
	}
}

func TestMark(t *testing.T) {
	if Cross.Opponent() != Nought || Nought.Opponent() != Cross {
		t.Error("Opponent() does not swap marks")
	}
	if m, err := ParseMark(" o "); err != nil || m != Nought {
		t.Errorf("ParseMark(\" o \") = (%v, %v)", m, err)
	}
	if _, err := ParseMark("?"); !errors.Is(err, ErrInvalidMark) {
		t.Errorf("ParseMark(\"?\") error = %v, want %v", err, ErrInvalidMark)
	}
}

func TestTurn(t *testing.T) {
	tests := []struct {
		board string
		want  Mark
	}{
		{".../.../...", Cross},
		{"X../.../...", Nought},
		{"XO./.../...", Cross},
		{"O../.../...", Cross},
	}
	for _, tt := range tests {
		if got := mustParse(t, tt.board).Turn(); got != tt.want {
			t.Errorf("Turn() on %q = %v, want %v", tt.board, got, tt.want)
		}
	}
}
