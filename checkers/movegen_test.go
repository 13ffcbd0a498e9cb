package checkers

import "testing"

func mustParse(t *testing.T, s string) Board {
	t.Helper()
	b, err := ParseBoard(s)
	if err != nil {
		t.Fatalf("parse board: %v", err)
	}
	return b
}

func TestInitialPositionTurns(t *testing.T) {
	g := NewSeededGenerator(1)
	b := NewBoard()

	moves, forced := g.Turns(b, White)
	if forced {
		t.Fatalf("no captures expected in the starting position")
	}
	if len(moves) != 7 {
		t.Fatalf("expected 7 opening moves for white, got %d: %v", len(moves), moves)
	}
	for _, m := range moves {
		if m.X != 5 || m.X2 != 4 {
			t.Fatalf("white opening move should go from row 5 to row 4, got %v", m)
		}
	}

	moves, _ = g.Turns(b, Black)
	if len(moves) != 7 {
		t.Fatalf("expected 7 opening moves for black, got %d", len(moves))
	}
}

func TestCapturesAreMandatoryAcrossPieces(t *testing.T) {
	b := mustParse(t, `
		........
		........
		..b.....
		...w....
		........
		........
		.....b..
		........`)
	g := NewSeededGenerator(1)

	moves, forced := g.Turns(b, Black)
	if !forced {
		t.Fatalf("expected forced capture for black")
	}
	if len(moves) != 1 {
		t.Fatalf("expected only the capturing move, got %v", moves)
	}
	if want := NewCapture(2, 2, 4, 4, 3, 3); moves[0] != want {
		t.Fatalf("expected %v, got %v", want, moves[0])
	}
}

func TestNeverMixesCapturesAndQuietMoves(t *testing.T) {
	boards := []string{
		`........
		 .b.b.b.b
		 ........
		 ..w.....
		 ...b....
		 w.w.w.w.
		 ........
		 ........`,
		`W.......
		 ........
		 ..b.....
		 ........
		 ....b...
		 ........
		 w.......
		 ........`,
		`........
		 ........
		 ........
		 ........
		 ........
		 ........
		 ........
		 ........`,
	}
	g := NewSeededGenerator(7)
	for i, s := range boards {
		b := mustParse(t, s)
		for _, c := range []Color{White, Black} {
			moves, forced := g.Turns(b, c)
			captures := 0
			for _, m := range moves {
				if m.IsCapture() {
					captures++
				}
			}
			if captures > 0 && captures != len(moves) {
				t.Fatalf("board %d %v: mixed captures and quiet moves: %v", i, c, moves)
			}
			if forced != (captures > 0) {
				t.Fatalf("board %d %v: forced=%v with %d captures", i, c, forced, captures)
			}
		}
	}
}

func TestManMovesForwardOnly(t *testing.T) {
	b := mustParse(t, `
		........
		........
		........
		...b....
		...w....
		........
		........
		........`)
	g := NewSeededGenerator(1)

	white, _ := g.Turns(b, White)
	for _, m := range white {
		if m.X2 != 3 {
			t.Fatalf("white man must step to row 3, got %v", m)
		}
	}
	if len(white) != 2 {
		t.Fatalf("expected 2 white moves, got %v", white)
	}
	black, _ := g.Turns(b, Black)
	for _, m := range black {
		if m.X2 != 4 {
			t.Fatalf("black man must step to row 4, got %v", m)
		}
	}
}

func TestManCapturesBackwards(t *testing.T) {
	b := mustParse(t, `
		........
		........
		........
		........
		...w....
		....b...
		........
		........`)
	g := NewSeededGenerator(1)
	moves, forced := g.Turns(b, White)
	if !forced || len(moves) != 1 {
		t.Fatalf("expected a single backward capture, got %v forced=%v", moves, forced)
	}
	if want := NewCapture(4, 3, 6, 5, 5, 4); moves[0] != want {
		t.Fatalf("expected %v, got %v", want, moves[0])
	}
}

func TestKingSlidesUntilBlocked(t *testing.T) {
	b := mustParse(t, `
		........
		........
		........
		........
		........
		..w.....
		........
		W.......`)
	g := NewSeededGenerator(1)
	moves, forced := g.PieceTurns(b, 7, 0)
	if forced {
		t.Fatalf("king has nothing to capture")
	}
	if len(moves) != 1 || !moves[0].Equals(NewMove(7, 0, 6, 1)) {
		t.Fatalf("king should stop before its own man, got %v", moves)
	}
}

func TestKingCaptureLandings(t *testing.T) {
	b := mustParse(t, `
		........
		........
		........
		........
		........
		..b.....
		........
		W.......`)
	g := NewSeededGenerator(1)
	moves, forced := g.PieceTurns(b, 7, 0)
	if !forced {
		t.Fatalf("expected king capture")
	}
	want := []Move{
		NewCapture(7, 0, 4, 3, 5, 2),
		NewCapture(7, 0, 3, 4, 5, 2),
		NewCapture(7, 0, 2, 5, 5, 2),
		NewCapture(7, 0, 1, 6, 5, 2),
		NewCapture(7, 0, 0, 7, 5, 2),
	}
	if len(moves) != len(want) {
		t.Fatalf("expected %d landings, got %v", len(want), moves)
	}
	for _, m := range want {
		got, ok := Find(moves, m)
		if !ok || got != m {
			t.Fatalf("missing landing %v in %v", m, moves)
		}
	}
}

func TestKingCannotJumpTwoPieces(t *testing.T) {
	b := mustParse(t, `
		........
		........
		........
		...b....
		........
		..b.....
		........
		W.......`)
	g := NewSeededGenerator(1)
	moves, forced := g.PieceTurns(b, 7, 0)
	if !forced {
		t.Fatalf("expected the capture of the first piece")
	}
	want := NewCapture(7, 0, 4, 3, 5, 2)
	if len(moves) != 1 || moves[0] != want {
		t.Fatalf("landings past the second piece are illegal, want only %v got %v", want, moves)
	}

	b = mustParse(t, `
		........
		........
		........
		........
		...b....
		..b.....
		........
		W.......`)
	if moves, forced := g.PieceTurns(b, 7, 0); forced || len(moves) != 1 {
		t.Fatalf("two adjacent pieces cannot be captured, got %v forced=%v", moves, forced)
	}
}

func TestChainContinuationOnlyCaptures(t *testing.T) {
	b := mustParse(t, `
		........
		........
		..b.....
		...w....
		........
		.....w..
		........
		........`)
	g := NewSeededGenerator(1)
	moves, _ := g.Turns(b, Black)
	if len(moves) != 1 {
		t.Fatalf("expected one first hop, got %v", moves)
	}
	b = b.Apply(moves[0])

	next, forced := g.PieceTurns(b, 4, 4)
	if !forced {
		t.Fatalf("expected the chain to continue from (4,4)")
	}
	if len(next) != 1 || next[0] != NewCapture(4, 4, 6, 6, 5, 5) {
		t.Fatalf("expected only the second capture, got %v", next)
	}
}

func TestEmptyColorHasNoMoves(t *testing.T) {
	g := NewSeededGenerator(1)
	var b Board
	if moves, forced := g.Turns(b, White); len(moves) != 0 || forced {
		t.Fatalf("empty board has no moves, got %v", moves)
	}
	if moves, _ := g.Turns(NewBoard(), Color(5)); len(moves) != 0 {
		t.Fatalf("unknown color has no moves, got %v", moves)
	}
}

func TestDeterministicShuffle(t *testing.T) {
	b := NewBoard()
	first, _ := NewGenerator(true).Turns(b, White)
	second, _ := NewGenerator(true).Turns(b, White)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("no-random generators diverged at %d: %v vs %v", i, first, second)
		}
	}
}
