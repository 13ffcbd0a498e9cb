package checkers

import "testing"

func TestApplyIsPure(t *testing.T) {
	b := NewBoard()
	before := b
	m := NewMove(5, 0, 4, 1)

	first := b.Apply(m)
	second := b.Apply(m)
	if first != second {
		t.Fatalf("apply must be deterministic")
	}
	if b != before {
		t.Fatalf("apply mutated its input")
	}
	if first.At(4, 1) != WhiteMan || first.At(5, 0) != Empty {
		t.Fatalf("piece not relocated:\n%v", first)
	}
}

func TestApplyRemovesCapturedPiece(t *testing.T) {
	b, err := ParseBoard(`
		........
		........
		..b.....
		...w....
		........
		........
		........
		........`)
	if err != nil {
		t.Fatal(err)
	}
	next := b.Apply(NewCapture(2, 2, 4, 4, 3, 3))
	if next.At(3, 3) != Empty {
		t.Fatalf("captured piece still on board")
	}
	if men, kings := next.Count(White); men+kings != 0 {
		t.Fatalf("white should have no material left")
	}
}

func TestPromotion(t *testing.T) {
	tests := []struct {
		name  string
		piece Piece
		move  Move
		want  Piece
	}{
		{"white man reaches row 0", WhiteMan, NewMove(1, 2, 0, 1), WhiteKing},
		{"white man stays a man", WhiteMan, NewMove(2, 2, 1, 1), WhiteMan},
		{"black man reaches row 7", BlackMan, NewMove(6, 2, 7, 1), BlackKing},
		{"black man stays a man", BlackMan, NewMove(5, 2, 6, 1), BlackMan},
		{"white man on black's back rank", WhiteMan, NewMove(6, 2, 7, 1), WhiteMan},
		{"king stays a king", BlackKing, NewMove(6, 2, 7, 1), BlackKing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Board
			b[tt.move.X][tt.move.Y] = tt.piece
			got := b.Apply(tt.move).At(int(tt.move.X2), int(tt.move.Y2))
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAtPanicsOffBoard(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for off-board square")
		}
	}()
	NewBoard().At(8, 0)
}

func TestParseBoardRoundTrip(t *testing.T) {
	b := NewBoard()
	parsed, err := ParseBoard(b.String())
	if err != nil {
		t.Fatal(err)
	}
	if parsed != b {
		t.Fatalf("parsed board differs:\n%v\n%v", parsed, b)
	}
	if _, err := ParseBoard("bbb"); err == nil {
		t.Fatalf("expected error for short board")
	}
}
