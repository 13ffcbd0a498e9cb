package checkers

import "fmt"

// Move is a single hop. Xb, Yb hold the captured square, or -1 for a quiet move.
type Move struct {
	X, Y   int8
	X2, Y2 int8
	Xb, Yb int8
}

func NewMove(x, y, x2, y2 int) Move {
	return Move{X: int8(x), Y: int8(y), X2: int8(x2), Y2: int8(y2), Xb: -1, Yb: -1}
}

func NewCapture(x, y, x2, y2, xb, yb int) Move {
	return Move{X: int8(x), Y: int8(y), X2: int8(x2), Y2: int8(y2), Xb: int8(xb), Yb: int8(yb)}
}

func (m Move) IsCapture() bool {
	return m.Xb != -1
}

// Equals compares source and destination only; the captured square is derived.
func (m Move) Equals(other Move) bool {
	return m.X == other.X && m.Y == other.Y && m.X2 == other.X2 && m.Y2 == other.Y2
}

func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = ":"
	}
	return fmt.Sprintf("(%d,%d)%s(%d,%d)", m.X, m.Y, sep, m.X2, m.Y2)
}

// Contains reports whether moves holds a move equal to m.
func Contains(moves []Move, m Move) bool {
	_, ok := Find(moves, m)
	return ok
}

// Find returns the element of moves equal to m, carrying its capture metadata.
func Find(moves []Move, m Move) (Move, bool) {
	for _, candidate := range moves {
		if candidate.Equals(m) {
			return candidate, true
		}
	}
	return Move{}, false
}
