package checkers

import (
	"math/rand"
	"time"
)

// Generator enumerates legal moves. It owns the random source used to
// shuffle move lists, so it must not be shared between goroutines.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator seeds from the wall clock, or with 0 when noRandom is set
// so that games are reproducible.
func NewGenerator(noRandom bool) *Generator {
	seed := time.Now().UnixNano()
	if noRandom {
		seed = 0
	}
	return NewSeededGenerator(seed)
}

func NewSeededGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Turns returns every legal move for color. When any piece can capture,
// only captures are returned and forced is true.
func (g *Generator) Turns(b Board, color Color) (moves []Move, forced bool) {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if !b[x][y].Belongs(color) {
				continue
			}
			pieceMoves, beats := pieceTurns(b, x, y)
			if beats && !forced {
				forced = true
				moves = moves[:0]
			}
			if beats || !forced {
				moves = append(moves, pieceMoves...)
			}
		}
	}
	g.rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
	return moves, forced
}

// PieceTurns returns the legal moves of the piece on (x, y), captures only
// if it has any. It is used to continue a capture chain from a landing square.
func (g *Generator) PieceTurns(b Board, x, y int) (moves []Move, forced bool) {
	mustInBounds(x, y)
	return pieceTurns(b, x, y)
}

var diagonals = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

func pieceTurns(b Board, x, y int) ([]Move, bool) {
	p := b[x][y]
	if p == Empty {
		return nil, false
	}
	if !p.valid() {
		panic("checkers: invalid piece code on board")
	}
	if moves := captures(b, x, y, p); len(moves) > 0 {
		return moves, true
	}
	return quietMoves(b, x, y, p), false
}

func captures(b Board, x, y int, p Piece) []Move {
	var moves []Move
	if !p.IsKing() {
		for _, d := range diagonals {
			x2, y2 := x+2*d[0], y+2*d[1]
			if !InBounds(x2, y2) || b[x2][y2] != Empty {
				continue
			}
			xb, yb := x+d[0], y+d[1]
			if mid := b[xb][yb]; mid == Empty || mid.Color() == p.Color() {
				continue
			}
			moves = append(moves, NewCapture(x, y, x2, y2, xb, yb))
		}
		return moves
	}
	for _, d := range diagonals {
		xb, yb := -1, -1
		for x2, y2 := x+d[0], y+d[1]; InBounds(x2, y2); x2, y2 = x2+d[0], y2+d[1] {
			if q := b[x2][y2]; q != Empty {
				// own piece, or a second piece after the jumped one, closes the ray
				if q.Color() == p.Color() || xb != -1 {
					break
				}
				xb, yb = x2, y2
				continue
			}
			if xb != -1 {
				moves = append(moves, NewCapture(x, y, x2, y2, xb, yb))
			}
		}
	}
	return moves
}

func quietMoves(b Board, x, y int, p Piece) []Move {
	var moves []Move
	if !p.IsKing() {
		x2 := x + 1
		if p.Color() == White {
			x2 = x - 1
		}
		for _, y2 := range [2]int{y - 1, y + 1} {
			if InBounds(x2, y2) && b[x2][y2] == Empty {
				moves = append(moves, NewMove(x, y, x2, y2))
			}
		}
		return moves
	}
	for _, d := range diagonals {
		for x2, y2 := x+d[0], y+d[1]; InBounds(x2, y2) && b[x2][y2] == Empty; x2, y2 = x2+d[0], y2+d[1] {
			moves = append(moves, NewMove(x, y, x2, y2))
		}
	}
	return moves
}
