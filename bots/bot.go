// bot.go
package bots

import "checkersGo/checkers"

// CheckersBot is implemented by every computer opponent.
// BestTurn returns the full turn, every hop of a capture chain included,
// or nil when color has no legal move.
type CheckersBot interface {
	BestTurn(board checkers.Board, color checkers.Color) []checkers.Move
	Name() string
}

// PositionEvaluator scores a board from one side's point of view.
type PositionEvaluator interface {
	Evaluate(board checkers.Board, perspective checkers.Color) float64
}

// completeTurn extends first with the hops of its capture chain, letting
// pick choose among the continuations from each landing square.
func completeTurn(gen *checkers.Generator, board checkers.Board, first checkers.Move, pick func([]checkers.Move) checkers.Move) []checkers.Move {
	turn := []checkers.Move{first}
	if !first.IsCapture() {
		return turn
	}
	m := first
	for {
		board = board.Apply(m)
		next, beats := gen.PieceTurns(board, int(m.X2), int(m.Y2))
		if !beats {
			return turn
		}
		m = pick(next)
		turn = append(turn, m)
	}
}
