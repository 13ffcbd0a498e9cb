package game

import (
	"errors"

	"checkersGo/checkers"
)

var ErrNoHistory = errors.New("no turn to take back")

// Board is the live board. It keeps the position at the start of every
// turn so that turns can be taken back.
type Board struct {
	grid    checkers.Board
	history []checkers.Board
}

func NewBoard() *Board {
	return &Board{grid: checkers.NewBoard()}
}

func (b *Board) Grid() checkers.Board {
	return b.grid
}

// BeginTurn records the current position as the start of a turn.
func (b *Board) BeginTurn() {
	b.history = append(b.history, b.grid)
}

// Move applies one hop to the live board.
func (b *Board) Move(m checkers.Move) {
	b.grid = b.grid.Apply(m)
}

// Rollback restores the position from n turn starts ago.
func (b *Board) Rollback(n int) error {
	if n <= 0 || n > len(b.history) {
		return ErrNoHistory
	}
	b.grid = b.history[len(b.history)-n]
	b.history = b.history[:len(b.history)-n]
	return nil
}
