package bots

import "checkersGo/checkers"

// NewbornBot plays the first legal turn the generator offers.
type NewbornBot struct {
	gen *checkers.Generator
}

func NewNewbornBot(gen *checkers.Generator) *NewbornBot {
	return &NewbornBot{gen: gen}
}

func (b *NewbornBot) BestTurn(board checkers.Board, color checkers.Color) []checkers.Move {
	moves, _ := b.gen.Turns(board, color)
	if len(moves) == 0 {
		return nil
	}
	return completeTurn(b.gen, board, moves[0], func(next []checkers.Move) checkers.Move {
		return next[0]
	})
}

func (b *NewbornBot) Name() string {
	return "Newborn"
}
