package bots

import (
	"math/rand"

	"checkersGo/checkers"
)

// RandomBot plays a random legal turn.
type RandomBot struct {
	gen *checkers.Generator
	rng *rand.Rand
}

func NewRandomBot(gen *checkers.Generator, seed int64) *RandomBot {
	return &RandomBot{gen: gen, rng: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) BestTurn(board checkers.Board, color checkers.Color) []checkers.Move {
	moves, _ := b.gen.Turns(board, color)
	if len(moves) == 0 {
		return nil
	}
	return completeTurn(b.gen, board, b.pick(moves), b.pick)
}

func (b *RandomBot) pick(moves []checkers.Move) checkers.Move {
	return moves[b.rng.Intn(len(moves))]
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
