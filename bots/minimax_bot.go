package bots

import (
	"fmt"
	"log"
	"time"

	"checkersGo/checkers"
)

// Optimization levels. O0 searches the whole tree, the others prune.
const (
	OptimizationNone   = "O0"
	OptimizationPrune  = "O1"
	OptimizationStrict = "O2"
)

// MinimaxBot searches Depth plies with alpha-beta pruning. A ply is a full
// turn, so every hop of a capture chain belongs to the same ply.
type MinimaxBot struct {
	Depth        int
	Optimization string
	Evaluator    PositionEvaluator
	// Logger, when set, receives one line of statistics per search.
	Logger *log.Logger

	gen   *checkers.Generator
	nodes int
}

func NewMinimaxBot(depth int, gen *checkers.Generator, evaluator PositionEvaluator) *MinimaxBot {
	return &MinimaxBot{
		Depth:        depth,
		Optimization: OptimizationPrune,
		Evaluator:    evaluator,
		gen:          gen,
	}
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d)", b.Depth)
}

func (b *MinimaxBot) BestTurn(board checkers.Board, color checkers.Color) []checkers.Move {
	_, turn := b.Search(board, color)
	return turn
}

// Nodes returns the number of positions visited by the last search.
func (b *MinimaxBot) Nodes() int {
	return b.nodes
}

// Search returns the best turn for color and the score of the line it
// leads to. A nil turn means color cannot move and has lost.
func (b *MinimaxBot) Search(board checkers.Board, color checkers.Color) (float64, []checkers.Move) {
	start := time.Now()
	s := &search{
		gen:   b.gen,
		eval:  b.Evaluator,
		me:    color,
		depth: max(b.Depth, 1),
		prune: b.Optimization != OptimizationNone,
	}
	score, turn := s.firstBestTurn(board, -1, -1, -1)
	if turn == nil {
		score = 0
	}
	b.nodes = s.nodes

	if b.Logger != nil {
		b.Logger.Printf("%s: %v turn=%v score=%.3f nodes=%d time=%v",
			b.Name(), color, turn, score, s.nodes, time.Since(start))
	}
	return score, turn
}

type search struct {
	gen   *checkers.Generator
	eval  PositionEvaluator
	me    checkers.Color
	depth int
	prune bool
	nodes int
}

// firstBestTurn picks the bot's own turn. When (x, y) is set the turn is a
// capture chain in progress from that square.
func (s *search) firstBestTurn(board checkers.Board, x, y int, alpha float64) (float64, []checkers.Move) {
	s.nodes++
	var moves []checkers.Move
	var beats bool
	if x == -1 {
		moves, beats = s.gen.Turns(board, s.me)
	} else {
		moves, beats = s.gen.PieceTurns(board, x, y)
		if !beats {
			return s.rec(board, s.me.Other(), 1, alpha, Inf+1, -1, -1), nil
		}
	}

	best := -1.0
	var line []checkers.Move
	for _, m := range moves {
		next := board.Apply(m)
		var score float64
		var tail []checkers.Move
		if beats {
			score, tail = s.firstBestTurn(next, int(m.X2), int(m.Y2), max(alpha, best))
		} else {
			score = s.rec(next, s.me.Other(), 1, max(alpha, best), Inf+1, -1, -1)
		}
		// strict comparison keeps the first of equal moves in shuffled order
		if score > best {
			best = score
			line = append([]checkers.Move{m}, tail...)
		}
	}
	return best, line
}

// rec returns the minimax value, from the bot's perspective, of color to move
// at the given ply. (x, y) continues a capture chain of that color.
func (s *search) rec(board checkers.Board, color checkers.Color, ply int, alpha, beta float64, x, y int) float64 {
	s.nodes++
	if ply >= s.depth {
		return s.eval.Evaluate(board, s.me)
	}

	var moves []checkers.Move
	var beats bool
	if x == -1 {
		moves, beats = s.gen.Turns(board, color)
	} else {
		moves, beats = s.gen.PieceTurns(board, x, y)
		if !beats {
			return s.rec(board, color.Other(), ply+1, alpha, beta, -1, -1)
		}
	}

	// a side without a legal turn has lost
	if len(moves) == 0 {
		if color == s.me {
			return 0
		}
		return Inf
	}

	maximizing := color == s.me
	best := Inf + 1
	if maximizing {
		best = -1
	}
	for _, m := range moves {
		next := board.Apply(m)
		var score float64
		if beats {
			score = s.rec(next, color, ply, alpha, beta, int(m.X2), int(m.Y2))
		} else {
			score = s.rec(next, color.Other(), ply+1, alpha, beta, -1, -1)
		}
		if maximizing {
			best = max(best, score)
			alpha = max(alpha, best)
		} else {
			best = min(best, score)
			beta = min(beta, best)
		}
		if s.prune && alpha >= beta {
			break
		}
	}
	return best
}
