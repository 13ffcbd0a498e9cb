package bots

import (
	"math"
	"testing"

	"checkersGo/checkers"
)

func board(t *testing.T, s string) checkers.Board {
	t.Helper()
	b, err := checkers.ParseBoard(s)
	if err != nil {
		t.Fatalf("parse board: %v", err)
	}
	return b
}

func TestEvaluateTerminalPositions(t *testing.T) {
	b := board(t, `
		........
		........
		........
		...W....
		........
		..w.....
		........
		........`)
	for _, mode := range []ScoringMode{ScoreNumber, ScoreNumberAndPotential} {
		e := DefaultEvaluator{Mode: mode}
		if got := e.Evaluate(b, checkers.White); got != Inf {
			t.Fatalf("%s: side with material against nothing should score Inf, got %f", mode, got)
		}
		if got := e.Evaluate(b, checkers.Black); got != 0 {
			t.Fatalf("%s: side without material should score 0, got %f", mode, got)
		}
	}
}

func TestEvaluateMaterialRatio(t *testing.T) {
	b := board(t, `
		........
		........
		....B...
		........
		........
		..w.....
		.w......
		........`)
	e := DefaultEvaluator{Mode: ScoreNumber}
	if got := e.Evaluate(b, checkers.White); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("two men against a king should score 2/4 for white, got %f", got)
	}
	if got := e.Evaluate(b, checkers.Black); math.Abs(got-2) > 1e-9 {
		t.Fatalf("a king against two men should score 4/2 for black, got %f", got)
	}
}

func TestEvaluatePotentialBonus(t *testing.T) {
	b := board(t, `
		.b......
		........
		........
		........
		........
		........
		w.......
		........`)
	plain := DefaultEvaluator{Mode: ScoreNumber}.Evaluate(b, checkers.White)
	if plain != 1 {
		t.Fatalf("equal men should score 1 without potential, got %f", plain)
	}
	// white man advanced one rank, black man none
	got := DefaultEvaluator{Mode: ScoreNumberAndPotential}.Evaluate(b, checkers.White)
	if math.Abs(got-1.05) > 1e-9 {
		t.Fatalf("expected 1.05 with potential, got %f", got)
	}

	kings := board(t, `
		.B......
		........
		........
		........
		........
		........
		W.......
		w.......`)
	got = DefaultEvaluator{Mode: ScoreNumberAndPotential}.Evaluate(kings, checkers.White)
	if math.Abs(got-6.0/5.0) > 1e-9 {
		t.Fatalf("kings weigh 5 with potential scoring, expected 1.2 got %f", got)
	}
}
