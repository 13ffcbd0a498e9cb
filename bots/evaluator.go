package bots

import "checkersGo/checkers"

// Inf stands for a won position. It is finite so that Inf+1 is still a
// usable search bound.
const Inf = 1e9

type ScoringMode string

const (
	ScoreNumber             ScoringMode = "Number"
	ScoreNumberAndPotential ScoringMode = "NumberAndPotential"
)

const (
	KingWeight          = 4
	PotentialKingWeight = 5
	// PotentialPerRank is the bonus a man earns for each rank it has advanced.
	PotentialPerRank = 0.05
)

// DefaultEvaluator scores a position as own material over opponent material.
// Values above 1 favour the perspective side, 0 is lost and Inf is won.
type DefaultEvaluator struct {
	Mode ScoringMode
}

func (e DefaultEvaluator) Evaluate(board checkers.Board, perspective checkers.Color) float64 {
	var white, whiteKings, black, blackKings float64
	potential := e.Mode == ScoreNumberAndPotential

	for x := 0; x < checkers.Size; x++ {
		for y := 0; y < checkers.Size; y++ {
			switch board[x][y] {
			case checkers.WhiteMan:
				white++
				if potential {
					white += PotentialPerRank * float64(checkers.Size-1-x)
				}
			case checkers.BlackMan:
				black++
				if potential {
					black += PotentialPerRank * float64(x)
				}
			case checkers.WhiteKing:
				whiteKings++
			case checkers.BlackKing:
				blackKings++
			}
		}
	}

	own, ownKings, opp, oppKings := black, blackKings, white, whiteKings
	if perspective == checkers.White {
		own, ownKings, opp, oppKings = white, whiteKings, black, blackKings
	}

	if opp+oppKings == 0 {
		return Inf
	}
	if own+ownKings == 0 {
		return 0
	}
	k := e.kingWeight()
	return (own + ownKings*k) / (opp + oppKings*k)
}

func (e DefaultEvaluator) kingWeight() float64 {
	if e.Mode == ScoreNumberAndPotential {
		return PotentialKingWeight
	}
	return KingWeight
}
