package checkers

import "fmt"

// Color is the side a piece belongs to. White moves first.
type Color int

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	return 1 - c
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Piece is the code stored in a board square.
type Piece int8

const (
	Empty Piece = iota
	WhiteMan
	BlackMan
	WhiteKing
	BlackKing
)

// Color reports the owner of a non-empty piece: odd codes are white.
func (p Piece) Color() Color {
	if p%2 == 1 {
		return White
	}
	return Black
}

func (p Piece) IsKing() bool {
	return p == WhiteKing || p == BlackKing
}

func (p Piece) Belongs(c Color) bool {
	return p != Empty && p.Color() == c
}

// Promoted returns the king code for a man, and the piece itself otherwise.
func (p Piece) Promoted() Piece {
	if p == WhiteMan || p == BlackMan {
		return p + 2
	}
	return p
}

func (p Piece) valid() bool {
	return p >= Empty && p <= BlackKing
}

func (p Piece) String() string {
	switch p {
	case Empty:
		return "."
	case WhiteMan:
		return "w"
	case BlackMan:
		return "b"
	case WhiteKing:
		return "W"
	case BlackKing:
		return "B"
	default:
		return fmt.Sprintf("?%d", int8(p))
	}
}
