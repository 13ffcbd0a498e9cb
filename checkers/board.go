package checkers

import (
	"fmt"
	"strings"
)

const Size = 8

// Board is an 8x8 matrix indexed as [x][y], x being the row.
// Row 0 is where white men promote, row 7 is where black men promote.
// Board is a value: assigning it copies every square.
type Board [Size][Size]Piece

// NewBoard returns the starting position.
func NewBoard() Board {
	var b Board
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if (x+y)%2 == 0 {
				continue
			}
			switch {
			case x < 3:
				b[x][y] = BlackMan
			case x > 4:
				b[x][y] = WhiteMan
			}
		}
	}
	return b
}

// ParseBoard reads eight rows of Piece.String() symbols, row 0 first.
// Blank lines and spaces are ignored.
func ParseBoard(s string) (Board, error) {
	var b Board
	x := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}
		if x >= Size {
			return b, fmt.Errorf("too many rows")
		}
		if len(line) != Size {
			return b, fmt.Errorf("row %d: want %d squares, got %d", x, Size, len(line))
		}
		for y, r := range line {
			switch r {
			case '.':
				b[x][y] = Empty
			case 'w':
				b[x][y] = WhiteMan
			case 'b':
				b[x][y] = BlackMan
			case 'W':
				b[x][y] = WhiteKing
			case 'B':
				b[x][y] = BlackKing
			default:
				return b, fmt.Errorf("row %d: unknown piece %q", x, r)
			}
		}
		x++
	}
	if x != Size {
		return b, fmt.Errorf("want %d rows, got %d", Size, x)
	}
	return b, nil
}

func InBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// At returns the piece on (x, y). It panics on coordinates off the board.
func (b Board) At(x, y int) Piece {
	mustInBounds(x, y)
	return b[x][y]
}

// Apply plays m on a copy of the board and returns the copy:
// the captured piece is removed, a man reaching the far rank is promoted,
// and the piece is relocated. The receiver is never modified.
func (b Board) Apply(m Move) Board {
	mustInBounds(int(m.X), int(m.Y))
	mustInBounds(int(m.X2), int(m.Y2))
	if m.IsCapture() {
		mustInBounds(int(m.Xb), int(m.Yb))
		b[m.Xb][m.Yb] = Empty
	}
	p := b[m.X][m.Y]
	if !p.valid() || p == Empty {
		panic(fmt.Sprintf("checkers: move %v from square holding %v", m, p))
	}
	if (p == WhiteMan && m.X2 == 0) || (p == BlackMan && m.X2 == Size-1) {
		p = p.Promoted()
	}
	b[m.X2][m.Y2] = p
	b[m.X][m.Y] = Empty
	return b
}

// Count returns the number of men and kings of color c.
func (b Board) Count(c Color) (men, kings int) {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			p := b[x][y]
			if !p.Belongs(c) {
				continue
			}
			if p.IsKing() {
				kings++
			} else {
				men++
			}
		}
	}
	return men, kings
}

func (b Board) String() string {
	var sb strings.Builder
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			sb.WriteString(b[x][y].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func mustInBounds(x, y int) {
	if !InBounds(x, y) {
		panic(fmt.Sprintf("checkers: square (%d,%d) off the board", x, y))
	}
}
