package game

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"checkersGo/bots"
	"checkersGo/checkers"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrNotYourTurn = errors.New("not your turn")
	ErrGameOver    = errors.New("game over")
)

type Status int

const (
	StatusRunning Status = iota
	StatusWhiteWon
	StatusBlackWon
	StatusDraw
)

func (s Status) String() string {
	switch s {
	case StatusWhiteWon:
		return "white won"
	case StatusBlackWon:
		return "black won"
	case StatusDraw:
		return "draw"
	default:
		return "running"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Turn is one side's complete turn as played on the live board.
type Turn struct {
	Color checkers.Color  `json:"color"`
	Moves []checkers.Move `json:"moves"`
	Bot   bool            `json:"bot"`
}

// Game runs a checkers game between humans and bots. It is safe for use by
// a front end goroutine and a bot goroutine at the same time.
type Game struct {
	mu       sync.Mutex
	cfg      *Config
	logger   *log.Logger
	board    *Board
	gen      *checkers.Generator
	bots     [2]bots.CheckersBot
	turnNum  int
	maxTurns int
	status   Status
	chain    []checkers.Move
	turns    []Turn
	thinking bool
	epoch    int
	start    time.Time
}

// New starts a game from the starting position. A nil logger falls back to
// the standard logger.
func New(cfg *Config, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{cfg: cfg, logger: logger}
	g.reset()
	return g, nil
}

func (g *Game) reset() {
	noRandom := g.cfg.Bool("Bot", "NoRandom")
	g.board = NewBoard()
	g.gen = checkers.NewGenerator(noRandom)
	for _, color := range []checkers.Color{checkers.White, checkers.Black} {
		bot := newBot(g.cfg, color, checkers.NewGenerator(noRandom))
		if mm, ok := bot.(*bots.MinimaxBot); ok && g.cfg.Bool("Bot", "LogSearch") {
			mm.Logger = g.logger
		}
		g.bots[color] = bot
	}
	g.turnNum = 0
	g.maxTurns = g.cfg.Int("Game", "MaxNumTurns")
	g.status = StatusRunning
	g.chain = nil
	g.turns = nil
	g.thinking = false
	g.epoch++
	g.start = time.Now()
}

// Restart reloads the configuration and starts a new game.
func (g *Game) Restart() error {
	if err := g.cfg.Reload(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset()
	return nil
}

func (g *Game) toMove() checkers.Color {
	return checkers.Color(g.turnNum % 2)
}

func (g *Game) ToMove() checkers.Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.toMove()
}

func (g *Game) Board() checkers.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Grid()
}

func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

func (g *Game) TurnNumber() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turnNum
}

func (g *Game) Turns() []Turn {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Turn(nil), g.turns...)
}

func (g *Game) Thinking() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.thinking
}

func (g *Game) IsBot(color checkers.Color) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.bots[color] != nil
}

func (g *Game) BotName(color checkers.Color) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.bots[color] == nil {
		return "Human"
	}
	return g.bots[color].Name()
}

// Chain returns the square a capture chain must continue from.
func (g *Game) Chain() (x, y int, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.chain) == 0 {
		return 0, 0, false
	}
	last := g.chain[len(g.chain)-1]
	return int(last.X2), int(last.Y2), true
}

// LegalMoves returns the moves the side to move may play now. During a
// capture chain only continuations of the chain are legal.
func (g *Game) LegalMoves() ([]checkers.Move, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.legalMoves()
}

func (g *Game) legalMoves() ([]checkers.Move, bool) {
	if g.status != StatusRunning {
		return nil, false
	}
	if len(g.chain) > 0 {
		last := g.chain[len(g.chain)-1]
		return g.gen.PieceTurns(g.board.Grid(), int(last.X2), int(last.Y2))
	}
	return g.gen.Turns(g.board.Grid(), g.toMove())
}

// LegalMovesFrom returns the legal moves of the piece on (x, y), honouring
// mandatory captures for the whole side.
func (g *Game) LegalMovesFrom(x, y int) []checkers.Move {
	moves, _ := g.LegalMoves()
	var res []checkers.Move
	for _, m := range moves {
		if int(m.X) == x && int(m.Y) == y {
			res = append(res, m)
		}
	}
	return res
}

// Play applies one hop for a human player. Captured squares are filled in
// from the legal move list, so m only needs its endpoints.
func (g *Game) Play(m checkers.Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.status != StatusRunning {
		return ErrGameOver
	}
	if g.bots[g.toMove()] != nil || g.thinking {
		return ErrNotYourTurn
	}
	return g.playHop(m, false)
}

func (g *Game) playHop(m checkers.Move, bot bool) error {
	legal, _ := g.legalMoves()
	move, ok := checkers.Find(legal, m)
	if !ok {
		return fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	if len(g.chain) == 0 {
		g.board.BeginTurn()
	}
	g.board.Move(move)
	g.chain = append(g.chain, move)
	if move.IsCapture() {
		if _, beats := g.gen.PieceTurns(g.board.Grid(), int(move.X2), int(move.Y2)); beats {
			return nil
		}
	}
	g.endTurn(bot)
	return nil
}

func (g *Game) endTurn(bot bool) {
	g.turns = append(g.turns, Turn{Color: g.toMove(), Moves: g.chain, Bot: bot})
	g.chain = nil
	g.turnNum++
	switch {
	case g.turnNum >= g.maxTurns:
		g.finish(StatusDraw)
	default:
		if moves, _ := g.gen.Turns(g.board.Grid(), g.toMove()); len(moves) == 0 {
			g.finish(winnerStatus(g.toMove().Other()))
		}
	}
}

func winnerStatus(c checkers.Color) Status {
	if c == checkers.White {
		return StatusWhiteWon
	}
	return StatusBlackWon
}

func (g *Game) finish(status Status) {
	g.status = status
	g.logger.Printf("Game time: %d millisec", time.Since(g.start).Milliseconds())
}

// Tick lets a bot play its whole turn when a bot is to move. The search runs
// without holding the game lock; its result is dropped if the game was
// restarted meanwhile.
func (g *Game) Tick() (bool, error) {
	g.mu.Lock()
	if g.status != StatusRunning || g.thinking || g.bots[g.toMove()] == nil {
		g.mu.Unlock()
		return false, nil
	}
	color := g.toMove()
	bot := g.bots[color]
	grid := g.board.Grid()
	epoch := g.epoch
	g.thinking = true
	g.mu.Unlock()

	turn := bot.BestTurn(grid, color)

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.epoch != epoch {
		return false, nil
	}
	g.thinking = false
	if len(turn) == 0 {
		g.finish(winnerStatus(color.Other()))
		return true, nil
	}
	for _, m := range turn {
		if err := g.playHop(m, true); err != nil {
			return false, fmt.Errorf("%s: %w", bot.Name(), err)
		}
	}
	if len(g.chain) > 0 {
		return false, fmt.Errorf("%s: %w: capture chain left unfinished", bot.Name(), ErrIllegalMove)
	}
	return true, nil
}

// Undo takes back the current partial turn, or else the last human turn
// together with any bot replies played after it.
func (g *Game) Undo() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.thinking || (g.bots[checkers.White] != nil && g.bots[checkers.Black] != nil) {
		return ErrNotYourTurn
	}
	if len(g.chain) > 0 {
		if err := g.board.Rollback(1); err != nil {
			return err
		}
		g.chain = nil
		return nil
	}
	n := 1
	for g.turnNum-n > 0 && g.bots[checkers.Color((g.turnNum-n)%2)] != nil {
		n++
	}
	if g.turnNum < n || g.bots[checkers.Color((g.turnNum-n)%2)] != nil {
		return ErrNoHistory
	}
	if err := g.board.Rollback(n); err != nil {
		return err
	}
	g.turnNum -= n
	g.turns = g.turns[:len(g.turns)-n]
	g.status = StatusRunning
	return nil
}
