// Command tui plays checkers in the terminal.
//
// Arrow keys move the cursor, Enter picks a piece and then its destination,
// u takes a turn back, r starts a new game and q quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"checkersGo/checkers"
	"checkersGo/game"

	"github.com/gdamore/tcell/v2"
)

type ui struct {
	s          tcell.Screen
	cfg        *game.Config
	match      *game.Game
	cx, cy     int
	selected   bool
	sx, sy     int
	message    string
	botRunning atomic.Bool
}

var (
	lightStyle    = tcell.StyleDefault.Background(tcell.ColorTan).Foreground(tcell.ColorBlack)
	darkStyle     = tcell.StyleDefault.Background(tcell.ColorSaddleBrown).Foreground(tcell.ColorWhite)
	cursorStyle   = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	selectedStyle = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	textStyle     = tcell.StyleDefault
)

func main() {
	configPath := flag.String("config", "settings.json", "path to settings file")
	flag.Parse()

	cfg, err := game.LoadConfigOrDefault(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	logger, closer, err := game.OpenLog(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	match, err := game.New(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := s.Init(); err != nil {
		log.Fatal(err)
	}
	defer s.Fini()

	u := &ui{s: s, cfg: cfg, match: match, cx: 5, cy: 0}
	u.run()
}

func (u *ui) run() {
	for {
		u.maybeStartBot()
		u.draw()
		switch ev := u.s.PollEvent().(type) {
		case *tcell.EventResize:
			u.s.Sync()
		case *tcell.EventInterrupt:
			if err, ok := ev.Data().(error); ok {
				u.message = err.Error()
			}
		case *tcell.EventKey:
			if !u.handleKey(ev) {
				return
			}
		}
	}
}

func (u *ui) maybeStartBot() {
	if u.match.Status() != game.StatusRunning || !u.match.IsBot(u.match.ToMove()) {
		return
	}
	if !u.botRunning.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer u.botRunning.Store(false)
		time.Sleep(time.Duration(u.cfg.Int("Bot", "BotDelayMS")) * time.Millisecond)
		_, err := u.match.Tick()
		// wake the event loop so the board is redrawn
		_ = u.s.PostEvent(tcell.NewEventInterrupt(err))
	}()
}

func (u *ui) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		u.cx = max(u.cx-1, 0)
	case tcell.KeyDown:
		u.cx = min(u.cx+1, checkers.Size-1)
	case tcell.KeyLeft:
		u.cy = max(u.cy-1, 0)
	case tcell.KeyRight:
		u.cy = min(u.cy+1, checkers.Size-1)
	case tcell.KeyEnter:
		u.pick()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			u.pick()
		case 'u':
			u.selected = false
			if err := u.match.Undo(); err != nil {
				u.message = err.Error()
			}
		case 'r':
			u.selected = false
			if err := u.match.Restart(); err != nil {
				u.message = err.Error()
			}
		}
	}
	return true
}

func (u *ui) pick() {
	if !u.selected {
		if len(u.match.LegalMovesFrom(u.cx, u.cy)) == 0 {
			u.message = "nothing to move there"
			return
		}
		u.selected, u.sx, u.sy = true, u.cx, u.cy
		u.message = ""
		return
	}
	u.selected = false
	if u.cx == u.sx && u.cy == u.sy {
		return
	}
	if err := u.match.Play(checkers.NewMove(u.sx, u.sy, u.cx, u.cy)); err != nil {
		u.message = err.Error()
		return
	}
	u.message = ""
	// keep the capturing piece selected while its chain goes on
	if x, y, ok := u.match.Chain(); ok {
		u.selected, u.sx, u.sy = true, x, y
	}
}

func (u *ui) draw() {
	u.s.Clear()
	board := u.match.Board()
	for x := 0; x < checkers.Size; x++ {
		u.text(0, x+1, fmt.Sprintf("%d", x))
		for y := 0; y < checkers.Size; y++ {
			style := lightStyle
			if (x+y)%2 == 1 {
				style = darkStyle
			}
			if u.selected && x == u.sx && y == u.sy {
				style = selectedStyle
			}
			if x == u.cx && y == u.cy {
				style = cursorStyle
			}
			symbol := ' '
			if p := board[x][y]; p != checkers.Empty {
				symbol = []rune(p.String())[0]
			}
			col := 2 + y*3
			u.s.SetContent(col, x+1, ' ', nil, style)
			u.s.SetContent(col+1, x+1, symbol, nil, style)
			u.s.SetContent(col+2, x+1, ' ', nil, style)
		}
	}
	for y := 0; y < checkers.Size; y++ {
		u.text(3+y*3, 0, fmt.Sprintf("%d", y))
	}

	status := fmt.Sprintf("turn %d, %v to move", u.match.TurnNumber()+1, u.match.ToMove())
	if u.match.Thinking() {
		status += " (thinking)"
	}
	if s := u.match.Status(); s != game.StatusRunning {
		status = "result: " + s.String() + ", r for a new game"
	}
	u.text(0, checkers.Size+2, status)
	u.text(0, checkers.Size+3, fmt.Sprintf("white: %s, black: %s",
		u.match.BotName(checkers.White), u.match.BotName(checkers.Black)))
	u.text(0, checkers.Size+4, u.message)
	u.s.Show()
}

func (u *ui) text(x, y int, s string) {
	for i, r := range []rune(s) {
		u.s.SetContent(x+i, y, r, nil, textStyle)
	}
}
