package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"sync/atomic"
	"time"

	"checkersGo/checkers"
	"checkersGo/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	screenWidth  int
	screenHeight int
	squareSize   int
)

var (
	lightSquare  = color.RGBA{240, 217, 181, 255}
	darkSquare   = color.RGBA{181, 136, 99, 255}
	targetSquare = color.RGBA{120, 170, 90, 255}
	whitePiece   = color.RGBA{245, 245, 235, 255}
	blackPiece   = color.RGBA{40, 40, 40, 255}
	kingRing     = color.RGBA{212, 175, 55, 255}
)

type Game struct {
	cfg          *game.Config
	logger       *log.Logger
	match        *game.Game
	selectedX    int
	selectedY    int
	dragging     bool
	dragX, dragY int
	playerColor  checkers.Color
	gameStarted  bool
	botRunning   atomic.Bool
	boardOffsetX int
	boardOffsetY int
	message      string
}

func NewGame(cfg *game.Config, logger *log.Logger) *Game {
	// Получаем размеры экрана
	screenWidth, screenHeight = ebiten.ScreenSizeInFullscreen()

	// Вычисляем размер клетки (оставляем место для информации сверху)
	boardHeight := screenHeight - 80
	squareSize = boardHeight / checkers.Size
	if screenWidth/checkers.Size < squareSize {
		squareSize = screenWidth / checkers.Size
	}

	// Центрируем доску
	boardWidth := squareSize * checkers.Size
	return &Game{
		cfg:          cfg,
		logger:       logger,
		boardOffsetX: (screenWidth - boardWidth) / 2,
		boardOffsetY: (screenHeight - boardHeight) / 2,
	}
}

func (g *Game) Update() error {
	if !g.gameStarted {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			btnWidth := 200
			btnHeight := 60
			btnY := screenHeight/2 + 100

			if y > btnY && y < btnY+btnHeight {
				if x > screenWidth/2-btnWidth-20 && x < screenWidth/2-20 {
					return g.startGame(checkers.White)
				} else if x > screenWidth/2+20 && x < screenWidth/2+20+btnWidth {
					return g.startGame(checkers.Black)
				}
			}
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if err := g.match.Undo(); err != nil {
			g.message = fmt.Sprintf("Нельзя отменить ход: %v", err)
		}
		g.dragging = false
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		// Новая партия с перечитанными настройками
		if err := g.cfg.Reload(); err != nil {
			return err
		}
		g.gameStarted = false
		g.dragging = false
		return nil
	}

	if g.match.Status() != game.StatusRunning {
		return nil
	}

	if g.match.IsBot(g.match.ToMove()) {
		if g.botRunning.CompareAndSwap(false, true) {
			go g.makeBotMove()
		}
		return nil
	}

	// Обработка хода игрока
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if x, y, ok := g.squareAtCursor(); ok && len(g.match.LegalMovesFrom(x, y)) > 0 {
			g.selectedX, g.selectedY = x, y
			g.dragging = true
		}
	}
	if g.dragging {
		g.dragX, g.dragY = ebiten.CursorPosition()
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.dragging {
		if x, y, ok := g.squareAtCursor(); ok && (x != g.selectedX || y != g.selectedY) {
			if err := g.match.Play(checkers.NewMove(g.selectedX, g.selectedY, x, y)); err != nil {
				g.message = err.Error()
			} else {
				g.message = ""
			}
		}
		g.dragging = false
	}

	return nil
}

func (g *Game) startGame(playerColor checkers.Color) error {
	g.playerColor = playerColor
	if err := g.cfg.Set("Bot", "IsWhiteBot", playerColor != checkers.White); err != nil {
		return err
	}
	if err := g.cfg.Set("Bot", "IsBlackBot", playerColor != checkers.Black); err != nil {
		return err
	}
	match, err := game.New(g.cfg, g.logger)
	if err != nil {
		return err
	}
	g.match = match
	g.message = ""
	g.gameStarted = true
	return nil
}

func (g *Game) makeBotMove() {
	defer g.botRunning.Store(false)

	// Небольшая задержка, чтобы ход бота был заметен
	time.Sleep(time.Duration(g.cfg.Int("Bot", "BotDelayMS")) * time.Millisecond)
	if _, err := g.match.Tick(); err != nil {
		log.Printf("Bot move error: %v", err)
	}
}

func (g *Game) squareAtCursor() (int, int, bool) {
	x, y := ebiten.CursorPosition()
	x -= g.boardOffsetX
	y -= g.boardOffsetY
	if x < 0 || x >= squareSize*checkers.Size || y < 0 || y >= squareSize*checkers.Size {
		return 0, 0, false
	}
	return y / squareSize, x / squareSize, true
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.gameStarted {
		// Экран выбора цвета
		ebitenutil.DebugPrintAt(screen, "Шашки на Go", screenWidth/2-40, screenHeight/2-50)
		ebitenutil.DebugPrintAt(screen, "Выберите цвет шашек:", screenWidth/2-100, screenHeight/2)

		// Кнопка "Белые"
		whiteBtn := ebiten.NewImage(200, 60)
		whiteBtn.Fill(color.RGBA{200, 200, 200, 255})
		ebitenutil.DebugPrintAt(whiteBtn, "Играть белыми", 50, 20)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screenWidth/2-200-20), float64(screenHeight/2+100))
		screen.DrawImage(whiteBtn, op)

		// Кнопка "Черные"
		blackBtn := ebiten.NewImage(200, 60)
		blackBtn.Fill(color.RGBA{50, 50, 50, 255})
		ebitenutil.DebugPrintAt(blackBtn, "Играть черными", 50, 20)
		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screenWidth/2+20), float64(screenHeight/2+100))
		screen.DrawImage(blackBtn, op)
		return
	}

	targets := map[[2]int]bool{}
	if g.dragging {
		for _, m := range g.match.LegalMovesFrom(g.selectedX, g.selectedY) {
			targets[[2]int{int(m.X2), int(m.Y2)}] = true
		}
	}

	// Рисуем доску
	for x := 0; x < checkers.Size; x++ {
		for y := 0; y < checkers.Size; y++ {
			clr := lightSquare
			if (x+y)%2 == 1 {
				clr = darkSquare
			}
			if targets[[2]int{x, y}] {
				clr = targetSquare
			}
			vector.DrawFilledRect(screen,
				float32(y*squareSize+g.boardOffsetX), float32(x*squareSize+g.boardOffsetY),
				float32(squareSize), float32(squareSize), clr, false)
		}
	}

	// Рисуем шашки
	board := g.match.Board()
	for x := 0; x < checkers.Size; x++ {
		for y := 0; y < checkers.Size; y++ {
			p := board[x][y]
			if p == checkers.Empty || (g.dragging && x == g.selectedX && y == g.selectedY) {
				continue
			}
			g.drawPiece(screen, p,
				float32(y*squareSize+g.boardOffsetX)+float32(squareSize)/2,
				float32(x*squareSize+g.boardOffsetY)+float32(squareSize)/2)
		}
	}

	// Рисуем перетаскиваемую шашку
	if g.dragging {
		g.drawPiece(screen, board[g.selectedX][g.selectedY], float32(g.dragX), float32(g.dragY))
	}

	// Статус игры
	status := "Ваш ход"
	toMove := g.match.ToMove()
	if g.match.Thinking() {
		status = "Бот думает..."
	} else if g.match.IsBot(toMove) {
		status = "Ход бота"
	} else if _, _, ok := g.match.Chain(); ok {
		status = "Продолжайте взятие"
	}
	ebitenutil.DebugPrintAt(screen, status, 20, 20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Ход %d, бот: %s", g.match.TurnNumber()+1, g.match.BotName(g.playerColor.Other())), 20, 40)

	if s := g.match.Status(); s != game.StatusRunning {
		ebitenutil.DebugPrintAt(screen, "Результат: "+s.String()+" (R - новая партия)", screenWidth/2-100, 20)
	}
	if g.message != "" {
		ebitenutil.DebugPrintAt(screen, g.message, 20, screenHeight-40)
	}
}

func (g *Game) drawPiece(screen *ebiten.Image, p checkers.Piece, cx, cy float32) {
	r := float32(squareSize) * 0.4
	clr := whitePiece
	if p.Color() == checkers.Black {
		clr = blackPiece
	}
	vector.DrawFilledCircle(screen, cx, cy, r, clr, true)
	if p.IsKing() {
		vector.StrokeCircle(screen, cx, cy, r*0.6, 4, kingRing, true)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

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

	g := NewGame(cfg, logger)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Шашки на Go")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
