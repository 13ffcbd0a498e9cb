// Command selfplay runs bot-against-bot games and stores each game as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"sync"
	"time"

	"checkersGo/checkers"
	"checkersGo/game"

	"golang.org/x/sync/errgroup"
)

type battleResult struct {
	Game      int         `json:"game"`
	White     string      `json:"white"`
	Black     string      `json:"black"`
	Result    game.Status `json:"result"`
	Turns     []game.Turn `json:"turns"`
	ElapsedMs int64       `json:"elapsed_ms"`
}

// findMaxSequenceNumber returns the highest NNNNN among prefix_NNNNN.json files in dir.
func findMaxSequenceNumber(dir, prefix string) (int, error) {
	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	pattern := regexp.MustCompile(fmt.Sprintf(`^%s_(\d{5})\.json$`, regexp.QuoteMeta(prefix)))
	maxSeq := 0
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		matches := pattern.FindStringSubmatch(file.Name())
		if len(matches) != 2 {
			continue
		}
		seq, err := strconv.Atoi(matches[1])
		if err != nil {
			continue
		}
		maxSeq = max(maxSeq, seq)
	}
	return maxSeq, nil
}

func playGame(ctx context.Context, cfg *game.Config, logger *log.Logger, index int) (battleResult, error) {
	start := time.Now()
	match, err := game.New(cfg, logger)
	if err != nil {
		return battleResult{}, err
	}
	for match.Status() == game.StatusRunning {
		if err := ctx.Err(); err != nil {
			return battleResult{}, err
		}
		if _, err := match.Tick(); err != nil {
			return battleResult{}, fmt.Errorf("game %d: %w", index, err)
		}
	}
	return battleResult{
		Game:      index,
		White:     match.BotName(checkers.White),
		Black:     match.BotName(checkers.Black),
		Result:    match.Status(),
		Turns:     match.Turns(),
		ElapsedMs: time.Since(start).Milliseconds(),
	}, nil
}

func writeResult(path string, result battleResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

func main() {
	configPath := flag.String("config", "settings.json", "path to settings file")
	outputDir := flag.String("output", "output", "output directory")
	outputPrefix := flag.String("output-prefix", "", "output file name prefix")
	noOutput := flag.Bool("no-output", false, "do not write result files")
	games := flag.Int("games", 1, "number of games to play")
	numWorkers := flag.Int("workers", runtime.NumCPU(), "number of games played at once")
	whiteLevel := flag.Int("white-level", 0, "white search depth, 0 keeps the configured one")
	blackLevel := flag.Int("black-level", 0, "black search depth, 0 keeps the configured one")
	whiteBot := flag.String("white-bot", "", "white bot type: Minimax, Random or Newborn, empty keeps the configured one")
	blackBot := flag.String("black-bot", "", "black bot type: Minimax, Random or Newborn, empty keeps the configured one")
	flag.Parse()

	if !*noOutput && *outputPrefix == "" {
		fmt.Fprintln(os.Stderr, "error: --output-prefix is required")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := game.LoadConfigOrDefault(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	overrides := map[string]any{"IsWhiteBot": true, "IsBlackBot": true}
	if *whiteLevel > 0 {
		overrides["WhiteBotLevel"] = *whiteLevel
	}
	if *blackLevel > 0 {
		overrides["BlackBotLevel"] = *blackLevel
	}
	if *whiteBot != "" {
		overrides["WhiteBotType"] = *whiteBot
	}
	if *blackBot != "" {
		overrides["BlackBotType"] = *blackBot
	}
	for key, value := range overrides {
		if err := cfg.Set("Bot", key, value); err != nil {
			log.Fatal(err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, closer, err := game.OpenLog(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	startSeq := 1
	if !*noOutput {
		if err := os.MkdirAll(*outputDir, 0755); err != nil {
			log.Fatalf("create output directory: %v", err)
		}
		maxSeq, err := findMaxSequenceNumber(*outputDir, *outputPrefix)
		if err != nil {
			log.Printf("warning: scanning existing results: %v", err)
		}
		startSeq = maxSeq + 1
		log.Printf("numbering results from %05d", startSeq)
	}
	log.Printf("playing %d games on %d workers", *games, *numWorkers)

	var mu sync.Mutex
	tally := map[game.Status]int{}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*numWorkers, 1))
	for i := 0; i < *games; i++ {
		i := i
		g.Go(func() error {
			result, err := playGame(ctx, cfg, logger, i)
			if err != nil {
				return err
			}
			if !*noOutput {
				path := filepath.Join(*outputDir, fmt.Sprintf("%s_%05d.json", *outputPrefix, startSeq+i))
				if err := writeResult(path, result); err != nil {
					return err
				}
			}
			mu.Lock()
			tally[result.Result]++
			mu.Unlock()
			log.Printf("game %d finished: %v after %d turns", i, result.Result, len(result.Turns))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("white won: %d, black won: %d, draws: %d\n",
		tally[game.StatusWhiteWon], tally[game.StatusBlackWon], tally[game.StatusDraw])
}
