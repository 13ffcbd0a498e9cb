package game

import (
	"time"

	"checkersGo/bots"
	"checkersGo/checkers"
)

const (
	BotMinimax = "Minimax"
	BotRandom  = "Random"
	BotNewborn = "Newborn"
)

type botFactory func(cfg *Config, color checkers.Color, gen *checkers.Generator) bots.CheckersBot

// botKinds maps the Bot.WhiteBotType and Bot.BlackBotType settings to bots.
var botKinds = map[string]botFactory{
	BotMinimax: func(cfg *Config, color checkers.Color, gen *checkers.Generator) bots.CheckersBot {
		bot := bots.NewMinimaxBot(
			cfg.Int("Bot", color.String()+"BotLevel"),
			gen,
			bots.DefaultEvaluator{Mode: bots.ScoringMode(cfg.String("Bot", "BotScoringType"))},
		)
		bot.Optimization = cfg.String("Bot", "Optimization")
		return bot
	},
	BotRandom: func(cfg *Config, color checkers.Color, gen *checkers.Generator) bots.CheckersBot {
		var seed int64
		if !cfg.Bool("Bot", "NoRandom") {
			seed = time.Now().UnixNano()
		}
		return bots.NewRandomBot(gen, seed)
	},
	BotNewborn: func(cfg *Config, color checkers.Color, gen *checkers.Generator) bots.CheckersBot {
		return bots.NewNewbornBot(gen)
	},
}

// newBot builds the configured bot for color, or returns nil when a human
// plays that side.
func newBot(cfg *Config, color checkers.Color, gen *checkers.Generator) bots.CheckersBot {
	name := color.String()
	if !cfg.Bool("Bot", "Is"+name+"Bot") {
		return nil
	}
	factory, ok := botKinds[cfg.String("Bot", name+"BotType")]
	if !ok {
		return nil
	}
	return factory(cfg, color, gen)
}
