package main

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"checkersGo/game"
)

func TestFindMaxSequenceNumber(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"run_00003.json", "run_00011.json", "other_00042.json", "run_7.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := findMaxSequenceNumber(dir, "run")
	if err != nil {
		t.Fatal(err)
	}
	if got != 11 {
		t.Fatalf("expected 11, got %d", got)
	}
	if got, err := findMaxSequenceNumber(filepath.Join(dir, "missing"), "run"); err != nil || got != 0 {
		t.Fatalf("missing directory should start from 0, got %d %v", got, err)
	}
}

func TestPlayGameWritesResult(t *testing.T) {
	cfg := game.DefaultConfig()
	for key, value := range map[string]any{
		"IsWhiteBot":    true,
		"IsBlackBot":    true,
		"WhiteBotLevel": 1,
		"BlackBotLevel": 1,
		"NoRandom":      true,
	} {
		if err := cfg.Set("Bot", key, value); err != nil {
			t.Fatal(err)
		}
	}
	if err := cfg.Set("Game", "MaxNumTurns", 30); err != nil {
		t.Fatal(err)
	}

	result, err := playGame(context.Background(), cfg, log.New(io.Discard, "", 0), 0)
	if err != nil {
		t.Fatalf("play game: %v", err)
	}
	if result.Result == game.StatusRunning || len(result.Turns) == 0 {
		t.Fatalf("expected a finished game, got %+v", result)
	}

	path := filepath.Join(t.TempDir(), "run_00001.json")
	if err := writeResult(path, result); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["result"] != result.Result.String() {
		t.Fatalf("expected result %q in JSON, got %v", result.Result, decoded["result"])
	}
}

func TestPlayGameWithSimpleBots(t *testing.T) {
	cfg := game.DefaultConfig()
	for key, value := range map[string]any{
		"IsWhiteBot":   true,
		"IsBlackBot":   true,
		"WhiteBotType": game.BotRandom,
		"BlackBotType": game.BotNewborn,
		"NoRandom":     true,
	} {
		if err := cfg.Set("Bot", key, value); err != nil {
			t.Fatal(err)
		}
	}
	if err := cfg.Set("Game", "MaxNumTurns", 40); err != nil {
		t.Fatal(err)
	}

	result, err := playGame(context.Background(), cfg, log.New(io.Discard, "", 0), 3)
	if err != nil {
		t.Fatalf("play game: %v", err)
	}
	if result.White != "Random Bot" || result.Black != "Newborn" {
		t.Fatalf("unexpected players %q and %q", result.White, result.Black)
	}
	if result.Result == game.StatusRunning || result.Game != 3 {
		t.Fatalf("expected finished game 3, got %+v", result)
	}
}
