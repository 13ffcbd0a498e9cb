package game

import (
	"fmt"
	"io"
	"log"
	"os"
)

// OpenLog opens the session log named by Game.LogFile for appending.
// An empty name discards the log.
func OpenLog(cfg *Config) (*log.Logger, io.Closer, error) {
	path := cfg.String("Game", "LogFile")
	if path == "" {
		return log.New(io.Discard, "", 0), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "", log.LstdFlags), f, nil
}
