package game

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"checkersGo/bots"
)

//go:embed settings.json
var defaultSettings []byte

var ErrInvalidConfig = errors.New("invalid config")

type section map[string]json.RawMessage

type settings map[string]section

// Config holds settings.json as sections of raw values, looked up by
// (section, key). Keys missing from the user file keep their defaults.
type Config struct {
	mu       sync.RWMutex
	path     string
	sections settings
}

func DefaultConfig() *Config {
	sections, err := parseSettings(nil, "")
	if err != nil {
		panic(fmt.Sprintf("embedded settings: %v", err))
	}
	return &Config{sections: sections}
}

// LoadConfig reads path over the embedded defaults and validates the result.
// An empty path gives the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	c := &Config{path: path}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadConfigOrDefault is LoadConfig, falling back to the defaults when
// the file does not exist.
func LoadConfigOrDefault(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Reload re-reads the file the config was loaded from. The current values
// are kept when the file cannot be read or does not validate, and when
// there is no file at all.
func (c *Config) Reload() error {
	if c.path == "" {
		return nil
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	sections, err := parseSettings(data, c.path)
	if err != nil {
		return err
	}
	if err := sections.validate(); err != nil {
		return err
	}
	c.mu.Lock()
	c.sections = sections
	c.mu.Unlock()
	return nil
}

func parseSettings(user []byte, path string) (settings, error) {
	sections := settings{}
	if err := json.Unmarshal(defaultSettings, &sections); err != nil {
		return nil, fmt.Errorf("parse default settings: %w", err)
	}
	if user == nil {
		return sections, nil
	}
	var overlay settings
	if err := json.Unmarshal(user, &overlay); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for name, values := range overlay {
		if sections[name] == nil {
			sections[name] = section{}
		}
		for key, value := range values {
			sections[name][key] = value
		}
	}
	return sections, nil
}

// decode leaves v untouched when the key is missing.
func (s settings) decode(sectionName, key string, v any) error {
	value, ok := s[sectionName][key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(value, v); err != nil {
		return fmt.Errorf("%w: %s.%s: %v", ErrInvalidConfig, sectionName, key, err)
	}
	return nil
}

func (s settings) intValue(sectionName, key string) (int, error) {
	var v int
	err := s.decode(sectionName, key, &v)
	return v, err
}

func (s settings) stringValue(sectionName, key string) (string, error) {
	var v string
	err := s.decode(sectionName, key, &v)
	return v, err
}

func (s settings) boolValue(sectionName, key string) (bool, error) {
	var v bool
	if err := s.decode(sectionName, key, &v); err == nil {
		return v, nil
	}
	var n float64
	if err := s.decode(sectionName, key, &n); err != nil {
		return false, fmt.Errorf("%w: %s.%s must be a boolean or a number", ErrInvalidConfig, sectionName, key)
	}
	return n != 0, nil
}

func (s settings) validate() error {
	for _, key := range []string{"IsWhiteBot", "IsBlackBot", "NoRandom", "LogSearch"} {
		if _, err := s.boolValue("Bot", key); err != nil {
			return err
		}
	}
	for _, key := range []string{"WhiteBotLevel", "BlackBotLevel"} {
		level, err := s.intValue("Bot", key)
		if err != nil {
			return err
		}
		if level <= 0 {
			return fmt.Errorf("%w: Bot.%s must be positive, got %d", ErrInvalidConfig, key, level)
		}
	}
	if _, err := s.intValue("Bot", "BotDelayMS"); err != nil {
		return err
	}
	turns, err := s.intValue("Game", "MaxNumTurns")
	if err != nil {
		return err
	}
	if turns <= 0 {
		return fmt.Errorf("%w: Game.MaxNumTurns must be positive, got %d", ErrInvalidConfig, turns)
	}
	if _, err := s.stringValue("Game", "LogFile"); err != nil {
		return err
	}
	for _, key := range []string{"WhiteBotType", "BlackBotType"} {
		kind, err := s.stringValue("Bot", key)
		if err != nil {
			return err
		}
		if _, ok := botKinds[kind]; !ok {
			return fmt.Errorf("%w: unknown Bot.%s %q", ErrInvalidConfig, key, kind)
		}
	}
	mode, err := s.stringValue("Bot", "BotScoringType")
	if err != nil {
		return err
	}
	switch bots.ScoringMode(mode) {
	case bots.ScoreNumber, bots.ScoreNumberAndPotential:
	default:
		return fmt.Errorf("%w: unknown Bot.BotScoringType %q", ErrInvalidConfig, mode)
	}
	opt, err := s.stringValue("Bot", "Optimization")
	if err != nil {
		return err
	}
	switch opt {
	case bots.OptimizationNone, bots.OptimizationPrune, bots.OptimizationStrict:
	default:
		return fmt.Errorf("%w: unknown Bot.Optimization %q", ErrInvalidConfig, opt)
	}
	return nil
}

func (c *Config) snapshot() settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sections
}

// Int, Bool and String return the zero value for missing or mistyped keys;
// Validate reports the mistyped ones.
func (c *Config) Int(sectionName, key string) int {
	v, _ := c.snapshot().intValue(sectionName, key)
	return v
}

// Bool accepts JSON booleans as well as numbers, non-zero meaning true.
func (c *Config) Bool(sectionName, key string) bool {
	v, _ := c.snapshot().boolValue(sectionName, key)
	return v
}

func (c *Config) String(sectionName, key string) string {
	v, _ := c.snapshot().stringValue(sectionName, key)
	return v
}

// Set overrides a single value, for command line flags and tests.
func (c *Config) Set(sectionName, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("set %s.%s: %w", sectionName, key, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	sections := make(settings, len(c.sections)+1)
	for name, values := range c.sections {
		sections[name] = values
	}
	values := make(section, len(sections[sectionName])+1)
	for k, v := range sections[sectionName] {
		values[k] = v
	}
	values[key] = data
	sections[sectionName] = values
	c.sections = sections
	return nil
}

func (c *Config) Validate() error {
	return c.snapshot().validate()
}
