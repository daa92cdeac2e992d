// Package config resolves the run configuration of the game from command
// line flags, environment variables and stored preferences.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hailam/checkersplay/internal/board"
	"github.com/hailam/checkersplay/internal/storage"
)

// ErrInvalidConfig is returned by Validate and the parsers.
var ErrInvalidConfig = errors.New("invalid configuration")

// Depth limits accepted for the AI.
const (
	MinDepth     = 1
	MaxDepth     = 12
	DefaultDepth = 6
)

// DefaultMaxPlies ends computer-vs-computer games that run too long.
const DefaultMaxPlies = 400

// Config holds everything needed to start a game.
type Config struct {
	Mode        storage.GameMode
	HumanColor  board.Color
	Parallel    bool
	Depth       int
	MaxPlies    int
	Username    string
	DataDir     string
	LogLevel    string
	NoStore     bool
	Interactive bool
}

// Default returns the configuration used when nothing else is known:
// a human playing white against a parallel AI searching 6 plies.
func Default() Config {
	return Config{
		Mode:       storage.ModeHumanVsComputer,
		HumanColor: board.White,
		Parallel:   true,
		Depth:      DefaultDepth,
		MaxPlies:   DefaultMaxPlies,
		Username:   "Player",
	}
}

// FromPreferences overlays stored preferences on the defaults.
func FromPreferences(prefs *storage.UserPreferences) Config {
	cfg := Default()
	if prefs == nil {
		return cfg
	}

	cfg.Mode = prefs.GameMode
	cfg.Parallel = prefs.SearchMode == storage.SearchParallel
	if prefs.PlayerColor == storage.ColorBlack {
		cfg.HumanColor = board.Black
	}
	if prefs.Depth != 0 {
		cfg.Depth = prefs.Depth
	}
	if prefs.Username != "" {
		cfg.Username = prefs.Username
	}
	return cfg
}

// Preferences converts the configuration back into storable preferences.
func (c Config) Preferences() *storage.UserPreferences {
	prefs := storage.DefaultPreferences()
	prefs.Username = c.Username
	prefs.Depth = c.Depth
	prefs.GameMode = c.Mode
	prefs.SearchMode = storage.SearchSequential
	if c.Parallel {
		prefs.SearchMode = storage.SearchParallel
	}
	prefs.PlayerColor = storage.ColorWhite
	if c.HumanColor == board.Black {
		prefs.PlayerColor = storage.ColorBlack
	}
	return prefs
}

// Validate checks the configuration for values the game cannot use.
func (c Config) Validate() error {
	if c.Depth < MinDepth || c.Depth > MaxDepth {
		return fmt.Errorf("%w: depth %d outside %d-%d", ErrInvalidConfig, c.Depth, MinDepth, MaxDepth)
	}
	if c.MaxPlies < 1 {
		return fmt.Errorf("%w: max plies must be positive, got %d", ErrInvalidConfig, c.MaxPlies)
	}
	switch c.Mode {
	case storage.ModeHumanVsComputer, storage.ModeHumanVsHuman, storage.ModeComputerVsComputer:
	default:
		return fmt.Errorf("%w: unknown game mode %d", ErrInvalidConfig, c.Mode)
	}
	if c.HumanColor != board.White && c.HumanColor != board.Black {
		return fmt.Errorf("%w: unknown color %d", ErrInvalidConfig, c.HumanColor)
	}
	return nil
}

// ParseMode parses a game mode: "ai"/"hvc", "human"/"hvh" or "watch"/"cvc".
func ParseMode(s string) (storage.GameMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ai", "hvc":
		return storage.ModeHumanVsComputer, nil
	case "human", "hvh":
		return storage.ModeHumanVsHuman, nil
	case "watch", "cvc":
		return storage.ModeComputerVsComputer, nil
	}
	return storage.ModeHumanVsComputer, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
}

// ParseSearch parses "parallel" or "sequential" and reports whether the
// parallel strategy was chosen.
func ParseSearch(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "parallel", "p":
		return true, nil
	case "sequential", "s":
		return false, nil
	}
	return true, fmt.Errorf("%w: unknown search strategy %q", ErrInvalidConfig, s)
}

// ParseColor parses the human color.
func ParseColor(s string) (board.Color, error) {
	c, err := board.ParseColor(s)
	if err != nil {
		return board.White, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return c, nil
}
