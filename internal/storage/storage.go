package storage

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyFirstLaunch = "first_launch"
)

// ErrClosed is returned when the storage is used after Close.
var ErrClosed = errors.New("storage: closed")

// GameMode represents the game mode
type GameMode int

const (
	ModeHumanVsComputer GameMode = iota
	ModeHumanVsHuman
	ModeComputerVsComputer
)

// String returns the short mode name used in flags and stats keys.
func (m GameMode) String() string {
	switch m {
	case ModeHumanVsHuman:
		return "hvh"
	case ModeComputerVsComputer:
		return "cvc"
	default:
		return "hvc"
	}
}

// SearchMode selects the root evaluation strategy of the AI.
type SearchMode int

const (
	SearchParallel SearchMode = iota
	SearchSequential
)

// String returns the search mode name.
func (s SearchMode) String() string {
	if s == SearchSequential {
		return "sequential"
	}
	return "parallel"
}

// PlayerColor represents which color the human plays
type PlayerColor int

const (
	ColorWhite PlayerColor = iota
	ColorBlack
)

// UserPreferences stores user settings
type UserPreferences struct {
	Username    string      `json:"username"`
	Depth       int         `json:"depth"`
	GameMode    GameMode    `json:"game_mode"`
	SearchMode  SearchMode  `json:"search_mode"`
	PlayerColor PlayerColor `json:"player_color"`
	LastPlayed  time.Time   `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Username:    "Player",
		Depth:       6,
		GameMode:    ModeHumanVsComputer,
		SearchMode:  SearchParallel,
		PlayerColor: ColorWhite,
		LastPlayed:  time.Now(),
	}
}

// GameStats stores game statistics
type GameStats struct {
	GamesPlayed    int            `json:"games_played"`
	Wins           int            `json:"wins"`
	Losses         int            `json:"losses"`
	Draws          int            `json:"draws"`
	Abandoned      int            `json:"abandoned"`
	WinsByMode     map[string]int `json:"wins_by_mode"`
	WinsByDepth    map[int]int    `json:"wins_by_depth"`
	TotalPlayTime  time.Duration  `json:"total_play_time"`
	LongestWinStrk int            `json:"longest_win_streak"`
	CurrentStreak  int            `json:"current_streak"`
	LastGameID     string         `json:"last_game_id"`
}

// NewGameStats returns empty game statistics
func NewGameStats() *GameStats {
	return &GameStats{
		WinsByMode:  make(map[string]int),
		WinsByDepth: make(map[int]int),
	}
}

// GameResult represents the result of a completed game, seen from the
// human player (or from white when nobody is human).
type GameResult struct {
	ID        string
	Won       bool
	Draw      bool
	Abandoned bool
	Mode      GameMode
	Depth     int
	Duration  time.Duration
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the default data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("dir", dir).Msg("storage opened")
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	if s.db == nil {
		return false, ErrClosed
	}

	firstLaunch := true
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Storage) MarkFirstLaunchComplete() error {
	if s.db == nil {
		return ErrClosed
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()
	err := s.get(keyPreferences, prefs)
	return prefs, err
}

// SaveStats saves game statistics
func (s *Storage) SaveStats(stats *GameStats) error {
	return s.put(keyStats, stats)
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()
	if err := s.get(keyStats, stats); err != nil {
		return stats, err
	}
	// Maps are nil when decoded from an older record.
	if stats.WinsByMode == nil {
		stats.WinsByMode = make(map[string]int)
	}
	if stats.WinsByDepth == nil {
		stats.WinsByDepth = make(map[int]int)
	}
	return stats, nil
}

// RecordGame records a completed game and updates statistics
func (s *Storage) RecordGame(result GameResult) (*GameStats, error) {
	stats, err := s.LoadStats()
	if err != nil {
		return nil, err
	}

	stats.Apply(result)

	if err := s.SaveStats(stats); err != nil {
		return nil, err
	}

	log.Debug().
		Str("game_id", result.ID).
		Int("games_played", stats.GamesPlayed).
		Int("wins", stats.Wins).
		Msg("game recorded")

	return stats, nil
}

// Apply folds one game result into the statistics.
func (s *GameStats) Apply(result GameResult) {
	s.GamesPlayed++
	s.TotalPlayTime += result.Duration
	s.LastGameID = result.ID

	switch {
	case result.Abandoned:
		s.Abandoned++
		s.CurrentStreak = 0
	case result.Draw:
		s.Draws++
		s.CurrentStreak = 0
	case result.Won:
		s.Wins++
		s.CurrentStreak++
		if s.CurrentStreak > s.LongestWinStrk {
			s.LongestWinStrk = s.CurrentStreak
		}
		s.WinsByMode[result.Mode.String()]++
		if result.Mode == ModeHumanVsComputer {
			s.WinsByDepth[result.Depth]++
		}
	default:
		s.Losses++
		s.CurrentStreak = 0
	}
}

// GetWinRate returns the win rate as a percentage (0-100)
func (s *GameStats) GetWinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// put stores v as JSON under key.
func (s *Storage) put(key string, v any) error {
	if s.db == nil {
		return ErrClosed
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes the JSON value under key into v, leaving v untouched when the
// key does not exist.
func (s *Storage) get(key string, v any) error {
	if s.db == nil {
		return ErrClosed
	}

	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}
