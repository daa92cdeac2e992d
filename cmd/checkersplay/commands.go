package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/hailam/checkersplay/internal/board"
	"github.com/hailam/checkersplay/internal/config"
	"github.com/hailam/checkersplay/internal/console"
	"github.com/hailam/checkersplay/internal/engine"
	"github.com/hailam/checkersplay/internal/storage"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	labelStyle = lipgloss.NewStyle().Width(22)
)

func playFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Usage:   "game mode: ai, human or watch",
			EnvVars: []string{"CHECKERS_MODE"},
		},
		&cli.StringFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "your color against the AI: white or black",
			EnvVars: []string{"CHECKERS_COLOR"},
		},
		&cli.StringFlag{
			Name:    "search",
			Aliases: []string{"s"},
			Usage:   "AI search strategy: parallel or sequential",
			EnvVars: []string{"CHECKERS_SEARCH"},
		},
		&cli.IntFlag{
			Name:    "depth",
			Aliases: []string{"d"},
			Usage:   "AI search depth in plies",
			EnvVars: []string{"CHECKERS_DEPTH"},
		},
		&cli.StringFlag{
			Name:  "difficulty",
			Usage: "easy, medium or hard (sets the depth)",
		},
		&cli.IntFlag{
			Name:  "max-plies",
			Usage: "ply limit for AI-vs-AI games",
			Value: config.DefaultMaxPlies,
		},
		&cli.BoolFlag{
			Name:    "interactive",
			Aliases: []string{"i"},
			Usage:   "choose the game options from a menu",
		},
		&cli.PathFlag{
			Name:  "layout",
			Usage: "start from the 8-line board layout in this file",
		},
		&cli.StringFlag{
			Name:  "turn",
			Usage: "side to move first when starting from a layout",
			Value: "white",
		},
	}
}

// openStorage opens the preferences database. Failures are logged and the
// game goes on without persistence.
func openStorage(cCtx *cli.Context) *storage.Storage {
	if cCtx.Bool("no-store") {
		return nil
	}

	var (
		store *storage.Storage
		err   error
	)
	if dir := cCtx.String("data-dir"); dir != "" {
		var dbDir string
		dbDir, err = storage.DatabaseDirIn(dir)
		if err == nil {
			store, err = storage.Open(dbDir)
		}
	} else {
		store, err = storage.NewStorage()
	}
	if err != nil {
		log.Warn().Err(err).Msg("storage unavailable, preferences and statistics disabled")
		return nil
	}
	return store
}

// flagContext returns the context along the command lineage in which the
// named flag was set, nearest first. Play flags are accepted both before and
// after the "play" command name; when neither sets the flag, cCtx itself is
// returned so its default applies.
func flagContext(cCtx *cli.Context, name string) *cli.Context {
	for _, c := range cCtx.Lineage() {
		if c.IsSet(name) {
			return c
		}
	}
	return cCtx
}

// resolveConfig layers explicit flags over stored preferences.
func resolveConfig(cCtx *cli.Context, prefs *storage.UserPreferences) (config.Config, error) {
	isSet := func(name string) bool { return flagContext(cCtx, name).IsSet(name) }
	str := func(name string) string { return flagContext(cCtx, name).String(name) }

	cfg := config.FromPreferences(prefs)
	cfg.MaxPlies = flagContext(cCtx, "max-plies").Int("max-plies")
	cfg.Interactive = flagContext(cCtx, "interactive").Bool("interactive")
	cfg.DataDir = cCtx.String("data-dir")
	cfg.LogLevel = cCtx.String("log-level")
	cfg.NoStore = cCtx.Bool("no-store")

	if isSet("mode") {
		mode, err := config.ParseMode(str("mode"))
		if err != nil {
			return cfg, err
		}
		cfg.Mode = mode
	}
	if isSet("color") {
		c, err := config.ParseColor(str("color"))
		if err != nil {
			return cfg, err
		}
		cfg.HumanColor = c
	}
	if isSet("search") {
		parallel, err := config.ParseSearch(str("search"))
		if err != nil {
			return cfg, err
		}
		cfg.Parallel = parallel
	}
	if isSet("difficulty") {
		d, err := engine.ParseDifficulty(str("difficulty"))
		if err != nil {
			return cfg, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
		}
		cfg.Depth = engine.DifficultyDepth[d]
	}
	if isSet("depth") {
		cfg.Depth = flagContext(cCtx, "depth").Int("depth")
	}

	return cfg, nil
}

// loadPosition returns the starting board and side to move. An empty path
// means the standard starting position.
func loadPosition(path, color string) (*board.Board, board.Color, error) {
	turn, err := config.ParseColor(color)
	if err != nil {
		return nil, board.White, err
	}

	if path == "" {
		return board.New(), turn, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, turn, err
	}
	b, err := board.ParseLayout(string(data))
	if err != nil {
		return nil, turn, fmt.Errorf("%s: %w", path, err)
	}
	return b, turn, nil
}

func playAction(cCtx *cli.Context) error {
	store := openStorage(cCtx)
	if store != nil {
		defer store.Close()
	}

	var prefs *storage.UserPreferences
	if store != nil {
		var err error
		if prefs, err = store.LoadPreferences(); err != nil {
			log.Warn().Err(err).Msg("failed to load preferences")
		}
	}

	cfg, err := resolveConfig(cCtx, prefs)
	if err != nil {
		return err
	}

	if cfg.Interactive {
		if store != nil {
			if first, err := store.IsFirstLaunch(); err == nil && first {
				if cfg.Username, err = console.PromptUsername(cfg.Username); err != nil {
					return err
				}
				if err := store.MarkFirstLaunchComplete(); err != nil {
					log.Warn().Err(err).Msg("failed to mark first launch")
				}
			}
		}
		if cfg, err = console.PromptSetup(cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	b, turn, err := loadPosition(
		flagContext(cCtx, "layout").Path("layout"),
		flagContext(cCtx, "turn").String("turn"),
	)
	if err != nil {
		return err
	}

	game := console.NewFromPosition(cfg, b, turn, os.Stdin, os.Stdout)
	result := game.Run()

	if store == nil {
		return nil
	}
	if err := store.SavePreferences(cfg.Preferences()); err != nil {
		log.Warn().Err(err).Msg("failed to save preferences")
	}
	if _, err := store.RecordGame(result.GameResult(cfg)); err != nil {
		log.Warn().Err(err).Msg("failed to record game")
	}
	return nil
}

func statsAction(cCtx *cli.Context) error {
	store := openStorage(cCtx)
	if store == nil {
		return errors.New("statistics need storage; check --data-dir and --no-store")
	}
	defer store.Close()

	prefs, err := store.LoadPreferences()
	if err != nil {
		return err
	}
	stats, err := store.LoadStats()
	if err != nil {
		return err
	}

	row := func(label string, value any) {
		fmt.Printf("%s%v\n", labelStyle.Render(label), value)
	}

	fmt.Println(titleStyle.Render("Statistics for " + prefs.Username))
	row("Games played", stats.GamesPlayed)
	row("Wins", stats.Wins)
	row("Losses", stats.Losses)
	row("Draws", stats.Draws)
	row("Abandoned", stats.Abandoned)
	row("Win rate", fmt.Sprintf("%.1f%%", stats.GetWinRate()))
	row("Longest win streak", stats.LongestWinStrk)
	row("Current streak", stats.CurrentStreak)
	row("Total play time", stats.TotalPlayTime.Round(time.Second))

	for _, d := range []engine.Difficulty{engine.Easy, engine.Medium, engine.Hard} {
		depth := engine.DifficultyDepth[d]
		row(fmt.Sprintf("Wins on %s", d), stats.WinsByDepth[depth])
	}
	if stats.LastGameID != "" {
		row("Last game", stats.LastGameID)
	}
	return nil
}

func perftAction(cCtx *cli.Context) error {
	b, turn, err := loadPosition(cCtx.Path("layout"), cCtx.String("color"))
	if err != nil {
		return err
	}
	depth := cCtx.Int("depth")

	start := time.Now()
	if cCtx.Bool("divide") {
		divide := board.Divide(b, turn, depth)
		var total int64
		for _, m := range b.AvailableMoves(turn) {
			n := divide[m]
			fmt.Printf("%s: %d\n", m, n)
			total += n
		}
		fmt.Printf("\nNodes: %d\n", total)
	} else {
		fmt.Printf("Nodes: %d\n", board.Perft(b, turn, depth))
	}
	fmt.Printf("Time: %v\n", time.Since(start))
	return nil
}

func benchAction(cCtx *cli.Context) error {
	b, turn, err := loadPosition(cCtx.Path("layout"), cCtx.String("color"))
	if err != nil {
		return err
	}

	eng := engine.New(turn, cCtx.Int("depth"))
	eng.OnInfo = func(info engine.SearchInfo) {
		fmt.Println(formatInfo(info))
	}

	fmt.Println(b)
	for _, parallel := range []bool{false, true} {
		var m board.Move
		if parallel {
			m, err = eng.BestMove(b)
		} else {
			m, err = eng.BestMoveSequential(b)
		}
		if err != nil {
			return err
		}
		fmt.Printf("bestmove %s\n", m)
	}
	return nil
}

// formatInfo renders a search report as a single info line.
func formatInfo(info engine.SearchInfo) string {
	strategy := "sequential"
	if info.Parallel {
		strategy = "parallel"
	}

	parts := []string{
		fmt.Sprintf("search %s", strategy),
		fmt.Sprintf("depth %d", info.Depth),
		fmt.Sprintf("score %s", engine.ScoreToString(info.Score)),
		fmt.Sprintf("nodes %d", info.Nodes),
		fmt.Sprintf("rootmoves %d", info.RootMoves),
		fmt.Sprintf("time %d", info.Time.Milliseconds()),
	}
	if secs := info.Time.Seconds(); secs > 0 {
		parts = append(parts, fmt.Sprintf("nps %.0f", float64(info.Nodes)/secs))
	}
	parts = append(parts, "move "+info.Move.String())

	return "info " + strings.Join(parts, " ")
}
