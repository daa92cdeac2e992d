// Package console runs a checkers game in a terminal: it prints the board,
// reads moves in board notation and lets the AI answer.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hailam/checkersplay/internal/board"
	"github.com/hailam/checkersplay/internal/config"
	"github.com/hailam/checkersplay/internal/engine"
	"github.com/hailam/checkersplay/internal/storage"
)

// maxListedMoves caps the number of moves printed in hints.
const maxListedMoves = 10

// errQuit signals that the player left the game.
var errQuit = errors.New("player quit")

// Result describes how a game ended.
type Result struct {
	ID        string
	Winner    board.Color
	HasWinner bool
	Abandoned bool
	Plies     int
	Duration  time.Duration
}

// Console plays one game over a text stream.
type Console struct {
	cfg     config.Config
	board   *board.Board
	turn    board.Color
	engines map[board.Color]*engine.Engine
	scanner *bufio.Scanner
	out     io.Writer
	id      string
}

// New creates a console game from the standard starting position.
func New(cfg config.Config, in io.Reader, out io.Writer) *Console {
	return NewFromPosition(cfg, board.New(), board.White, in, out)
}

// NewFromPosition creates a console game from an arbitrary position with
// the given side to move.
func NewFromPosition(cfg config.Config, b *board.Board, turn board.Color, in io.Reader, out io.Writer) *Console {
	c := &Console{
		cfg:     cfg,
		board:   b,
		turn:    turn,
		engines: make(map[board.Color]*engine.Engine),
		scanner: bufio.NewScanner(in),
		out:     out,
		id:      uuid.NewString(),
	}

	for _, color := range []board.Color{board.White, board.Black} {
		if !c.isHuman(color) {
			c.engines[color] = engine.New(color, cfg.Depth)
		}
	}

	return c
}

// Board returns the game board.
func (c *Console) Board() *board.Board {
	return c.board
}

// ID returns the game session id.
func (c *Console) ID() string {
	return c.id
}

// isHuman reports whether the given color is played from the keyboard.
func (c *Console) isHuman(color board.Color) bool {
	switch c.cfg.Mode {
	case storage.ModeHumanVsHuman:
		return true
	case storage.ModeComputerVsComputer:
		return false
	default:
		return color == c.cfg.HumanColor
	}
}

// Run plays the game until it is over, the player quits, the input ends or
// a computer-only game reaches the ply limit.
func (c *Console) Run() Result {
	start := time.Now()
	result := Result{ID: c.id}

	log.Info().
		Str("game_id", c.id).
		Str("mode", c.cfg.Mode.String()).
		Int("depth", c.cfg.Depth).
		Bool("parallel", c.cfg.Parallel).
		Msg("game started")

	c.printBanner()

	for !c.board.IsOver() {
		if c.cfg.Mode == storage.ModeComputerVsComputer && result.Plies >= c.cfg.MaxPlies {
			fmt.Fprintf(c.out, "\nPly limit of %d reached.\n", c.cfg.MaxPlies)
			break
		}

		fmt.Fprintln(c.out, c.board)

		var captured bool
		var err error
		if c.isHuman(c.turn) {
			captured, err = c.humanTurn()
		} else {
			captured = c.aiTurn()
		}
		if err != nil {
			result.Abandoned = true
			break
		}
		result.Plies++

		// The same side moves again while it still has a capture.
		if captured && c.hasAdditionalCaptures() {
			continue
		}
		c.turn = c.turn.Other()
	}

	if !result.Abandoned {
		result.Winner, result.HasWinner = c.board.Winner()
	}
	result.Duration = time.Since(start)

	c.printResult(result)

	log.Info().
		Str("game_id", c.id).
		Int("plies", result.Plies).
		Bool("abandoned", result.Abandoned).
		Bool("has_winner", result.HasWinner).
		Str("winner", result.Winner.String()).
		Dur("elapsed", result.Duration).
		Msg("game finished")

	return result
}

// humanTurn reads lines until a legal move is entered and applies it.
// It reports whether the move was a capture.
func (c *Console) humanTurn() (bool, error) {
	moves := c.board.AvailableMoves(c.turn)
	if len(moves) == 0 {
		return false, nil
	}

	if moves[0].IsCapture() {
		fmt.Fprintln(c.out, "ATTENTION! You have mandatory captures:")
		c.printMoves(moves)
	}

	for {
		fmt.Fprintf(c.out, "\n%s to move. Enter your move: ", sideName(c.turn))

		if !c.scanner.Scan() {
			return false, errQuit
		}
		input := strings.ToLower(strings.TrimSpace(c.scanner.Text()))

		switch input {
		case "":
			continue
		case "quit", "exit":
			return false, errQuit
		case "help":
			c.printHelp()
			continue
		case "moves":
			c.printMoves(moves)
			continue
		}

		m, err := board.ParseMove(input)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid move format. Use the format: a1-b2")
			continue
		}

		if !containsMove(moves, m) {
			fmt.Fprintln(c.out, "Invalid move! Try again.")
			c.printMoves(moves)
			continue
		}

		c.board.Apply(m, c.turn)
		fmt.Fprintf(c.out, "Move played: %s\n", m)
		log.Debug().Str("game_id", c.id).Str("color", c.turn.String()).Str("move", m.String()).Msg("human move")
		return m.IsCapture(), nil
	}
}

// aiTurn asks the engine for a move and applies it.
func (c *Console) aiTurn() bool {
	eng := c.engines[c.turn]
	strategy := "sequential"
	if c.cfg.Parallel {
		strategy = "parallel"
	}

	fmt.Fprintf(c.out, "\nAI turn (%s)...\n", sideName(c.turn))
	fmt.Fprintf(c.out, "The AI is thinking (%s search)...\n", strategy)

	startTime := time.Now()
	var m board.Move
	var err error
	if c.cfg.Parallel {
		m, err = eng.BestMove(c.board)
	} else {
		m, err = eng.BestMoveSequential(c.board)
	}
	elapsed := time.Since(startTime)

	if err != nil || m == board.NoMove {
		fmt.Fprintln(c.out, "The AI has no moves available.")
		return false
	}

	c.board.Apply(m, c.turn)
	fmt.Fprintf(c.out, "AI moves: %s (Time: %dms)\n", m, elapsed.Milliseconds())
	log.Debug().
		Str("game_id", c.id).
		Str("color", c.turn.String()).
		Str("move", m.String()).
		Uint64("nodes", eng.Nodes()).
		Dur("elapsed", elapsed).
		Msg("ai move")
	return m.IsCapture()
}

// hasAdditionalCaptures reports whether the side to move can capture again.
// Any piece of the side counts, not only the one that just captured.
func (c *Console) hasAdditionalCaptures() bool {
	captures := c.board.CaptureMoves(c.turn)
	if len(captures) == 0 {
		return false
	}
	fmt.Fprintln(c.out, "Additional captures available, same side moves again!")
	if c.isHuman(c.turn) {
		c.printMoves(captures)
	}
	return true
}

func (c *Console) printBanner() {
	fmt.Fprintln(c.out, "\nLet the game begin!")
	fmt.Fprintln(c.out, "Move format: a1-b2")
	fmt.Fprintln(c.out, "Rules: captures are mandatory.")
	if c.cfg.Mode == storage.ModeHumanVsComputer {
		fmt.Fprintf(c.out, "You play as: %s\n", sideName(c.cfg.HumanColor))
		fmt.Fprintf(c.out, "The AI plays as: %s\n", sideName(c.cfg.HumanColor.Other()))
	}
	fmt.Fprintln(c.out)
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, "Enter a move as two squares joined by a hyphen, e.g. c1-d2.")
	fmt.Fprintln(c.out, "Commands: moves (list legal moves), help, quit")
}

func (c *Console) printMoves(moves []board.Move) {
	for i, m := range moves {
		if i == maxListedMoves {
			fmt.Fprintf(c.out, "  ... and %d more.\n", len(moves)-maxListedMoves)
			break
		}
		fmt.Fprintf(c.out, "- %s\n", m)
	}
}

func (c *Console) printResult(r Result) {
	fmt.Fprintln(c.out, "\n"+strings.Repeat("=", 50))
	fmt.Fprintln(c.out, c.board)
	fmt.Fprintln(c.out, strings.Repeat("=", 50))

	switch {
	case r.Abandoned:
		fmt.Fprintln(c.out, "Game abandoned.")
	case r.HasWinner:
		fmt.Fprintln(c.out, "GAME OVER!")
		fmt.Fprintf(c.out, "WINNER: %s\n", sideName(r.Winner))
	default:
		fmt.Fprintln(c.out, "GAME OVER! No winner.")
	}
}

// sideName returns the upper-case color name with its glyphs.
func sideName(c board.Color) string {
	if c == board.White {
		return "WHITE (●/◆)"
	}
	return "BLACK (○/◇)"
}

func containsMove(moves []board.Move, m board.Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}

// GameResult converts the result into a statistics record. It is seen from
// the human side in games against the AI and from white otherwise.
func (r Result) GameResult(cfg config.Config) storage.GameResult {
	side := board.White
	if cfg.Mode == storage.ModeHumanVsComputer {
		side = cfg.HumanColor
	}

	return storage.GameResult{
		ID:        r.ID,
		Won:       r.HasWinner && r.Winner == side,
		Draw:      !r.HasWinner && !r.Abandoned,
		Abandoned: r.Abandoned,
		Mode:      cfg.Mode,
		Depth:     cfg.Depth,
		Duration:  r.Duration,
	}
}
