package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"

	"github.com/hailam/checkersplay/internal/board"
	"github.com/hailam/checkersplay/internal/config"
	"github.com/hailam/checkersplay/internal/engine"
	"github.com/hailam/checkersplay/internal/storage"
)

// PromptUsername asks for the player's name on first launch.
func PromptUsername(current string) (string, error) {
	name := current
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Welcome to checkers! What should we call you?").
				Value(&name),
		),
	)
	if err := form.Run(); err != nil {
		return current, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return current, nil
	}
	return name, nil
}

// PromptSetup walks through the game menu: mode, color, search strategy and
// difficulty. The answers start out as the values in cfg.
func PromptSetup(cfg config.Config) (config.Config, error) {
	mode := cfg.Mode
	color := cfg.HumanColor
	parallel := cfg.Parallel
	depth := cfg.Depth

	menu := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[storage.GameMode]().
				Title("Choose the game mode").
				Options(
					huh.NewOption("Play against the AI", storage.ModeHumanVsComputer),
					huh.NewOption("Play against another human", storage.ModeHumanVsHuman),
					huh.NewOption("Watch the AI play itself", storage.ModeComputerVsComputer),
				).
				Value(&mode),
		),
	)
	if err := menu.Run(); err != nil {
		return cfg, err
	}
	cfg.Mode = mode

	if mode == storage.ModeHumanVsHuman {
		return cfg, nil
	}

	var groups []*huh.Group
	if mode == storage.ModeHumanVsComputer {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[board.Color]().
				Title("Choose your color").
				Options(
					huh.NewOption("White (●) moves first", board.White),
					huh.NewOption("Black (○)", board.Black),
				).
				Value(&color),
		))
	}

	groups = append(groups,
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("Choose the search strategy").
				Options(
					huh.NewOption("Parallel (faster)", true),
					huh.NewOption("Sequential", false),
				).
				Value(&parallel),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Choose the difficulty").
				Options(difficultyOptions()...).
				Value(&depth),
		),
	)

	if err := huh.NewForm(groups...).Run(); err != nil {
		return cfg, err
	}

	cfg.HumanColor = color
	cfg.Parallel = parallel
	cfg.Depth = depth

	log.Debug().
		Str("mode", cfg.Mode.String()).
		Str("color", cfg.HumanColor.String()).
		Bool("parallel", cfg.Parallel).
		Int("depth", cfg.Depth).
		Msg("setup complete")

	return cfg, nil
}

func difficultyOptions() []huh.Option[int] {
	var options []huh.Option[int]
	for _, d := range []engine.Difficulty{engine.Easy, engine.Medium, engine.Hard} {
		depth := engine.DifficultyDepth[d]
		label := fmt.Sprintf("%s (depth %d)", strings.ToUpper(d.String()[:1])+d.String()[1:], depth)
		options = append(options, huh.NewOption(label, depth))
	}
	return options
}
