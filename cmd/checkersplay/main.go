// Command checkersplay plays checkers in the terminal against a human or the
// minimax AI, and exposes a few diagnostic commands.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/profile"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/hailam/checkersplay/internal/logging"
)

var profiler interface{ Stop() }

func main() {
	_ = logging.Configure(logging.DefaultLevel, os.Stderr)

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	app := &cli.App{
		Name:  "checkersplay",
		Usage: "Play checkers in the terminal against a minimax AI",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (trace, debug, info, warn, error)",
				Value:   logging.DefaultLevel,
				EnvVars: []string{"CHECKERS_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "directory for preferences and statistics",
				EnvVars: []string{"CHECKERS_DATA_DIR"},
			},
			&cli.BoolFlag{
				Name:  "no-store",
				Usage: "do not read or write preferences and statistics",
			},
			&cli.StringFlag{
				Name:  "cpuprofile",
				Usage: "write a CPU profile into this directory",
			},
		},
		Before: func(cCtx *cli.Context) error {
			if err := logging.Configure(cCtx.String("log-level"), os.Stderr); err != nil {
				log.Warn().Err(err).Msg("invalid log level, using default")
			}
			if dir := cCtx.String("cpuprofile"); dir != "" {
				profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook)
			}
			return nil
		},
		After: func(*cli.Context) error {
			if profiler != nil {
				profiler.Stop()
			}
			return nil
		},
		Action: playAction,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "Play a game (default command)",
				Flags:  playFlags(),
				Action: playAction,
			},
			{
				Name:   "stats",
				Usage:  "Show stored game statistics",
				Action: statsAction,
			},
			{
				Name:  "perft",
				Usage: "Count move-generation leaf nodes from a position",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "depth",
						Aliases: []string{"d"},
						Usage:   "perft depth",
						Value:   5,
					},
					&cli.BoolFlag{
						Name:  "divide",
						Usage: "print the count below each root move",
					},
					&cli.StringFlag{
						Name:  "color",
						Usage: "side to move",
						Value: "white",
					},
					&cli.PathFlag{
						Name:  "layout",
						Usage: "file with an 8-line board layout",
					},
				},
				Action: perftAction,
			},
			{
				Name:  "bench",
				Usage: "Compare sequential and parallel search on a position",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "depth",
						Aliases: []string{"d"},
						Usage:   "search depth in plies",
						Value:   6,
					},
					&cli.StringFlag{
						Name:  "color",
						Usage: "side to move",
						Value: "white",
					},
					&cli.PathFlag{
						Name:  "layout",
						Usage: "file with an 8-line board layout",
					},
				},
				Action: benchAction,
			},
		},
	}
	app.Flags = append(app.Flags, playFlags()...)

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("checkersplay failed")
	}
}
