package main

import (
	"fmt"
	"io"
	"strings"

	"bowling_backend/internal/bowling"
	"bowling_backend/internal/config/env"
	"bowling_backend/internal/model"
	"bowling_backend/internal/thrower"

	"github.com/urfave/cli/v2"
)

func newPlayCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "play one game in the terminal",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "seed for the random thrower, 0 picks one",
			},
			&cli.StringFlag{
				Name:  "script",
				Usage: `scripted throws, e.g. "0,1,2;3,4,5,6,7,8,9"`,
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := env.NewGameConfigFromYAML(c.String("config"))
			if err != nil {
				return err
			}

			executor, err := playExecutor(c.String("script"), c.Int64("seed"), cfg.Seed(), c.App.Writer)
			if err != nil {
				return err
			}
			_, err = playGame(c.App.Writer, executor, cfg.Rules())
			return err
		},
	}
}

func playExecutor(script string, flagSeed, cfgSeed int64, w io.Writer) (bowling.Executor, error) {
	if script != "" {
		throws, err := thrower.ParseScript(script)
		if err != nil {
			return nil, err
		}
		return thrower.NewScripted(throws...), nil
	}

	seed := flagSeed
	if seed == 0 {
		seed = cfgSeed
	}
	if seed == 0 {
		var err error
		if seed, err = thrower.NewSeed(); err != nil {
			return nil, err
		}
	}
	fmt.Fprintf(w, "seed %d\n", seed)
	return thrower.NewRandom(seed), nil
}

// playGame throws until the game ends, printing every throw and the final card.
func playGame(w io.Writer, executor bowling.Executor, rules model.Rules) (model.GameStatus, error) {
	engine, err := bowling.NewEngine(executor, rules)
	if err != nil {
		return model.GameStatus{}, err
	}
	engine.StartNewGame()

	var status model.GameStatus
	for n := 1; !status.IsGameFinished; n++ {
		before := status.TotalPoints
		status, err = engine.ThrowBall()
		if err != nil {
			return status, err
		}
		fmt.Fprintf(w, "throw %-2d  +%-3d total %d\n", n, status.TotalPoints-before, status.TotalPoints)
	}

	fmt.Fprintln(w, scorecard(status))
	return status, nil
}

func scorecard(status model.GameStatus) string {
	var b strings.Builder
	b.WriteString("frame ")
	for i := range status.Frames {
		fmt.Fprintf(&b, "%5d", i+1)
	}
	b.WriteString("\nmark  ")
	for _, f := range status.Frames {
		fmt.Fprintf(&b, "%5s", mark(f.Type))
	}
	b.WriteString("\npoints")
	for _, f := range status.Frames {
		fmt.Fprintf(&b, "%5d", f.Points)
	}
	fmt.Fprintf(&b, "\ntotal %d", status.TotalPoints)
	return b.String()
}

func mark(t model.FrameType) string {
	switch t {
	case model.FrameStrike:
		return "X"
	case model.FrameSpare:
		return "/"
	default:
		return "-"
	}
}
