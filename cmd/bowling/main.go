package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"bowling_backend/internal/app"

	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "bowling",
		Usage: "ten-pin bowling scoring",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "path to the game rules file",
				EnvVars: []string{"BOWLING_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			newServeCommand(),
			newPlayCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Action: func(c *cli.Context) error {
			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.NewApp(c.String("config")).Run(ctx)
		},
	}
}
